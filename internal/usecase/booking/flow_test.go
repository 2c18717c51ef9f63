//go:build unit

package booking_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"venue-booking-web/internal/domain/availability"
	domain "venue-booking-web/internal/domain/booking"
	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/infra/checkout"
	"venue-booking-web/internal/infra/querycache"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/localtime"
	"venue-booking-web/internal/pkg/ptr"
	"venue-booking-web/internal/usecase/booking"
	"venue-booking-web/tests/common/builder"
	bookingmock "venue-booking-web/tests/mock/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FlowTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockBackend *bookingmock.MockBackend
	mockWidget  *bookingmock.MockWidget
	mockCache   *bookingmock.MockCacheInvalidator
	cfg         config.CheckoutConfig
	flow        *booking.Flow
}

func (s *FlowTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBackend = bookingmock.NewMockBackend(s.mockCtrl)
	s.mockWidget = bookingmock.NewMockWidget(s.mockCtrl)
	s.mockCache = bookingmock.NewMockCacheInvalidator(s.mockCtrl)
	s.cfg = config.NewTestConfig().Checkout
	s.flow = booking.NewFlow(s.mockBackend, s.mockWidget, s.mockCache, s.cfg, time.UTC, nil, nil)
}

func (s *FlowTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowTestSuite))
}

var (
	attemptID = uuid.MustParse("6f1c2a9e-0000-4000-8000-000000000001")
	customer  = ptr.To(builder.NewUserBuilder().WithEmail("asha@example.com").BuildIdentity())
	slotStart = localtime.New(time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC))
)

func input() booking.Input {
	return booking.Input{
		AttemptID: attemptID,
		Token:     "tok",
		Identity:  customer,
		Slot:      booking.Slot{ID: 11, VenueID: 3, Status: availability.StatusAvailable},
	}
}

func pendingBooking(orderID *string, amount float64) domain.Booking {
	return domain.Booking{
		ID:              99,
		VenueID:         3,
		VenueName:       "Court One",
		AvailabilityID:  11,
		Start:           slotStart,
		TotalAmount:     amount,
		Status:          domain.StatusPending,
		RazorpayOrderID: orderID,
	}
}

func (s *FlowTestSuite) TestBookConfirmsPayment() {
	ctx := context.Background()
	pending := pendingBooking(ptr.To("order_abc"), 500.00)
	confirmed := pending
	confirmed.Status = domain.StatusConfirmed
	paid := checkout.Success{OrderID: "order_abc", PaymentID: "pay_1", Signature: "sig_1"}

	wantRequest := checkout.Request{
		AttemptID:   attemptID,
		Key:         s.cfg.Key,
		OrderID:     "order_abc",
		Amount:      50000,
		Currency:    "INR",
		Name:        "EventBooking",
		Description: "Booking: Court One – Mar 10, 2025, 6:00 PM",
		Prefill:     checkout.Prefill{Name: "Asha Rao", Email: "asha@example.com"},
	}

	gomock.InOrder(
		s.mockBackend.EXPECT().CreateBooking(gomock.Any(), "tok", backend.BookingRequest{AvailabilityID: 11}).
			Return(pending, nil),
		s.mockWidget.EXPECT().Load(gomock.Any()).Return(nil),
		s.mockWidget.EXPECT().Open(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req checkout.Request) (checkout.Success, error) {
				if diff := cmp.Diff(wantRequest, req); diff != "" {
					s.Failf("checkout request mismatch", "(-want +got):\n%s", diff)
				}
				return paid, nil
			}),
		s.mockBackend.EXPECT().ConfirmPayment(gomock.Any(), "tok", backend.PaymentRequest{
			RazorpayOrderID:   "order_abc",
			RazorpayPaymentID: "pay_1",
			RazorpaySignature: "sig_1",
		}).Return(confirmed, nil),
		s.mockCache.EXPECT().Invalidate(querycache.PublicSlots(3), querycache.MyBookings("tok")),
	)

	res, err := s.flow.Book(ctx, input())
	s.Require().NoError(err)
	s.Equal("/my-bookings", res.Redirect)
	s.Equal(domain.StatusConfirmed, res.Booking.Status)
}

func (s *FlowTestSuite) TestInvalidBookingResponseNeverOpensWidget() {
	cases := []struct {
		name    string
		orderID *string
		amount  float64
	}{
		{name: "missing order id", orderID: nil, amount: 500},
		{name: "empty order id", orderID: ptr.To(""), amount: 500},
		{name: "zero amount", orderID: ptr.To("order_1"), amount: 0},
		{name: "negative amount", orderID: ptr.To("order_1"), amount: -12.5},
		{name: "amount rounds to zero", orderID: ptr.To("order_1"), amount: 0.004},
		{name: "both missing", orderID: nil, amount: 0},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockBackend.EXPECT().CreateBooking(gomock.Any(), "tok", gomock.Any()).
				Return(pendingBooking(tc.orderID, tc.amount), nil)

			res, err := s.flow.Book(context.Background(), input())
			s.Nil(res)
			s.ErrorIs(err, booking.ErrInvalidBookingResponse)
			s.Equal("Invalid booking response: missing order or amount", err.Error())
		})
	}
}

func (s *FlowTestSuite) TestReservationFailureShortCircuits() {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{
			name: "slot already taken",
			err:  &backend.APIError{Message: "Slot is not available", Status: http.StatusConflict},
			msg:  "Slot is not available",
		},
		{
			name: "transport failure",
			err:  backend.ErrRequestFailed,
			msg:  "request failed",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockBackend.EXPECT().CreateBooking(gomock.Any(), "tok", gomock.Any()).Return(domain.Booking{}, tc.err)

			_, err := s.flow.Book(context.Background(), input())
			s.Require().Error(err)
			s.Equal(tc.msg, err.Error())
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *FlowTestSuite) TestWidgetDismissed() {
	s.mockBackend.EXPECT().CreateBooking(gomock.Any(), "tok", gomock.Any()).
		Return(pendingBooking(ptr.To("order_abc"), 500), nil)
	s.mockWidget.EXPECT().Load(gomock.Any()).Return(nil)
	s.mockWidget.EXPECT().Open(gomock.Any(), gomock.Any()).Return(checkout.Success{}, checkout.ErrDismissed)

	_, err := s.flow.Book(context.Background(), input())
	s.ErrorIs(err, checkout.ErrDismissed)
	s.Equal("Payment cancelled", err.Error())
}

func (s *FlowTestSuite) TestWidgetLoadFailure() {
	s.mockBackend.EXPECT().CreateBooking(gomock.Any(), "tok", gomock.Any()).
		Return(pendingBooking(ptr.To("order_abc"), 500), nil)
	s.mockWidget.EXPECT().Load(gomock.Any()).Return(checkout.ErrUnavailable)

	_, err := s.flow.Book(context.Background(), input())
	s.ErrorIs(err, checkout.ErrUnavailable)
}

func (s *FlowTestSuite) TestSettlementRejected() {
	rejected := &backend.APIError{
		Message: "Payment verification failed",
		Status:  http.StatusBadRequest,
		Body:    map[string]any{"message": "Payment verification failed"},
	}
	s.mockBackend.EXPECT().CreateBooking(gomock.Any(), "tok", gomock.Any()).
		Return(pendingBooking(ptr.To("order_abc"), 500), nil)
	s.mockWidget.EXPECT().Load(gomock.Any()).Return(nil)
	s.mockWidget.EXPECT().Open(gomock.Any(), gomock.Any()).
		Return(checkout.Success{OrderID: "order_abc", PaymentID: "pay", Signature: "bad"}, nil)
	s.mockBackend.EXPECT().ConfirmPayment(gomock.Any(), "tok", gomock.Any()).Return(domain.Booking{}, rejected)

	res, err := s.flow.Book(context.Background(), input())
	s.Nil(res)
	apiErr, ok := backend.AsAPIError(err)
	s.Require().True(ok)
	s.Equal("Payment verification failed", apiErr.Message)
	s.Equal(http.StatusBadRequest, apiErr.Status)
}

func (s *FlowTestSuite) TestPreconditions() {
	s.Run("not logged in", func() {
		in := input()
		in.Token = ""
		_, err := s.flow.Book(context.Background(), in)
		s.ErrorIs(err, booking.ErrNotAuthenticated)

		in = input()
		in.Identity = nil
		_, err = s.flow.Book(context.Background(), in)
		s.ErrorIs(err, booking.ErrNotAuthenticated)
	})

	for _, role := range []user.Role{user.RoleVenueOwner, user.RoleAdmin} {
		s.Run("role "+role.String()+" cannot book", func() {
			in := input()
			in.Identity = &user.Identity{ID: 1, Role: role}
			_, err := s.flow.Book(context.Background(), in)
			s.ErrorIs(err, booking.ErrNotCustomer)
			s.Equal("Only customers can book slots. Log in as a customer to book.", err.Error())
		})
	}

	for _, status := range []availability.Status{availability.StatusBooked, availability.StatusCancelled} {
		s.Run("slot "+string(status), func() {
			in := input()
			in.Slot.Status = status
			_, err := s.flow.Book(context.Background(), in)
			s.ErrorIs(err, booking.ErrSlotUnavailable)
		})
	}

	s.Run("checkout key missing", func() {
		cfg := s.cfg
		cfg.Key = ""
		flow := booking.NewFlow(s.mockBackend, s.mockWidget, s.mockCache, cfg, time.UTC, nil, nil)
		_, err := flow.Book(context.Background(), input())
		s.ErrorIs(err, booking.ErrCheckoutNotConfigured)
	})
}

func (s *FlowTestSuite) TestUnknownSlotStatusStillReserves() {
	in := input()
	in.Slot.Status = ""
	s.mockBackend.EXPECT().CreateBooking(gomock.Any(), "tok", backend.BookingRequest{AvailabilityID: 11}).
		Return(domain.Booking{}, &backend.APIError{Message: "Availability not found", Status: http.StatusNotFound})

	_, err := s.flow.Book(context.Background(), in)
	s.True(backend.IsStatus(err, http.StatusNotFound))
}
