//go:build unit

package availability_test

import (
	"testing"

	"venue-booking-web/internal/domain/availability"

	"github.com/stretchr/testify/assert"
)

func TestSlotDeletable(t *testing.T) {
	assert.True(t, availability.Slot{Status: availability.StatusAvailable}.Deletable())
	assert.False(t, availability.Slot{Status: availability.StatusBooked}.Deletable())
	assert.False(t, availability.Slot{Status: availability.StatusCancelled}.Deletable())
}

func TestFilterAvailable(t *testing.T) {
	slots := []availability.Slot{
		{ID: 1, Status: availability.StatusAvailable},
		{ID: 2, Status: availability.StatusBooked},
		{ID: 3, Status: availability.StatusAvailable},
		{ID: 4, Status: availability.StatusCancelled},
	}
	got := availability.FilterAvailable(slots)
	if assert.Len(t, got, 2) {
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	}
	assert.Empty(t, availability.FilterAvailable(nil))
}
