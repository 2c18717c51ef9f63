//go:build unit

package localtime_test

import (
	"encoding/json"
	"testing"
	"time"

	"venue-booking-web/internal/pkg/errs"
	"venue-booking-web/internal/pkg/localtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	loc := time.FixedZone("IST", 19800)
	d := time.Date(2026, 1, 29, 9, 5, 7, 999, loc)
	assert.Equal(t, "2026-01-29T09:05:07", localtime.Format(d))
}

func TestParse(t *testing.T) {
	loc := time.FixedZone("IST", 19800)

	t.Run("offset-less string keeps wall-clock fields in the given zone", func(t *testing.T) {
		got, err := localtime.Parse("2026-01-29T10:00:00", loc)
		require.NoError(t, err)
		assert.Equal(t, 10, got.Hour())
		assert.Equal(t, 29, got.Day())
		assert.Equal(t, loc, got.Location())
	})

	t.Run("round-trip is stable", func(t *testing.T) {
		for _, s := range []string{"2026-01-29T10:00:00", "2025-12-31T23:59:59", "2026-03-29T02:30:00"} {
			got, err := localtime.Parse(s, loc)
			require.NoError(t, err)
			assert.Equal(t, s, localtime.Format(got))
		}
	})

	t.Run("offset string keeps its instant", func(t *testing.T) {
		got, err := localtime.Parse("2026-01-29T10:00:00Z", loc)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2026, 1, 29, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("fractional seconds accepted", func(t *testing.T) {
		got, err := localtime.Parse("2026-01-29T10:00:00.123456", loc)
		require.NoError(t, err)
		assert.Equal(t, "2026-01-29T10:00:00", localtime.Format(got))
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := localtime.Parse("tomorrow", loc)
		assert.True(t, errs.Is(err, errs.ErrInvalidDateTime))
	})
}

func TestParseFormInput(t *testing.T) {
	got, err := localtime.ParseFormInput("2026-02-01T18:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01T18:30:00", got.String())

	got, err = localtime.ParseFormInput("2026-02-01T18:30:15")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01T18:30:15", got.String())
}

func TestNow(t *testing.T) {
	instant := time.Date(2026, 1, 29, 4, 30, 0, 0, time.UTC)
	ist := time.FixedZone("IST", 19800)

	assert.Equal(t, "2026-01-29T10:00:00", localtime.Now(instant, ist).String())
	assert.Equal(t, "2026-01-29T04:30:00", localtime.Now(instant, time.UTC).String())
}

func TestDateTimeJSON(t *testing.T) {
	var payload struct {
		Start localtime.DateTime `json:"startTime"`
		End   localtime.DateTime `json:"endTime"`
		Gone  localtime.DateTime `json:"gone"`
	}
	err := json.Unmarshal([]byte(`{"startTime":"2026-01-29T10:00:00","endTime":[2026,1,29,11,30],"gone":null}`), &payload)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-29T10:00:00", payload.Start.String())
	assert.Equal(t, "2026-01-29T11:30:00", payload.End.String())
	assert.True(t, payload.Gone.IsZero())

	// decoding never depends on the process zone
	assert.Equal(t, 10, payload.Start.Hour())
	assert.Equal(t, 11, payload.End.Hour())

	out, err := json.Marshal(payload.Start)
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-01-29T10:00:00"`, string(out))

	out, err = json.Marshal(payload.Gone)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
