//go:build unit

package querycache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"venue-booking-web/internal/infra/querycache"
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*querycache.Cache, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return querycache.New(config.CacheConfig{TTL: time.Minute}, clk, nil), clk
}

func counting(calls *int32, value []string) func(context.Context) ([]string, error) {
	return func(context.Context) ([]string, error) {
		atomic.AddInt32(calls, 1)
		return value, nil
	}
}

func TestNewKey(t *testing.T) {
	assert.Equal(t, querycache.Key("bookings/my/7"), querycache.NewKey("bookings", "my", int64(7)))
	assert.Equal(t, querycache.Key("users"), querycache.NewKey("users"))
}

func TestHasPrefix(t *testing.T) {
	k := querycache.NewKey("availabilities", "public", 12)
	assert.True(t, k.HasPrefix("availabilities"))
	assert.True(t, k.HasPrefix("availabilities/public"))
	assert.True(t, k.HasPrefix(k))
	assert.False(t, k.HasPrefix("availabilities/public/1"))
	assert.False(t, k.HasPrefix("avail"))
}

func TestFetchHitWithinTTL(t *testing.T) {
	c, clk := newCache(t)
	ctx := context.Background()
	var calls int32
	key := querycache.NewKey("venues", "public")

	first, err := querycache.Get(ctx, c, key, counting(&calls, []string{"a"}))
	require.NoError(t, err)
	clk.Add(30 * time.Second)
	second, err := querycache.Get(ctx, c, key, counting(&calls, []string{"b"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, first)
	assert.Equal(t, []string{"a"}, second)
	assert.Equal(t, int32(1), calls)

	clk.Add(time.Minute)
	third, err := querycache.Get(ctx, c, key, counting(&calls, []string{"c"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, third)
	assert.Equal(t, int32(2), calls)
}

func TestInvalidateByPrefix(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()
	var calls int32

	slots := querycache.NewKey("availabilities", "public", 3)
	other := querycache.NewKey("availabilities", "public", 30)
	mine := querycache.NewKey("bookings", "my", 7)
	for _, k := range []querycache.Key{slots, other, mine} {
		_, err := querycache.Get(ctx, c, k, counting(&calls, []string{string(k)}))
		require.NoError(t, err)
	}
	require.Equal(t, int32(3), calls)

	c.Invalidate(slots, "bookings/my")

	_, err := querycache.Get(ctx, c, slots, counting(&calls, nil))
	require.NoError(t, err)
	_, err = querycache.Get(ctx, c, mine, counting(&calls, nil))
	require.NoError(t, err)
	v, err := querycache.Get(ctx, c, other, counting(&calls, nil))
	require.NoError(t, err)

	assert.Equal(t, int32(5), calls)
	assert.Equal(t, []string{string(other)}, v)
}

func TestFailedLoadsNotCached(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()
	key := querycache.NewKey("users")
	boom := errors.New("backend down")

	_, err := querycache.Get(ctx, c, key, func(context.Context) ([]string, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	var calls int32
	v, err := querycache.Get(ctx, c, key, counting(&calls, []string{"ok"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, v)
	assert.Equal(t, int32(1), calls)
}

func TestConcurrentMissesShareOneLoad(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()
	key := querycache.NewKey("venues", "my", 1)

	release := make(chan struct{})
	var calls int32
	load := func(context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []string{"v"}, nil
	}

	var wg sync.WaitGroup
	started := make(chan struct{}, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started <- struct{}{}
			v, err := querycache.Get(ctx, c, key, load)
			assert.NoError(t, err)
			assert.Equal(t, []string{"v"}, v)
		}()
	}
	for i := 0; i < 8; i++ {
		<-started
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(8))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(1))

	var after int32
	_, err := querycache.Get(ctx, c, key, counting(&after, nil))
	require.NoError(t, err)
	assert.Equal(t, int32(0), after)
}

func TestInvalidateDuringLoadDropsResult(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()
	key := querycache.NewKey("bookings", "my", 2)

	_, err := querycache.Get(ctx, c, key, func(context.Context) ([]string, error) {
		c.Invalidate("bookings")
		return []string{"stale"}, nil
	})
	require.NoError(t, err)

	var calls int32
	v, err := querycache.Get(ctx, c, key, counting(&calls, []string{"fresh"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, v)
	assert.Equal(t, int32(1), calls)
}

func TestKeyFamilies(t *testing.T) {
	assert.Equal(t, querycache.Key("availabilities/public/3"), querycache.PublicSlots(3))
	assert.True(t, querycache.PublicVenues("Pune", "").HasPrefix(querycache.PublicVenuesPrefix))
	assert.False(t, querycache.MyVenues("tok").HasPrefix(querycache.PublicVenuesPrefix))

	t.Run("token scoped keys never contain the token", func(t *testing.T) {
		const token = "secret-bearer-token"
		for _, k := range []querycache.Key{
			querycache.MyBookings(token),
			querycache.MyVenues(token),
			querycache.VenueSlots(token, 3),
			querycache.VenueBookings(token, 3),
			querycache.Users(token, "asha", "ADMIN"),
		} {
			assert.NotContains(t, string(k), token)
		}
	})

	t.Run("different tokens get different keys", func(t *testing.T) {
		assert.NotEqual(t, querycache.MyBookings("owner-a"), querycache.MyBookings("owner-b"))
		assert.NotEqual(t, querycache.VenueBookings("owner-a", 9), querycache.VenueBookings("owner-b", 9))
		assert.NotEqual(t, querycache.Users("admin-a", "", ""), querycache.Users("admin-b", "", ""))
		assert.Equal(t, querycache.MyBookings("owner-a"), querycache.MyBookings("owner-a"))
	})

	t.Run("family prefixes cover every scope", func(t *testing.T) {
		assert.True(t, querycache.MyBookings("a").HasPrefix(querycache.MyBookingsPrefix))
		assert.True(t, querycache.MyVenues("a").HasPrefix(querycache.MyVenuesPrefix))
		assert.True(t, querycache.VenueSlots("a", 4).HasPrefix(querycache.VenueSlotsOf(4)))
		assert.False(t, querycache.VenueSlots("a", 4).HasPrefix(querycache.VenueSlotsOf(40)))
		assert.True(t, querycache.VenueBookings("a", 4).HasPrefix(querycache.VenueBookingsOf(4)))
		assert.True(t, querycache.VenueBookings("a", 4).HasPrefix(querycache.VenueBookingsPrefix))
		assert.True(t, querycache.Users("a", "asha", "ADMIN").HasPrefix(querycache.UsersPrefix))
	})
}
