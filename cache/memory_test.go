package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type row struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, DonationsKey, []row{{ID: 1, Name: "Priya"}}, time.Minute))

	var got []row
	require.NoError(t, c.Get(ctx, DonationsKey, &got))
	require.Len(t, got, 1)
	require.Equal(t, "Priya", got[0].Name)

	// The cached value is a copy; mutating the result must not leak back.
	got[0].Name = "changed"
	var again []row
	require.NoError(t, c.Get(ctx, DonationsKey, &again))
	require.Equal(t, "Priya", again[0].Name)
}

func TestMemoryCacheMissAndDelete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	var got []row
	require.ErrorIs(t, c.Get(ctx, CausesKey, &got), ErrMiss)

	require.NoError(t, c.Set(ctx, CausesKey, []row{{ID: 2}}, time.Minute))
	require.NoError(t, c.Delete(ctx, CausesKey))
	require.ErrorIs(t, c.Get(ctx, CausesKey, &got), ErrMiss)
}

func TestUserDonationsKey(t *testing.T) {
	require.Equal(t, "donations:user:42", UserDonationsKey(42))
}
