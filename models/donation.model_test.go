package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDonationStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{DonationStatusPending, DonationStatusCompleted, true},
		{DonationStatusPending, DonationStatusFailed, true},
		{DonationStatusCompleted, DonationStatusPending, false},
		{DonationStatusCompleted, DonationStatusFailed, false},
		{DonationStatusFailed, DonationStatusCompleted, false},
		{DonationStatusFailed, DonationStatusPending, false},
		{DonationStatusPending, DonationStatusPending, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.allowed, CanTransitionDonationStatus(tc.from, tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestIsValidDonationStatus(t *testing.T) {
	require.True(t, IsValidDonationStatus(DonationStatusPending))
	require.True(t, IsValidDonationStatus(DonationStatusCompleted))
	require.True(t, IsValidDonationStatus(DonationStatusFailed))
	require.False(t, IsValidDonationStatus("refunded"))
	require.False(t, IsValidDonationStatus(""))
}

func TestDonationCauseName(t *testing.T) {
	d := Donation{}
	require.Equal(t, "General Fund", d.CauseName())

	custom := "School Library"
	d.CustomCause = &custom
	require.Equal(t, "School Library", d.CauseName())

	d.Cause = &Cause{Title: "Clean Water Access"}
	require.Equal(t, "Clean Water Access", d.CauseName())
}
