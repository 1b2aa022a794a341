package services_test

import (
	"testing"
	"time"

	"adventure/internal/core/domain/services"
	"adventure/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountdown(t *testing.T) {
	_, err := services.NewCountdown(time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCountdown_Remaining(t *testing.T) {
	target := time.Date(2024, time.August, 2, 12, 0, 0, 0, time.FixedZone("WIB", 7*60*60))
	countdown, err := services.NewCountdown(target)
	require.NoError(t, err)

	testCases := []struct {
		name string
		now  time.Time
		want services.Remaining
	}{
		{
			name: "days ahead",
			now:  target.Add(-(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second)),
			want: services.Remaining{Days: 2, Hours: 3, Minutes: 4, Seconds: 5},
		},
		{
			name: "sub-second remainder is truncated",
			now:  target.Add(-1500 * time.Millisecond),
			want: services.Remaining{Seconds: 1},
		},
		{
			name: "exactly at target",
			now:  target,
			want: services.Remaining{Unlocked: true},
		},
		{
			name: "after target",
			now:  target.Add(time.Minute),
			want: services.Remaining{Unlocked: true},
		},
		{
			name: "other time zone, same instant",
			now:  target.UTC().Add(-time.Hour),
			want: services.Remaining{Hours: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, countdown.Remaining(tc.now))
		})
	}
}
