package services

import (
	"time"

	"adventure/internal/pkg/errs"
)

// Remaining is the time left until a countdown target, split for display.
// Unlocked is true once the target moment has been reached; the other fields are then zero.
type Remaining struct {
	Days     int
	Hours    int
	Minutes  int
	Seconds  int
	Unlocked bool
}

// Countdown gates the surprise page behind a fixed target moment.
type Countdown struct {
	target time.Time
}

func NewCountdown(target time.Time) (Countdown, error) {
	if target.IsZero() {
		return Countdown{}, errs.NewValueIsRequiredError("target")
	}
	return Countdown{target: target}, nil
}

func (c Countdown) Target() time.Time {
	return c.target
}

// Remaining computes the time left at now. Partial seconds are truncated.
func (c Countdown) Remaining(now time.Time) Remaining {
	left := c.target.Sub(now)
	if left <= 0 {
		return Remaining{Unlocked: true}
	}

	total := int64(left / time.Second)
	return Remaining{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}
