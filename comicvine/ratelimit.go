package comicvine

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// limiter gates outbound requests against the Comic Vine budgets. A request
// must clear both the per-second spacing and the hourly budget; the caller
// blocks until it does, or until the context is cancelled.
type limiter struct {
	perSecond *rate.Limiter
	perHour   *rate.Limiter
}

func newLimiter(perSecond, perHour int) *limiter {
	return newLimiterWindow(perSecond, perHour, time.Hour)
}

// newLimiterWindow builds a limiter with a configurable budget window so the
// refill behavior can be observed on a short timescale.
func newLimiterWindow(perSecond, perHour int, window time.Duration) *limiter {
	l := &limiter{}
	if perSecond > 0 {
		l.perSecond = rate.NewLimiter(rate.Every(time.Second/time.Duration(perSecond)), 1)
	}
	if perHour > 0 {
		// Full burst up front, refilling at the window rate.
		l.perHour = rate.NewLimiter(rate.Every(window/time.Duration(perHour)), perHour)
	}
	return l
}

func (l *limiter) Wait(ctx context.Context) error {
	if l.perHour != nil {
		if err := l.perHour.Wait(ctx); err != nil {
			return err
		}
	}
	if l.perSecond != nil {
		return l.perSecond.Wait(ctx)
	}
	return nil
}
