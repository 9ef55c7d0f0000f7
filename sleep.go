/*
Copyright 2024 Tim St. Pierre
Delay source shared by the blocking and context aware calls
*/
package lcm1602

import (
	"context"
	"time"
)

// Sleeper waits between protocol steps.
//
// Sleep returns early with ctx.Err() when ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type clockSleeper struct{}

func (clockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	if ctx.Done() == nil {
		time.Sleep(d)
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
