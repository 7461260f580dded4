// Package lock serializes bookings that touch the same staff calendar day.
package lock

import (
	"context"
	"fmt"
)

// Locker grants exclusive ownership of a key until the returned release
// function is called.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

func BookingKey(staffID uint, date string) string {
	return fmt.Sprintf("booking:%d:%s", staffID, date)
}
