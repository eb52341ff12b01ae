package user

import "time"

// User represents a registered wallet owner.
type User struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
