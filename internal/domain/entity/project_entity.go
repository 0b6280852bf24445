package entity

import "time"

// Project groups tasks under a single owning user. CreatedAt is assigned by
// the store on insert.
type Project struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	UserID      int64
}
