package entity

// User is the aggregate root for ownership: every project belongs to exactly
// one user, and a task's owner is its project's user.
//
// Password holds a bcrypt hash, never plain text.
type User struct {
	ID       int64
	FullName string
	Email    string
	Password string
}
