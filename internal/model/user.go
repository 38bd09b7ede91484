package model

// User is a dashboard account. Users are created once at store
// initialization and never mutated afterwards.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
