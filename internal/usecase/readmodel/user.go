package readmodel

// UserView is the read model returned to callers; it never carries the
// password hash.
type UserView struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FirstAccess bool   `json:"first_access"`
}
