package user

import "time"

// User entity. The id is assigned by the database on insert.
type User struct {
	id           int64
	email        Email
	passwordHash string
	firstAccess  bool
	createdAt    time.Time
	updatedAt    time.Time
}

// New is the only constructor. It takes an already-computed password hash so
// the plaintext never reaches the entity; hashing happens in the usecase via
// the password package before construction.
func New(email Email, passwordHash string) *User {
	return &User{
		email:        email,
		passwordHash: passwordHash,
		firstAccess:  true,
	}
}

func Reconstruct(id int64, email Email, passwordHash string, firstAccess bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		firstAccess:  firstAccess,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstAccess() bool    { return u.firstAccess }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
