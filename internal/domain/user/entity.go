package user

import (
	"github.com/google/uuid"
)

// User entity. The loyalty point balance is the only mutable field;
// identity fields are frozen at registration.
type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	points       int
}

func NewUser(username Username, email Email, passwordHash string, signupPoints int) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		points:       signupPoints,
	}
}

// ReconstructUser rebuilds a user from a persisted directory record.
// The fields were validated at registration, so they are trusted here.
func ReconstructUser(id uuid.UUID, username, email, passwordHash string, points int) *User {
	return &User{
		id:           id,
		username:     Username{value: username},
		email:        Email{value: email},
		passwordHash: passwordHash,
		points:       points,
	}
}

// SetPoints overwrites the balance. Negative values are accepted; the
// directory does not police the sign of adjustments.
func (u *User) SetPoints(points int) {
	u.points = points
}

func (u *User) AddPoints(delta int) {
	u.points += delta
}

// MatchesIdentifier reports whether the identifier resolves to this user:
// exact match on username, case-insensitive match on email.
func (u *User) MatchesIdentifier(identifier string) bool {
	return u.username.Matches(identifier) || u.email.Matches(identifier)
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Points() int          { return u.points }
