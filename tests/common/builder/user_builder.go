//go:build unit

package builder

import (
	"loyalty-ledger/internal/domain/user"
)

type UserBuilder struct {
	Username     string
	Email        string
	PasswordHash string
	Points       int
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
		Points:       100,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	return user.NewUser(username, email, u.PasswordHash, u.Points), nil
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithPoints(points int) *UserBuilder {
	u.Points = points
	return u
}
