package commands

import (
	"context"

	"loyalty-ledger/internal/domain/loyalty"
	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/queries"
)

var (
	ErrDuplicateIdentity  = errs.New("username or email already registered")
	ErrRegistrationFailed = errs.New("registration failed")
)

type RegisterUserInput struct {
	Username string
	Email    string
	// PasswordHash is stored opaque; hashing is the boundary's concern.
	PasswordHash string
}

type UserCommands interface {
	// Register creates a user with the signup point grant. A username or
	// email collision fails with ErrDuplicateIdentity and never touches
	// the existing record.
	Register(ctx context.Context, input RegisterUserInput) (*queries.UserView, error)
	// SetPoints overwrites the balance for the matched user; false means
	// no match and nothing changed. The sign is not validated.
	SetPoints(ctx context.Context, identifier string, points int) (bool, error)
}

type userCommandsImpl struct {
	repo   UserRepository
	policy loyalty.Policy
}

func NewUserCommands(repo UserRepository, policy loyalty.Policy) UserCommands {
	return &userCommandsImpl{
		repo:   repo,
		policy: policy,
	}
}

func (c *userCommandsImpl) Register(ctx context.Context, input RegisterUserInput) (*queries.UserView, error) {
	username, err := user.NewUsername(input.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	entity := user.NewUser(username, email, input.PasswordHash, c.policy.SignupGrant())

	if err := c.repo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateIdentity)
		}
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	return &queries.UserView{
		ID:       entity.ID(),
		Username: entity.Username().Value(),
		Email:    entity.Email().Value(),
		Points:   entity.Points(),
	}, nil
}

func (c *userCommandsImpl) SetPoints(ctx context.Context, identifier string, points int) (bool, error) {
	return c.repo.UpdatePoints(ctx, identifier, points)
}
