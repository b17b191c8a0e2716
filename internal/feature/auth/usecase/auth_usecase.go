package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shop_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrUserAlreadyExists when the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer abstracts signed-token creation and verification.
// Defined by the consumer (usecase), implemented by platform/jwt.
type TokenIssuer interface {
	// IssueTokenPair creates a signed access/refresh token pair carrying the user ID.
	IssueTokenPair(userID uint) (entity.TokenPair, error)

	// VerifyRefreshToken checks signature and expiry of a refresh token
	// and returns the user ID it carries.
	VerifyRefreshToken(token string) (uint, error)
}

// ProfileGenerator synthesizes placeholder profile fields for new users.
type ProfileGenerator interface {
	NewProfile() entity.Profile
}

// AuthResult is returned by every auth operation: the affected user
// plus a freshly minted token pair.
type AuthResult struct {
	User   *entity.User
	Tokens entity.TokenPair
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users    UserRepository
	tokens   TokenIssuer
	profiles ProfileGenerator
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, profiles ProfileGenerator) *authUsecase {
	return &authUsecase{
		users:    users,
		tokens:   tokens,
		profiles: profiles,
	}
}

// Register creates a new user with a hashed password and issues a token pair.
// The profile fields (name, avatar, phone) are synthesized, not user-supplied.
// It returns ErrUserAlreadyExists when the email is already registered.
func (u *authUsecase) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	// The pre-check gives the common case a friendly error. Two
	// concurrent registrations for the same email can still both pass
	// it; the unique constraint in the store is the actual race guard
	// and the loser surfaces ErrUserAlreadyExists from Create.
	_, err := u.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := u.profiles.NewProfile()
	user := &entity.User{
		Email:      email,
		Password:   string(hashed),
		Name:       profile.Name,
		AvatarPath: profile.AvatarPath,
		Phone:      profile.Phone,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.issueFor(user)
}

// Login authenticates a user and issues a fresh token pair.
// It returns ErrUserNotFound when the email is unknown and
// ErrPasswordMismatch when the password does not verify.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrPasswordMismatch
	}

	return u.issueFor(user)
}

// RefreshTokens verifies a refresh token and issues a brand-new token pair.
// The old refresh token is not invalidated; it stays usable until its own
// expiry since token validity is fully delegated to the signature.
// It returns ErrInvalidRefreshToken when the token fails verification and
// ErrUserNotFound when the embedded user no longer exists.
func (u *authUsecase) RefreshTokens(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := u.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return u.issueFor(user)
}

// issueFor mints a token pair for the given user and wraps it into an AuthResult.
func (u *authUsecase) issueFor(user *entity.User) (*AuthResult, error) {
	pair, err := u.tokens.IssueTokenPair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return &AuthResult{User: user, Tokens: pair}, nil
}
