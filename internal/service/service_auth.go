package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/store"
	"github.com/GIT-Saikat/Blog-Application/internal/utils"
	"github.com/GIT-Saikat/Blog-Application/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and token
// lifecycle using a UserRepository for persistence and a CredentialService
// for hashing and signing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	credentials CredentialService
	ids         *utils.IDGenerator
	now         func() time.Time
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and CredentialService. Payloads are expected to be
// validated already; see [NewAuthValidationService].
func NewAuthService(userRepository store.UserRepository, credentials CredentialService, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		userRepository: userRepository,
		credentials:    credentials,
		ids:            utils.NewIDGenerator(),
		now:            utcNow,
	}
}

// RegisterUser hashes the password and persists a new user.
//
// Returns the persisted user or a wrapped storage error (a taken username or
// email surfaces as store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := a.credentials.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	now := a.now()
	user := models.User{
		ID:           a.ids.Generate(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user. Exactly one lookup is made: by
// username when it is given, by email otherwise.
//
// Returns the authenticated user or:
//   - a wrapped store.ErrNoUserWasFound if no account matches.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		foundUser models.User
		err       error
	)
	if req.Username != "" {
		foundUser, err = a.userRepository.FindUserByUsername(ctx, req.Username)
	} else {
		foundUser, err = a.userRepository.FindUserByEmail(ctx, req.Email)
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Str("email", req.Email).Msg("user search failed")
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}

	if !a.credentials.VerifyPassword(req.Password, foundUser.PasswordHash) {
		log.Warn().Str("id", foundUser.ID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed token for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.credentials.IssueToken(user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", user.ID).Msg("error issuing token")
		return models.Token{}, err
	}

	return token, nil
}

// ParseToken verifies a raw token string.
func (a *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	return a.credentials.VerifyToken(tokenString)
}

// utcNow is the clock of the services. Stored timestamps are UTC at
// microsecond precision, the resolution of PostgreSQL timestamps.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
