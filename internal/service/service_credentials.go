package service

import (
	"fmt"
	"time"

	"github.com/GIT-Saikat/Blog-Application/internal/config"
	"github.com/GIT-Saikat/Blog-Application/internal/utils"
	"github.com/GIT-Saikat/Blog-Application/models"
)

// credentialService is the bcrypt and HS256 JWT implementation of
// [CredentialService]. All state is read-only after construction.
type credentialService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration
}

func NewCredentialService(cfg config.App) CredentialService {
	return &credentialService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
	}
}

func (c *credentialService) HashPassword(password string) (string, error) {
	return utils.HashPassword(password)
}

func (c *credentialService) VerifyPassword(password, hash string) bool {
	return utils.CheckPassword(password, hash)
}

func (c *credentialService) IssueToken(subjectID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(c.tokenIssuer, subjectID, c.tokenDuration, c.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken normalises every validation failure to
// [ErrTokenIsExpiredOrInvalid] so callers never inspect JWT errors.
func (c *credentialService) VerifyToken(token string) (models.Token, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, c.tokenSignKey, c.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return parsed, nil
}
