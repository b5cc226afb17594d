package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// dummyPassword is hashed once at construction. Login verifies against that
// hash when the email is unknown so both failure paths cost one bcrypt
// comparison.
const dummyPassword = "not-a-real-password"

type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification, and the JWT token lifecycle
// using a UserRepository for persistence, a PasswordHasher for secrets and a
// TokenBlocklist for logout.
type authService struct {
	userRepository store.UserRepository
	tokenBlocklist store.TokenBlocklist
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	tokenIDs       idGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	dummyHash string
	now       func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokenBlocklist store.TokenBlocklist,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("error hashing dummy password")
	}

	return &authService{
		userRepository: userRepository,
		tokenBlocklist: tokenBlocklist,
		hasher:         hasher,
		validator:      validator,
		tokenIDs:       utils.NewTokenIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		dummyHash:      dummyHash,
		now:            time.Now,
		logger:         logger,
	}
}

// Signup creates a new account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidInput if the email or password does not pass validation.
//   - ErrConflict if the email is already registered.
//   - A wrapped error if hashing or the repository call fails.
func (a *authService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("email", creds.Email).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        creds.Email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", creds.Email).Msg("email is already registered")
		return models.User{}, ErrConflict
	}
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user signed up")
	return user, nil
}

// Login authenticates an existing account.
//
// Returns the authenticated user record or:
//   - ErrUnauthorized if the email is unknown or the password is wrong.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.Verify(creds.Password, a.dummyHash)
		log.Debug().Str("email", creds.Email).Msg("login for unknown email")
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, user.PasswordHash) {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrUnauthorized
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the email as subject, a fresh token id, the configured
// issuer, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenIDs.Generate(), a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Low-level JWT errors are normalised so callers do not need to inspect
// them: an empty string is ErrTokenMissing, an expired token is
// ErrTokenExpired, and every other failure is ErrTokenInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenMissing
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}

// ResolvePrincipal maps a raw token to the account it was issued for.
// Revoked tokens and tokens whose account no longer exists are rejected
// with ErrTokenInvalid.
func (a *authService) ResolvePrincipal(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	revoked, err := a.tokenBlocklist.IsRevoked(ctx, token.ID)
	if err != nil {
		log.Err(err).Msg("revocation check failed")
		return models.User{}, fmt.Errorf("revocation check failed: %w", err)
	}
	if revoked {
		return models.User{}, ErrTokenInvalid
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Email())
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("subject", token.Email()).Msg("token subject has no account")
		return models.User{}, ErrTokenInvalid
	}
	if err != nil {
		log.Err(err).Msg("user search by token subject failed")
		return models.User{}, fmt.Errorf("user search by token subject failed: %w", err)
	}

	return user, nil
}

// Logout revokes the token until its natural expiry. A missing, malformed
// or expired token needs no revocation.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return nil
	}

	if err = a.tokenBlocklist.Revoke(ctx, token.ID, token.ExpiresAtTime()); err != nil {
		logger.FromContext(ctx).Err(err).Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}
