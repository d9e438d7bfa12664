package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/yoga-studio/internal/config"
	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/mapper"
	"github.com/MKhiriev/yoga-studio/internal/store"
	"github.com/MKhiriev/yoga-studio/internal/utils"
	"github.com/MKhiriev/yoga-studio/models"
)

// Names given to an admin account created by EnsureAdmin.
const (
	adminFirstName = "Admin"
	adminLastName  = "Admin"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for "iat"/"exp" and for expiry checks.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		now:              time.Now,
		logger:           logger,
	}
}

// Register creates a new non-admin account.
//
// The email is checked before the insert; a unique violation reported by the
// storage (two concurrent registrations) is mapped to the same ErrEmailTaken.
func (a *authService) Register(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	exists, err := a.userRepository.ExistsByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error checking email")
		return models.User{}, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		log.Info().Str("func", "*authService.Register").Str("email", request.Email).Msg("email is already taken")
		return models.User{}, ErrEmailTaken
	}

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, err
	}

	user, err := a.userRepository.Create(ctx, models.User{
		Email:     request.Email,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Password:  hash,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Register").Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Authenticate looks the user up by email and compares password with the
// stored bcrypt hash. The caller cannot tell an unknown email from a wrong
// password; the reason is logged only.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "*authService.Authenticate").Msg("unknown email")
		return models.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by email failed")
		return models.Principal{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.CheckPassword(user.Password, password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Int64("user_id", user.ID).Msg("stored password hash is unusable")
		return models.Principal{}, ErrInvalidCredentials
	}
	if !ok {
		log.Info().Str("func", "*authService.Authenticate").Int64("user_id", user.ID).Msg("wrong password")
		return models.Principal{}, ErrInvalidCredentials
	}

	return mapper.PrincipalFromUser(user), nil
}

// IssueToken issues a signed JWT for the given principal.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) IssueToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, principal.Username, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.IssueToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates a raw JWT string and returns its subject.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed) is
// normalised to ErrTokenInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.VerifyToken").Msg("token rejected")
		return "", ErrTokenInvalid
	}

	return token.Username, nil
}

func (a *authService) LoadPrincipal(ctx context.Context, username string) (models.Principal, error) {
	user, err := a.userRepository.FindByEmail(ctx, username)
	if err != nil {
		return models.Principal{}, mapStoreError(err)
	}

	return mapper.PrincipalFromUser(user), nil
}

// EnsureAdmin creates the admin account if no user has the given email, and
// grants the admin flag to an existing user otherwise. The password of an
// existing account is left untouched. An empty email is a no-op.
func (a *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return nil
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if user.Admin {
			return nil
		}
		user.Admin = true
		if _, err := a.userRepository.Update(ctx, user); err != nil {
			return fmt.Errorf("error granting admin rights: %w", err)
		}
		log.Info().Str("func", "*authService.EnsureAdmin").Int64("user_id", user.ID).Msg("admin rights granted")
		return nil

	case !errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("error looking up admin account: %w", err)
	}

	if password == "" {
		return fmt.Errorf("%w: admin password is empty", ErrInvalidDataProvided)
	}

	hash, err := utils.HashPassword(password, a.passwordHashCost)
	if err != nil {
		return err
	}

	admin, err := a.userRepository.Create(ctx, models.User{
		Email:     email,
		FirstName: adminFirstName,
		LastName:  adminLastName,
		Password:  hash,
		Admin:     true,
	})
	if err != nil {
		return fmt.Errorf("error creating admin account: %w", err)
	}

	log.Info().Str("func", "*authService.EnsureAdmin").Int64("user_id", admin.ID).Msg("admin account created")
	return nil
}
