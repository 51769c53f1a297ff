package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/store"
	"github.com/MKhiriev/go-stream-panel/internal/utils"
	"github.com/MKhiriev/go-stream-panel/models"
)

// authService is the concrete implementation of AuthService.
// It evaluates member credentials against the roster store, guards the admin
// surface behind a shared access code, and manages the gate-token lifecycle.
type authService struct {
	// roster is the data-access layer the credential check reads from.
	roster store.RosterStore

	// adminEmail designates which roster record is the administrator.
	adminEmail string

	// accessCode is the shared secret that unlocks the admin surface.
	// Compared by exact string equality.
	accessCode string

	// tokenSignKey is the HMAC secret used to sign and verify gate tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued gate token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given roster store
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(roster store.RosterStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		roster:        roster,
		adminEmail:    cfg.AdminEmail,
		accessCode:    cfg.AdminAccessCode,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates a member against the current roster.
//
// It validates that both email and password are non-empty, fetches the
// roster and delegates the decision to Evaluate. A rejected attempt is a
// normal outcome, not an error; the caller maps the reason to its single
// user-facing message per class.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the roster fetch fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Outcome, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.Outcome{}, ErrInvalidDataProvided
	}

	roster, err := a.roster.List(ctx)
	if err != nil {
		log.Err(err).Msg("roster fetch for login failed")
		return models.Outcome{}, fmt.Errorf("roster fetch for login failed: %w", err)
	}

	outcome := Evaluate(credentials.Email, credentials.Password, roster, time.Now(), a.adminEmail)
	if !outcome.Accepted {
		log.Info().Str("email", credentials.Email).Str("reason", string(outcome.Reason)).Msg("sign-in rejected")
	}

	return outcome, nil
}

// VerifyAccessCode checks the shared admin access code and, on success,
// issues a signed gate token carrying the admin-gate subject.
//
// Returns:
//   - ErrWrongAccessCode if the code does not match.
//   - ErrTokenCreationFailed (wrapped) if signing fails.
func (a *authService) VerifyAccessCode(ctx context.Context, code string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if code != a.accessCode {
		log.Info().Msg("admin access code rejected")
		return models.Token{}, ErrWrongAccessCode
	}

	token, err := utils.GenerateGateToken(a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("gate token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw gate token string.
//
// It delegates to utils.ValidateGateToken, verifying the signature, the
// issuer claim and the admin-gate subject. Any validation failure (expired,
// wrong issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so
// that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateGateToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
