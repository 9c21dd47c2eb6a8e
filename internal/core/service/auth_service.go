package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamatlas/people-directory/internal/api/metrics"
	"github.com/teamatlas/people-directory/internal/core/domain"
	"github.com/teamatlas/people-directory/internal/core/ports"
	"github.com/teamatlas/people-directory/internal/core/store"
)

// AuthService implements sign-up and sign-in over the shared record store.
type AuthService struct {
	store      *store.Store
	throttle   ports.SignInThrottle
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
	log        zerolog.Logger
}

func NewAuthService(st *store.Store, throttle ports.SignInThrottle, jwtSecret string, tokenTTL time.Duration, bcryptCost int, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		store:      st,
		throttle:   throttle,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// SignUp creates a directory record with all optional fields defaulted.
// Email uniqueness is enforced by the store under its write lock.
func (s *AuthService) SignUp(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error) {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(uuid.NewString(), email, string(hash), firstName, lastName)
	if err := s.store.Append(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

// SignIn verifies credentials and issues a signed token. Unknown email and
// wrong password both return ErrInvalidCredentials — the two cases must stay
// indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	blocked, err := s.throttle.Blocked(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("throttle check failed, proceeding")
	} else if blocked {
		metrics.SignInsTotal.WithLabelValues("throttled").Inc()
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.store.ByEmail(email)
	if err != nil {
		return "", nil, s.failSignIn(ctx, email)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, s.failSignIn(ctx, email)
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("throttle reset failed")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.SignInsTotal.WithLabelValues("ok").Inc()
	return token, user, nil
}

func (s *AuthService) failSignIn(ctx context.Context, email string) error {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("throttle record failed")
	}
	metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
	return domain.ErrInvalidCredentials
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
