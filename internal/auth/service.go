package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgauth "github.com/pizzadelight/storefront/pkg/auth"
	"github.com/pizzadelight/storefront/pkg/blob"
	"github.com/pizzadelight/storefront/pkg/config"
	pkgerrors "github.com/pizzadelight/storefront/pkg/errors"
	"github.com/pizzadelight/storefront/pkg/logger"
	"github.com/pizzadelight/storefront/pkg/metrics"
	"github.com/pizzadelight/storefront/pkg/models"
	"github.com/pizzadelight/storefront/pkg/security"
	"github.com/pizzadelight/storefront/pkg/validators"
)

const storeName = "auth"

var (
	// ErrUnknownUsername is returned when no account matches the login.
	ErrUnknownUsername = pkgerrors.New(pkgerrors.CodeUnauthorized, "unknown username")
	// ErrWrongPassword is returned when the password does not verify.
	ErrWrongPassword = pkgerrors.New(pkgerrors.CodeUnauthorized, "wrong password")
)

// SessionState is the observable auth state. Guards treat a
// non-hydrated state as "wait" rather than redirecting.
type SessionState struct {
	User          *models.User
	Token         string
	Authenticated bool
	Admin         bool
	Hydrated      bool
}

// Service owns the credential store and the single active session.
type Service interface {
	Hydrate(ctx context.Context) error
	SeedUsers(ctx context.Context, seed config.SeedConfig) error
	Login(ctx context.Context, username, password string) (SessionState, error)
	Register(ctx context.Context, input RegisterInput) (SessionState, error)
	Logout(ctx context.Context)
	State() SessionState
}

// ServiceParams packages the auth dependencies.
type ServiceParams struct {
	Store    blob.Store
	Logger   *logger.Logger
	Metrics  *metrics.StoreMetrics
	JWT      config.JWTConfig
	Password config.PasswordConfig
	Now      func() time.Time
}

type session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
	Admin bool        `json:"admin"`
}

type persistedState struct {
	Users   []models.User `json:"users"`
	Session *session      `json:"session,omitempty"`
}

type service struct {
	store    blob.Store
	logg     *logger.Logger
	metrics  *metrics.StoreMetrics
	jwt      config.JWTConfig
	password config.PasswordConfig
	now      func() time.Time

	mu       sync.Mutex
	users    []models.User
	session  *session
	hydrated bool
}

// NewService builds the auth service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "blob store required")
	}
	if params.JWT.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "jwt secret required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		store:    params.Store,
		logg:     params.Logger,
		metrics:  params.Metrics,
		jwt:      params.JWT,
		password: params.Password,
		now:      params.Now,
	}, nil
}

// Hydrate restores users and the active session. A missing blob leaves
// an empty store but still marks the state hydrated.
func (s *service) Hydrate(ctx context.Context) error {
	started := time.Now()
	raw, err := s.store.Get(ctx, blob.KeyAuth)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			s.mu.Lock()
			s.hydrated = true
			s.mu.Unlock()
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load auth state")
	}

	var state persistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode auth state")
	}

	// The persisted session is only trusted if its token still
	// verifies against the signing secret, issuer, and expiry.
	if state.Session != nil {
		if _, err := pkgauth.ParseSessionToken(s.jwt, state.Session.Token); err != nil {
			if s.logg != nil {
				s.logg.Warn(ctx, "dropping persisted session with invalid token")
			}
			state.Session = nil
		}
	}

	s.mu.Lock()
	s.users = state.Users
	s.session = state.Session
	s.hydrated = true
	s.mu.Unlock()
	s.metrics.ObserveHydration(storeName, time.Since(started))
	return nil
}

// SeedUsers creates the demo admin and customer accounts when the user
// list is empty. Existing accounts make this a no-op.
func (s *service) SeedUsers(ctx context.Context, seed config.SeedConfig) error {
	s.mu.Lock()
	empty := len(s.users) == 0
	s.mu.Unlock()
	if !empty {
		return nil
	}

	adminHash, err := security.HashPassword(seed.AdminPassword, s.password)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash admin seed password")
	}
	customerHash, err := security.HashPassword(seed.CustomerPassword, s.password)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash customer seed password")
	}

	seeded := []models.User{
		{
			ID:           uuid.New(),
			Username:     seed.AdminUsername,
			PasswordHash: adminHash,
			FirstName:    "Admin",
			LastName:     "User",
			Email:        seed.AdminEmail,
			IsAdmin:      true,
		},
		{
			ID:           uuid.New(),
			Username:     seed.CustomerUsername,
			PasswordHash: customerHash,
			FirstName:    "John",
			LastName:     "Doe",
			Email:        seed.CustomerEmail,
		},
	}

	s.mu.Lock()
	s.users = append(s.users, seeded...)
	s.mu.Unlock()

	s.persist(ctx, "seed_users")
	return nil
}

// Login authenticates against the credential store and establishes the
// session. Unknown usernames and bad passwords fail with distinct
// errors; the demo deliberately does not blur them.
func (s *service) Login(ctx context.Context, username, password string) (SessionState, error) {
	username = strings.TrimSpace(username)

	s.mu.Lock()
	user, found := s.findByUsername(username)
	s.mu.Unlock()
	if !found {
		return s.State(), ErrUnknownUsername
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return s.State(), pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return s.State(), ErrWrongPassword
	}

	state, err := s.establishSession(ctx, user, "login")
	if err != nil {
		return s.State(), err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID.String()), "user logged in")
	}
	return state, nil
}

// Register creates a non-admin account and immediately establishes the
// session for it.
func (s *service) Register(ctx context.Context, input RegisterInput) (SessionState, error) {
	if err := validators.Struct(input); err != nil {
		return s.State(), err
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	s.mu.Lock()
	taken := false
	for _, user := range s.users {
		if strings.EqualFold(user.Username, username) || strings.EqualFold(user.Email, email) {
			taken = true
			break
		}
	}
	s.mu.Unlock()
	if taken {
		// No field detail on purpose; the conflict message stays opaque.
		return s.State(), pkgerrors.New(pkgerrors.CodeConflict, "username or email already taken")
	}

	hash, err := security.HashPassword(input.Password, s.password)
	if err != nil {
		return s.State(), pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		FirstName:    validators.SanitizeString(input.FirstName, 100),
		LastName:     validators.SanitizeString(input.LastName, 100),
		Email:        email,
		Phone:        input.Phone,
	}

	s.mu.Lock()
	s.users = append(s.users, user)
	s.mu.Unlock()

	state, err := s.establishSession(ctx, user, "register")
	if err != nil {
		return s.State(), err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID.String()), "user registered")
	}
	return state, nil
}

// Logout drops the active session. The credential store is untouched.
func (s *service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.persist(ctx, "logout")
}

// State returns a copy of the current session state.
func (s *service) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := SessionState{Hydrated: s.hydrated}
	if s.session != nil {
		user := s.session.User
		state.User = &user
		state.Token = s.session.Token
		state.Authenticated = true
		state.Admin = s.session.Admin
	}
	return state
}

// findByUsername must be called with the mutex held.
func (s *service) findByUsername(username string) (models.User, bool) {
	for _, user := range s.users {
		if strings.EqualFold(user.Username, username) {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *service) establishSession(ctx context.Context, user models.User, op string) (SessionState, error) {
	token, err := pkgauth.MintSessionToken(s.jwt, s.now(), pkgauth.SessionTokenPayload{
		UserID:   user.ID,
		Username: user.Username,
		Admin:    user.IsAdmin,
	})
	if err != nil {
		return SessionState{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint session token")
	}

	s.mu.Lock()
	s.session = &session{User: user, Token: token, Admin: user.IsAdmin}
	s.mu.Unlock()

	s.persist(ctx, op)
	return s.State(), nil
}

// persist writes users and session after a mutation. A failed write
// keeps the in-memory mutation; auth state never rolls back.
func (s *service) persist(ctx context.Context, op string) {
	s.metrics.IncMutation(storeName, op)

	s.mu.Lock()
	state := persistedState{Users: s.users, Session: s.session}
	raw, err := json.Marshal(state)
	s.mu.Unlock()
	if err != nil {
		s.warn(ctx, "encode auth state failed", err)
		return
	}
	if err := s.store.Set(ctx, blob.KeyAuth, raw); err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.warn(ctx, "persist auth state failed", err)
	}
}

func (s *service) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Error(ctx, msg, err)
}
