// Package session owns the persisted bearer credentials and identity fields
// of the signed-in user. All other components read and mutate them through
// the Store, never through the underlying storage directly.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chasewhiterabbit/rigger-go/internal/secrets"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
	keyUserEmail    = "user_email"
)

// Store is the credential store. Reads treat storage faults as an absent
// value so authentication checks stay total; writes surface failures.
type Store struct {
	mu        sync.Mutex
	storage   secrets.Storage
	logger    *slog.Logger
	listeners []Listener
}

// NewStore wraps the given secret storage.
func NewStore(storage secrets.Storage, logger *slog.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  logger.With("component", "session.store"),
	}
}

// Subscribe registers a lifecycle listener.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// AccessToken returns the stored access token, if any.
func (s *Store) AccessToken() (string, bool) {
	return s.read(keyAccessToken)
}

// RefreshToken returns the stored refresh token, if any.
func (s *Store) RefreshToken() (string, bool) {
	return s.read(keyRefreshToken)
}

// UserID returns the stored user id, if any.
func (s *Store) UserID() (string, bool) {
	return s.read(keyUserID)
}

// UserEmail returns the stored user email, if any.
func (s *Store) UserEmail() (string, bool) {
	return s.read(keyUserEmail)
}

// IsAuthenticated reports whether an access token is present.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.AccessToken()
	return ok
}

// CanRefresh reports whether a refresh token is present. Without one a 401
// cannot be recovered and must surface to the caller.
func (s *Store) CanRefresh() bool {
	_, ok := s.RefreshToken()
	return ok
}

// AccessTokenExpiry inspects the access token's exp claim without verifying
// the signature. Opaque (non-JWT) tokens report no expiry.
func (s *Store) AccessTokenExpiry() (time.Time, bool) {
	token, ok := s.AccessToken()
	if !ok {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// SaveAuthResult records a successful login, signup, or refresh response.
// An empty refreshToken leaves any previously stored refresh token in place.
func (s *Store) SaveAuthResult(accessToken, refreshToken, userID, userEmail string) error {
	if err := s.storage.Set(keyAccessToken, accessToken); err != nil {
		return err
	}
	if refreshToken != "" {
		if err := s.storage.Set(keyRefreshToken, refreshToken); err != nil {
			return err
		}
	}
	if err := s.storage.Set(keyUserID, userID); err != nil {
		return err
	}
	if err := s.storage.Set(keyUserEmail, userEmail); err != nil {
		return err
	}
	s.notify(Event{Kind: EventLoggedIn, UserID: userID, UserEmail: userEmail})
	return nil
}

// UpdateAccessToken replaces the access token after a refresh. The refresh
// token is only replaced when a new one is supplied.
func (s *Store) UpdateAccessToken(accessToken, refreshToken string) error {
	if err := s.storage.Set(keyAccessToken, accessToken); err != nil {
		return err
	}
	if refreshToken != "" {
		if err := s.storage.Set(keyRefreshToken, refreshToken); err != nil {
			return err
		}
	}
	userID, _ := s.UserID()
	userEmail, _ := s.UserEmail()
	s.notify(Event{Kind: EventTokenRefreshed, UserID: userID, UserEmail: userEmail})
	return nil
}

// ClearSession deletes every credential field.
func (s *Store) ClearSession() error {
	var firstErr error
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUserID, keyUserEmail} {
		if err := s.storage.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.notify(Event{Kind: EventLoggedOut})
	return firstErr
}

func (s *Store) read(key string) (string, bool) {
	v, ok, err := s.storage.Get(key)
	if err != nil {
		s.logger.Debug("secret read failed, treating as absent", "key", key, "error", err)
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, ok
}

func (s *Store) notify(event Event) {
	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, l := range listeners {
		l(event)
	}
}
