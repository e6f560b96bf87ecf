package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "admin_session"
	sessionTTL    = time.Hour
)

var ErrInvalidSession = errors.New("invalid session token")

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionProvider owns the current session state and lets observers
// subscribe to sign-in/sign-out transitions. It is injected wherever
// session state matters; there is no package-level instance.
type SessionProvider struct {
	secret []byte

	mu      sync.Mutex
	current *Identity
	nextID  int
	subs    map[int]chan *Identity
}

func NewSessionProvider(secret string) *SessionProvider {
	return &SessionProvider{
		secret: []byte(secret),
		subs:   make(map[int]chan *Identity),
	}
}

// Subscribe registers an observer. The channel receives the identity on
// sign-in and nil on sign-out; calling the returned function tears the
// subscription down.
func (s *SessionProvider) Subscribe() (<-chan *Identity, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan *Identity, 1)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
}

// SignIn records the identity and notifies observers.
func (s *SessionProvider) SignIn(ident *Identity) {
	s.mu.Lock()
	s.current = ident
	s.notifyLocked(ident)
	s.mu.Unlock()
}

// SignOut clears the session and notifies observers with nil.
func (s *SessionProvider) SignOut() {
	s.mu.Lock()
	s.current = nil
	s.notifyLocked(nil)
	s.mu.Unlock()
}

// Current returns the signed-in identity, or nil.
func (s *SessionProvider) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *SessionProvider) notifyLocked(ident *Identity) {
	for _, ch := range s.subs {
		select {
		case ch <- ident:
		default:
			// Slow observer: drop the stale event, the next one carries
			// the latest state anyway.
			select {
			case <-ch:
			default:
			}
			ch <- ident
		}
	}
}

// IssueToken mints the signed session cookie value for an identity.
func (s *SessionProvider) IssueToken(ident *Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: ident.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates a session cookie value and returns its identity.
func (s *SessionProvider) ParseToken(token string) (*Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidSession
	}
	return &Identity{UID: claims.Subject, Email: claims.Email}, nil
}
