package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"iphones-store/internal/config"
)

// Sign-in failures mapped to the messages the login page shows.
var (
	ErrInvalidCredentials  = errors.New("e-mail ou senha inválidos")
	ErrTooManyAttempts     = errors.New("muitas tentativas de login, tente novamente mais tarde")
	ErrProviderUnreachable = errors.New("erro de conexão com o provedor de autenticação")
)

// Identity is a signed-in (non-anonymous) admin user.
type Identity struct {
	UID   string
	Email string
}

// IdentityProvider delegates email/password authentication to an
// external service.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
}

// restProvider talks to the provider's signInWithPassword endpoint.
type restProvider struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewRESTProvider(baseURL, apiKey string) IdentityProvider {
	return &restProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *restProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/accounts:signInWithPassword?key=%s", p.baseURL, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, mapProviderError(body.Error.Message)
	}

	var out struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &Identity{UID: out.LocalID, Email: out.Email}, nil
}

func mapProviderError(code string) error {
	switch {
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS"):
		return ErrTooManyAttempts
	case code == "INVALID_PASSWORD", code == "EMAIL_NOT_FOUND",
		code == "INVALID_EMAIL", code == "INVALID_LOGIN_CREDENTIALS":
		return ErrInvalidCredentials
	default:
		return ErrInvalidCredentials
	}
}

// localProvider verifies a single bcrypt-hashed admin credential from
// configuration. Used when no external provider is configured.
type localProvider struct {
	email    string
	passHash string
}

func NewLocalProvider(email, passHash string) IdentityProvider {
	return &localProvider{email: email, passHash: passHash}
}

func (p *localProvider) SignIn(_ context.Context, email, password string) (*Identity, error) {
	if p.email == "" || p.passHash == "" || email != p.email {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.passHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &Identity{UID: "local-admin", Email: email}, nil
}

// ProviderFromConfig picks the external provider when configured, the
// local fallback otherwise.
func ProviderFromConfig(cfg *config.Config) IdentityProvider {
	if cfg.IdpURL != "" && cfg.IdpAPIKey != "" {
		return NewRESTProvider(cfg.IdpURL, cfg.IdpAPIKey)
	}
	return NewLocalProvider(cfg.AdminEmail, cfg.AdminPassHash)
}
