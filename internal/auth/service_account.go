package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/driveaudit/driveaudit/internal/logging"
	"github.com/driveaudit/driveaudit/internal/types"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ServiceAccountKey represents the JSON structure of a service account key file
type ServiceAccountKey struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

// Manager loads service-account credentials and builds API services
type Manager struct {
	store  *TokenStore
	logger logging.Logger
}

// NewManager creates an auth manager
func NewManager(logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Manager{
		store:  NewTokenStore(),
		logger: logger,
	}
}

// LoadServiceAccount loads credentials from a service account key file,
// minting a fresh access token unless the token cache holds a live one for
// the same account and scopes.
func (m *Manager) LoadServiceAccount(ctx context.Context, keyFilePath string, scopes []string) (*types.Credentials, error) {
	if keyFilePath == "" {
		return nil, fmt.Errorf("service account key file required")
	}
	if _, err := os.Stat(keyFilePath); err != nil {
		return nil, fmt.Errorf("service account key file not found: %s", keyFilePath)
	}
	if len(scopes) == 0 {
		return nil, fmt.Errorf("at least one scope required")
	}

	keyData, err := os.ReadFile(keyFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key: %w", err)
	}

	var saKey ServiceAccountKey
	if err := json.Unmarshal(keyData, &saKey); err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	if saKey.Type != "service_account" {
		return nil, fmt.Errorf("invalid service account key type: %s", saKey.Type)
	}
	if saKey.ClientEmail == "" {
		return nil, fmt.Errorf("missing client_email in service account key")
	}
	if saKey.PrivateKey == "" {
		return nil, fmt.Errorf("missing private_key in service account key")
	}

	cacheKey := TokenCacheKey(saKey.ClientEmail, scopes)
	if cached, err := m.store.Load(cacheKey); err == nil && !cached.Expired() {
		m.logger.Debug("Using cached access token",
			logging.F("serviceAccount", saKey.ClientEmail),
		)
		return cached, nil
	}

	config, err := google.CredentialsFromJSON(ctx, keyData, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}

	token, err := config.TokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	creds := &types.Credentials{
		AccessToken:         token.AccessToken,
		ExpiryDate:          token.Expiry,
		Scopes:              scopes,
		Type:                types.AuthTypeServiceAccount,
		ServiceAccountEmail: saKey.ClientEmail,
	}

	// Best effort: a keyring failure only means the next run mints again.
	if err := m.store.Save(cacheKey, creds); err != nil {
		m.logger.Debug("Token cache unavailable", logging.F("error", err.Error()))
	}

	return creds, nil
}

// GetHTTPClient builds an authenticated HTTP client from credentials
func (m *Manager) GetHTTPClient(ctx context.Context, creds *types.Credentials) *http.Client {
	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: creds.AccessToken,
		Expiry:      creds.ExpiryDate,
	})
	return oauth2.NewClient(ctx, source)
}
