package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/driveaudit/driveaudit/internal/types"
	"github.com/zalando/go-keyring"
)

// keyringService is the service name tokens are filed under in the OS keyring.
const keyringService = "driveaudit"

// TokenStore caches minted access tokens in the system keyring so back-to-back
// audit runs against the same key file reuse one token.
type TokenStore struct {
	serviceName string
}

// NewTokenStore creates a keyring-backed token store
func NewTokenStore() *TokenStore {
	return &TokenStore{serviceName: keyringService}
}

// TokenCacheKey derives a stable cache key from the account identity and the
// requested scopes. Scope order must not matter.
func TokenCacheKey(clientEmail string, scopes []string) string {
	sorted := make([]string, len(scopes))
	copy(sorted, scopes)
	sort.Strings(sorted)

	sum := sha256.Sum256([]byte(strings.Join(sorted, " ")))
	return fmt.Sprintf("%s/%s", clientEmail, hex.EncodeToString(sum[:8]))
}

// Save stores credentials under the given key
func (s *TokenStore) Save(key string, creds *types.Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	return keyring.Set(s.serviceName, key, string(data))
}

// Load retrieves credentials stored under the given key
func (s *TokenStore) Load(key string) (*types.Credentials, error) {
	data, err := keyring.Get(s.serviceName, key)
	if err != nil {
		return nil, err
	}

	var creds types.Credentials
	if err := json.Unmarshal([]byte(data), &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached credentials: %w", err)
	}
	return &creds, nil
}

// Delete removes credentials stored under the given key
func (s *TokenStore) Delete(key string) error {
	return keyring.Delete(s.serviceName, key)
}
