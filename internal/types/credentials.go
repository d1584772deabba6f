package types

import "time"

// AuthType identifies how credentials were obtained
type AuthType string

const (
	AuthTypeServiceAccount AuthType = "service_account"
)

// Credentials holds a minted access token and its provenance
type Credentials struct {
	AccessToken         string    `json:"accessToken"`
	ExpiryDate          time.Time `json:"expiryDate"`
	Scopes              []string  `json:"scopes"`
	Type                AuthType  `json:"type"`
	ServiceAccountEmail string    `json:"serviceAccountEmail,omitempty"`
}

// Expired reports whether the token is past (or within a minute of) expiry.
func (c *Credentials) Expired() bool {
	if c.ExpiryDate.IsZero() {
		return false
	}
	return time.Now().After(c.ExpiryDate.Add(-time.Minute))
}
