package authentication

// Credentials live in the OS keychain, not in a dotfile, so tokens never
// sit on disk in plain text. The keychain entry is a single JSON blob;
// rewriting it atomically replaces the whole credential set.
import (
	"encoding/json"
	"time"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "bookshelf-cli"
	tokenKey    = "auth_tokens"
)

// StoredCredentials is the credential set saved at login. ExpiresAt is
// the unix time the access token stops working; the refresh token
// outlives it and is used to mint a replacement without re-prompting
// for a password.
type StoredCredentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
	ExpiresAt    int64  `json:"expires_at"`
}

// Expired reports whether the access token's lifetime has run out.
// Credentials stored without an expiry are treated as still valid.
func (c *StoredCredentials) Expired() bool {
	return c.ExpiresAt > 0 && time.Now().Unix() >= c.ExpiresAt
}

func StoreTokens(creds *StoredCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, tokenKey, string(data))
}

func GetTokens() (*StoredCredentials, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if err != nil {
		return nil, err
	}

	var creds StoredCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func DeleteTokens() error {
	return keyring.Delete(serviceName, tokenKey)
}
