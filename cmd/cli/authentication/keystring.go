package authentication

// Token storage for the CLI. Credentials live in the OS keyring, never in a
// plaintext config file.

import (
	"encoding/json"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "reelcritic-cli"
	tokenKey    = "auth_tokens"
)

type StoredCredentials struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	UserID      string `json:"user_id"`
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
