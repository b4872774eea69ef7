package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"jobmatch-engine/internal/config"
)

const (
	// KeyringService groups the engine's secrets in the OS keychain.
	KeyringService = "jobmatch"
)

// GetUpstreamToken returns the job-store API token from the keychain.
func GetUpstreamToken(keyringAccount string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		tok, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(tok) != "" {
			return tok, nil
		}
	}
	return "", errors.New("upstream token not found in keychain")
}

func SetUpstreamToken(keyringAccount string, token string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, token)
}

func DeleteUpstreamToken(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}

func UpstreamKeyringAccount(cfg config.Config) string {
	if strings.TrimSpace(cfg.Upstream.KeyringAccount) != "" {
		return cfg.Upstream.KeyringAccount
	}
	return fmt.Sprintf("jobmatch:upstream:%s", cfg.Upstream.BaseURL)
}
