package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zalando/go-keyring"
)

// KeyringService is the service name used in the OS keychain:
//   - macOS: Keychain Access.app
//   - Windows: Credential Manager
//   - Linux: Secret Service (requires libsecret)
const KeyringService = "gitreport"

// KeyringManager stores provider API keys in the OS keychain so they can stay
// out of the config file. One item is kept per provider id.
type KeyringManager struct {
	logger *logrus.Logger
}

// NewKeyringManager creates a keyring manager.
func NewKeyringManager(logger *logrus.Logger) *KeyringManager {
	return &KeyringManager{logger: logger}
}

func keyringItem(provider string) string {
	return provider + "-api-key"
}

// SaveAPIKey stores a provider API key in the OS keychain.
func (km *KeyringManager) SaveAPIKey(provider, apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("api key cannot be empty")
	}

	if err := keyring.Set(KeyringService, keyringItem(provider), apiKey); err != nil {
		km.logger.WithField("provider", provider).WithError(err).Error("failed to save API key to keychain")
		return fmt.Errorf("failed to save to OS keychain: %w", err)
	}

	km.logger.WithField("provider", provider).Info("api key saved to keychain")
	return nil
}

// APIKey retrieves a provider API key from the OS keychain. A missing entry is
// not an error; it returns an empty string.
func (km *KeyringManager) APIKey(provider string) (string, error) {
	apiKey, err := keyring.Get(KeyringService, keyringItem(provider))
	if err == keyring.ErrNotFound {
		return "", nil
	}
	if err != nil {
		km.logger.WithField("provider", provider).WithError(err).Error("failed to read API key from keychain")
		return "", fmt.Errorf("failed to read from OS keychain: %w", err)
	}

	return apiKey, nil
}

// DeleteAPIKey removes a provider API key from the OS keychain. Deleting a
// missing entry is not an error.
func (km *KeyringManager) DeleteAPIKey(provider string) error {
	err := keyring.Delete(KeyringService, keyringItem(provider))
	if err == keyring.ErrNotFound {
		return nil
	}
	if err != nil {
		km.logger.WithField("provider", provider).WithError(err).Error("failed to delete API key from keychain")
		return fmt.Errorf("failed to delete from OS keychain: %w", err)
	}

	km.logger.WithField("provider", provider).Info("api key deleted from keychain")
	return nil
}

// IsAvailable reports whether the OS keychain can be used on this system.
func (km *KeyringManager) IsAvailable() bool {
	const probe = "availability-probe"
	if err := keyring.Set(KeyringService, probe, "ok"); err != nil {
		return false
	}
	keyring.Delete(KeyringService, probe)
	return true
}
