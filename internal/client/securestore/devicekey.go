package securestore

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gamenews/internal/common"
)

const deviceSecretSize = 32

// LoadOrCreateDeviceSecret reads the hex-encoded device secret at path,
// creating it (mode 0600, parent dirs 0700) on first use.
func LoadOrCreateDeviceSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		secret, err := hex.DecodeString(strings.TrimSpace(string(data)))
		if err != nil || len(secret) != deviceSecretSize {
			return nil, fmt.Errorf("device secret %s is malformed", path)
		}
		return secret, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read device secret: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	secret := common.GenerateRandByteArray(deviceSecretSize)
	if err := os.WriteFile(path, []byte(hex.EncodeToString(secret)), 0o600); err != nil {
		return nil, fmt.Errorf("write device secret: %w", err)
	}
	return secret, nil
}
