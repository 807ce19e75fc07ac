package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/zeebo/blake3"
)

// ComputeBlake3Hash computes the BLAKE3 hash of a file.
func ComputeBlake3Hash(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

// Fingerprint hashes the startup command list. Lines are trimmed and
// separated by newlines so reformatting the YAML does not change the value.
func Fingerprint(cfg *Config) string {
	h := blake3.New()
	for _, line := range cfg.Commands {
		h.Write([]byte(strings.TrimSpace(line)))
		h.Write([]byte{'\n'})
	}
	return "blake3:" + hex.EncodeToString(h.Sum(nil))
}
