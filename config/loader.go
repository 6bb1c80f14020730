package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads a board description.
// Search order: customPath -> ~/.octagrid/boards/default.yaml -> ./boards/default.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the
// fallbacks are skipped silently when missing or invalid.
func Load(customPath string) (Board, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Board{}, fmt.Errorf("failed to read board %s: %w", customPath, err)
		}
		b, err := Parse(data)
		if err != nil {
			return Board{}, fmt.Errorf("failed to parse board %s: %w", customPath, err)
		}
		return b, nil
	}

	if userPath := userBoardPath("default.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if b, err := Parse(data); err == nil {
				return b, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("boards", "default.yaml")); err == nil {
		if b, err := Parse(data); err == nil {
			return b, nil
		}
	}

	return DefaultBoard(), nil
}

// userBoardPath returns the path to a user board file, or empty if home is unavailable.
func userBoardPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".octagrid", "boards", filename)
}
