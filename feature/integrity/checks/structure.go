package checks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// CheckStructure returns the directories in dirs that do not exist.
func CheckStructure(dirs []string) ([]string, error) {
	var missing []string
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, dir)
		case err != nil:
			return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
		case !info.IsDir():
			return nil, fmt.Errorf("%s exists and is not a directory", dir)
		}
	}
	return missing, nil
}

// FixStructure creates the missing directories.
func FixStructure(logger *zap.Logger, missing []string) error {
	for _, dir := range missing {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("Failed to create directory", zap.String("dir", dir), zap.Error(err))
			return err
		}
		logger.Info("Created missing directory", zap.String("dir", dir))
	}
	return nil
}
