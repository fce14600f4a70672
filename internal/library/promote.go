package library

import (
	"fmt"
	"os"

	"github.com/aiwynns/ideafactory/internal/home"
)

// PromoteBatch moves a batch file into another concepts location and
// returns the new path. Moving a batch onto itself is an error, as is a
// destination file that already exists.
func (l *Library) PromoteBatch(batchID, toLocation string) (string, error) {
	if !home.ValidLocation(toLocation) {
		return "", fmt.Errorf("unknown location %q (valid: %v)", toLocation, home.Locations)
	}

	b, err := l.Batch(batchID)
	if err != nil {
		return "", err
	}
	if b.Location == toLocation {
		return "", fmt.Errorf("batch %s is already in %s", batchID, toLocation)
	}

	dest := l.home.BatchPath(toLocation, fileStem(b.FilePath))
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("destination %s already exists", dest)
	}

	if err := os.Rename(b.FilePath, dest); err != nil {
		return "", fmt.Errorf("failed to move batch: %w", err)
	}

	l.logger.Info("batch promoted",
		"batch_id", batchID,
		"from", b.Location,
		"to", toLocation,
	)
	return dest, nil
}
