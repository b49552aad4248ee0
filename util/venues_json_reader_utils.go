package util

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"asb-server/models"
)

// ReadVenuesFileFromJSON loads the venue catalog from JSON on disk.
func ReadVenuesFileFromJSON(filePath string) (*models.VenuesFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %q", filePath)
	}
	var file models.VenuesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal venues file %q", filePath)
	}
	return &file, nil
}
