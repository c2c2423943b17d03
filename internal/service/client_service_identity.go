package service

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/fabric-launcher/models"
)

// DeriveOperationID computes the identity of a setup request. Two requests
// for the same game version share one id; surrounding whitespace is ignored.
func DeriveOperationID(params models.SetupParams) (models.OperationID, error) {
	version := strings.TrimSpace(params.GameVersion)
	if version == "" {
		return "", ErrEmptyTarget
	}

	// the id becomes a single path segment of the status endpoint
	if strings.ContainsAny(version, `/\?#`) || strings.ContainsFunc(version, unicode.IsControl) {
		return "", ErrInvalidTarget
	}

	return models.OperationID(version), nil
}
