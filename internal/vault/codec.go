package vault

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/rdp-keeper/models"
)

// Encode serializes the profile list to its canonical container payload:
// a JSON array of records, order preserving. The empty list encodes to a
// real empty array, never null, so Decode(Encode(L)) == L holds for every
// list including the empty one.
func Encode(profiles []models.Profile) ([]byte, error) {
	if profiles == nil {
		profiles = []models.Profile{}
	}

	data, err := json.Marshal(profiles)
	if err != nil {
		return nil, fmt.Errorf("encode profile list: %w", err)
	}
	return data, nil
}

// Decode parses a container payload produced by [Encode]. Malformed bytes
// fail with an error matching [ErrFormat]; since Decode is normally fed
// output that already passed authentication, a format error here points at
// a logic bug rather than a tampered file.
func Decode(data []byte) ([]models.Profile, error) {
	profiles := []models.Profile{}
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return profiles, nil
}
