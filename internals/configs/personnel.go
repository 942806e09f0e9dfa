package configs

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed personnel.yaml
var defaultRosterYAML []byte

// RosterYAML mengembalikan isi PERSONNEL_FILE, atau roster bawaan kalau path kosong.
func RosterYAML(path string) ([]byte, error) {
	if path == "" {
		return defaultRosterYAML, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("baca roster %s: %w", path, err)
	}
	return raw, nil
}
