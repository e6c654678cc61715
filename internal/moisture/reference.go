package moisture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region reference
// Reference maps a food name to its moisture profile. It is loaded once
// from a small YAML data file and consulted when the caller supplies no
// explicit profile.
type Reference map[string]Profile

// LoadReference reads a YAML moisture reference file.
func LoadReference(path string) (Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read moisture reference: %w", err)
	}
	var ref Reference
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("parse moisture reference: %w", err)
	}
	return ref, nil
}

// Lookup returns the profile for a food name.
func (r Reference) Lookup(food string) (Profile, bool) {
	p, ok := r[food]
	return p, ok
}

// #endregion reference
