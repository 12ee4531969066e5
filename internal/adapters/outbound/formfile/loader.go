// Package formfile loads intake forms from YAML files.
package formfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/riskgate/riskgate/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads an intake form. Absent fields stay at their zero values; the
// normalizer is responsible for defaulting, not the loader.
func Load(path string) (domain.FormState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FormState{}, fmt.Errorf("reading intake form: %w", err)
	}

	var form domain.FormState
	if err := yaml.Unmarshal(data, &form); err != nil {
		return domain.FormState{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return form, nil
}
