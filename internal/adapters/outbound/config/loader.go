// Package config resolves the remote-evaluator endpoint settings once at
// process start. Precedence, lowest to highest: built-in defaults,
// .riskgate.yaml, a .env file, the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	fileName = ".riskgate.yaml"

	envBaseURL = "RISKGATE_BASE_URL"
	envPath    = "RISKGATE_EVALUATE_PATH"

	// DefaultBaseURL matches the evaluator's local development address.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultEvaluatePath targets the hosted AI evaluator; /evaluate/rules
	// selects the deterministic engine instead.
	DefaultEvaluatePath = "/evaluate/ai"
)

// Settings hold the evaluation endpoint configuration. Resolved once at
// startup; never changed mid-session.
type Settings struct {
	BaseURL      string `yaml:"base_url"`
	EvaluatePath string `yaml:"evaluate_path"`
}

// Loader reads Settings from a directory.
type Loader struct{}

func New() *Loader { return &Loader{} }

// Load resolves settings relative to dir. A missing .riskgate.yaml or .env
// is fine; a malformed .riskgate.yaml is an error.
func (l *Loader) Load(dir string) (Settings, error) {
	s := Settings{
		BaseURL:      DefaultBaseURL,
		EvaluatePath: DefaultEvaluatePath,
	}

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Settings{}, err
	}

	// Deployments carry endpoint overrides in .env; already-set variables win.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	if v := os.Getenv(envBaseURL); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv(envPath); v != "" {
		s.EvaluatePath = v
	}

	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.EvaluatePath == "" {
		s.EvaluatePath = DefaultEvaluatePath
	}

	return s, nil
}
