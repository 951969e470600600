package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/hapycolor/colorreducer/pkg/solver"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

// DefaultThreshold is the squared triple distance below which two colours
// clash.
const DefaultThreshold = 300

const relPath = "colorreducer/config.yaml"

// File is the on-disk configuration. The solver settings are inlined next to
// the threshold.
type File struct {
	solver.Config
	Threshold float64 `json:"threshold"`
}

func Default() *File {
	return &File{
		Config:    solver.DefaultConfig(),
		Threshold: DefaultThreshold,
	}
}

func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, relPath)
}

// Load reads a configuration file. Keys missing from the file keep their
// default values. A missing file at the default location is not an error.
func Load(path string) (*File, error) {
	cfg := Default()
	if path == "" {
		found, err := xdg.SearchConfigFile(relPath)
		if err != nil {
			logrus.Debugf("No configuration file found, using defaults.")
			return cfg, nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration %s: %w", path, err)
	}
	if cfg.Threshold < 0 {
		return nil, fmt.Errorf("threshold %v in %s must not be negative", cfg.Threshold, path)
	}
	logrus.Debugf("Loaded configuration from %s.", path)
	return cfg, nil
}

// Init writes the default configuration to path. An existing file is never
// overwritten.
func Init(path string) (string, error) {
	if path == "" {
		p, err := xdg.ConfigFile(relPath)
		if err != nil {
			return "", err
		}
		path = p
	}
	_, err := os.Stat(path)
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("configuration file %s already exists", path)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", err
	}
	return path, nil
}
