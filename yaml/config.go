// Package yaml loads newsprint configuration files.
package yaml

import (
	"os"

	"github.com/fwojciec/newsprint"
	"gopkg.in/yaml.v2"
)

// LoadConfig reads the YAML file at path over newsprint.DefaultConfig.
// Keys absent from the file keep their default values. An empty path
// returns the defaults.
func LoadConfig(path string) (*newsprint.Config, error) {
	cfg := newsprint.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, newsprint.Errorf(newsprint.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, err
	}

	if err := ParseConfig(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig decodes data into cfg and validates the result.
func ParseConfig(data []byte, cfg *newsprint.Config) error {
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return newsprint.Errorf(newsprint.ECONFIG, "parse config: %v", err)
	}
	return cfg.Validate()
}
