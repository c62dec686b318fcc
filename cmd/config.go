package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harwatch/hardiff/delta"
)

// ConfigFileName is looked up in the working directory. The file is
// optional; flags always win over it.
const ConfigFileName = ".hardiff.yaml"

// FileConfig holds option defaults read from the config file.
type FileConfig struct {
	Top    int    `yaml:"top"`
	Domain string `yaml:"domain"`
	Status int    `yaml:"status"`
	Chart  string `yaml:"chart"`
	CSV    string `yaml:"csv"`
	JSON   string `yaml:"json"`
}

// LoadConfig reads the config file at path. A missing file is not an
// error, it simply yields no config.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// Apply copies the set config values onto opts, leaving unset fields
// at their current values.
func (c *FileConfig) Apply(opts *delta.Options) {
	if c.Top > 0 {
		opts.TopN = c.Top
	}
	if c.Domain != "" {
		opts.DomainFilter = c.Domain
	}
	if c.Status != 0 {
		opts.StatusFilter = c.Status
	}
	if c.Chart != "" {
		opts.ChartPath = c.Chart
	}
	if c.CSV != "" {
		opts.CSVPath = c.CSV
	}
	if c.JSON != "" {
		opts.JSONPath = c.JSON
	}
}
