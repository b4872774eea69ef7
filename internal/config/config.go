package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	// Upstream is the job store the engine pulls snapshots from.
	Upstream struct {
		BaseURL        string  `yaml:"base_url"`
		PageSize       int     `yaml:"page_size"`
		ReqPerSec      float64 `yaml:"req_per_sec"`
		Burst          int     `yaml:"burst"`
		KeyringAccount string  `yaml:"keyring_account"`
		RefreshSeconds int     `yaml:"refresh_seconds"`
	} `yaml:"upstream"`

	Search struct {
		DefaultSort string `yaml:"default_sort"`
		// SalaryScale maps salary-range filter values to the currency unit
		// job records use (e.g. 100000 when filters are in lakhs).
		SalaryScale float64 `yaml:"salary_scale"`
	} `yaml:"search"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
