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

	Registry struct {
		BaseURL        string  `yaml:"base_url"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		ReqPerSec      float64 `yaml:"req_per_sec"`
		Burst          int     `yaml:"burst"`
	} `yaml:"registry"`

	Leads struct {
		PageSize int `yaml:"page_size"`
		MaxLeads int `yaml:"max_leads"`
		MinScore int `yaml:"min_score"`
	} `yaml:"leads"`

	Pipeline struct {
		PageSize    int `yaml:"page_size"`
		HorizonDays int `yaml:"horizon_days"`
	} `yaml:"pipeline"`

	Company struct {
		PageSize int `yaml:"page_size"`
	} `yaml:"company"`

	Filters struct {
		// Sponsor names containing any of these substrings are treated as
		// academic and dropped from company extraction.
		ExcludeNameTerms []string `yaml:"exclude_name_terms"`
	} `yaml:"filters"`

	Cache struct {
		Enabled    bool `yaml:"enabled"`
		TTLMinutes int  `yaml:"ttl_minutes"`
	} `yaml:"cache"`
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
