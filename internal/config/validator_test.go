package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Version:    "1",
		Thresholds: DefaultThresholds(),
		Categories: DefaultCategories(),
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing version",
			mutate:  func(c *Config) { c.Version = "" },
			wantErr: "version is required",
		},
		{
			name: "duplicate category",
			mutate: func(c *Config) {
				c.Categories = append(c.Categories, CategoryConf{Name: "Banking", Needles: []string{"x"}})
			},
			wantErr: `duplicate category "Banking"`,
		},
		{
			name: "unnamed category",
			mutate: func(c *Config) {
				c.Categories = append(c.Categories, CategoryConf{Needles: []string{"x"}})
			},
			wantErr: "name is required",
		},
		{
			name: "category without needles",
			mutate: func(c *Config) {
				c.Categories = append(c.Categories, CategoryConf{Name: "Empty", Needles: []string{" ", ""}})
			},
			wantErr: "needles must not be empty",
		},
		{
			name:    "negative threshold",
			mutate:  func(c *Config) { c.Thresholds.PasswordWarningDays = -1 },
			wantErr: "thresholds.password_warning_days must not be negative",
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Engine.RecordWorkers = -2 },
			wantErr: "engine.record_workers must not be negative",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
