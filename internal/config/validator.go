package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for:
//   - Duplicate category names
//   - Categories without usable needles
//   - Negative thresholds or worker counts
//   - Required fields
func Validate(cfg *Config) error {
	var errs []string
	if cfg.Version == "" {
		errs = append(errs, "version is required")
	}

	if cfg.Engine.RecordWorkers < 0 {
		errs = append(errs, "engine.record_workers must not be negative")
	}
	if cfg.Engine.MaxBodyBytes < 0 {
		errs = append(errs, "engine.max_body_bytes must not be negative")
	}

	validateThresholds(cfg.Thresholds, &errs)

	seen := make(map[string]int) // name → first index
	for i, cat := range cfg.Categories {
		if cat.Name == "" {
			errs = append(errs, fmt.Sprintf("categories[%d]: name is required", i))
			continue
		}
		if prev, ok := seen[cat.Name]; ok {
			errs = append(errs, fmt.Sprintf("duplicate category %q (first seen at categories[%d], again at categories[%d])", cat.Name, prev, i))
		} else {
			seen[cat.Name] = i
		}
		usable := 0
		for _, n := range cat.Needles {
			if strings.TrimSpace(n) != "" {
				usable++
			}
		}
		if usable == 0 {
			errs = append(errs, fmt.Sprintf("category %s: needles must not be empty", cat.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func validateThresholds(t ThresholdsConf, errs *[]string) {
	named := []struct {
		name  string
		value float64
	}{
		{"thresholds.old_account_years", t.OldAccountYears},
		{"thresholds.stale_password_years", t.StalePasswordYears},
		{"thresholds.inactive_years", t.InactiveYears},
		{"thresholds.password_warning_days", t.PasswordWarningDays},
		{"thresholds.inactive_warning_days", t.InactiveWarningDays},
	}
	for _, n := range named {
		if n.value < 0 {
			*errs = append(*errs, fmt.Sprintf("%s must not be negative", n.name))
		}
	}
}
