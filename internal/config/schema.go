package config

// Config is the top-level YAML structure.
type Config struct {
	Version    string         `yaml:"version"`
	Engine     EngineConf     `yaml:"engine"`
	Thresholds ThresholdsConf `yaml:"thresholds"`
	Categories []CategoryConf `yaml:"categories"`
}

// EngineConf holds tunable processing settings.
type EngineConf struct {
	// RecordWorkers > 1 enables the parallel per-record stage; 0 or 1 keeps
	// the pipeline fully sequential. Output is identical either way.
	RecordWorkers int   `yaml:"record_workers"`
	MaxBodyBytes  int64 `yaml:"max_body_bytes"`
}

// ThresholdsConf holds the named cutoffs. The scoring cutoffs are in years,
// the hygiene-warning cutoffs in days; the stale-password pair covers the
// same field with intentionally different values.
type ThresholdsConf struct {
	OldAccountYears     float64 `yaml:"old_account_years"`
	StalePasswordYears  float64 `yaml:"stale_password_years"`
	InactiveYears       float64 `yaml:"inactive_years"`
	PasswordWarningDays float64 `yaml:"password_warning_days"`
	InactiveWarningDays float64 `yaml:"inactive_warning_days"`
}

// CategoryConf is one classification rule: a category name and the ordered
// substring needles that map a service name onto it.
type CategoryConf struct {
	Name    string   `yaml:"name"`
	Needles []string `yaml:"needles"`
}
