package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Audit      AuditConfig    `mapstructure:"audit"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

// AuditConfig controls whether failed withdrawal attempts are kept as
// rejected ledger rows. Rejected rows never affect a balance.
type AuditConfig struct {
	RecordRejected bool `mapstructure:"record_rejected"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "USD"},
		Audit:    AuditConfig{RecordRejected: false},
	}
}
