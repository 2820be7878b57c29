package config

// NetworkConfig describes one reachable chain deployment.
type NetworkConfig struct {
	ID       string `yaml:"id"`
	ChainID  string `yaml:"chain_id"`
	Endpoint string `yaml:"endpoint"`
	Prefix   string `yaml:"prefix"`
}

// WalletConfig selects the credential source. Exactly one of File and
// Env may be set; when both are empty the default wallet file is used.
type WalletConfig struct {
	File string `yaml:"file"`
	Env  string `yaml:"env"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// AppConfig holds the configuration from sendtx.yml
type AppConfig struct {
	DefaultNetwork string          `yaml:"default_network"`
	Networks       []NetworkConfig `yaml:"networks"`
	Wallet         WalletConfig    `yaml:"wallet"`
	Log            LogConfig       `yaml:"log"`
	JournalPath    string          `yaml:"journal_path"`
}

// ConfigFile is the top-level structure for sendtx.yml
type ConfigFile struct {
	Config AppConfig `yaml:"config"`
}
