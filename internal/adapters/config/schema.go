package config

// Gravityfile represents the structure of the gravity.yaml configuration file.
type Gravityfile struct {
	Store     string    `yaml:"store"`
	Timeout   string    `yaml:"timeout"`
	Workers   *int      `yaml:"workers"`
	UserAgent string    `yaml:"userAgent"`
	Sources   []string  `yaml:"sources"`
	Export    ExportDTO `yaml:"export"`
	Whitelist string    `yaml:"whitelist"`
	Blacklist string    `yaml:"blacklist"`
	Restart   []string  `yaml:"restart"`
	Metrics   string    `yaml:"metrics"`
}

// ExportDTO configures the hosts artifact.
type ExportDTO struct {
	Path    string `yaml:"path"`
	Address string `yaml:"address"`
}
