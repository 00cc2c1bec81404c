package config

// Config holds app configuration
type Config struct {
	// Game is the title the files belong to (ff13-1, ff13-2, ff13-lr)
	// Selects the text control-code tables and the filelist entry layout
	Game string `mapstructure:"game"`

	DryRun       bool   `mapstructure:"dry_run"`
	LogLevel     string `mapstructure:"log_level"`
	LogOutputDir string `mapstructure:"log_output_dir"`

	// Backup copies a WBT filelist and container to *.bak before they are rewritten
	Backup bool `mapstructure:"backup"`

	// Include and Exclude are glob rules selecting WBT entries to extract
	Include []string `mapstructure:"include"`
	Exclude []string `mapstructure:"exclude"`

	// Workers bounds concurrent ZTR decoding in directory exports
	Workers int `mapstructure:"workers"`

	// ZtrCompress stores written ZTR chunks dictionary-compressed
	ZtrCompress bool `mapstructure:"ztr_compress"`
}
