package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ossyrian/fabulanova/internal/config"
	"github.com/ossyrian/fabulanova/internal/game"
	"github.com/ossyrian/fabulanova/internal/logging"
)

var (
	cfgFile  string
	cfg      *config.Config
	closeLog func() error
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fabulanova",
	Short: "Unpack and repack Final Fantasy XIII trilogy archives and text",
	Long: `fabulanova works with the file formats of the Final Fantasy XIII trilogy:
WPD packages, WBT filelist/container archives and ZTR text resources.`,
	SilenceUsage:       true,
	PersistentPreRunE:  loadConfig,
	PersistentPostRunE: flushLogs,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")

	// game settings
	rootCmd.PersistentFlags().StringP("game", "g", "ff13-1", "game the files belong to (ff13-1, ff13-2, ff13-lr)")
	rootCmd.PersistentFlags().Int("workers", runtime.NumCPU(), "maximum concurrent workers for compression and batch export")

	// other opts
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().String("log-output-dir", "", "directory to write log files (if set, logs are written to both stderr and file)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "parse without writing output (validation)")

	viper.BindPFlag("game", rootCmd.PersistentFlags().Lookup("game"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_output_dir", rootCmd.PersistentFlags().Lookup("log-output-dir"))
	viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))

	rootCmd.AddCommand(newWpdCmd(), newWbtCmd(), newZtrCmd())
}

// initConfig reads in config file and environment variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fabulanova"))
		}
		viper.AddConfigPath("/etc/fabulanova")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("FABULANOVA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, file and environment settings and
// sets up logging before any subcommand runs.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	closeFn, err := logging.Setup(cfg.LogLevel, cfg.LogOutputDir)
	if err != nil {
		return fmt.Errorf("could not set up logging: %w", err)
	}
	closeLog = closeFn

	slog.Debug("loaded config", "command", cmd.CommandPath(), "game", cfg.Game, "dry_run", cfg.DryRun)
	return nil
}

func flushLogs(cmd *cobra.Command, args []string) error {
	if closeLog == nil {
		return nil
	}
	return closeLog()
}

// selectedGame parses the configured game name.
func selectedGame() (game.Code, error) {
	return game.Parse(cfg.Game)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		if closeLog != nil {
			closeLog()
		}
		os.Exit(1)
	}
}
