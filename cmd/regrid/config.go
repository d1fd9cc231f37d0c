package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/domonda/go-regrid"
	"github.com/domonda/go-regrid/csvtable"
	"github.com/domonda/go-regrid/internal/log"
)

// Config is the content of the regrid config file.
type Config struct {
	Table regrid.TableConfig       `mapstructure:"table" yaml:"table"`
	CSV   csvtable.DetectionConfig `mapstructure:"csv" yaml:"csv"`

	// WatchDebounce is the quiet period after a change
	// of a watched file before it is reloaded.
	WatchDebounce time.Duration `mapstructure:"watch_debounce" yaml:"watch_debounce"`
}

// DefaultConfig returns the configuration used without config file.
func DefaultConfig() Config {
	return Config{
		Table:         regrid.DefaultTableConfig(),
		CSV:           *csvtable.NewDefaultDetectionConfig(),
		WatchDebounce: 500 * time.Millisecond,
	}
}

// DefaultConfigPath returns ~/.config/regrid/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "regrid", "config.yaml"), nil
}

// loadConfig reads the config file at path into a Config.
// An empty path searches the default locations where
// a missing file is not an error.
// Environment variables with the prefix REGRID_ override the file,
// for example REGRID_TABLE_ROW_HEIGHT.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	defaults := DefaultConfig()
	v.SetDefault("table.row_measure", defaults.Table.RowMeasure)
	v.SetDefault("table.column_measure", defaults.Table.ColumnMeasure)
	v.SetDefault("table.row_height", defaults.Table.RowHeight)
	v.SetDefault("table.column_width", defaults.Table.ColumnWidth)
	v.SetDefault("table.min_size", defaults.Table.MinSize)
	v.SetDefault("table.auto_size_columns", defaults.Table.AutoSizeColumns)
	v.SetDefault("table.max_auto_width", defaults.Table.MaxAutoWidth)
	v.SetDefault("table.cell_padding", defaults.Table.CellPadding)
	v.SetDefault("watch_debounce", defaults.WatchDebounce)

	v.SetEnvPrefix("REGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".regrid")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "regrid"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			log.ErrorErr(log.CatConfig, "Failed to read config", err, "path", path)
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "No config file found, using defaults")
	} else {
		log.Info(log.CatConfig, "Loaded config", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if len(cfg.CSV.Encodings) == 0 {
		cfg.CSV.Encodings = defaults.CSV.Encodings
	}
	if len(cfg.CSV.EncodingTests) == 0 {
		cfg.CSV.EncodingTests = defaults.CSV.EncodingTests
	}
	if err := cfg.Table.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid table config: %w", err)
	}
	return cfg, nil
}

// writeDefaultConfig writes the default configuration as YAML to path.
func writeDefaultConfig(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "path", path)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", path)
		return fmt.Errorf("writing config file: %w", err)
	}
	log.Info(log.CatConfig, "Created default config", "path", path)
	return nil
}

func (a *app) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the regrid configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.cfgFile
			if path == "" {
				var err error
				path, err = DefaultConfigPath()
				if err != nil {
					return err
				}
			}
			if err := writeDefaultConfig(path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return err
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
