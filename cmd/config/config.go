package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-calendar/pkg/dailynote"
	"github.com/mattsolo1/grove-calendar/pkg/index"
	"github.com/mattsolo1/grove-calendar/pkg/settings"
)

var (
	cfgFile string
	logger  *logrus.Logger
)

func InitConfig() {
	// CalDAV credentials may live in a .env in the working directory.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "gcal")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("GCAL")

	// Set defaults
	home := os.Getenv("HOME")
	viper.SetDefault("data_dir", filepath.Join(home, ".local", "share", "gcal"))
	viper.SetDefault("settings_file", filepath.Join(home, ".config", "gcal", "settings.yaml"))
	viper.SetDefault("editor", os.Getenv("EDITOR"))
	viper.SetDefault("vault_dir", "")
	viper.SetDefault("dailynote_template", "")

	if err := viper.ReadInConfig(); err == nil {
		// Do not print this in normal operation, it's noisy.
		// fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// OpenStore loads the settings store, creating defaults when the settings
// file does not exist yet.
func OpenStore() (*settings.Store, error) {
	store := settings.NewStore(viper.GetString("settings_file"))
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return store, nil
}

// OpenIndex opens the event location index under the data directory.
func OpenIndex() (*index.Index, error) {
	return index.Open(viper.GetString("data_dir"))
}

// Editor returns the configured editor command.
func Editor() string {
	return viper.GetString("editor")
}

// InitLogger builds the shared stderr logger, called once from the root
// command's persistent pre-run. Quiet unless there are issues.
func InitLogger() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
}

// Logger returns the shared logger. Safe to call before InitLogger, as in
// tests that exercise a command helper directly.
func Logger() *logrus.Logger {
	if logger == nil {
		InitLogger()
	}
	return logger
}

// VaultDir returns the vault root that hosts local calendar directories.
func VaultDir() string {
	return viper.GetString("vault_dir")
}

// VaultDirectories lists the immediate subdirectories of the vault, the
// candidates for a local calendar source.
func VaultDirectories() []string {
	root := VaultDir()
	if root == "" {
		return nil
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		Logger().Warnf("could not read vault dir %s: %v", root, err)
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() && e.Name()[0] != '.' {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs
}

// DailyNoteHeadings reads the headings from the configured daily-note
// template. No template means free-typed headings in the editors.
func DailyNoteHeadings() []string {
	tmpl := viper.GetString("dailynote_template")
	if tmpl == "" {
		return nil
	}
	headings, err := dailynote.Headings(dailynote.NormalizeTemplatePath(tmpl))
	if err != nil {
		return nil
	}
	return headings
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gcal/config.yaml)")
}
