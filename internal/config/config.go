package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Config struct {
	ConfigDir       string            `mapstructure:"config_dir"`
	StagingRoot     string            `mapstructure:"staging_root"`
	KeychainService string            `mapstructure:"keychain_service"`
	KeychainAccount string            `mapstructure:"keychain_account"`
	LogJSON         bool              `mapstructure:"log_json"`
	NoColor         bool              `mapstructure:"no_color"`
	SSHDir          string            `mapstructure:"ssh_dir"`
	Plists          []string          `mapstructure:"plists"`
	Dotfiles        map[string]string `mapstructure:"dotfiles"`
	GitRemote       string            `mapstructure:"git_remote"`
	GitBranch       string            `mapstructure:"git_branch"`
	CursorDir       string            `mapstructure:"cursor_dir"`
}

var globalConfig *Config

func Initialize(configPath string) error {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("dotvault")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".dotvault"))
		}
	}

	v.SetEnvPrefix("DOTVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	home, _ := os.UserHomeDir()

	// Set defaults
	v.SetDefault("config_dir", filepath.Join(home, ".dotvault"))
	v.SetDefault("staging_root", os.TempDir())
	v.SetDefault("keychain_service", "dotvault")
	v.SetDefault("keychain_account", "backup")
	v.SetDefault("ssh_dir", filepath.Join(home, ".ssh"))
	v.SetDefault("git_remote", "origin")
	v.SetDefault("git_branch", "main")
	v.SetDefault("cursor_dir", filepath.Join(home, "Library", "Application Support", "Cursor", "User"))
	v.SetDefault("plists", []string{
		"com.googlecode.iterm2.plist",
		"com.knollsoft.Rectangle.plist",
		"com.apple.Terminal.plist",
		"org.hammerspoon.Hammerspoon.plist",
		"com.lwouis.alt-tab-macos.plist",
	})

	if err := v.ReadInConfig(); err != nil {
		// A file that exists but fails to parse is an error no matter how
		// it was located; only a genuinely absent file falls to defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		_ = v.Unmarshal(&globalConfig)
	})

	return nil
}

func GetConfig() *Config {
	if globalConfig == nil {
		home, _ := os.UserHomeDir()
		return &Config{
			ConfigDir:       filepath.Join(home, ".dotvault"),
			StagingRoot:     os.TempDir(),
			KeychainService: "dotvault",
			KeychainAccount: "backup",
		}
	}
	return globalConfig
}

// PrefsDir is where application plists live on this machine.
func PrefsDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "Preferences")
}
