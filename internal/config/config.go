package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pkt.systems/mdtabs"
)

// Engines lists the supported Markdown engines.
var Engines = []string{"commonmark", "goldmark"}

// Settings holds the resolved CLI configuration.
type Settings struct {
	mdtabs.Config `mapstructure:",squash"`

	Engine         string `mapstructure:"engine"`
	Page           bool   `mapstructure:"page"`
	Title          string `mapstructure:"title"`
	HighlightStyle string `mapstructure:"highlight-style"`
	Verbose        bool   `mapstructure:"verbose"`
}

// Load resolves settings from flags, MDTABS_* environment variables and a
// YAML config file, in that order of precedence. path names the config file;
// when empty, mdtabs.yaml is looked up in ~/.config/mdtabs, ~ and the
// working directory and a missing file is not an error.
func Load(flags *pflag.FlagSet, path string) (Settings, error) {
	v := viper.New()
	v.SetDefault("engine", "commonmark")
	v.SetDefault("active-tab-class", mdtabs.DefaultActiveTabClass)
	v.SetDefault("active-code-class", mdtabs.DefaultActiveCodeClass)
	v.SetDefault("copy-tag", mdtabs.DefaultCopyButtonTag)
	v.SetDefault("copy-icon", mdtabs.DefaultCopyButtonIconClasses)
	v.SetDefault("copy-class", mdtabs.DefaultCopyButtonContainerClass)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	v.SetEnvPrefix("MDTABS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(ExpandHome(path))
	} else {
		v.SetConfigName("mdtabs")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mdtabs"))
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	s.Engine = strings.ToLower(strings.TrimSpace(s.Engine))
	if !validEngine(s.Engine) {
		return Settings{}, fmt.Errorf("config: unknown engine %q (expected %s)", s.Engine, strings.Join(Engines, "|"))
	}
	return s, nil
}

func validEngine(name string) bool {
	for _, e := range Engines {
		if e == name {
			return true
		}
	}
	return false
}

// ExpandHome replaces a leading ~ in path with the home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
