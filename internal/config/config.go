// Package config wires viper-backed settings: a YAML file under
// ~/.config/ffb2fs, overridable through FFB2FS_* environment
// variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sdvillal/ffb2fs/internal/app/mirror"
)

func Init(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "ffb2fs"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("FFB2FS")
	viper.AutomaticEnv()

	viper.SetDefault("slug_max_length", mirror.DefaultMaxSlugLength)
	viper.SetDefault("browser", "")

	// A missing config file is the normal case.
	_ = viper.ReadInConfig()
}

// SlugMaxLength caps the slug segment of generated filenames.
func SlugMaxLength() int {
	return viper.GetInt("slug_max_length")
}

// Browser is an optional command used to open bookmark URIs instead of
// the platform default.
func Browser() string {
	return viper.GetString("browser")
}
