package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config reports where the planner keeps its data.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from a .planner config file or
// PLANNER_* environment variables, defaulting to ~/.planner.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.planner.db")
	viper.SetConfigName(".planner") // .yaml is implicit
	viper.SetEnvPrefix("PLANNER")
	viper.AutomaticEnv()

	if override := os.Getenv("PLANNER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
