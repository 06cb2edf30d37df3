package store

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the journal settings every command needs.
type Config interface {
	// BasePath is the directory holding the 4-digit year files.
	BasePath() string
	// IndexPath is the directory backing the id index.
	IndexPath() string
	// TemplatePath is an optional file whose contents seed brand-new
	// year files. Empty means no template.
	TemplatePath() string
	// LateThreshold is how long after midnight still counts as the
	// previous day.
	LateThreshold() time.Duration
}

// LoadConfig reads the .daybook config file, falling back to defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/daybook")
	viper.SetDefault("late-threshold", "3h")
	viper.SetConfigName(".daybook") // .yaml is implicit
	viper.SetEnvPrefix("DAYBOOK")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	template, err := homedir.Expand(viper.GetString("template"))
	if err != nil {
		return nil, err
	}

	threshold := viper.GetDuration("late-threshold")
	if threshold <= 0 {
		threshold = 3 * time.Hour
	}

	return &fileConfig{
		Path:      path,
		Template:  template,
		Threshold: threshold,
	}, nil
}

type fileConfig struct {
	Path      string
	Template  string
	Threshold time.Duration
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) IndexPath() string {
	return filepath.Join(f.Path, ".index")
}

func (f *fileConfig) TemplatePath() string {
	return f.Template
}

func (f *fileConfig) LateThreshold() time.Duration {
	return f.Threshold
}

// StaticConfig is a fixed-value Config, used by tests and by callers
// that already resolved their settings.
type StaticConfig struct {
	Path      string
	Index     string
	Template  string
	Threshold time.Duration
}

func (s *StaticConfig) BasePath() string { return s.Path }

func (s *StaticConfig) IndexPath() string {
	if s.Index == "" {
		return filepath.Join(s.Path, ".index")
	}
	return s.Index
}

func (s *StaticConfig) TemplatePath() string { return s.Template }

func (s *StaticConfig) LateThreshold() time.Duration {
	if s.Threshold <= 0 {
		return 3 * time.Hour
	}
	return s.Threshold
}
