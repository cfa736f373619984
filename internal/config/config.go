package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Recognition struct {
	MinPoints int     `mapstructure:"minPoints"`
	MinSize   float64 `mapstructure:"minSize"`
	Threshold float64 `mapstructure:"threshold"`
}

type Capture struct {
	MinDistance float64 `mapstructure:"minDistance"`
}

type Pen struct {
	Color     string  `mapstructure:"color"`
	Thickness float64 `mapstructure:"thickness"`
}

type Share struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
	MDNS    bool `mapstructure:"mdns"`
}

type Export struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config is everything that can be set from the settings file.
type Config struct {
	LogLevel    string      `mapstructure:"logLevel"`
	Recognition Recognition `mapstructure:"recognition"`
	Capture     Capture     `mapstructure:"capture"`
	Pen         Pen         `mapstructure:"pen"`
	Share       Share       `mapstructure:"share"`
	Export      Export      `mapstructure:"export"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("recognition.minPoints", 10)
	v.SetDefault("recognition.minSize", 15.0)
	v.SetDefault("recognition.threshold", 15.0)

	v.SetDefault("capture.minDistance", 1.0)

	v.SetDefault("pen.color", "black")
	v.SetDefault("pen.thickness", 6.0)

	v.SetDefault("share.enabled", false)
	v.SetDefault("share.port", 8888)
	v.SetDefault("share.mdns", true)

	v.SetDefault("export.width", 1024)
	v.SetDefault("export.height", 768)
}

// Default returns the built-in settings.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: defaults do not unmarshal: %v", err))
	}
	return &cfg
}

// Load reads the JSON settings file at path on top of the defaults. An empty
// path or a missing file yields the defaults. Out of range values are
// replaced by their default and logged.
func Load(path string, log zerolog.Logger) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			log.Info().Str("path", path).Msg("no settings file, using defaults")
		} else {
			v.SetConfigFile(path)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.validate(log)
	return &cfg, nil
}

func (c *Config) validate(log zerolog.Logger) {
	def := Default()

	if c.Recognition.MinPoints < 1 {
		log.Warn().Int("minPoints", c.Recognition.MinPoints).Msg("invalid recognition.minPoints, using default")
		c.Recognition.MinPoints = def.Recognition.MinPoints
	}
	if c.Recognition.MinSize < 0 {
		log.Warn().Float64("minSize", c.Recognition.MinSize).Msg("invalid recognition.minSize, using default")
		c.Recognition.MinSize = def.Recognition.MinSize
	}
	if c.Recognition.Threshold <= 0 {
		log.Warn().Float64("threshold", c.Recognition.Threshold).Msg("invalid recognition.threshold, using default")
		c.Recognition.Threshold = def.Recognition.Threshold
	}
	if c.Capture.MinDistance < 0 {
		log.Warn().Float64("minDistance", c.Capture.MinDistance).Msg("invalid capture.minDistance, using default")
		c.Capture.MinDistance = def.Capture.MinDistance
	}
	if c.Pen.Thickness < 1 || c.Pen.Thickness > 30 {
		log.Warn().Float64("thickness", c.Pen.Thickness).Msg("pen.thickness must be between 1 and 30, using default")
		c.Pen.Thickness = def.Pen.Thickness
	}
	if c.Share.Port < 1 || c.Share.Port > 65535 {
		log.Warn().Int("port", c.Share.Port).Msg("invalid share.port, using default")
		c.Share.Port = def.Share.Port
	}
	if c.Export.Width < 1 || c.Export.Height < 1 {
		log.Warn().Int("width", c.Export.Width).Int("height", c.Export.Height).Msg("invalid export size, using default")
		c.Export = def.Export
	}
}
