package fh5tuner

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type Configuration struct {
	Content  ContentConfig  `yaml:"content"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

type ContentConfig struct {
	Path  string `yaml:"path"`
	Cars  string `yaml:"cars"`
	Parts string `yaml:"parts"`
	Rims  string `yaml:"rims"`
}

func (c *ContentConfig) CarsPath() string {
	return filepath.Join(c.Path, c.Cars)
}

func (c *ContentConfig) PartsPath() string {
	return filepath.Join(c.Path, c.Parts)
}

func (c *ContentConfig) RimsPath() string {
	return filepath.Join(c.Path, c.Rims)
}

type DefaultsConfig struct {
	Style   string `yaml:"style"`
	Weather string `yaml:"weather"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Content: ContentConfig{
			Path:  "content",
			Cars:  "cars.json",
			Parts: "parts.json",
			Rims:  "rims.json",
		},
		Defaults: DefaultsConfig{
			Style:   string(StyleRoad),
			Weather: string(WeatherDry),
		},
	}
}

// ReadConfig loads the tool configuration. A missing file is not an error;
// the built-in defaults apply.
func ReadConfig(location string) (*Configuration, error) {
	conf := defaultConfiguration()

	f, err := os.Open(location)

	if os.IsNotExist(err) {
		logrus.Debugf("No config file at %s, using defaults", location)
		return conf, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "couldn't open config file %s", location)
	}

	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(conf); err != nil {
		return nil, errors.Wrapf(err, "couldn't decode config file %s", location)
	}

	if conf.Content.Path == "" {
		conf.Content.Path = "content"
	}

	if conf.Content.Cars == "" {
		conf.Content.Cars = "cars.json"
	}

	if conf.Content.Parts == "" {
		conf.Content.Parts = "parts.json"
	}

	if conf.Content.Rims == "" {
		conf.Content.Rims = "rims.json"
	}

	return conf, nil
}
