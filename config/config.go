package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/tierlog/handler/filehandler"
	"github.com/philipp01105/tierlog/logger"
)

// Format identifies the syntax of a configuration file.
type Format int

const (
	YAML Format = iota
	TOML
)

// ErrUnknownFormat is returned for files whose extension is not .yaml, .yml or .toml.
var ErrUnknownFormat = errors.New("unknown config format")

// File is the on-disk form of a logger configuration.
type File struct {
	Name         string `yaml:"name" toml:"name"`
	Dir          string `yaml:"dir" toml:"dir"`
	Ext          string `yaml:"ext" toml:"ext"`
	InfoPostfix  string `yaml:"info_postfix" toml:"info_postfix"`
	ErrorPostfix string `yaml:"error_postfix" toml:"error_postfix"`
	Mode         string `yaml:"mode" toml:"mode"`
	TimeFormat   string `yaml:"time_format" toml:"time_format"`
	Sequential   bool   `yaml:"sequential" toml:"sequential"`
	Echo         bool   `yaml:"echo" toml:"echo"`
	Debug        bool   `yaml:"debug" toml:"debug"`
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Parse decodes data. Unknown keys are rejected.
func Parse(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("parse yaml: %w", err)
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return File{}, ErrUnknownFormat
	}
	return f, nil
}

// Load reads a YAML or TOML file and converts it to a logger.Config.
// A relative dir is resolved against the directory of the file.
func Load(path string) (logger.Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return logger.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return logger.Config{}, fmt.Errorf("read config: %w", err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return logger.Config{}, err
	}
	if f.Dir != "" && !filepath.IsAbs(f.Dir) {
		f.Dir = filepath.Join(filepath.Dir(path), f.Dir)
	}
	return f.LoggerConfig()
}

// LoggerConfig converts the file form to a logger.Config.
func (f File) LoggerConfig() (logger.Config, error) {
	mode, err := filehandler.ParseOpenMode(strings.ToLower(f.Mode))
	if err != nil {
		return logger.Config{}, err
	}
	return logger.Config{
		Name:         f.Name,
		Dir:          f.Dir,
		Ext:          f.Ext,
		InfoPostfix:  f.InfoPostfix,
		ErrorPostfix: f.ErrorPostfix,
		Mode:         mode,
		TimeFormat:   f.TimeFormat,
		Sequential:   f.Sequential,
		Echo:         f.Echo,
		Debug:        f.Debug,
	}, nil
}
