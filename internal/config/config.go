package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/duofm/duofm/internal/env"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

type Config struct {
	Core Core `yaml:"core"`
	UI   UI   `yaml:"ui"`
}

type Core struct {
	History HistoryConfig `yaml:"history"`
	Delete  DeleteConfig  `yaml:"delete"`
	Trash   TrashConfig   `yaml:"trash"`
}

// HistoryConfig bounds the undo/redo stacks. Exceeding max_entries silently
// evicts the oldest undoable operation.
type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries" validate:"gte=1,lte=10000"`
}

type DeleteConfig struct {
	Confirm bool `yaml:"confirm"`
}

type TrashConfig struct {
	// Dir overrides the holding-area location. Empty means the default
	// under the XDG data dir.
	Dir       string `yaml:"dir"`
	Retention string `yaml:"retention" validate:"validDuration"`
}

type UI struct {
	ShowHidden  bool          `yaml:"show_hidden"`
	ExitMessage string        `yaml:"exit_message"`
	Exclude     ExcludeConfig `yaml:"exclude"`
	Style       StyleConfig   `yaml:"style"`
}

type ExcludeConfig struct {
	Globs []string `yaml:"globs"`
}

type StyleConfig struct {
	ActiveBorder   string `yaml:"active_border" validate:"validColor"`
	InactiveBorder string `yaml:"inactive_border" validate:"validColor"`
	Cursor         string `yaml:"cursor" validate:"validColor"`
	Selected       string `yaml:"selected" validate:"validColor"`
}

type configError struct {
	configPath string
	configDir  string
	parser     parser
	err        error
}

type parser struct{}

func (p parser) getDefaultConfigContents() string {
	content, _ := yaml.Marshal(NewDefaultConfig())
	return string(content)
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't find the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.DUOFM_CONFIG_PATH,
		e.parser.getDefaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (p parser) createConfigFile(path string) error {
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("creating config file as it does not exist", "config-file", path)
		newConfigFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer newConfigFile.Close()

		if _, err := newConfigFile.WriteString(p.getDefaultConfigContents()); err != nil {
			return err
		}
	}

	return nil
}

func (p parser) ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

func (p parser) ensureConfigFile() (string, error) {
	path := env.DUOFM_CONFIG_PATH

	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return "", err
	}

	if err := p.createConfigFile(path); err != nil {
		return "", configError{
			parser:    p,
			configDir: filepath.Dir(path),
			err:       err,
		}
	}

	return path, nil
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (p parser) readConfigFile(path string) (Config, error) {
	cfg := NewDefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{
			configPath: path,
			configDir:  filepath.Dir(path),
			parser:     p,
			err:        err,
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := validate.Struct(cfg); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			return cfg, fmt.Errorf("validation error: field %s, %q is invalid", err.Field(), err.Value())
		}
	}
	return cfg, nil
}

func initParser() parser {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("validDuration", validDuration)
	_ = validate.RegisterValidation("validColor", validColor)

	return parser{}
}

func Parse(path string) (Config, error) {
	parser := initParser()

	var cfg Config
	var err error
	var configPath string

	if path == "" {
		configPath, err = parser.ensureConfigFile()
		if err != nil {
			return cfg, parsingError{err: err}
		}
	} else {
		configPath = path
	}
	slog.Debug("config file found", "config-file", configPath)

	cfg, err = parser.readConfigFile(configPath)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	return cfg, nil
}
