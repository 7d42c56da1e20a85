package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/conduit-lang/pathgen/internal/compiler/errors"
	utilstrings "github.com/conduit-lang/pathgen/internal/util/strings"
)

// FileBase is the config file name without extension
const FileBase = "pathgen"

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "PATHGEN"

// Defaults
const (
	DefaultAppDir    = "src/app"
	DefaultEnvKey    = "NEXT_PUBLIC_APP_BASE_URL"
	DefaultCaseStyle = string(utilstrings.CamelCase)
	DefaultFileName  = "paths.ts"
)

// Config represents the pathgen configuration
type Config struct {
	AppDir    string `mapstructure:"app_dir" yaml:"app_dir" validate:"required"`
	EnvKey    string `mapstructure:"env_key" yaml:"env_key" validate:"required"`
	CaseStyle string `mapstructure:"case_style" yaml:"case_style" validate:"required,oneof=camelCase lowerSnake upperSnake pascalCase"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir,omitempty"`
	FileName  string `mapstructure:"file_name" yaml:"file_name" validate:"required,endswith=.ts"`

	// File is the config file that was read, if any
	File string `mapstructure:"-" yaml:"-"`
}

// flagKeys maps command flags to config keys
var flagKeys = map[string]string{
	"app-dir":    "app_dir",
	"env":        "env_key",
	"case":       "case_style",
	"output-dir": "output_dir",
	"file-name":  "file_name",
}

var validate = validator.New()

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		AppDir:    DefaultAppDir,
		EnvKey:    DefaultEnvKey,
		CaseStyle: DefaultCaseStyle,
		FileName:  DefaultFileName,
	}
}

// Load resolves the configuration from defaults, the config file, PATHGEN_*
// environment variables and explicitly set flags, in increasing priority.
// configFile may be empty, in which case pathgen.yaml or pathgen.yml is
// looked up from the working directory upwards. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("app_dir", def.AppDir)
	v.SetDefault("env_key", def.EnvKey)
	v.SetDefault("case_style", def.CaseStyle)
	v.SetDefault("output_dir", "")
	v.SetDefault("file_name", def.FileName)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile == "" {
		if found, ok := FindConfigFile(); ok {
			configFile = found
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
				}
			}
		}
		if snake := flags.Lookup("snake"); snake != nil && snake.Changed && snake.Value.String() == "true" {
			if c := flags.Lookup("case"); c != nil && c.Changed {
				return nil, errors.NewInvalidConfig("--snake", "cannot be combined with --case")
			}
			v.Set("case_style", string(utilstrings.LowerSnake))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = configFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes style aliases and checks every field
func (c *Config) Validate() error {
	if style, err := utilstrings.ParseStyle(c.CaseStyle); err == nil {
		c.CaseStyle = string(style)
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.NewInvalidConfig("config", err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "FileName":
		return errors.NewInvalidFileName(c.FileName)
	case "CaseStyle":
		return errors.NewInvalidCaseStyle(c.CaseStyle, utilstrings.Styles())
	case "EnvKey":
		return errors.NewEmptyEnvKey()
	default:
		return errors.NewInvalidConfig(configKey(fe.Field()), "failed on the '"+fe.Tag()+"' rule")
	}
}

// AbsAppDir returns the app directory resolved against the working directory
func (c *Config) AbsAppDir() (string, error) {
	return resolve(c.AppDir)
}

// AbsOutputDir returns the output directory resolved against the working
// directory; empty stays empty so the app directory is used
func (c *Config) AbsOutputDir() (string, error) {
	if c.OutputDir == "" {
		return "", nil
	}
	return resolve(c.OutputDir)
}

func resolve(dir string) (string, error) {
	if strings.Contains(dir, "://") || filepath.IsAbs(dir) {
		return dir, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	return abs, nil
}

// FindConfigFile walks from the working directory up to the filesystem root
// looking for pathgen.yaml or pathgen.yml
func FindConfigFile() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		for _, ext := range []string{".yaml", ".yml"} {
			candidate := filepath.Join(dir, FileBase+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// configKey converts a struct field name to its config key
func configKey(field string) string {
	return utilstrings.Convert(field, utilstrings.LowerSnake)
}
