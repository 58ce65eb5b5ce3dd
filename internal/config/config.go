// Package config loads fontsjson settings from defaults, an optional config
// file, the environment (including a dotenv file) and finally CLI flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "FONTSJSON_"

// DefaultEnvFile is loaded when present; a missing one is ignored
const DefaultEnvFile = ".env"

// Policies for files whose names produce no key
const (
	PolicyAbort = "abort"
	PolicySkip  = "skip"
)

// Config holds the settings of one manifest generation run
type Config struct {
	FolderPath   string   `toml:"folder_path" yaml:"folder_path" env:"FOLDER_PATH"`
	BaseURL      string   `toml:"base_url" yaml:"base_url" env:"BASE_URL"`
	OutputFile   string   `toml:"output_file" yaml:"output_file" env:"OUTPUT_FILE"`
	Extensions   []string `toml:"extensions" yaml:"extensions" env:"EXTENSIONS" envSeparator:","`
	OnDegenerate string   `toml:"on_degenerate" yaml:"on_degenerate" env:"ON_DEGENERATE"`
}

// Default returns the built-in settings. BaseURL has no default.
func Default() Config {
	return Config{
		FolderPath:   "./fonts",
		OutputFile:   "fonts.json",
		OnDegenerate: PolicyAbort,
	}
}

// LoadFile decodes a TOML or YAML file over cfg, chosen by extension.
// Keys that do not map to a field are an error.
func (cfg *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		decoder := toml.NewDecoder(f)
		decoder.DisallowUnknownFields()
		err = decoder.Decode(cfg)
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(f)
		decoder.KnownFields(true)
		err = decoder.Decode(cfg)
	default:
		return fmt.Errorf("unsupported config file type %q (want .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv loads envFile into the process environment without overriding
// variables that are already set, then applies FONTSJSON_* variables to cfg.
// An empty envFile means DefaultEnvFile, which may be absent.
func (cfg *Config) LoadEnv(envFile string) error {
	required := envFile != ""
	if !required {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	// Unset variables leave the current values alone.
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// Normalize trims whitespace and puts extensions in ".ext" lowercase form
func (cfg *Config) Normalize() {
	cfg.FolderPath = strings.TrimSpace(cfg.FolderPath)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.OutputFile = strings.TrimSpace(cfg.OutputFile)
	cfg.OnDegenerate = strings.ToLower(strings.TrimSpace(cfg.OnDegenerate))

	exts := make([]string, 0, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	cfg.Extensions = exts
}

// Validate checks that every required setting is present
func (cfg *Config) Validate() error {
	if cfg.FolderPath == "" {
		return errors.New("folder path is required (set via -folder or " + EnvPrefix + "FOLDER_PATH)")
	}
	if cfg.BaseURL == "" {
		return errors.New("base URL is required (set via -base-url or " + EnvPrefix + "BASE_URL)")
	}
	if cfg.OutputFile == "" {
		return errors.New("output file is required (set via -output or " + EnvPrefix + "OUTPUT_FILE)")
	}
	switch cfg.OnDegenerate {
	case PolicyAbort, PolicySkip:
	default:
		return fmt.Errorf("invalid on-degenerate policy %q (want %s or %s)", cfg.OnDegenerate, PolicyAbort, PolicySkip)
	}
	return nil
}
