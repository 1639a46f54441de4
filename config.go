package dialectsql

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/shibukawa/dialectsql/parser"
)

// DefaultConfigFile is the configuration file looked up by the CLI.
const DefaultConfigFile = "dialectsql.yaml"

// Config represents the dialectsql configuration
type Config struct {
	Dialect   string              `yaml:"dialect" validate:"omitempty,oneof=generic mysql"`
	Output    string              `yaml:"output" validate:"omitempty,oneof=yaml json xml sql"`
	Strict    bool                `yaml:"strict"`
	Markdown  MarkdownConfig      `yaml:"markdown"`
	Databases map[string]Database `yaml:"databases" validate:"dive"`
}

// MarkdownConfig controls which fenced code blocks are read from Markdown input.
type MarkdownConfig struct {
	Languages []string `yaml:"languages" validate:"dive,required"`
}

// Database represents database connection configuration used by verify
type Database struct {
	Driver     string `yaml:"driver" validate:"required,oneof=mysql"`
	Connection string `yaml:"connection" validate:"required"`
}

// LoadConfig loads configuration from the specified file. A missing file
// yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Strict mode rejects unknown keys
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

var validate = validator.New()

func validateConfig(config *Config) error {
	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, describeFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrConfigValidation, strings.Join(messages, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s '%v' is invalid: must be one of %s", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s failed on '%s'", field, fe.Tag())
}

func getDefaultConfig() *Config {
	return &Config{
		Dialect:   string(DialectMySQL),
		Output:    "yaml",
		Markdown:  MarkdownConfig{Languages: []string{"sql", "mysql"}},
		Databases: make(map[string]Database),
	}
}

func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.Dialect == "" {
		config.Dialect = defaults.Dialect
	}

	if config.Output == "" {
		config.Output = defaults.Output
	}

	if len(config.Markdown.Languages) == 0 {
		config.Markdown.Languages = defaults.Markdown.Languages
	}

	if config.Databases == nil {
		config.Databases = make(map[string]Database)
	}
}

func loadEnvFiles() error {
	for _, file := range []string{".env.local", ".env"} {
		if !fileExists(file) {
			continue
		}
		// godotenv.Load never overrides, so .env.local wins over .env
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load %s file: %w", file, err)
		}
	}

	return nil
}

func expandConfigEnvVars(config *Config) {
	for name, db := range config.Databases {
		db.Driver = os.ExpandEnv(db.Driver)
		db.Connection = os.ExpandEnv(db.Connection)
		config.Databases[name] = db
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// Database returns the connection settings for the named environment.
func (c *Config) Database(env string) (Database, error) {
	db, ok := c.Databases[env]
	if !ok {
		return Database{}, fmt.Errorf("%w: '%s'", ErrEnvironmentNotFound, env)
	}

	return db, nil
}

// ParserDialect resolves the configured dialect name.
func (c *Config) ParserDialect() (parser.Dialect, error) {
	return Lookup(c.Dialect)
}
