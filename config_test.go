package dialectsql

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/dialectsql/mysqldialect"
	"github.com/shibukawa/dialectsql/parser"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
	err := os.WriteFile(configPath, []byte(content), 0644)
	assert.NoError(t, err)
	return configPath
}

func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, getDefaultConfig(), config)
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	t.Setenv("DIALECTSQL_TEST_DSN", "root:secret@tcp(localhost:3306)/app")

	configPath := writeConfig(t, `
dialect: mysql
output: json
strict: true
markdown:
  languages: [sql]
databases:
  local:
    driver: mysql
    connection: "${DIALECTSQL_TEST_DSN}?parseTime=true"
`)

	config, err := LoadConfig(configPath)
	assert.NoError(t, err)
	assert.Equal(t, "mysql", config.Dialect)
	assert.Equal(t, "json", config.Output)
	assert.True(t, config.Strict)
	assert.Equal(t, []string{"sql"}, config.Markdown.Languages)

	db, err := config.Database("local")
	assert.NoError(t, err)
	assert.Equal(t, Database{Driver: "mysql", Connection: "root:secret@tcp(localhost:3306)/app?parseTime=true"}, db)

	_, err = config.Database("production")
	assert.True(t, errors.Is(err, ErrEnvironmentNotFound))
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, "strict: true\n"))
	assert.NoError(t, err)
	assert.Equal(t, "mysql", config.Dialect)
	assert.Equal(t, "yaml", config.Output)
	assert.Equal(t, []string{"sql", "mysql"}, config.Markdown.Languages)
	assert.Equal(t, map[string]Database{}, config.Databases)

	d, err := config.ParserDialect()
	assert.NoError(t, err)
	assert.Equal(t, parser.Dialect(mysqldialect.Dialect{}), d)
}

func TestLoadConfig_StrictMode_UnknownKeys(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
dialect: mysql
unknown_key: "should cause error"
`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"invalid dialect", "dialect: oracle\n", "Dialect 'oracle' is invalid: must be one of generic, mysql"},
		{"invalid output", "output: csv\n", "Output 'csv' is invalid: must be one of yaml, json, xml, sql"},
		{"empty language", "markdown:\n  languages: ['']\n", "Markdown.Languages[0] is required"},
		{"missing connection", "databases:\n  local:\n    driver: mysql\n", "Databases[local].Connection is required"},
		{"unsupported driver", "databases:\n  local:\n    driver: postgres\n    connection: x\n", "Databases[local].Driver 'postgres' is invalid: must be one of mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigValidation))
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestLoadConfig_ValidatesExpandedValues(t *testing.T) {
	t.Setenv("DIALECTSQL_TEST_DRIVER", "mysql")
	t.Setenv("DIALECTSQL_TEST_EMPTY", "")

	config, err := LoadConfig(writeConfig(t, "databases:\n  dev:\n    driver: ${DIALECTSQL_TEST_DRIVER}\n    connection: root@tcp(db)/app\n"))
	assert.NoError(t, err)
	assert.Equal(t, "mysql", config.Databases["dev"].Driver)

	_, err = LoadConfig(writeConfig(t, "databases:\n  dev:\n    driver: mysql\n    connection: ${DIALECTSQL_TEST_EMPTY}\n"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigValidation))
	assert.Contains(t, err.Error(), "Databases[dev].Connection is required")
}
