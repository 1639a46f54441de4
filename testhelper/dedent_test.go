package testhelper

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDedent(t *testing.T) {
	src := `
		# Title

		` + "```sql" + `
		SELECT 1;
		` + "```" + `
	`
	assert.Equal(t, "# Title\n\n```sql\nSELECT 1;\n```\n", Dedent(t, src))

	assert.Equal(t, "a\n    b", Dedent(t, "\n\ta\n\t\tb"))
	assert.Equal(t, "single", Dedent(t, "single"))
}
