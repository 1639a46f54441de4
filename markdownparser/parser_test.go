package markdownparser

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParse(t *testing.T) {
	input := `---
dialect: mysql
---

# Table maintenance

Lock before copying.

` + "```sql" + `
LOCK TABLES t1 READ;
UNLOCK TABLES;
` + "```" + `

## Schema

` + "```go" + `
fmt.Println("not sql")
` + "```" + `

- nested

  ` + "```SQL" + `
  CREATE TABLE t1 (id int) KEY_BLOCK_SIZE = 8
  ` + "```" + `
`

	doc, err := Parse(strings.NewReader(input), nil)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"dialect": "mysql"}, doc.Metadata)
	assert.Equal(t, "Table maintenance", doc.Title)
	assert.Equal(t, []SQLBlock{
		{
			Language:  "sql",
			Heading:   "Table maintenance",
			SQL:       "LOCK TABLES t1 READ;\nUNLOCK TABLES;",
			StartLine: 10,
		},
		{
			Language:  "SQL",
			Heading:   "Schema",
			SQL:       "CREATE TABLE t1 (id int) KEY_BLOCK_SIZE = 8",
			StartLine: 23,
		},
	}, doc.Blocks)
}

func TestParseLanguages(t *testing.T) {
	input := "```mysql\nSELECT 1\n```\n\n```sql\nSELECT 2\n```\n\n```sql\n```\n"

	doc, err := Parse(strings.NewReader(input), []string{"mysql"})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(doc.Blocks))
	assert.Equal(t, "SELECT 1", doc.Blocks[0].SQL)
	assert.Equal(t, 2, doc.Blocks[0].StartLine)
	assert.Equal(t, map[string]any{}, doc.Metadata)

	doc, err = Parse(strings.NewReader(input), nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(doc.Blocks))
	assert.Equal(t, "SELECT 2", doc.Blocks[0].SQL)
	assert.Equal(t, 6, doc.Blocks[0].StartLine)
}

func TestParseInvalidFrontMatter(t *testing.T) {
	_, err := Parse(strings.NewReader("---\ntitle: x\n"), nil)
	assert.True(t, errors.Is(err, ErrInvalidFrontMatter))

	_, err = Parse(strings.NewReader("---\na: [1, 2\n---\n"), nil)
	assert.True(t, errors.Is(err, ErrInvalidFrontMatter))
}
