package markdownparser

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// parseFrontMatter splits YAML front matter from markdown content. It also
// returns the number of newlines consumed, so line numbers in the remaining
// content can be mapped back to the original document.
func parseFrontMatter(content string) (map[string]any, string, int, error) {
	if !strings.HasPrefix(content, "---\n") {
		return make(map[string]any), content, 0, nil
	}

	endIndex := strings.Index(content[4:], "\n---")
	if endIndex == -1 {
		return nil, "", 0, ErrInvalidFrontMatter
	}

	endIndex += 4

	frontMatterContent := content[4:endIndex]
	remainingContent := content[endIndex+4:]

	var frontMatter map[string]any

	err := yaml.Unmarshal([]byte(frontMatterContent), &frontMatter)
	if err != nil {
		return nil, "", 0, fmt.Errorf("%w: %w", ErrInvalidFrontMatter, err)
	}

	if frontMatter == nil {
		frontMatter = make(map[string]any)
	}

	return frontMatter, remainingContent, strings.Count(content[:endIndex+4], "\n"), nil
}
