package tokenizer

// Keyword identifies a reserved or contextual SQL word.
// Words that are not in the table carry NoKeyword.
type Keyword int

// String returns the canonical upper-case spelling of the keyword.
func (k Keyword) String() string {
	if k <= NoKeyword || int(k) >= len(keywordNames) {
		return ""
	}
	return keywordNames[k]
}

var keywordLookup = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames))
	for i, name := range keywordNames {
		if name != "" {
			m[name] = Keyword(i)
		}
	}
	return m
}()

// LookupKeyword returns the keyword for an upper-case word, or NoKeyword.
func LookupKeyword(upper string) Keyword {
	return keywordLookup[upper]
}

// ReservedForTableAlias lists keywords that can never be an implicit table alias
// because they start the clause that follows a table factor.
var ReservedForTableAlias = []Keyword{
	WITH, SELECT, WHERE, GROUP, HAVING, ORDER, VIEW, LIMIT, OFFSET, FETCH,
	UNION, EXCEPT, INTERSECT, ON, JOIN, INNER, CROSS, FULL, LEFT, RIGHT,
	NATURAL, USING, OUTER, SET, WINDOW, END, FOR, START, FROM,
}
