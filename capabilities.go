package dialectsql

import "github.com/shibukawa/dialectsql/parser"

// Capability is one boolean flag a dialect reports to the parser.
type Capability struct {
	Name      string `yaml:"name" json:"name"`
	Lexical   bool   `yaml:"lexical" json:"lexical"`
	Supported bool   `yaml:"supported" json:"supported"`
}

type capabilityProbe struct {
	name    string
	lexical bool
	get     func(parser.Dialect) bool
}

var capabilityProbes = []capabilityProbe{
	{"string_literal_backslash_escape", true, func(d parser.Dialect) bool { return d.SupportsStringLiteralBackslashEscape() }},
	{"ignores_wildcard_escapes", true, func(d parser.Dialect) bool { return d.IgnoresWildcardEscapes() }},
	{"numeric_prefix", true, func(d parser.Dialect) bool { return d.SupportsNumericPrefix() }},
	{"single_line_comment_whitespace", true, func(d parser.Dialect) bool { return d.RequiresSingleLineCommentWhitespace() }},
	{"require_interval_qualifier", false, func(d parser.Dialect) bool { return d.RequireIntervalQualifier() }},
	{"limit_comma", false, func(d parser.Dialect) bool { return d.SupportsLimitComma() }},
	{"create_table_select", false, func(d parser.Dialect) bool { return d.SupportsCreateTableSelect() }},
	{"insert_set", false, func(d parser.Dialect) bool { return d.SupportsInsertSet() }},
	{"user_host_grantee", false, func(d parser.Dialect) bool { return d.SupportsUserHostGrantee() }},
	{"table_hints", false, func(d parser.Dialect) bool { return d.SupportsTableHints() }},
	{"match_against", false, func(d parser.Dialect) bool { return d.SupportsMatchAgainst() }},
	{"set_names", false, func(d parser.Dialect) bool { return d.SupportsSetNames() }},
	{"comma_separated_set_assignments", false, func(d parser.Dialect) bool { return d.SupportsCommaSeparatedSetAssignments() }},
}

// Capabilities reports every flag of d in a fixed order.
func Capabilities(d parser.Dialect) []Capability {
	result := make([]Capability, len(capabilityProbes))
	for i, probe := range capabilityProbes {
		result[i] = Capability{Name: probe.name, Lexical: probe.lexical, Supported: probe.get(d)}
	}
	return result
}

// IdentifierRules summarises how d classifies identifier characters.
type IdentifierRules struct {
	QuoteStyle     string `yaml:"quote_style" json:"quote_style"`
	DollarStart    bool   `yaml:"dollar_start" json:"dollar_start"`
	AtStart        bool   `yaml:"at_start" json:"at_start"`
	DigitStart     bool   `yaml:"digit_start" json:"digit_start"`
	NonASCIILetter bool   `yaml:"non_ascii_letter" json:"non_ascii_letter"`
}

// DescribeIdentifiers probes the identifier rules of d.
func DescribeIdentifiers(d parser.Dialect) IdentifierRules {
	rules := IdentifierRules{
		DollarStart:    d.IsIdentifierStart('$'),
		AtStart:        d.IsIdentifierStart('@'),
		DigitStart:     d.IsIdentifierStart('1'),
		NonASCIILetter: d.IsIdentifierStart('é'),
	}
	if quote, ok := d.IdentifierQuoteStyle(""); ok {
		rules.QuoteStyle = string(quote)
	}
	return rules
}
