package mysqldialect

import (
	"slices"
	"strings"

	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/parser"
	tok "github.com/shibukawa/dialectsql/tokenizer"
)

// valueShape is the kind of token an option value starts with.
type valueShape int

const (
	shapeNone valueShape = iota
	shapeNumber
	shapeWord
	shapeString
	shapeParen
)

func shapeOf(t tok.Token) valueShape {
	switch t.Type {
	case tok.NUMBER:
		return shapeNumber
	case tok.WORD:
		return shapeWord
	case tok.STRING:
		return shapeString
	case tok.OPENED_PARENS:
		return shapeParen
	}
	return shapeNone
}

// optionBuilder turns the first value token of an option into a node. It may
// read further tokens from p.
type optionBuilder func(p *parser.Parser, kw tok.Keyword, t tok.Token) (ast.SqlOption, error)

// optionRule accepts one value shape, optionally narrowed by a guard.
type optionRule struct {
	shape  valueShape
	accept func(t tok.Token) bool
	build  optionBuilder
	syntax string
}

func (r optionRule) matches(t tok.Token) bool {
	return shapeOf(t) == r.shape && (r.accept == nil || r.accept(t))
}

// optionKeywords lists the recognised options in dispatch order.
var optionKeywords = []tok.Keyword{
	tok.INSERT_METHOD,
	tok.KEY_BLOCK_SIZE,
	tok.ROW_FORMAT,
	tok.DATA,
	tok.INDEX,
	tok.PACK_KEYS,
	tok.STATS_AUTO_RECALC,
	tok.STATS_PERSISTENT,
	tok.STATS_SAMPLE_PAGES,
	tok.DELAY_KEY_WRITE,
	tok.COMPRESSION,
	tok.ENCRYPTION,
	tok.MAX_ROWS,
	tok.MIN_ROWS,
	tok.AUTOEXTEND_SIZE,
	tok.AVG_ROW_LENGTH,
	tok.CHECKSUM,
	tok.CONNECTION,
	tok.ENGINE_ATTRIBUTE,
	tok.PASSWORD,
	tok.SECONDARY_ENGINE_ATTRIBUTE,
	tok.START,
	tok.TABLESPACE,
	tok.UNION,
}

var (
	numberRule = optionRule{shape: shapeNumber, build: buildNumber, syntax: "number"}
	stringRule = optionRule{shape: shapeString, build: buildString, syntax: "'string'"}
	// defaultRule stores the DEFAULT word as a string value.
	defaultRule = optionRule{shape: shapeWord, accept: valueIn("DEFAULT"), build: buildString, syntax: "DEFAULT"}
	// quotedDefaultRule exists only so that the rendered form 'DEFAULT' parses
	// again. MySQL itself rejects a quoted DEFAULT for these options.
	quotedDefaultRule = optionRule{shape: shapeString, accept: valueIn("DEFAULT"), build: buildString, syntax: "'DEFAULT'"}
)

var optionRules = map[tok.Keyword][]optionRule{
	tok.INSERT_METHOD:  {{shape: shapeWord, accept: valueIn("NO", "FIRST", "LAST"), build: buildWord, syntax: "NO | FIRST | LAST"}},
	tok.KEY_BLOCK_SIZE: {numberRule},
	tok.ROW_FORMAT:     {{shape: shapeWord, build: buildWord, syntax: "word"}},
	tok.DATA:           {directoryRule("DATA DIRECTORY")},
	tok.INDEX:          {directoryRule("INDEX DIRECTORY")},

	tok.PACK_KEYS:          {numberRule, defaultRule, quotedDefaultRule},
	tok.STATS_AUTO_RECALC:  {numberRule, defaultRule, quotedDefaultRule},
	tok.STATS_PERSISTENT:   {numberRule, defaultRule, quotedDefaultRule},
	tok.STATS_SAMPLE_PAGES: {numberRule},
	tok.DELAY_KEY_WRITE:    {numberRule},

	tok.COMPRESSION: {{shape: shapeString, accept: valueIn("ZLIB", "LZ4", "NONE"), build: buildString, syntax: "'ZLIB' | 'LZ4' | 'NONE'"}},
	tok.ENCRYPTION:  {stringRule},

	tok.MAX_ROWS:        {numberRule},
	tok.MIN_ROWS:        {numberRule},
	tok.AUTOEXTEND_SIZE: {numberRule},
	tok.AVG_ROW_LENGTH:  {numberRule},
	tok.CHECKSUM:        {numberRule},

	tok.CONNECTION:                 {stringRule},
	tok.ENGINE_ATTRIBUTE:           {stringRule},
	tok.PASSWORD:                   {stringRule},
	tok.SECONDARY_ENGINE_ATTRIBUTE: {stringRule},

	tok.START: {{shape: shapeWord, accept: isKeyword(tok.TRANSACTION), build: buildStartTransaction, syntax: "TRANSACTION"}},
	tok.TABLESPACE: {
		{shape: shapeWord, build: buildTablespace, syntax: "name [STORAGE [=] DISK | MEMORY]"},
		{shape: shapeString, build: buildTablespace, syntax: "'name' [STORAGE [=] DISK | MEMORY]"},
	},
	tok.UNION: {{shape: shapeParen, build: buildUnion, syntax: "(table, ...)"}},
}

// ParsePlainOption parses one MySQL table option. It returns (nil, nil)
// without consuming anything when the next token is not a MySQL option
// keyword, so the host can try its own options.
func (Dialect) ParsePlainOption(p *parser.Parser) (ast.SqlOption, error) {
	kw := p.ParseOneOfKeywords(optionKeywords...)
	if kw == tok.NoKeyword {
		return nil, nil
	}
	p.ConsumeToken(tok.EQUAL)

	t := p.NextToken()
	for _, rule := range optionRules[kw] {
		if rule.matches(t) {
			return rule.build(p, kw, t)
		}
	}
	return nil, parser.NewParserError(parser.ErrNoMatchingValue, t.Position,
		"Table option %s does not have a matching value", kw)
}

// OptionKeywords returns the recognised table option keywords in dispatch order.
func OptionKeywords() []tok.Keyword {
	return slices.Clone(optionKeywords)
}

// OptionSyntax describes the values accepted by one table option.
type OptionSyntax struct {
	Keyword string
	Values  []string
}

// DescribeOptions lists every table option with its accepted values.
func DescribeOptions() []OptionSyntax {
	result := make([]OptionSyntax, 0, len(optionKeywords))
	for _, kw := range optionKeywords {
		entry := OptionSyntax{Keyword: kw.String()}
		for _, rule := range optionRules[kw] {
			entry.Values = append(entry.Values, rule.syntax)
		}
		result = append(result, entry)
	}
	return result
}

// valueIn matches a token whose text equals one of values, ignoring case.
func valueIn(values ...string) func(tok.Token) bool {
	return func(t tok.Token) bool {
		return slices.ContainsFunc(values, func(v string) bool { return strings.EqualFold(v, t.Value) })
	}
}

func isKeyword(kw tok.Keyword) func(tok.Token) bool {
	return func(t tok.Token) bool { return t.IsKeyword(kw) }
}

func keyValue(key string, value ast.Expr) *ast.KeyValueOption {
	return &ast.KeyValueOption{Key: ast.NewIdent(key), Value: value}
}

func buildNumber(_ *parser.Parser, kw tok.Keyword, t tok.Token) (ast.SqlOption, error) {
	d, err := parser.ParseNumber(t.Value, t.Position)
	if err != nil {
		return nil, err
	}
	return keyValue(kw.String(), ast.NewValue(ast.NumberValue{Raw: t.Value, Number: d, Long: t.Long})), nil
}

func buildString(_ *parser.Parser, kw tok.Keyword, t tok.Token) (ast.SqlOption, error) {
	return keyValue(kw.String(), ast.NewValue(ast.SingleQuotedString(t.Value))), nil
}

func buildWord(_ *parser.Parser, kw tok.Keyword, t tok.Token) (ast.SqlOption, error) {
	return keyValue(kw.String(), &ast.Identifier{Ident: ast.Ident{Value: t.Value, QuoteStyle: t.Quote}}), nil
}

func buildStartTransaction(*parser.Parser, tok.Keyword, tok.Token) (ast.SqlOption, error) {
	return &ast.IdentOption{Name: ast.NewIdent("START TRANSACTION")}, nil
}

// directoryRule matches DATA DIRECTORY [=] 'path' and INDEX DIRECTORY [=] 'path'.
func directoryRule(key string) optionRule {
	return optionRule{
		shape:  shapeWord,
		accept: isKeyword(tok.DIRECTORY),
		syntax: "DIRECTORY [=] 'path'",
		build: func(p *parser.Parser, _ tok.Keyword, _ tok.Token) (ast.SqlOption, error) {
			p.ConsumeToken(tok.EQUAL)
			t := p.NextToken()
			if t.Type != tok.STRING {
				return nil, p.Expected("literal string", t)
			}
			return keyValue(key, ast.NewValue(ast.SingleQuotedString(t.Value))), nil
		},
	}
}

// buildTablespace reads the rest of TABLESPACE name [STORAGE [=] DISK|MEMORY].
func buildTablespace(p *parser.Parser, _ tok.Keyword, name tok.Token) (ast.SqlOption, error) {
	option := &ast.TableSpaceOption{Name: name.Value}
	if !p.ParseKeyword(tok.STORAGE) {
		return option, nil
	}
	p.ConsumeToken(tok.EQUAL)

	t := p.NextToken()
	if t.Type == tok.WORD {
		switch strings.ToUpper(t.Value) {
		case "DISK":
			option.Storage = ast.Storage(ast.StorageDisk)
			return option, nil
		case "MEMORY":
			option.Storage = ast.Storage(ast.StorageMemory)
			return option, nil
		}
	}
	return nil, p.Expected("Storage type (DISK or MEMORY)", t)
}

// buildUnion reads the rest of UNION (t1, t2, ...). The list may be empty.
func buildUnion(p *parser.Parser, _ tok.Keyword, _ tok.Token) (ast.SqlOption, error) {
	tables, err := parser.ParseCommaSeparated0(p, (*parser.Parser).ParseIdentifier, tok.CLOSED_PARENS)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(tok.CLOSED_PARENS); err != nil {
		return nil, err
	}
	return &ast.UnionOption{Tables: tables}, nil
}
