package ast

import (
	"strings"
)

// Statement is a complete SQL statement.
type Statement interface {
	String() string
	statementNode()
}

// CreateTable is CREATE [TEMPORARY] TABLE with columns, table options and an
// optional query.
type CreateTable struct {
	Temporary   bool
	IfNotExists bool
	Name        ObjectName
	Columns     []ColumnDef
	Constraints []TableConstraint
	Options     []SqlOption
	// AsKeyword records whether the query was introduced by AS.
	AsKeyword bool
	Query     *Select
}

// ColumnDef is a column definition of CREATE TABLE.
type ColumnDef struct {
	Name     Ident
	DataType DataType
	Options  []ColumnOption
}

// DataType is a column type such as varchar(64) or int unsigned.
type DataType struct {
	Name      string
	Args      []Expr
	Modifiers []string
}

// ColumnOptionKind identifies a column option.
type ColumnOptionKind int

const (
	ColumnNotNull ColumnOptionKind = iota
	ColumnNull
	ColumnDefault
	ColumnAutoIncrement
	ColumnPrimaryKey
	ColumnUnique
	ColumnComment
	ColumnCharacterSet
	ColumnCollate
)

var columnOptionNames = [...]string{
	ColumnNotNull:       "NOT NULL",
	ColumnNull:          "NULL",
	ColumnDefault:       "DEFAULT",
	ColumnAutoIncrement: "AUTO_INCREMENT",
	ColumnPrimaryKey:    "PRIMARY KEY",
	ColumnUnique:        "UNIQUE",
	ColumnComment:       "COMMENT",
	ColumnCharacterSet:  "CHARACTER SET",
	ColumnCollate:       "COLLATE",
}

func (k ColumnOptionKind) String() string {
	return columnOptionNames[k]
}

// ColumnOption is one option of a column definition. Value is set for
// DEFAULT and COMMENT, Name for CHARACTER SET and COLLATE.
type ColumnOption struct {
	Kind  ColumnOptionKind
	Value Expr
	Name  *Ident
}

// ConstraintKind identifies a table constraint.
type ConstraintKind int

const (
	ConstraintPrimaryKey ConstraintKind = iota
	ConstraintUnique
	ConstraintIndex
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintPrimaryKey:
		return "PRIMARY KEY"
	case ConstraintUnique:
		return "UNIQUE KEY"
	}
	return "KEY"
}

// TableConstraint is PRIMARY KEY (...), UNIQUE KEY name (...) or KEY name (...).
type TableConstraint struct {
	Kind    ConstraintKind
	Name    *Ident
	Columns []Ident
}

// CreateView is CREATE VIEW name AS SELECT ...
type CreateView struct {
	Name  ObjectName
	Query *Select
}

// Select is a single SELECT query block.
type Select struct {
	Distinct   bool
	Projection []SelectItem
	From       *TableFactor
	Where      Expr
	OrderBy    []OrderByExpr
	Limit      Expr
	Offset     Expr
	// LimitComma records the LIMIT offset, count form.
	LimitComma bool
}

// SelectItem is a projected expression with an optional alias.
type SelectItem struct {
	Expr  Expr
	Alias *Ident
}

// TableFactor is a table reference in FROM.
type TableFactor struct {
	Name  ObjectName
	Alias *Ident
	Hints []TableHint
}

// TableHint is USE|IGNORE|FORCE INDEX|KEY [FOR ...] (index, ...).
type TableHint struct {
	Type    string
	Keyword string
	For     string
	Indexes []Ident
}

// OrderByExpr is an ORDER BY item. Asc is nil when no direction was written.
type OrderByExpr struct {
	Expr Expr
	Asc  *bool
}

// Insert is INSERT INTO with either VALUES rows or SET assignments.
type Insert struct {
	Table       ObjectName
	Columns     []Ident
	Values      [][]Expr
	Assignments []Assignment
}

// Assignment is target = value.
type Assignment struct {
	Target ObjectName
	Value  Expr
}

// SetVariables is SET a = 1[, b = 2 ...].
type SetVariables struct {
	Assignments []Assignment
}

// SetNames is SET NAMES charset [COLLATE collation].
type SetNames struct {
	Charset   Ident
	Collation *Ident
}

// Grant is GRANT privileges ON object TO grantee, ...
type Grant struct {
	Privileges []string
	Object     []string
	Grantees   []Grantee
}

// Grantee is a user, optionally with the host of a 'user'@'host' account.
type Grantee struct {
	User Ident
	Host *Ident
}

func (*CreateTable) statementNode()  {}
func (*CreateView) statementNode()   {}
func (*Select) statementNode()       {}
func (*Insert) statementNode()       {}
func (*SetVariables) statementNode() {}
func (*SetNames) statementNode()     {}
func (*Grant) statementNode()        {}

func (s *CreateTable) String() string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if s.Temporary {
		b.WriteString("TEMPORARY ")
	}
	b.WriteString("TABLE ")
	if s.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(s.Name.String())
	if len(s.Columns) > 0 || len(s.Constraints) > 0 {
		elements := make([]string, 0, len(s.Columns)+len(s.Constraints))
		for _, c := range s.Columns {
			elements = append(elements, c.String())
		}
		for _, c := range s.Constraints {
			elements = append(elements, c.String())
		}
		b.WriteString(" (" + strings.Join(elements, ", ") + ")")
	}
	for _, o := range s.Options {
		b.WriteString(" " + o.String())
	}
	if s.Query != nil {
		if s.AsKeyword {
			b.WriteString(" AS")
		}
		b.WriteString(" " + s.Query.String())
	}
	return b.String()
}

func (c ColumnDef) String() string {
	s := c.Name.String() + " " + c.DataType.String()
	for _, o := range c.Options {
		s += " " + o.String()
	}
	return s
}

func (d DataType) String() string {
	s := d.Name
	if len(d.Args) > 0 {
		s += "(" + join(d.Args, ", ") + ")"
	}
	for _, m := range d.Modifiers {
		s += " " + m
	}
	return s
}

func (o ColumnOption) String() string {
	switch o.Kind {
	case ColumnDefault, ColumnComment:
		return o.Kind.String() + " " + o.Value.String()
	case ColumnCharacterSet, ColumnCollate:
		return o.Kind.String() + " " + o.Name.String()
	}
	return o.Kind.String()
}

func (c TableConstraint) String() string {
	s := c.Kind.String()
	if c.Name != nil {
		s += " " + c.Name.String()
	}
	return s + " (" + join(c.Columns, ", ") + ")"
}

func (s *CreateView) String() string {
	return "CREATE VIEW " + s.Name.String() + " AS " + s.Query.String()
}

func (s *Select) String() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if s.Distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString(join(s.Projection, ", "))
	if s.From != nil {
		b.WriteString(" FROM " + s.From.String())
	}
	if s.Where != nil {
		b.WriteString(" WHERE " + s.Where.String())
	}
	if len(s.OrderBy) > 0 {
		b.WriteString(" ORDER BY " + join(s.OrderBy, ", "))
	}
	if s.Limit != nil {
		if s.LimitComma {
			b.WriteString(" LIMIT " + s.Offset.String() + ", " + s.Limit.String())
		} else {
			b.WriteString(" LIMIT " + s.Limit.String())
			if s.Offset != nil {
				b.WriteString(" OFFSET " + s.Offset.String())
			}
		}
	}
	return b.String()
}

func (i SelectItem) String() string {
	if i.Alias != nil {
		return i.Expr.String() + " AS " + i.Alias.String()
	}
	return i.Expr.String()
}

func (t TableFactor) String() string {
	s := t.Name.String()
	if t.Alias != nil {
		s += " AS " + t.Alias.String()
	}
	for _, h := range t.Hints {
		s += " " + h.String()
	}
	return s
}

func (h TableHint) String() string {
	s := h.Type + " " + h.Keyword
	if h.For != "" {
		s += " FOR " + h.For
	}
	return s + " (" + join(h.Indexes, ", ") + ")"
}

func (o OrderByExpr) String() string {
	switch {
	case o.Asc == nil:
		return o.Expr.String()
	case *o.Asc:
		return o.Expr.String() + " ASC"
	default:
		return o.Expr.String() + " DESC"
	}
}

func (s *Insert) String() string {
	var b strings.Builder
	b.WriteString("INSERT INTO " + s.Table.String())
	if len(s.Columns) > 0 {
		b.WriteString(" (" + join(s.Columns, ", ") + ")")
	}
	if len(s.Assignments) > 0 {
		b.WriteString(" SET " + join(s.Assignments, ", "))
		return b.String()
	}
	rows := make([]string, len(s.Values))
	for i, row := range s.Values {
		rows[i] = "(" + join(row, ", ") + ")"
	}
	b.WriteString(" VALUES " + strings.Join(rows, ", "))
	return b.String()
}

func (a Assignment) String() string {
	return a.Target.String() + " = " + a.Value.String()
}

func (s *SetVariables) String() string {
	return "SET " + join(s.Assignments, ", ")
}

func (s *SetNames) String() string {
	if s.Collation != nil {
		return "SET NAMES " + s.Charset.String() + " COLLATE " + s.Collation.String()
	}
	return "SET NAMES " + s.Charset.String()
}

func (s *Grant) String() string {
	return "GRANT " + strings.Join(s.Privileges, ", ") + " ON " + strings.Join(s.Object, ".") +
		" TO " + join(s.Grantees, ", ")
}

func (g Grantee) String() string {
	if g.Host != nil {
		return g.User.String() + "@" + g.Host.String()
	}
	return g.User.String()
}
