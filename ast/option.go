package ast

import (
	"regexp"
)

// SqlOption is one table option of CREATE TABLE.
type SqlOption interface {
	String() string
	sqlOption()
}

// KeyValueOption is KEY = value.
type KeyValueOption struct {
	Key   Ident
	Value Expr
}

// IdentOption is an option without a value, such as START TRANSACTION.
type IdentOption struct {
	Name Ident
}

// TableSpaceOption is TABLESPACE name [STORAGE {DISK | MEMORY}].
type TableSpaceOption struct {
	Name    string
	Storage *StorageType
}

// UnionOption is UNION = (t1, t2, ...) of MERGE tables.
type UnionOption struct {
	Tables []Ident
}

func (*KeyValueOption) sqlOption()   {}
func (*IdentOption) sqlOption()      {}
func (*TableSpaceOption) sqlOption() {}
func (*UnionOption) sqlOption()      {}

func (o *KeyValueOption) String() string {
	return o.Key.String() + " = " + o.Value.String()
}

func (o *IdentOption) String() string { return o.Name.String() }

var bareName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

func (o *TableSpaceOption) String() string {
	name := o.Name
	if !bareName.MatchString(name) {
		name = quoteString(name, '\'')
	}
	s := "TABLESPACE " + name
	if o.Storage != nil {
		s += " STORAGE " + o.Storage.String()
	}
	return s
}

func (o *UnionOption) String() string {
	return "UNION = (" + join(o.Tables, ", ") + ")"
}

// StorageType is the storage engine placement of a tablespace.
type StorageType int

const (
	StorageDisk StorageType = iota
	StorageMemory
)

func (s StorageType) String() string {
	if s == StorageMemory {
		return "MEMORY"
	}
	return "DISK"
}

// Storage returns a pointer to s, for building TableSpaceOption literals.
func Storage(s StorageType) *StorageType {
	return &s
}
