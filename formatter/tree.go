package formatter

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/shibukawa/dialectsql/ast"
)

// Node is a format-neutral view of an AST node: its Go type name and the
// fields that are set, in declaration order.
type Node struct {
	Type   string
	Fields []Field
}

// Field is one named value of a Node. Value is a string, a bool, a *Node or
// a []any of those.
type Field struct {
	Name  string
	Value any
}

var (
	identType      = reflect.TypeFor[ast.Ident]()
	objectNameType = reflect.TypeFor[ast.ObjectName]()
	valueType      = reflect.TypeFor[ast.Value]()
	stringerType   = reflect.TypeFor[fmt.Stringer]()
)

// Tree converts a statement into a Node tree.
func Tree(stmt ast.Statement) *Node {
	n, _ := toTree(reflect.ValueOf(stmt)).(*Node)
	return n
}

func toTree(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}

	t := v.Type()
	switch {
	case t == identType || t == objectNameType:
		return v.Interface().(fmt.Stringer).String()
	case t.Implements(valueType) && t.Kind() != reflect.Interface:
		return v.Interface().(fmt.Stringer).String()
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		// a set *bool is meaningful even when false
		if v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Bool {
			return v.Elem().Bool()
		}
		return toTree(v.Elem())
	case reflect.Struct:
		return structTree(v)
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		items := make([]any, v.Len())
		for i := range items {
			items[i] = toTree(v.Index(i))
		}
		return items
	case reflect.Bool:
		if !v.Bool() {
			return nil
		}
		return true
	case reflect.String:
		if v.String() == "" {
			return nil
		}
		return v.String()
	}

	if t.Implements(stringerType) {
		if s := v.Interface().(fmt.Stringer).String(); s != "" {
			return s
		}
		return nil
	}
	return fmt.Sprint(v.Interface())
}

func structTree(v reflect.Value) *Node {
	t := v.Type()
	n := &Node{Type: t.Name()}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if value := toTree(v.Field(i)); value != nil {
			n.Fields = append(n.Fields, Field{Name: snakeCase(f.Name), Value: value})
		}
	}
	return n
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
