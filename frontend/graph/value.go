package graph

import (
	"fmt"

	"github.com/cottand/inet/frontend/types"
)

// Value is anything that can live on the stack of a composition:
// a Port, a Symbol, a Labeled value, or a TypeValue.
type Value interface {
	valueNode()
	Kind() string
}

// Symbol is an opaque tag. It does not reference the net.
type Symbol struct {
	Name string
}

// Labeled wraps another value with a label used when displaying it.
type Labeled struct {
	Value       Value
	Label       string
	IsImportant bool
}

// TypeValue is a type produced by composing type words, like those of a claim.
type TypeValue struct {
	T types.Type
}

func (Port) valueNode()      {}
func (Symbol) valueNode()    {}
func (Labeled) valueNode()   {}
func (TypeValue) valueNode() {}

func (Port) Kind() string      { return "Port" }
func (Symbol) Kind() string    { return "Symbol" }
func (Labeled) Kind() string   { return "Labeled" }
func (TypeValue) Kind() string { return "Type" }

// FormatValue renders v on a single line.
func FormatValue(v Value) string {
	switch v := v.(type) {
	case Port:
		return v.String()
	case Symbol:
		return "'" + v.Name
	case Labeled:
		if v.IsImportant {
			return fmt.Sprintf("%s :%s!", FormatValue(v.Value), v.Label)
		}
		return fmt.Sprintf("%s :%s", FormatValue(v.Value), v.Label)
	case TypeValue:
		return v.T.String()
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("<unknown value %T>", v)
	}
}

// FormatValues renders each of values with FormatValue.
func FormatValues(values []Value) []string {
	formatted := make([]string, 0, len(values))
	for _, v := range values {
		formatted = append(formatted, FormatValue(v))
	}
	return formatted
}
