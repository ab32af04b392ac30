// Package value implements the language-neutral Value sum type that
// the matching engine dispatches on: Null, Bool, Integer, Decimal,
// String, Bytes, List, Map. Decoding from JSON/XML/bytes into this
// shape happens in the structural matcher packages; this package only
// carries the type and its kind-name helpers used in diagnostics.
package value

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindDecimal
	KindString
	KindBytes
	KindList
	KindMap
)

// String returns the diagnostic kind name used in mismatch messages,
// e.g. "Type mismatch: Expected Map ... but received List ...".
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindDecimal:
		return "Decimal"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Value is a tagged union over the scalar and structural value kinds
// the matching engine understands.
type Value struct {
	Kind    Kind
	Bool    bool
	Integer int64
	Decimal decimal.Decimal
	String  string
	Bytes   []byte
	List    []Value
	Map     map[string]Value
	// Keys preserves map insertion order for deterministic diagnostics
	// and output; Map itself is keyed for O(1) lookup.
	Keys []string
}

func Null() Value           { return Value{Kind: KindNull} }
func Bool(b bool) Value     { return Value{Kind: KindBool, Bool: b} }
func Integer(i int64) Value { return Value{Kind: KindInteger, Integer: i} }
func Decimal_(d decimal.Decimal) Value { return Value{Kind: KindDecimal, Decimal: d} }
func String(s string) Value { return Value{Kind: KindString, String: s} }
func Bytes(b []byte) Value  { return Value{Kind: KindBytes, Bytes: b} }
func List(vs []Value) Value { return Value{Kind: KindList, List: vs} }

// NewMap builds an ordered Map value from the given keys, in order.
func NewMap(keys []string, m map[string]Value) Value {
	return Value{Kind: KindMap, Map: m, Keys: keys}
}

// Display renders a Value the way the Rust original's diagnostics do:
// scalars print their bare value, structures print a short summary.
func (v Value) Display() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%v", v.Bool)
	case KindInteger:
		return fmt.Sprintf("%d", v.Integer)
	case KindDecimal:
		return v.Decimal.String()
	case KindString:
		return v.String
	case KindBytes:
		return string(v.Bytes)
	case KindList:
		return fmt.Sprintf("[%d items]", len(v.List))
	case KindMap:
		return fmt.Sprintf("{%d keys}", len(v.Keys))
	default:
		return ""
	}
}

// IsNumeric reports whether the value is Integer or Decimal.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInteger || v.Kind == KindDecimal
}
