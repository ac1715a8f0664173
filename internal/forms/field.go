package forms

import (
	"net/url"
	"strings"
)

// Kind tells which shape a submitted field arrived in.
type Kind int

const (
	KindAbsent Kind = iota
	KindScalar
	KindList
)

// FieldValue is a form field that may be missing, a single value or several values.
type FieldValue struct {
	Kind   Kind
	Scalar string
	List   []string
}

func Absent() FieldValue {
	return FieldValue{Kind: KindAbsent}
}

func Scalar(v string) FieldValue {
	return FieldValue{Kind: KindScalar, Scalar: v}
}

func List(vs ...string) FieldValue {
	return FieldValue{Kind: KindList, List: vs}
}

// FieldFrom reads key from submitted values. A key submitted once is a scalar.
func FieldFrom(values url.Values, key string) FieldValue {
	vs, ok := values[key]
	switch {
	case !ok || len(vs) == 0:
		return Absent()
	case len(vs) == 1:
		return Scalar(vs[0])
	default:
		return List(vs...)
	}
}

// Normalize collapses every shape into a collection. Absent yields an empty,
// non-nil slice.
func (v FieldValue) Normalize() []string {
	switch v.Kind {
	case KindScalar:
		return []string{v.Scalar}
	case KindList:
		out := make([]string, len(v.List))
		copy(out, v.List)
		return out
	default:
		return []string{}
	}
}

// nonBlank trims every value and drops the empty ones.
func nonBlank(vs []string) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
