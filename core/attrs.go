// SPDX-License-Identifier: MIT
//
// File: attrs.go
// Role: Attribute maps: value-kind normalization, subset containment, compact rendering.
// Determinism:
//   - Keys() and String() order keys lexicographically.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Attrs maps attribute names to values. Values stored in an element are
// always one of string, int64 or bool.
type Attrs map[string]any

// normalizeAttrs returns a private copy of attrs with every value converted
// to its canonical kind. Integers of any width become int64.
func normalizeAttrs(attrs Attrs) (Attrs, error) {
	out := make(Attrs, len(attrs))
	var (
		k   string
		v   any
		err error
	)
	for k, v = range attrs {
		if out[k], err = normalizeValue(v); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
	}

	return out, nil
}

// normalizeValue maps v onto string, int64 or bool.
func normalizeValue(v any) (any, error) {
	switch x := v.(type) {
	case string, bool, int64:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: value %d overflows int64", ErrInvariantViolation, x)
		}
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: value %d overflows int64", ErrInvariantViolation, x)
		}
		return int64(x), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value kind %T", ErrInvariantViolation, v)
	}
}

// Clone returns a shallow copy (values are scalars, so the copy is independent).
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Keys returns the attribute names in lexicographic order.
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// SubsetOf reports whether every key/value pair of a is present in b with an equal value.
// An empty a is a subset of anything.
func (a Attrs) SubsetOf(b Attrs) bool {
	if len(a) > len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || w != v {
			return false
		}
	}

	return true
}

// Equal reports whether a and b hold the same key/value pairs.
func (a Attrs) Equal(b Attrs) bool {
	return len(a) == len(b) && a.SubsetOf(b)
}

// merged returns a copy of a overridden by the normalized update.
func (a Attrs) merged(update Attrs) (Attrs, error) {
	norm, err := normalizeAttrs(update)
	if err != nil {
		return nil, err
	}
	out := a.Clone()
	for k, v := range norm {
		out[k] = v
	}

	return out, nil
}

// String renders the attributes compactly: "(x=1, y=\"a\")" when every key
// is an identifier, "{\"a b\": 1}" otherwise, "" when empty.
func (a Attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := a.Keys()
	plain := true
	for _, k := range keys {
		if !isIdentifier(k) {
			plain = false
			break
		}
	}

	var sb strings.Builder
	if plain {
		sb.WriteByte('(')
	} else {
		sb.WriteByte('{')
	}
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		if plain {
			sb.WriteString(k)
			sb.WriteByte('=')
		} else {
			sb.WriteString(strconv.Quote(k))
			sb.WriteString(": ")
		}
		sb.WriteString(formatValue(a[k]))
	}
	if plain {
		sb.WriteByte(')')
	} else {
		sb.WriteByte('}')
	}

	return sb.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}

	return true
}
