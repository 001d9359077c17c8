// SPDX-License-Identifier: MIT
// Package: knob/builder
//
// id_fn.go - node key schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a constructor-local index to a node key.
type IDFn func(idx int) string

// DefaultIDFn returns decimal keys: 0 → "0", 1 → "1".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns single upper-case letters for 0..25 and panics otherwise.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// AlphanumericIDFn returns base-36 keys: 35 → "z", 36 → "10".
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns spreadsheet column names: 0 → "A", 26 → "AA".
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns lowercase hexadecimal keys.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixIDFn returns keys of the form prefix+decimal, e.g. "v0", "v1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// ParseIDScheme resolves a scheme name: "decimal", "alnum", "excel", "hex".
func ParseIDScheme(name string) (IDFn, error) {
	switch name {
	case "", "decimal":
		return DefaultIDFn, nil
	case "alnum":
		return AlphanumericIDFn, nil
	case "excel":
		return ExcelColumnIDFn, nil
	case "hex":
		return HexIDFn, nil
	default:
		return nil, fmt.Errorf("builder: unknown id scheme %q", name)
	}
}
