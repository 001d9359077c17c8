// SPDX-License-Identifier: MIT
//
// File: io.go
// Role: Format selection and stream/file I/O for documents and arbitrary values.

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/knob/core"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ParseFormat validates a format name ("yaml", "yml", "json", "msgpack", "mpk").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "msgpack", "mpk":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("codec: %q: %w", name, ErrFormat)
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", fmt.Errorf("codec: %s: no extension: %w", path, ErrFormat)
	}

	return ParseFormat(ext)
}

// Read decodes one Document from r. An empty YAML stream is an empty document.
func Read(r io.Reader, f Format) (Document, error) {
	var doc Document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("codec: parse YAML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("codec: parse JSON: %w", err)
		}
		if err := integers(&doc); err != nil {
			return Document{}, err
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("codec: parse msgpack: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("codec: %q: %w", f, ErrFormat)
	}

	return doc, nil
}

// integers converts json.Number attribute values to int64.
func integers(doc *Document) error {
	conv := func(owner string, attrs map[string]any) error {
		for k, v := range attrs {
			num, ok := v.(json.Number)
			if !ok {
				continue
			}
			i, err := num.Int64()
			if err != nil {
				return fmt.Errorf("codec: %s: attribute %q: %w: %s is not an integer", owner, k, core.ErrInvariantViolation, num)
			}
			attrs[k] = i
		}
		return nil
	}
	for _, nd := range doc.Nodes {
		if err := conv("node "+nd.Key, nd.Attrs); err != nil {
			return err
		}
	}
	for _, ed := range doc.Edges {
		if err := conv("edge "+ed.Key, ed.Attrs); err != nil {
			return err
		}
	}

	return nil
}

// Write encodes doc to w.
func Write(w io.Writer, doc Document, f Format) error {
	return WriteValue(w, doc, f)
}

// WriteValue encodes any value to w. Map keys are written in sorted order in
// every format.
func WriteValue(w io.Writer, v any, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("codec: write YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("codec: write JSON: %w", err)
		}
		return nil
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("codec: write msgpack: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("codec: %q: %w", f, ErrFormat)
	}
}

// Marshal encodes doc into a byte slice.
func Marshal(doc Document, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, f); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a Document from data.
func Unmarshal(data []byte, f Format) (Document, error) {
	return Read(bytes.NewReader(data), f)
}

// LoadFile reads and decodes a graph file; the format follows the extension.
// A path of "-" reads YAML from stdin.
func LoadFile(path string) (*core.Graph, *Symbols, error) {
	var (
		r io.Reader
		f = FormatYAML
	)
	if path == "-" {
		r = os.Stdin
	} else {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return nil, nil, err
		}
		file, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("codec: open %s: %w", path, err)
		}
		defer file.Close()
		r = file
	}

	doc, err := Read(r, f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return Decode(doc)
}

// SaveFile encodes g to path; the format follows the extension.
func SaveFile(path string, g *core.Graph, syms *Symbols) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(Encode(g, syms), f)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}

	return nil
}
