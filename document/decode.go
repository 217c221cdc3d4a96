package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes, normalizes and validates a YAML document.
// Unknown fields are rejected.
func ParseYAML(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, ErrEmpty
	}
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
	}
	doc = doc.Normalized()
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// ParseJSON decodes, normalizes and validates a JSON document with the same
// field names as the YAML form.
func ParseJSON(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, ErrEmpty
	}
	if !gjson.ValidBytes(data) {
		return Document{}, fmt.Errorf("%w: json: malformed payload", ErrDecode)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Document{}, fmt.Errorf("%w: json: top level must be an object", ErrDecode)
	}

	var (
		doc Document
		err error
	)
	doc.Name = root.Get("name").String()
	doc.Style = root.Get("style").String()
	doc.Target = root.Get("target").String()
	doc.Start = root.Get("start").String()
	if doc.Horizon, err = jsonInt(root, "horizon"); err != nil {
		return Document{}, err
	}
	if doc.Agents, err = jsonInt(root, "agents"); err != nil {
		return Document{}, err
	}
	if doc.Base, err = jsonAmounts(root.Get("base"), "base"); err != nil {
		return Document{}, err
	}
	doc.Kinds = jsonStrings(root.Get("kinds"))

	root.Get("producers").ForEach(func(_, v gjson.Result) bool {
		p := ProducerDocument{Name: v.Get("name").String()}
		if p.Cost, err = jsonAmounts(v.Get("cost"), p.Name+".cost"); err != nil {
			return false
		}
		if p.Effect, err = jsonAmounts(v.Get("effect"), p.Name+".effect"); err != nil {
			return false
		}
		doc.Producers = append(doc.Producers, p)
		return true
	})
	if err != nil {
		return Document{}, err
	}

	root.Get("locations").ForEach(func(_, v gjson.Result) bool {
		l := LocationDocument{Name: v.Get("name").String(), Tunnels: jsonStrings(v.Get("tunnels"))}
		value := v.Get("value")
		if value.Exists() && value.Type != gjson.Number {
			err = fmt.Errorf("%w: json: %s.value is not a number", ErrDecode, l.Name)
			return false
		}
		l.Value = value.Int()
		doc.Locations = append(doc.Locations, l)
		return true
	})
	if err != nil {
		return Document{}, err
	}

	doc = doc.Normalized()
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// jsonInt reads an optional integer field.
func jsonInt(root gjson.Result, path string) (int, error) {
	v := root.Get(path)
	if !v.Exists() {
		return 0, nil
	}
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%w: json: %s is not a number", ErrDecode, path)
	}

	return int(v.Int()), nil
}

// jsonAmounts reads an object of kind → integer amount.
func jsonAmounts(v gjson.Result, what string) (map[string]int64, error) {
	if !v.Exists() {
		return nil, nil
	}
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: json: %s is not an object", ErrDecode, what)
	}
	out := make(map[string]int64)
	var err error
	v.ForEach(func(k, amt gjson.Result) bool {
		if amt.Type != gjson.Number {
			err = fmt.Errorf("%w: json: %s.%s is not a number", ErrDecode, what, k.String())
			return false
		}
		out[k.String()] = amt.Int()
		return true
	})

	return out, err
}

// jsonStrings reads an array of strings; nil when absent.
func jsonStrings(v gjson.Result) []string {
	if !v.Exists() {
		return nil
	}
	var out []string
	v.ForEach(func(_, s gjson.Result) bool {
		out = append(out, s.String())
		return true
	})

	return out
}

// LoadFile reads a .yaml, .yml or .json document from disk.
func LoadFile(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("document: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("document: %s is a directory", path)
	}

	var parse func([]byte) (Document, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".json":
		parse = ParseJSON
	default:
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", path, err)
	}
	doc, err := parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("document: %s: %w", path, err)
	}

	return doc, nil
}
