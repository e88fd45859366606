// Package localization resolves display text across the languages a catalog
// ships with. Game language codes are uppercase ("EN", "JP", "ZH-CN") and every
// lookup is case-insensitive.
package localization

import (
	"encoding/json"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// NormalizeCode trims and uppercases a language code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Entry is one language's value inside a LocalizedText. A nil Value means the
// language has no data.
type Entry struct {
	Code  string
	Value *string
}

// Text builds a populated Entry
func Text(code, value string) Entry {
	return Entry{Code: NormalizeCode(code), Value: &value}
}

// Null builds an Entry for a language with no data
func Null(code string) Entry {
	return Entry{Code: NormalizeCode(code)}
}

// LocalizedText maps language codes to nullable strings, keeping the order the
// languages appeared in the source document.
type LocalizedText []Entry

// Get returns the value for code when it is present and not blank
func (t LocalizedText) Get(code string) (string, bool) {
	code = NormalizeCode(code)
	for _, e := range t {
		if e.Code == code {
			return usable(e.Value)
		}
	}
	return "", false
}

// Codes returns the language codes in document order
func (t LocalizedText) Codes() []string {
	codes := make([]string, len(t))
	for i, e := range t {
		codes[i] = e.Code
	}
	return codes
}

// UnmarshalJSON decodes a {"EN": "...", "FR": null} object keeping key order
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	keys, err := orderedKeys(data)
	if err != nil {
		return err
	}

	var values map[string]*string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	out := make(LocalizedText, 0, len(keys))
	for _, key := range keys {
		out = append(out, Entry{Code: NormalizeCode(key), Value: values[key]})
	}
	*t = out
	return nil
}

// MarshalJSON encodes the entries as an object in document order
func (t LocalizedText) MarshalJSON() ([]byte, error) {
	om := orderedmap.New()
	for _, e := range t {
		if e.Value == nil {
			om.Set(e.Code, nil)
			continue
		}
		om.Set(e.Code, *e.Value)
	}
	return json.Marshal(om)
}

func usable(value *string) (string, bool) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", false
	}
	return *value, true
}

// orderedKeys returns the top-level keys of a JSON object in document order.
// A JSON null decodes to no keys.
func orderedKeys(data []byte) ([]string, error) {
	if string(data) == "null" {
		return nil, nil
	}
	om := orderedmap.New()
	if err := json.Unmarshal(data, om); err != nil {
		return nil, err
	}
	return om.Keys(), nil
}
