package localization

import (
	"encoding/json"
)

// Translation is one language's content bundle
type Translation[B any] struct {
	Code   string
	Bundle B
}

// Translations maps language codes to content bundles in document order.
// Bundle fields are pointers so an untranslated field stays distinguishable
// from an empty one.
type Translations[B any] []Translation[B]

// Get returns the bundle for code
func (t Translations[B]) Get(code string) (B, bool) {
	code = NormalizeCode(code)
	for _, tr := range t {
		if tr.Code == code {
			return tr.Bundle, true
		}
	}
	var zero B
	return zero, false
}

// Codes returns the language codes in document order
func (t Translations[B]) Codes() []string {
	codes := make([]string, len(t))
	for i, tr := range t {
		codes[i] = tr.Code
	}
	return codes
}

// Field projects one bundle field across every language
func (t Translations[B]) Field(field func(B) *string) LocalizedText {
	out := make(LocalizedText, len(t))
	for i, tr := range t {
		out[i] = Entry{Code: tr.Code, Value: field(tr.Bundle)}
	}
	return out
}

// UnmarshalJSON decodes a {"EN": {...}, "FR": {...}} object keeping key order
func (t *Translations[B]) UnmarshalJSON(data []byte) error {
	keys, err := orderedKeys(data)
	if err != nil {
		return err
	}

	var bundles map[string]B
	if err := json.Unmarshal(data, &bundles); err != nil {
		return err
	}

	out := make(Translations[B], 0, len(keys))
	for _, key := range keys {
		out = append(out, Translation[B]{Code: NormalizeCode(key), Bundle: bundles[key]})
	}
	*t = out
	return nil
}

// MarshalJSON encodes the bundles as an object in document order
func (t Translations[B]) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, tr := range t {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(tr.Code)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(tr.Bundle)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, value...)
	}
	return append(buf, '}'), nil
}
