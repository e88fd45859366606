// Package sanitize strips pipeline-only fields from catalog records before
// they are handed to presentation code.
//
// Every method returns a new value. Inputs are never modified, so records
// owned by the catalog index can be passed in directly. Sanitizing an already
// sanitized record returns an equal record.
package sanitize

import (
	"github.com/KirkDiggler/atlas-api/internal/entities/gamedata"
)

// Internal field names removed by default
const (
	FieldSourceAsset       = "sourceAsset"
	FieldDescriptionValues = "descriptionValues"
)

// DefaultDeniedFields is the denylist used when none is configured
var DefaultDeniedFields = []string{FieldSourceAsset, FieldDescriptionValues}

// Config configures a Sanitizer
type Config struct {
	// DeniedFields are removed from field maps at every nesting level.
	// Icons lose their source asset when FieldSourceAsset is listed.
	DeniedFields []string
}

// Sanitizer removes denylisted fields from catalog records
type Sanitizer struct {
	denied map[string]struct{}
}

// New creates a sanitizer. A nil config or empty denylist uses DefaultDeniedFields.
func New(cfg *Config) *Sanitizer {
	fields := DefaultDeniedFields
	if cfg != nil && len(cfg.DeniedFields) > 0 {
		fields = cfg.DeniedFields
	}

	denied := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		denied[f] = struct{}{}
	}
	return &Sanitizer{denied: denied}
}

// Denied reports whether key is stripped
func (s *Sanitizer) Denied(key string) bool {
	_, ok := s.denied[key]
	return ok
}

// Character returns a sanitized copy of c
func (s *Sanitizer) Character(c *gamedata.Character) *gamedata.Character {
	if c == nil {
		return nil
	}

	out := *c
	out.Icon = s.Icon(c.Icon)
	out.Fields = s.Fields(c.Fields)
	return &out
}

// Item returns a sanitized copy of item, variants included
func (s *Sanitizer) Item(item *gamedata.Item) *gamedata.Item {
	if item == nil {
		return nil
	}

	out := *item
	out.Icon = s.Icon(item.Icon)
	out.Fields = s.Fields(item.Fields)
	if item.Variants != nil {
		out.Variants = make([]gamedata.ItemVariant, len(item.Variants))
		for i, v := range item.Variants {
			v.Icon = s.Icon(v.Icon)
			v.Fields = s.Fields(v.Fields)
			out.Variants[i] = v
		}
	}
	return &out
}

// Draft returns a sanitized copy of a recipe, product and materials included
func (s *Sanitizer) Draft(d *gamedata.DraftRecipe) *gamedata.DraftRecipe {
	if d == nil {
		return nil
	}

	out := *d
	out.Product = s.reference(d.Product)
	if d.Materials != nil {
		out.Materials = make([]gamedata.DraftItemReference, len(d.Materials))
		for i, m := range d.Materials {
			out.Materials[i] = s.reference(m)
		}
	}
	return &out
}

// Category returns a sanitized copy of a category
func (s *Sanitizer) Category(c *gamedata.ItemCategory) *gamedata.ItemCategory {
	if c == nil {
		return nil
	}

	out := *c
	out.Icon = s.Icon(c.Icon)
	return &out
}

func (s *Sanitizer) reference(ref gamedata.DraftItemReference) gamedata.DraftItemReference {
	ref.Icon = s.Icon(ref.Icon)
	return ref
}

// Icon returns a copy of icon without its source asset
func (s *Sanitizer) Icon(icon *gamedata.Icon) *gamedata.Icon {
	if icon == nil {
		return nil
	}

	out := *icon
	if s.Denied(FieldSourceAsset) {
		out.SourceAsset = ""
	}
	return &out
}

// Fields returns a deep copy of fields with denied keys removed at every level.
// Slice elements are sanitized one by one and never dropped.
func (s *Sanitizer) Fields(fields gamedata.FieldMap) gamedata.FieldMap {
	if fields == nil {
		return nil
	}
	return gamedata.FieldMap(s.object(fields))
}

func (s *Sanitizer) object(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if s.Denied(k) {
			continue
		}
		out[k] = s.value(v)
	}
	return out
}

func (s *Sanitizer) value(v any) any {
	switch val := v.(type) {
	case gamedata.FieldMap:
		if val == nil {
			return val
		}
		return gamedata.FieldMap(s.object(val))
	case map[string]any:
		if val == nil {
			return val
		}
		return s.object(val)
	case []any:
		if val == nil {
			return val
		}
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = s.value(elem)
		}
		return out
	default:
		return v
	}
}
