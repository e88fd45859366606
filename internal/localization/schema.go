package localization

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// JSONSchema describes LocalizedText as an object of nullable strings
func (LocalizedText) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "Values keyed by uppercase language code. null means untranslated.",
		AdditionalProperties: &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "null"},
			},
		},
	}
}

// JSONSchema describes Translations as an object of bundles
func (Translations[B]) JSONSchema() *jsonschema.Schema {
	var zero B
	reflector := jsonschema.Reflector{DoNotReference: true}
	bundle := reflector.ReflectFromType(reflect.TypeOf(zero))
	bundle.Version = ""
	return &jsonschema.Schema{
		Type:                 "object",
		Description:          "Content bundles keyed by uppercase language code.",
		AdditionalProperties: bundle,
	}
}
