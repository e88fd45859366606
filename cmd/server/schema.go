package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/atlas-api/internal/entities/gamedata"
)

var schemaDocument string

// schemaTargets maps each catalog document to the value it decodes into
var schemaTargets = map[string]any{
	"catalog": &gamedata.Descriptor{},
	"items":   &[]gamedata.Item{},
	"drafts":  &[]gamedata.DraftRecipe{},
	"codes":   &[]gamedata.RedemptionCode{},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of a catalog document",
	Long:  `Print the JSON Schema for catalog.json, items/<category>.json, drafts.json or codes.json.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return writeSchema(os.Stdout, schemaDocument)
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaDocument, "document", "catalog", "Document to describe: catalog, items, drafts or codes")
}

func writeSchema(w io.Writer, document string) error {
	target, ok := schemaTargets[document]
	if !ok {
		return fmt.Errorf("unknown document %q", document)
	}

	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(target)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(schema)
}
