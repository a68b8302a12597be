// Package output serializes template specs for downstream tooling, so the
// importer side can diff the declared contract without opening a workbook.
package output

import (
	"encoding/json"

	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel/schema"
)

// SpecToJSON serializes a TemplateSpec to JSON.
func SpecToJSON(spec schema.TemplateSpec, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(spec, "", "  ")
	}
	return json.Marshal(spec)
}
