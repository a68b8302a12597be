package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierListValidates(t *testing.T) {
	require.NoError(t, SupplierList().Validate())
}

func TestSupplierListColumns(t *testing.T) {
	spec := SupplierList()
	require.Len(t, spec.Sheets, 1)

	s := spec.Sheets[0]
	assert.Equal(t, "Supplier List", s.Title)
	assert.Equal(t, []string{
		"supplier_name", "supplier_id", "jurisdiction", "tier",
		"parent_supplier", "business_unit", "commodity", "valid_from",
		"annual_value", "value_currency", "contract_ref", "lei", "duns",
		"vat", "vat_country", "internal_id", "risk_tier",
		"kraljic_quadrant", "approval_status", "notes",
	}, columnNames(s))

	// supplier_name is the only hard requirement; everything else can be
	// supplied later or defaulted by the importer.
	for _, c := range s.Columns {
		if c.Name == "supplier_name" {
			assert.True(t, c.Required)
		} else {
			assert.False(t, c.Required, "column %s", c.Name)
		}
	}
}

func TestSupplierSheetGeometry(t *testing.T) {
	s := SupplierList().Sheets[0]
	require.Equal(t, 4, s.HeaderRow)

	require.Len(t, s.MetaBlock, 3)
	labels := make(map[string][2]int, len(s.MetaBlock))
	for _, mc := range s.MetaBlock {
		labels[mc.Label] = [2]int{mc.Row, mc.Col}
	}
	assert.Equal(t, [2]int{1, 1}, labels["Reporting Entity"])
	assert.Equal(t, [2]int{1, 3}, labels["Snapshot Date"])
	assert.Equal(t, [2]int{2, 1}, labels["Disclosure Scope"])

	for _, mc := range s.MetaBlock {
		if mc.Label == "Disclosure Scope" {
			assert.Equal(t, []string{"internal", "partner", "public"}, mc.Domain)
		}
	}
}

func TestSupplierExamplesSpanThreeTiers(t *testing.T) {
	s := SupplierList().Sheets[0]
	require.Len(t, s.Examples, 7)

	rows := make([]int, len(s.Examples))
	byRow := make(map[int]map[string]any, len(s.Examples))
	for i, ex := range s.Examples {
		rows[i] = ex.Row
		byRow[ex.Row] = ex.Cells
	}
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11}, rows)

	// Rows 5 and 8 exercise the dedup collision: same supplier_id, same
	// name, different business units and commodities.
	assert.Equal(t, "bolt-001", byRow[5]["supplier_id"])
	assert.Equal(t, "bolt-001", byRow[8]["supplier_id"])
	assert.Equal(t, byRow[5]["supplier_name"], byRow[8]["supplier_name"])
	assert.NotEqual(t, byRow[5]["business_unit"], byRow[8]["business_unit"])
	assert.NotEqual(t, byRow[5]["commodity"], byRow[8]["commodity"])

	// Row 9 names its parent by supplier_id, row 11 by supplier_name.
	assert.Equal(t, 2, byRow[9]["tier"])
	assert.Equal(t, "bolt-001", byRow[9]["parent_supplier"])
	assert.Equal(t, 3, byRow[11]["tier"])
	assert.Equal(t, "Baosteel Trading Co", byRow[11]["parent_supplier"])
	assert.Equal(t, "Baosteel Trading Co", byRow[10]["supplier_name"])
}

// SupplierList returns a fresh value per call, so one caller mutating the
// sheet or its example maps must not leak into the next.
func TestSupplierListIsFresh(t *testing.T) {
	first := SupplierList()
	first.Sheets[0].Title = "Mangled"
	first.Sheets[0].Columns[0].Name = "mangled"
	first.Sheets[0].MetaExamples["Reporting Entity"] = "Mangled Corp"
	first.Sheets[0].Examples[0].Cells["supplier_id"] = "mangled-001"
	first.Instructions.Notes[0].Heading = "MANGLED"
	first.Sheets = nil

	second := SupplierList()
	require.Len(t, second.Sheets, 1)
	assert.Equal(t, "Supplier List", second.Sheets[0].Title)
	assert.Equal(t, "supplier_name", second.Sheets[0].Columns[0].Name)
	assert.Equal(t, "Acme Manufacturing GmbH", second.Sheets[0].MetaExamples["Reporting Entity"])
	assert.Equal(t, "bolt-001", second.Sheets[0].Examples[0].Cells["supplier_id"])
	assert.Equal(t, "ROW FOLDING", second.Instructions.Notes[0].Heading)
}

func TestSupplierInstructionsStateFolding(t *testing.T) {
	spec := SupplierList()

	var folding *NoteSection
	for i, sec := range spec.Instructions.Notes {
		if sec.Heading == "ROW FOLDING" {
			folding = &spec.Instructions.Notes[i]
		}
	}
	require.NotNil(t, folding, "instructions must state the fold convention")

	var text strings.Builder
	for _, r := range folding.Rows {
		text.WriteString(r.Text)
		text.WriteString("\n")
	}
	body := text.String()
	assert.Contains(t, body, "supplier_id")
	assert.Contains(t, body, "folded into a single")
	assert.Contains(t, body, "supplier_name")
	assert.Contains(t, body, "tier 1")
	assert.Contains(t, body, "left to the importer")
}
