package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInDomain(t *testing.T) {
	scope := []string{"internal", "partner", "public"}
	tests := []struct {
		domain   []string
		value    string
		expected bool
	}{
		{scope, "partner", true},
		{scope, "Partner", false},
		{scope, "secret", false},
		{scope, "", true},
		{nil, "anything", true},
		{[]string{}, "anything", true},
	}

	for _, tt := range tests {
		if got := InDomain(tt.domain, tt.value); got != tt.expected {
			t.Errorf("InDomain(%v, %q) = %v, expected %v", tt.domain, tt.value, got, tt.expected)
		}
	}
}

func TestTemplateSpecValidate(t *testing.T) {
	base := func() TemplateSpec {
		return TemplateSpec{
			Name:    "test",
			Version: "0.0.1",
			Title:   "Test Template",
			Sheets: []SheetSpec{{
				Title:     "Data",
				HeaderRow: 1,
				Columns: []ColumnSpec{
					{Name: "id"},
					{Name: "status", Domain: []string{"on", "off"}},
				},
			}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*TemplateSpec)
		wantErr error
	}{
		{"valid", func(ts *TemplateSpec) {}, nil},
		{"missing name", func(ts *TemplateSpec) { ts.Name = "" }, ErrBadSheet},
		{"missing version", func(ts *TemplateSpec) { ts.Version = "" }, ErrBadSheet},
		{"no sheets", func(ts *TemplateSpec) { ts.Sheets = nil }, ErrBadSheet},
		{"empty sheet slice", func(ts *TemplateSpec) { ts.Sheets = []SheetSpec{} }, ErrBadSheet},
		{"empty sheet title", func(ts *TemplateSpec) { ts.Sheets[0].Title = "" }, ErrBadSheet},
		{"reserved sheet title", func(ts *TemplateSpec) { ts.Sheets[0].Title = InstructionsSheetName }, ErrBadSheet},
		{"duplicate sheet title", func(ts *TemplateSpec) {
			ts.Sheets = append(ts.Sheets, ts.Sheets[0])
		}, ErrBadSheet},
		{"header row zero", func(ts *TemplateSpec) { ts.Sheets[0].HeaderRow = 0 }, ErrBadSheet},
		{"table without columns", func(ts *TemplateSpec) { ts.Sheets[0].Columns = nil }, ErrBadSheet},
		{"empty column name", func(ts *TemplateSpec) { ts.Sheets[0].Columns[0].Name = "" }, ErrBadSheet},
		{"duplicate column", func(ts *TemplateSpec) { ts.Sheets[0].Columns[1].Name = "id" }, ErrDuplicateColumn},
		{"empty domain member", func(ts *TemplateSpec) {
			ts.Sheets[0].Columns[1].Domain = []string{"on", ""}
		}, ErrDomainValue},
		{"comma in domain member", func(ts *TemplateSpec) {
			ts.Sheets[0].Columns[1].Domain = []string{"on", "off,broken"}
		}, ErrDomainValue},
		{"quote in domain member", func(ts *TemplateSpec) {
			ts.Sheets[0].Columns[1].Domain = []string{`o"n`}
		}, ErrDomainValue},
		{"domain over formula limit", func(ts *TemplateSpec) {
			ts.Sheets[0].Columns[1].Domain = []string{
				strings.Repeat("a", 128), strings.Repeat("b", 128),
			}
		}, ErrDomainLength},
		{"meta cell on header row", func(ts *TemplateSpec) {
			ts.Sheets[0].HeaderRow = 2
			ts.Sheets[0].MetaBlock = []MetaCell{{Label: "Scope", Row: 2, Col: 1}}
		}, ErrBadSheet},
		{"meta cell domain", func(ts *TemplateSpec) {
			ts.Sheets[0].HeaderRow = 3
			ts.Sheets[0].MetaBlock = []MetaCell{{Label: "Scope", Row: 1, Col: 1, Domain: []string{"a,b"}}}
		}, ErrDomainValue},
		{"example overlaps header", func(ts *TemplateSpec) {
			ts.Sheets[0].Examples = []ExampleRow{{Row: 1, Cells: map[string]any{"id": "x"}}}
		}, ErrBadSheet},
		{"example unknown column", func(ts *TemplateSpec) {
			ts.Sheets[0].Examples = []ExampleRow{{Row: 2, Cells: map[string]any{"nope": "x"}}}
		}, ErrUnknownColumn},
		{"example outside domain", func(ts *TemplateSpec) {
			ts.Sheets[0].Examples = []ExampleRow{{Row: 2, Cells: map[string]any{"status": "maybe"}}}
		}, ErrDomainMismatch},
		{"meta example unknown key", func(ts *TemplateSpec) {
			ts.Sheets[0].MetaExamples = map[string]string{"nope": "x"}
		}, ErrUnknownColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base()
			tt.mutate(&spec)
			err := spec.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateKeyValueSheet(t *testing.T) {
	base := func() TemplateSpec {
		return TemplateSpec{
			Name:    "test",
			Version: "0.0.1",
			Sheets: []SheetSpec{{
				Title:     "Settings",
				Layout:    LayoutKeyValue,
				HeaderRow: 1,
				Fields: []FieldSpec{
					{Key: "snapshot_date", Required: true, Description: "date"},
					{Key: "scope", Domain: []string{"internal", "public"}, Description: "audience"},
				},
				MetaExamples: map[string]string{"scope": "internal"},
			}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*TemplateSpec)
		wantErr error
	}{
		{"valid", func(ts *TemplateSpec) {}, nil},
		{"no fields", func(ts *TemplateSpec) { ts.Sheets[0].Fields = nil }, ErrBadSheet},
		{"mixed layouts", func(ts *TemplateSpec) {
			ts.Sheets[0].Columns = []ColumnSpec{{Name: "id"}}
		}, ErrBadSheet},
		{"empty field key", func(ts *TemplateSpec) { ts.Sheets[0].Fields[0].Key = "" }, ErrBadSheet},
		{"duplicate field key", func(ts *TemplateSpec) { ts.Sheets[0].Fields[1].Key = "snapshot_date" }, ErrDuplicateColumn},
		{"field domain member", func(ts *TemplateSpec) {
			ts.Sheets[0].Fields[1].Domain = []string{"internal", ""}
		}, ErrDomainValue},
		{"meta example outside domain", func(ts *TemplateSpec) {
			ts.Sheets[0].MetaExamples = map[string]string{"scope": "partner"}
		}, ErrDomainMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base()
			tt.mutate(&spec)
			err := spec.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
