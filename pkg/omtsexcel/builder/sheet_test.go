package builder

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel/schema"
)

// renderedFile renders a single sheet spec into a fresh workbook.
func renderedFile(t *testing.T, s schema.SheetSpec, author string) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	styles, err := NewStyleSet(f, "2F5496")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetName("Sheet1", s.Title))
	require.NoError(t, RenderSheet(f, s, styles, author))
	return f
}

func validationBySqref(t *testing.T, f *excelize.File, sheet, sqref string) *excelize.DataValidation {
	t.Helper()
	dvs, err := f.GetDataValidations(sheet)
	require.NoError(t, err)
	for _, dv := range dvs {
		if dv.Sqref == sqref {
			return dv
		}
	}
	t.Fatalf("no validation with range %s on sheet %s", sqref, sheet)
	return nil
}

// dropListMembers decodes an inline selection list back into its members.
// The stored formula carries surrounding quotes.
func dropListMembers(dv *excelize.DataValidation) []string {
	return strings.Split(strings.Trim(dv.Formula1, `"`), ",")
}

func commentText(c excelize.Comment) string {
	var b strings.Builder
	for _, run := range c.Paragraph {
		b.WriteString(run.Text)
	}
	if b.Len() == 0 {
		return c.Text
	}
	return b.String()
}

func commentsByCell(t *testing.T, f *excelize.File, sheet string) map[string]excelize.Comment {
	t.Helper()
	comments, err := f.GetComments(sheet)
	require.NoError(t, err)
	byCell := make(map[string]excelize.Comment, len(comments))
	for _, c := range comments {
		byCell[c.Cell] = c
	}
	return byCell
}

func widgetSheet() schema.SheetSpec {
	return schema.SheetSpec{
		Title:     "Widgets",
		HeaderRow: 1,
		Columns: []schema.ColumnSpec{
			{Name: "id", Width: 18, Help: "Widget identifier."},
			{Name: "name", Required: true, Width: 30, Help: "Required. Widget name."},
			{Name: "grade", Width: 12, Domain: []string{"a", "b", "c"},
				Help: "Quality grade.", PromptTitle: "Grade", Prompt: "Quality grade"},
		},
	}
}

func TestRenderTableHeader(t *testing.T) {
	f := renderedFile(t, widgetSheet(), "Tester")

	for i, expected := range []string{"id", "name", "grade"} {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		got, err := f.GetCellValue("Widgets", cell)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	height, err := f.GetRowHeight("Widgets", 1)
	require.NoError(t, err)
	assert.InDelta(t, 30, height, 0.01)

	for col, expected := range map[string]float64{"A": 18, "B": 30, "C": 12} {
		w, err := f.GetColWidth("Widgets", col)
		require.NoError(t, err)
		assert.InDelta(t, expected, w, 0.01, "width of column %s", col)
	}
}

func TestRenderTableConstraint(t *testing.T) {
	f := renderedFile(t, widgetSheet(), "Tester")

	dvs, err := f.GetDataValidations("Widgets")
	require.NoError(t, err)
	require.Len(t, dvs, 1)

	dv := validationBySqref(t, f, "Widgets", "C2:C10000")
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff([]string{"a", "b", "c"}, dropListMembers(dv), cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("selection list members mismatch (-want +got):\n%s", diff)
	}

	require.NotNil(t, dv.ErrorTitle)
	assert.Equal(t, "Invalid value", *dv.ErrorTitle)
	require.NotNil(t, dv.Error)
	assert.Equal(t, "Must be one of: a, b, c", *dv.Error)
	require.NotNil(t, dv.PromptTitle)
	assert.Equal(t, "Grade", *dv.PromptTitle)
	require.NotNil(t, dv.Prompt)
	assert.Equal(t, "Quality grade", *dv.Prompt)
}

func TestRenderTableTooltips(t *testing.T) {
	s := widgetSheet()
	f := renderedFile(t, s, "Tester")

	byCell := commentsByCell(t, f, "Widgets")
	require.Len(t, byCell, 3)
	for i, col := range s.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, s.HeaderRow)
		require.NoError(t, err)
		c, ok := byCell[cell]
		require.True(t, ok, "missing tooltip on %s", cell)
		assert.Equal(t, col.Help, commentText(c), "tooltip for %s", col.Name)
		assert.Equal(t, "Tester", c.Author)
	}
}

func TestRenderMetaBlock(t *testing.T) {
	s := schema.SheetSpec{
		Title:     "Listing",
		HeaderRow: 4,
		MetaBlock: []schema.MetaCell{
			{Label: "Owner", Row: 1, Col: 1, Help: "Owning team."},
			{Label: "Scope", Row: 2, Col: 1,
				Domain:      []string{"internal", "public"},
				PromptTitle: "Scope", Prompt: "Audience"},
		},
		Columns: []schema.ColumnSpec{
			{Name: "name", Required: true, Width: 30},
			{Name: "tier", Domain: []string{"1", "2"}},
		},
	}
	f := renderedFile(t, s, "Tester")

	for cell, expected := range map[string]string{"A1": "Owner", "A2": "Scope", "A4": "name", "B4": "tier"} {
		got, err := f.GetCellValue("Listing", cell)
		require.NoError(t, err)
		assert.Equal(t, expected, got, "cell %s", cell)
	}

	// The value cell sits one column right of its label and carries the
	// single-cell constraint.
	dv := validationBySqref(t, f, "Listing", "B2")
	assert.Equal(t, []string{"internal", "public"}, dropListMembers(dv))
	require.NotNil(t, dv.PromptTitle)
	assert.Equal(t, "Scope", *dv.PromptTitle)

	// The column constraint starts below the header row, not at row 2.
	colDV := validationBySqref(t, f, "Listing", "B5:B10000")
	assert.Equal(t, []string{"1", "2"}, dropListMembers(colDV))

	byCell := commentsByCell(t, f, "Listing")
	c, ok := byCell["A1"]
	require.True(t, ok)
	assert.Equal(t, "Owning team.", commentText(c))
}

func TestRenderKeyValue(t *testing.T) {
	s := schema.SheetSpec{
		Title:     "Settings",
		Layout:    schema.LayoutKeyValue,
		HeaderRow: 1,
		Fields: []schema.FieldSpec{
			{Key: "snapshot_date", Required: true, Description: "Snapshot date.", Help: "When the data was captured."},
			{Key: "scope", Domain: []string{"internal", "public"}, Description: "Audience."},
		},
		ColWidths: map[string]float64{"A": 22, "B": 30, "C": 70},
	}
	f := renderedFile(t, s, "Tester")

	for cell, expected := range map[string]string{
		"A1": "Field", "B1": "Value", "C1": "Description",
		"A2": "snapshot_date", "C2": "Snapshot date.",
		"A3": "scope", "C3": "Audience.",
	} {
		got, err := f.GetCellValue("Settings", cell)
		require.NoError(t, err)
		assert.Equal(t, expected, got, "cell %s", cell)
	}

	// Value cells stay blank for entry.
	for _, cell := range []string{"B2", "B3"} {
		got, err := f.GetCellValue("Settings", cell)
		require.NoError(t, err)
		assert.Empty(t, got)
	}

	dv := validationBySqref(t, f, "Settings", "B3")
	assert.Equal(t, []string{"internal", "public"}, dropListMembers(dv))

	byCell := commentsByCell(t, f, "Settings")
	c, ok := byCell["A2"]
	require.True(t, ok)
	assert.Equal(t, "When the data was captured.", commentText(c))

	w, err := f.GetColWidth("Settings", "C")
	require.NoError(t, err)
	assert.InDelta(t, 70, w, 0.01)
}

func TestDomainGuidance(t *testing.T) {
	tests := []struct {
		domain   []string
		expected string
	}{
		{[]string{"a", "b", "c"}, "Must be one of: a, b, c"},
		{[]string{"only"}, "Must be one of: only"},
	}
	for _, tt := range tests {
		if got := domainGuidance(tt.domain); got != tt.expected {
			t.Errorf("domainGuidance(%v) = %q, expected %q", tt.domain, got, tt.expected)
		}
	}
}
