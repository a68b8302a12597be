package builder

import "github.com/xuri/excelize/v2"

const (
	// accentColor is the blue used for header fills, section headings, and
	// metadata labels throughout both variants.
	accentColor = "2F5496"
	// requiredFill tints the data region of required columns.
	requiredFill = "FFF2CC"
	// metaBlockFill shades the supplier list metadata block.
	metaBlockFill = "D9E2F3"
)

// StyleSet holds the style IDs registered on one workbook. Styles are
// file-scoped in xlsx, so a set built for one file must not be reused on
// another.
type StyleSet struct {
	// Header styles table header cells; HeaderBare is its key-value
	// counterpart without the centered alignment.
	Header     int
	HeaderBare int
	// Key, Cell, and Desc style the three columns of a key-value sheet.
	Key  int
	Cell int
	Desc int
	// RequiredCol tints the data region of required columns.
	RequiredCol int
	// MetaLabel, MetaValue, and MetaFill style the metadata block above the
	// supplier list header.
	MetaLabel int
	MetaValue int
	MetaFill  int
	// Title, Section, Normal, and Code style the instructions sheet.
	Title   int
	Section int
	Normal  int
	Code    int
}

// NewStyleSet registers every style the builder needs on f. headerColor is
// the variant's header fill.
func NewStyleSet(f *excelize.File, headerColor string) (*StyleSet, error) {
	var err error
	style := func(s *excelize.Style) int {
		if err != nil {
			return 0
		}
		var id int
		id, err = f.NewStyle(s)
		return id
	}

	set := &StyleSet{
		Header: style(&excelize.Style{
			Font:      &excelize.Font{Family: "Calibri", Size: 11, Bold: true, Color: "FFFFFF"},
			Fill:      solidFill(headerColor),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    thinBorder(),
		}),
		HeaderBare: style(&excelize.Style{
			Font:   &excelize.Font{Family: "Calibri", Size: 11, Bold: true, Color: "FFFFFF"},
			Fill:   solidFill(headerColor),
			Border: thinBorder(),
		}),
		Key: style(&excelize.Style{
			Font:   &excelize.Font{Family: "Calibri", Size: 11, Bold: true},
			Border: thinBorder(),
		}),
		Cell: style(&excelize.Style{
			Border: thinBorder(),
		}),
		Desc: style(&excelize.Style{
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
			Border:    thinBorder(),
		}),
		RequiredCol: style(&excelize.Style{
			Fill: solidFill(requiredFill),
		}),
		MetaLabel: style(&excelize.Style{
			Font: &excelize.Font{Family: "Calibri", Size: 10, Bold: true, Color: accentColor},
			Fill: solidFill(metaBlockFill),
		}),
		MetaValue: style(&excelize.Style{
			Font: &excelize.Font{Family: "Calibri", Size: 10},
			Fill: solidFill(metaBlockFill),
		}),
		MetaFill: style(&excelize.Style{
			Fill: solidFill(metaBlockFill),
		}),
		Title: style(&excelize.Style{
			Font: &excelize.Font{Family: "Calibri", Size: 14, Bold: true, Color: accentColor},
		}),
		Section: style(&excelize.Style{
			Font: &excelize.Font{Family: "Calibri", Size: 11, Bold: true, Color: accentColor},
		}),
		Normal: style(&excelize.Style{
			Font: &excelize.Font{Family: "Calibri", Size: 11},
		}),
		Code: style(&excelize.Style{
			Font: &excelize.Font{Family: "Consolas", Size: 10},
		}),
	}
	if err != nil {
		return nil, err
	}
	return set, nil
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	border := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		border = append(border, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return border
}
