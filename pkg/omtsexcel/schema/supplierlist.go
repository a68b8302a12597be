package schema

// SupplierList returns the denormalized single-sheet variant: one row per
// supply relationship, folded into organizations by supplier_id at import
// time. The fold itself is the importer's job; this template only has to
// state the convention (header comments and the instructions sheet) and
// ship an example that exercises it.
func SupplierList() TemplateSpec {
	return TemplateSpec{
		Name:        "supplier-list",
		Version:     "0.1.0",
		Title:       "OMTS Supplier List Template",
		HeaderColor: "4472C4",
		Sheets:      []SheetSpec{supplierSheet()},
		Instructions: Instructions{
			Intro: []string{
				"This workbook is designed for import into the OMTS format using:",
				"    omtsf import-excel <this-file.xlsx> -o output.omts",
			},
			Notes: []NoteSection{
				{
					Heading: "ROW FOLDING",
					Rows: []NoteRow{
						{Text: "Each data row describes one supply relationship, not one supplier."},
						{Text: "Rows that share the same non-empty supplier_id are folded into a single"},
						{Text: "organization at import time; each row still contributes its own edge."},
						{Text: "parent_supplier resolves against another row's supplier_id first, then"},
						{Text: "against its supplier_name. Rows with no parent_supplier are tier 1."},
						{Text: "Example: two rows sharing supplier_id bolt-001 with different business"},
						{Text: "units become one organization with two supply edges; a row whose"},
						{Text: "parent_supplier is bolt-001 becomes a tier-2 child of that organization."},
						{Text: "A parent_supplier that matches no other row is left to the importer."},
					},
				},
				{
					Heading: "NOTES COLUMN",
					Rows: []NoteRow{
						{Text: "The notes column is kept for human reference and is not imported."},
					},
				},
			},
		},
	}
}

func supplierSheet() SheetSpec {
	return SheetSpec{
		Title:     "Supplier List",
		Purpose:   "One row per supply relationship; suppliers are folded by supplier_id at import time.",
		HeaderRow: 4,
		MetaBlock: []MetaCell{
			{Label: "Reporting Entity", Row: 1, Col: 1,
				Help: "Your organization's legal name."},
			{Label: "Snapshot Date", Row: 1, Col: 3,
				Help: "ISO 8601 date (YYYY-MM-DD) when this supplier list was produced."},
			{Label: "Disclosure Scope", Row: 2, Col: 1,
				Domain:      []string{"internal", "partner", "public"},
				Help:        "Who will see this file: internal, partner, or public.",
				PromptTitle: "Disclosure Scope", Prompt: "Who will see this file? (default: partner)"},
		},
		Columns: []ColumnSpec{
			{Name: "supplier_name", Required: true, Width: 30,
				Help: "Required. Legal name of the supplier organization."},
			{Name: "supplier_id", Width: 14,
				Help: "Optional dedup key. Rows sharing the same supplier_id collapse to a single organization node, even if names differ. Use when different business units refer to the same supplier by different names."},
			{Name: "jurisdiction", Width: 14,
				Help: "ISO 3166-1 alpha-2 country code of incorporation (e.g. GB, DE, CN)."},
			{Name: "tier", Width: 8,
				Domain:      []string{"1", "2", "3"},
				Help:        "Supply-chain tier: 1 = direct supplier, 2 = sub-supplier, 3 = sub-sub-supplier. Defaults to 1 if blank.",
				PromptTitle: "Tier", Prompt: "Supply-chain tier: 1 = direct, 2 = sub-supplier, 3 = sub-sub-supplier"},
			{Name: "parent_supplier", Width: 30,
				Help: "For tier 2/3 suppliers: name or supplier_id of the tier N-1 supplier they supply through. Must match a supplier_name or supplier_id in another row.",
				Ref:  &ColumnRef{Sheet: "Supplier List", Column: "supplier_id or supplier_name"}},
			{Name: "business_unit", Width: 18,
				Help: "Optional. Your internal business unit that manages this supplier relationship. Allows the same supplier to appear on multiple rows with different risk profiles per BU."},
			{Name: "commodity", Width: 20,
				Help: "HS/CN code or description of what this supplier provides (e.g. 7318.15). Each row represents one supply relationship — use multiple rows for multiple commodities."},
			{Name: "valid_from", Width: 14,
				Help: "ISO 8601 date (YYYY-MM-DD) when this supply relationship started."},
			{Name: "annual_value", Width: 14,
				Help: "Annual procurement spend for this relationship (numeric)."},
			{Name: "value_currency", Width: 14,
				Help: "ISO 4217 currency code for annual_value (e.g. EUR, USD, GBP)."},
			{Name: "contract_ref", Width: 16,
				Help: "Reference number of the governing contract or master service agreement."},
			{Name: "lei", Width: 24,
				Help: "Legal Entity Identifier (20-character alphanumeric, ISO 17442)."},
			{Name: "duns", Width: 14,
				Help: "D-U-N-S Number (9 digits, Dun & Bradstreet)."},
			{Name: "vat", Width: 20,
				Help: "VAT or tax identification number."},
			{Name: "vat_country", Width: 14,
				Help: "ISO 3166-1 alpha-2 country that issued the VAT number."},
			{Name: "internal_id", Width: 16,
				Help: "Your internal system identifier for this supplier (e.g. SAP vendor number)."},
			{Name: "risk_tier", Width: 12,
				Domain:      []string{"critical", "high", "medium", "low"},
				Help:        "Risk classification for this relationship: critical, high, medium, or low. Stored per-relationship (edge), not per-supplier.",
				PromptTitle: "Risk Tier", Prompt: "General risk classification"},
			{Name: "kraljic_quadrant", Width: 18,
				Domain:      []string{"strategic", "leverage", "bottleneck", "non-critical"},
				Help:        "Kraljic portfolio classification: strategic, leverage, bottleneck, or non-critical. Stored per-relationship (edge).",
				PromptTitle: "Kraljic Quadrant", Prompt: "Kraljic portfolio classification"},
			{Name: "approval_status", Width: 16,
				Domain:      []string{"approved", "conditional", "pending", "blocked", "phase-out"},
				Help:        "Supplier approval status for this relationship: approved, conditional, pending, blocked, or phase-out.",
				PromptTitle: "Approval Status", Prompt: "Supplier approval status"},
			{Name: "notes", Width: 30,
				Help: "Free-text notes. Not imported into the OMTS graph — for human reference only."},
		},
		MetaExamples: map[string]string{
			"Reporting Entity": "Acme Manufacturing GmbH",
			"Snapshot Date":    "2026-02-22",
			"Disclosure Scope": "partner",
		},
		// A multi-BU procurement scenario spanning three tiers. Rows 5 and 8
		// share supplier_id bolt-001 (one organization, two edges with
		// different business units); row 9 references its parent by
		// supplier_id, row 11 by name.
		Examples: []ExampleRow{
			{Row: 5, Cells: map[string]any{
				"supplier_name":    "Bolt Supplies Ltd",
				"supplier_id":      "bolt-001",
				"jurisdiction":     "GB",
				"tier":             1,
				"business_unit":    "Procurement",
				"commodity":        "7318.15",
				"valid_from":       "2023-01-15",
				"annual_value":     450000,
				"value_currency":   "EUR",
				"contract_ref":     "MSA-2023-001",
				"duns":             "234567890",
				"risk_tier":        "low",
				"kraljic_quadrant": "strategic",
				"approval_status":  "approved",
			}},
			{Row: 6, Cells: map[string]any{
				"supplier_name":    "Nordic Fasteners AB",
				"jurisdiction":     "SE",
				"tier":             1,
				"business_unit":    "Procurement",
				"commodity":        "7318.15",
				"valid_from":       "2024-06-01",
				"annual_value":     120000,
				"value_currency":   "EUR",
				"risk_tier":        "medium",
				"kraljic_quadrant": "leverage",
				"approval_status":  "conditional",
				"notes":            "Under evaluation; trial order in progress",
			}},
			{Row: 7, Cells: map[string]any{
				"supplier_name":    "Shanghai Steel Components Co",
				"supplier_id":      "shan-001",
				"jurisdiction":     "CN",
				"tier":             1,
				"business_unit":    "Procurement",
				"commodity":        "7228.70",
				"valid_from":       "2022-03-01",
				"annual_value":     800000,
				"value_currency":   "USD",
				"contract_ref":     "FWA-2022-008",
				"internal_id":      "V-200891",
				"risk_tier":        "high",
				"kraljic_quadrant": "bottleneck",
				"approval_status":  "approved",
			}},
			{Row: 8, Cells: map[string]any{
				"supplier_name":    "Bolt Supplies Ltd",
				"supplier_id":      "bolt-001",
				"jurisdiction":     "GB",
				"tier":             1,
				"business_unit":    "Engineering",
				"commodity":        "7318.16",
				"valid_from":       "2024-01-01",
				"annual_value":     180000,
				"value_currency":   "EUR",
				"risk_tier":        "medium",
				"kraljic_quadrant": "non-critical",
				"approval_status":  "approved",
			}},
			{Row: 9, Cells: map[string]any{
				"supplier_name":   "Yorkshire Steel Works",
				"jurisdiction":    "GB",
				"tier":            2,
				"parent_supplier": "bolt-001",
				"commodity":       "7208.10",
				"valid_from":      "2021-09-01",
				"risk_tier":       "low",
				"approval_status": "approved",
			}},
			{Row: 10, Cells: map[string]any{
				"supplier_name":   "Baosteel Trading Co",
				"jurisdiction":    "CN",
				"tier":            2,
				"parent_supplier": "shan-001",
				"commodity":       "7207.11",
				"valid_from":      "2020-01-15",
				"risk_tier":       "high",
				"notes":           "Primary raw material supplier for Shanghai Steel",
			}},
			{Row: 11, Cells: map[string]any{
				"supplier_name":   "Inner Mongolia Mining Corp",
				"jurisdiction":    "CN",
				"tier":            3,
				"parent_supplier": "Baosteel Trading Co",
				"commodity":       "2601.11",
				"risk_tier":       "critical",
				"notes":           "Iron ore source; LKSG high-risk region",
			}},
		},
	}
}
