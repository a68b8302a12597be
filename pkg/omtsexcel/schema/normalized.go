package schema

// Full returns the normalized multi-sheet graph template: one sheet per
// node or edge kind, plus the file-level Metadata sheet. Each call builds a
// fresh value, so callers may reorder or trim sheets without affecting
// later invocations.
//
// Column names and domains are the compatibility contract with the
// importer. Do not rename or reorder without bumping Version.
func Full() TemplateSpec {
	return TemplateSpec{
		Name:        "full",
		Version:     "0.1.0",
		Title:       "OMTS Excel Import Template",
		HeaderColor: "2F5496",
		Sheets: []SheetSpec{
			metadataSheet(),
			organizationsSheet(),
			facilitiesSheet(),
			goodsSheet(),
			attestationsSheet(),
			personsSheet(),
			consignmentsSheet(),
			supplyRelationshipsSheet(),
			corporateStructureSheet(),
			sameAsSheet(),
			identifiersSheet(),
		},
		Instructions: Instructions{
			Intro: []string{
				"This workbook is designed for import into the OMTS format using:",
				"    omtsf import-excel <this-file.xlsx> -o output.omts",
			},
			Notes: []NoteSection{
				{
					Heading: "AUTO-GENERATED FIELDS",
					Rows: []NoteRow{
						{Text: "The import command will auto-generate:"},
						{Text: "  - file_salt (cryptographic random)"},
						{Text: "  - node/edge IDs (if left blank)"},
						{Text: "  - boundary_ref nodes (if disclosure_scope set)"},
						{Text: "  - sensitivity defaults per SPEC-004"},
					},
				},
				{
					Heading: "IDENTIFIER COLUMNS",
					Rows: []NoteRow{
						{Text: "Common identifiers have dedicated columns on the Organizations sheet:"},
						{Text: "  lei          - Legal Entity Identifier (20-char, validated)"},
						{Text: "  duns         - DUNS Number (9-digit, validated)"},
						{Text: "  nat_reg_*    - National registry number + GLEIF RA authority code"},
						{Text: "  vat_*        - VAT/tax ID + ISO 3166-1 alpha-2 country code"},
						{Text: "  internal_*   - Internal system ID + system name"},
						{Text: "For multiple IDs of the same scheme, use the Identifiers sheet."},
					},
				},
				{
					Heading: "EDGE DIRECTION",
					Rows: []NoteRow{
						{Text: "Supply Relationships: supplier_id = who supplies, buyer_id = who buys"},
						{Text: "Corporate Structure: subsidiary_id = child entity, parent_id = parent entity"},
					},
				},
				{
					Heading: "ENTITY DEDUPLICATION",
					Rows: []NoteRow{
						{Text: "Use the Same As sheet to link nodes that represent the same real-world entity"},
						{Text: "but appear as separate rows (e.g., same company under different names/IDs)."},
						{Text: "The import command uses these to generate same_as edges for merge operations."},
					},
				},
				{
					Heading: "PERSON NODE PRIVACY",
					Rows: []NoteRow{
						{Text: "Person nodes default to confidential sensitivity (SPEC-004)."},
						{Text: "If disclosure_scope is 'public', the import command will reject the file"},
						{Text: "if any person nodes are present."},
					},
				},
			},
		},
	}
}

func metadataSheet() SheetSpec {
	return SheetSpec{
		Title:     "Metadata",
		Purpose:   "File-level settings: snapshot date, reporting entity, disclosure scope.",
		Layout:    LayoutKeyValue,
		HeaderRow: 1,
		Fields: []FieldSpec{
			{
				Key:         "snapshot_date",
				Required:    true,
				Description: "ISO 8601 date (YYYY-MM-DD) when this snapshot was produced. REQUIRED.",
				Help:        "Required. ISO 8601 date (YYYY-MM-DD) when this data snapshot was produced.",
			},
			{
				Key:         "reporting_entity",
				Description: "ID of the organization node whose perspective this file represents (optional).",
				Help:        "Node ID of the organization whose perspective this file represents. Must match an id in the Organizations sheet.",
				Ref:         &ColumnRef{Sheet: "Organizations", Column: "id"},
			},
			{
				Key:         "disclosure_scope",
				Domain:      []string{"internal", "partner", "public"},
				Description: "Intended audience: internal, partner, or public (optional).",
				Help:        "Who will see this file: internal (company only), partner (supply-chain partners), or public.",
			},
			{
				Key:         "default_confidence",
				Domain:      []string{"verified", "reported", "inferred", "estimated"},
				Description: "Default data quality confidence: verified, reported, inferred, estimated (optional).",
				Help:        "Default data quality level: verified, reported, inferred, or estimated.",
			},
			{
				Key:         "default_source",
				Description: "Default data quality source description (optional).",
				Help:        `Default description of how data was collected (e.g. "manual-review", "erp-export").`,
			},
			{
				Key:         "default_last_verified",
				Description: "Default date data was last verified, ISO 8601 (optional).",
				Help:        "ISO 8601 date when data was last verified.",
			},
		},
		ColWidths: map[string]float64{"A": 22, "B": 30, "C": 70},
		MetaExamples: map[string]string{
			"snapshot_date":         "2026-02-17",
			"reporting_entity":      "org-acme",
			"disclosure_scope":      "partner",
			"default_confidence":    "reported",
			"default_source":        "manual-review",
			"default_last_verified": "2026-02-17",
		},
	}
}

func organizationsSheet() SheetSpec {
	return SheetSpec{
		Title:     "Organizations",
		Purpose:   "Legal entities (companies, NGOs, government bodies).",
		HeaderRow: 1,
		Columns: []ColumnSpec{
			{Name: "id", Width: 18,
				Help: "Graph-local identifier. Auto-generated from name if left blank."},
			{Name: "name", Required: true, Width: 30,
				Help: "Required. Legal name of the organization."},
			{Name: "jurisdiction", Width: 14,
				Help: "ISO 3166-1 alpha-2 country code of incorporation."},
			{Name: "status", Width: 12,
				Domain:      []string{"active", "dissolved", "merged", "suspended"},
				Help:        "Organization lifecycle: active, dissolved, merged, or suspended.",
				PromptTitle: "Status", Prompt: "Organization lifecycle status"},
			{Name: "lei", Width: 24,
				Help: "Legal Entity Identifier (20 characters, ISO 17442)."},
			{Name: "duns", Width: 14,
				Help: "D-U-N-S Number (9 digits)."},
			{Name: "nat_reg_value", Width: 20,
				Help: "National business registry number (e.g. Companies House number)."},
			{Name: "nat_reg_authority", Width: 18,
				Help: "GLEIF Registration Authority code (e.g. RA000585 for UK Companies House)."},
			{Name: "vat_value", Width: 20,
				Help: "VAT or tax identification number."},
			{Name: "vat_country", Width: 12,
				Help: "ISO 3166-1 alpha-2 country that issued the VAT number."},
			{Name: "internal_id", Width: 16,
				Help: "Your internal system identifier (e.g. SAP vendor number)."},
			{Name: "internal_system", Width: 20,
				Help: `Name of the internal system (e.g. "sap-mm-prod").`},
			{Name: "risk_tier", Width: 12,
				Domain:      []string{"critical", "high", "medium", "low"},
				Help:        "General risk classification: critical, high, medium, or low.",
				PromptTitle: "Risk Tier", Prompt: "General risk classification"},
			{Name: "kraljic_quadrant", Width: 16,
				Domain:      []string{"strategic", "leverage", "bottleneck", "non-critical"},
				Help:        "Kraljic portfolio classification: strategic, leverage, bottleneck, or non-critical.",
				PromptTitle: "Kraljic Quadrant", Prompt: "Kraljic portfolio classification"},
			{Name: "approval_status", Width: 16,
				Domain:      []string{"approved", "conditional", "pending", "blocked", "phase-out"},
				Help:        "Supplier approval status: approved, conditional, pending, blocked, or phase-out.",
				PromptTitle: "Approval Status", Prompt: "Supplier approval status"},
		},
		Examples: []ExampleRow{
			{Row: 2, Cells: map[string]any{
				"id":                "org-acme",
				"name":              "Acme Manufacturing GmbH",
				"jurisdiction":      "DE",
				"status":            "active",
				"lei":               "5493006MHB84DD0ZWV18",
				"duns":              "081466849",
				"nat_reg_value":     "HRB86891",
				"nat_reg_authority": "RA000548",
				"vat_value":         "DE123456789",
				"vat_country":       "DE",
				"internal_id":       "V-100234",
				"internal_system":   "sap-mm-prod",
			}},
			{Row: 3, Cells: map[string]any{
				"id":                "org-bolt",
				"name":              "Bolt Supplies Ltd",
				"jurisdiction":      "GB",
				"status":            "active",
				"duns":              "234567890",
				"nat_reg_value":     "07228507",
				"nat_reg_authority": "RA000585",
				"risk_tier":         "low",
				"kraljic_quadrant":  "strategic",
			}},
		},
	}
}

func facilitiesSheet() SheetSpec {
	return SheetSpec{
		Title:     "Facilities",
		Purpose:   "Physical locations (factories, warehouses, farms, mines).",
		HeaderRow: 1,
		Columns: []ColumnSpec{
			{Name: "id", Width: 20,
				Help: "Graph-local identifier. Auto-generated from name if blank."},
			{Name: "name", Required: true, Width: 30,
				Help: `Required. Name of the facility (e.g. "Sheffield Plant").`},
			{Name: "operator_id", Width: 18,
				Help: "ID of the organization that operates this facility. Must match an id in Organizations.",
				Ref:  &ColumnRef{Sheet: "Organizations", Column: "id"}},
			{Name: "address", Width: 40,
				Help: "Street address or location description."},
			{Name: "latitude", Width: 14,
				Help: "WGS 84 latitude (decimal degrees, e.g. 53.3811)."},
			{Name: "longitude", Width: 14,
				Help: "WGS 84 longitude (decimal degrees, e.g. -1.4701)."},
			{Name: "gln", Width: 18,
				Help: "Global Location Number (13 digits, GS1)."},
			{Name: "internal_id", Width: 16,
				Help: "Your internal site identifier."},
			{Name: "internal_system", Width: 20,
				Help: "Name of the internal system."},
		},
		Examples: []ExampleRow{
			{Row: 2, Cells: map[string]any{
				"id":          "fac-bolt-sheffield",
				"name":        "Bolt Sheffield Plant",
				"operator_id": "org-bolt",
				"latitude":    53.3811,
				"longitude":   -1.4701,
			}},
		},
	}
}

func goodsSheet() SheetSpec {
	return SheetSpec{
		Title:     "Goods",
		Purpose:   "Products, materials, or commodities.",
		HeaderRow: 1,
		Columns: []ColumnSpec{
			{Name: "id", Width: 20,
				Help: "Graph-local identifier. Auto-generated from name if blank."},
			{Name: "name", Required: true, Width: 30,
				Help: "Required. Name of the product or material."},
			{Name: "commodity_code", Width: 16,
				Help: "HS or CN commodity code (e.g. 7318.15 for bolts)."},
			{Name: "unit", Width: 10,
				Help: "Unit of measure (e.g. kg, mt, pcs)."},
			{Name: "gtin", Width: 18,
				Help: "Global Trade Item Number (GS1)."},
		},
		Examples: []ExampleRow{
			{Row: 2, Cells: map[string]any{
				"id":             "good-steel-bolts",
				"name":           "M10 Steel Hex Bolts",
				"commodity_code": "7318.15",
				"gtin":           "05060012340018",
			}},
		},
	}
}

func attestationsSheet() SheetSpec {
	return SheetSpec{
		Title:     "Attestations",
		Purpose:   "Certifications, audits, due diligence statements.",
		HeaderRow: 1,
		Columns: []ColumnSpec{
			{Name: "id", Width: 18,
				Help: "Graph-local identifier. Auto-generated if blank."},
			{Name: "name", Required: true, Width: 30,
				Help: "Required. Name of the certification or audit."},
			{Name: "attestation_type", Required: true, Width: 24,
				Domain:      []string{"certification", "audit", "due_diligence_statement", "self_declaration", "other"},
				Help:        "Required. Type: certification, audit, due_diligence_statement, self_declaration, or other.",
				PromptTitle: "Attestation Type", Prompt: "Type of attestation"},
			{Name: "standard", Width: 20,
				Help: "Standard or scheme (e.g. SA8000:2014, ISO 14001)."},
			{Name: "issuer", Width: 30,
				Help: "Name of the issuing body."},
			{Name: "valid_from", Required: true, Width: 14,
				Help: "Required. ISO 8601 date (YYYY-MM-DD) when the attestation takes effect."},
			{Name: "valid_to", Width: 14,
				Help: "ISO 8601 date when the attestation expires."},
			{Name: "outcome", Width: 16,
				Domain:      []string{"pass", "conditional_pass", "fail", "pending", "not_applicable"},
				Help:        "Result: pass, conditional_pass, fail, pending, or not_applicable.",
				PromptTitle: "Outcome", Prompt: "Attestation outcome"},
			{Name: "status", Width: 12,
				Domain:      []string{"active", "suspended", "revoked", "expired", "withdrawn"},
				Help:        "Lifecycle: active, suspended, revoked, expired, or withdrawn.",
				PromptTitle: "Status", Prompt: "Attestation lifecycle status"},
			{Name: "reference", Width: 20,
				Help: "External reference number or URL."},
			{Name: "risk_severity", Width: 14,
				Domain:      []string{"critical", "high", "medium", "low"},
				Help:        "Risk severity: critical, high, medium, or low.",
				PromptTitle: "Risk Severity", Prompt: "Risk severity classification"},
			{Name: "risk_likelihood", Width: 14,
				Domain:      []string{"very_likely", "likely", "possible", "unlikely"},
				Help:        "Risk likelihood: very_likely, likely, possible, or unlikely.",
				PromptTitle: "Risk Likelihood", Prompt: "Risk likelihood"},
			{Name: "attested_entity_id", Width: 22,
				Help: "Node ID of the entity this attestation covers. Creates an attested_by edge.",
				Ref:  &ColumnRef{Sheet: "any entity sheet", Column: "id"}},
			{Name: "scope", Width: 20,
				Help: `Scope of the attestation (e.g. "working conditions", "environmental compliance").`},
		},
		Examples: []ExampleRow{
			{Row: 2, Cells: map[string]any{
				"id":                 "att-sa8000",
				"name":               "SA8000 Certification",
				"attestation_type":   "certification",
				"standard":           "SA8000:2014",
				"issuer":             "Social Accountability International",
				"valid_from":         "2025-06-01",
				"valid_to":           "2028-05-31",
				"outcome":            "pass",
				"status":             "active",
				"attested_entity_id": "fac-bolt-sheffield",
				"scope":              "working conditions",
			}},
		},
	}
}

func personsSheet() SheetSpec {
	return SheetSpec{
		Title:     "Persons",
		Purpose:   "Beneficial owners, key individuals (sensitivity: confidential by default).",
		HeaderRow: 1,
		Columns: []ColumnSpec{
			{Name: "id", Width: 18,
				Help: "Graph-local identifier. Auto-generated if blank."},
			{Name: "name", Required: true, Width: 30,
				Help: "Required. Full name of the individual."},
			{Name: "jurisdiction", Width: 14,
				Help: "ISO 3166-1 alpha-2 country of residence."},
			{Name: "role", Width: 20,
				Help: `Role description (e.g. "Director", "UBO").`},
			{Name: "nationality", Width: 14,
				Help: "ISO 3166-1 alpha-2 nationality."},
		},
	}
}

func consignmentsSheet() SheetSpec {
	return SheetSpec{
		Title:     "Consignments",
		Purpose:   "Batches, lots, shipments (optional, for CBAM/EUDR).",
		HeaderRow: 1,
		Columns: []ColumnSpec{
			{Name: "id", Width: 18,
				Help: "Graph-local identifier. Auto-generated if blank."},
			{Name: "name", Required: true, Width: 30,
				Help: "Required. Description of the consignment or batch."},
			{Name: "lot_id", Width: 14,
				Help: "Lot or batch identifier."},
			{Name: "quantity", Width: 12,
				Help: "Quantity in the consignment."},
			{Name: "unit", Width: 10,
				Help: "Unit of measure (e.g. kg, mt)."},
			{Name: "production_date", Width: 16,
				Help: "ISO 8601 date of production."},
			{Name: "origin_country", Width: 16,
				Help: "ISO 3166-1 alpha-2 country of origin."},
			{Name: "installation_id", Width: 18,
				Help: "ID of the producing facility. Must match an id in Facilities.",
				Ref:  &ColumnRef{Sheet: "Facilities", Column: "id"}},
			{Name: "direct_emissions_co2e", Width: 22,
				Help: "Direct (Scope 1) emissions in tonnes CO2e (CBAM)."},
			{Name: "indirect_emissions_co2e", Width: 24,
				Help: "Indirect (Scope 2) emissions in tonnes CO2e (CBAM)."},
			{Name: "emission_factor_source", Width: 24,
				Domain:      []string{"actual", "default_eu", "default_country"},
				Help:        "Source of emissions data: actual, default_eu, or default_country.",
				PromptTitle: "Emission Factor", Prompt: "Source of emissions data"},
		},
	}
}

func supplyRelationshipsSheet() SheetSpec {
	return SheetSpec{
		Title:     "Supply Relationships",
		Purpose:   "Supply, subcontracting, tolling, distribution edges.",
		HeaderRow: 1,
		Columns: []ColumnSpec{
			{Name: "id", Width: 14,
				Help: "Edge identifier. Auto-generated if blank."},
			{Name: "type", Required: true, Width: 16,
				Domain: []string{"supplies", "subcontracts", "tolls", "distributes", "brokers",
					"sells_to", "operates", "produces", "composed_of"},
				Help:        "Required. Relationship type: supplies, subcontracts, tolls, distributes, brokers, sells_to, operates, produces, composed_of.",
				PromptTitle: "Edge Type", Prompt: "Type of supply/operational relationship"},
			{Name: "supplier_id", Required: true, Width: 18,
				Help: "Required. Source node ID (the supplier, operator, or facility).",
				Ref:  &ColumnRef{Sheet: "any entity sheet", Column: "id"}},
			{Name: "buyer_id", Required: true, Width: 18,
				Help: "Required. Target node ID (the buyer, facility, or good).",
				Ref:  &ColumnRef{Sheet: "any entity sheet", Column: "id"}},
			{Name: "valid_from", Required: true, Width: 14,
				Help: "Required. ISO 8601 date when the relationship started."},
			{Name: "valid_to", Width: 14,
				Help: "ISO 8601 date when the relationship ended."},
			{Name: "commodity", Width: 16,
				Help: "HS/CN code or description of what is supplied."},
			{Name: "tier", Width: 8,
				Help: "Supply-chain tier relative to the reporting entity (1 = direct)."},
			{Name: "volume", Width: 12,
				Help: "Quantity supplied."},
			{Name: "volume_unit", Width: 14,
				Help: "Unit for volume (e.g. kg, mt, pcs)."},
			{Name: "annual_value", Width: 14,
				Help: "Annual monetary value of the relationship."},
			{Name: "value_currency", Width: 14,
				Help: "ISO 4217 currency code."},
			{Name: "contract_ref", Width: 16,
				Help: "Contract or agreement reference number."},
			{Name: "share_of_buyer_demand", Width: 22,
				Help: "Percentage of buyer's demand met by this supplier (0-100)."},
			{Name: "service_type", Width: 16,
				Domain:      []string{"warehousing", "transport", "fulfillment", "other"},
				Help:        "For distributes edges only: warehousing, transport, fulfillment, or other.",
				PromptTitle: "Service Type", Prompt: "For distributes edges only"},
		},
		Examples: []ExampleRow{
			{Row: 2, Cells: map[string]any{
				"id":          "edge-001",
				"type":        "supplies",
				"supplier_id": "org-bolt",
				"buyer_id":    "org-acme",
				"valid_from":  "2023-01-15",
				"commodity":   "7318.15",
				"tier":        1,
			}},
			{Row: 3, Cells: map[string]any{
				"id":          "edge-002",
				"type":        "operates",
				"supplier_id": "org-bolt",
				"buyer_id":    "fac-bolt-sheffield",
				"valid_from":  "2018-06-01",
			}},
			{Row: 4, Cells: map[string]any{
				"id":          "edge-003",
				"type":        "produces",
				"supplier_id": "fac-bolt-sheffield",
				"buyer_id":    "good-steel-bolts",
				"valid_from":  "2020-03-01",
			}},
		},
	}
}

func corporateStructureSheet() SheetSpec {
	return SheetSpec{
		Title:     "Corporate Structure",
		Purpose:   "Ownership, legal parentage, operational control edges.",
		HeaderRow: 1,
		Columns: []ColumnSpec{
			{Name: "id", Width: 14,
				Help: "Edge identifier. Auto-generated if blank."},
			{Name: "type", Required: true, Width: 24,
				Domain:      []string{"ownership", "legal_parentage", "operational_control", "beneficial_ownership"},
				Help:        "Required. Relationship: ownership, legal_parentage, operational_control, or beneficial_ownership.",
				PromptTitle: "Edge Type", Prompt: "Type of corporate relationship"},
			{Name: "subsidiary_id", Required: true, Width: 18,
				Help: "Required. The child/subsidiary entity node ID.",
				Ref:  &ColumnRef{Sheet: "any entity sheet", Column: "id"}},
			{Name: "parent_id", Required: true, Width: 18,
				Help: "Required. The parent entity node ID.",
				Ref:  &ColumnRef{Sheet: "any entity sheet", Column: "id"}},
			{Name: "valid_from", Required: true, Width: 14,
				Help: "Required. ISO 8601 date when the relationship started."},
			{Name: "valid_to", Width: 14,
				Help: "ISO 8601 date when the relationship ended."},
			{Name: "percentage", Width: 14,
				Help: "Ownership or control percentage (0-100). For ownership and beneficial_ownership."},
			{Name: "direct", Width: 10,
				Domain:      []string{"TRUE", "FALSE"},
				Help:        "TRUE for direct relationships, FALSE for indirect.",
				PromptTitle: "Direct", Prompt: "Direct or indirect relationship"},
			{Name: "control_type", Width: 26,
				Domain: []string{"franchise", "management", "tolling", "licensed_manufacturing", "other",
					"voting_rights", "capital", "other_means", "senior_management"},
				Help:        "Type of control (for operational_control or beneficial_ownership).",
				PromptTitle: "Control Type", Prompt: "For operational_control or beneficial_ownership"},
			{Name: "consolidation_basis", Width: 22,
				Domain:      []string{"ifrs10", "us_gaap_asc810", "other", "unknown"},
				Help:        "Accounting consolidation basis (for legal_parentage): ifrs10, us_gaap_asc810, other, unknown.",
				PromptTitle: "Consolidation Basis", Prompt: "For legal_parentage only"},
		},
		Examples: []ExampleRow{
			{Row: 2, Cells: map[string]any{
				"id":            "edge-004",
				"type":          "ownership",
				"subsidiary_id": "org-acme",
				"parent_id":     "org-bolt",
				"valid_from":    "2019-04-01",
				"percentage":    51.0,
			}},
		},
	}
}

func sameAsSheet() SheetSpec {
	return SheetSpec{
		Title:     "Same As",
		Purpose:   "Entity deduplication: link nodes that represent the same real-world entity.",
		HeaderRow: 1,
		Columns: []ColumnSpec{
			{Name: "entity_a", Width: 20,
				Help: "Node ID of the first entity.",
				Ref:  &ColumnRef{Sheet: "any entity sheet", Column: "id"}},
			{Name: "entity_b", Width: 20,
				Help: "Node ID of the second entity (asserted to be the same real-world entity).",
				Ref:  &ColumnRef{Sheet: "any entity sheet", Column: "id"}},
			{Name: "confidence", Width: 14,
				Domain:      []string{"definite", "probable", "possible"},
				Help:        "Confidence level: definite, probable, or possible.",
				PromptTitle: "Confidence", Prompt: "Confidence level of the equivalence assertion"},
			{Name: "basis", Width: 40,
				Help: `Justification for the assertion (e.g. "LEI match", "manual review").`},
		},
	}
}

func identifiersSheet() SheetSpec {
	return SheetSpec{
		Title:     "Identifiers",
		Purpose:   "Advanced: additional identifiers beyond the common columns.",
		HeaderRow: 1,
		Columns: []ColumnSpec{
			{Name: "node_id", Width: 18,
				Help: "ID of the node this identifier belongs to. Must match an id in any entity sheet.",
				Ref:  &ColumnRef{Sheet: "any entity sheet", Column: "id"}},
			{Name: "scheme", Width: 12,
				Domain:      []string{"lei", "duns", "gln", "nat-reg", "vat", "internal"},
				Help:        "Identifier scheme: lei, duns, gln, nat-reg, vat, or internal.",
				PromptTitle: "Scheme", Prompt: "Identifier scheme"},
			{Name: "value", Width: 24,
				Help: "The identifier value."},
			{Name: "authority", Width: 20,
				Help: "Issuing authority. Required for nat-reg, vat, and internal schemes."},
			{Name: "sensitivity", Width: 14,
				Domain:      []string{"public", "restricted", "confidential"},
				Help:        "Access level: public, restricted, or confidential.",
				PromptTitle: "Sensitivity", Prompt: "Identifier sensitivity level"},
			{Name: "valid_from", Width: 14,
				Help: "ISO 8601 date when the identifier became valid."},
			{Name: "valid_to", Width: 14,
				Help: "ISO 8601 date when the identifier expired."},
			{Name: "verification_status", Width: 18,
				Domain:      []string{"verified", "reported", "inferred", "unverified"},
				Help:        "Verification state: verified, reported, inferred, or unverified.",
				PromptTitle: "Verification", Prompt: "Verification status"},
		},
		Examples: []ExampleRow{
			{Row: 2, Cells: map[string]any{
				"node_id":     "fac-bolt-sheffield",
				"scheme":      "gln",
				"value":       "5060012340001",
				"sensitivity": "public",
			}},
			{Row: 3, Cells: map[string]any{
				"node_id":     "fac-bolt-sheffield",
				"scheme":      "internal",
				"value":       "SITE-SHF-01",
				"authority":   "bolt-erp",
				"sensitivity": "restricted",
			}},
		},
	}
}
