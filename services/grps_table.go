package services

import "strconv"

// DerivedContract is one contract item a scope item was combined from.
type DerivedContract struct {
	ID          string
	Description string
}

// GRPSTableRow is a display row of any GRPS view. Derived is only set for
// scope items.
type GRPSTableRow struct {
	ID          string
	Description string
	Derived     []DerivedContract
	Sheets      string
	Specs       string
}

// GRPSRows builds the rows of one view over a loaded dataset, in file order
// (contract items in id order). A nil dataset yields no rows.
func GRPSRows(ds *GRPSDataset, view GRPSView) []GRPSTableRow {
	if ds == nil {
		return nil
	}
	resolver := NewResolver(ds)

	var rows []GRPSTableRow
	switch view {
	case GRPSViewContractItems:
		for _, item := range ds.ContractItems.Items() {
			ss, _ := resolver.ResolveSheetsSpecs(item.ID)
			rows = append(rows, GRPSTableRow{
				ID:          strconv.Itoa(item.ID),
				Description: item.Description,
				Sheets:      ss.SheetsText(),
				Specs:       ss.SpecsText(),
			})
		}
	case GRPSViewScopeItems:
		for _, si := range ds.ScopeItems {
			row := GRPSTableRow{ID: scopeItemLabel(si.ScopeItemID), Description: si.Name}
			for _, id := range si.CombinedFrom {
				row.Derived = append(row.Derived, DerivedContract{
					ID:          id.String(),
					Description: resolver.ContractDescription(id),
				})
			}
			agg, _ := resolver.ResolveScopeItemAggregate(si)
			row.Sheets = agg.SheetsText()
			row.Specs = agg.SpecsText()
			rows = append(rows, row)
		}
	default:
		for _, b := range ds.BidItems {
			rows = append(rows, GRPSTableRow{
				ID:          b.ID.String(),
				Description: b.Description,
				Sheets:      joinDocRefs(b.Sheets),
				Specs:       joinDocRefs(b.Specs),
			})
		}
	}
	return rows
}

// scopeItemLabel renders a scope item id. Zero marks an unnumbered scope item
// and shows as "-" like a missing id.
func scopeItemLabel(id FlexID) string {
	if id.Value == 0 {
		return NoReferences
	}
	return id.String()
}
