package services

import (
	"fmt"
	"strings"
)

// GRPSExportRow is one scope item of the GRPS mapping export.
type GRPSExportRow struct {
	ScopeItem     string   // "[id] name"
	ContractItems []string // "id: description"
	Sheets        string
	Specs         string
}

// ContractItemsText returns the contract lines joined by newlines, or "None".
func (r GRPSExportRow) ContractItemsText() string {
	if len(r.ContractItems) == 0 {
		return "None"
	}
	return strings.Join(r.ContractItems, "\n")
}

// GRPSExportSheet holds the rows of one discipline.
type GRPSExportSheet struct {
	Title string
	Rows  []GRPSExportRow
}

// BuildGRPSExport prepares one sheet per loaded discipline that has scope
// items, in discipline order.
func BuildGRPSExport(data *GRPSData) []GRPSExportSheet {
	var sheets []GRPSExportSheet
	for _, d := range Disciplines() {
		ds := data.Dataset(d)
		if ds == nil || len(ds.ScopeItems) == 0 {
			continue
		}
		resolver := NewResolver(ds)

		sheet := GRPSExportSheet{Title: d.Title()}
		for _, si := range ds.ScopeItems {
			row := GRPSExportRow{ScopeItem: si.Name}
			if si.ScopeItemID.Valid && si.ScopeItemID.Value != 0 {
				row.ScopeItem = fmt.Sprintf("[%d] %s", si.ScopeItemID.Value, si.Name)
			}
			for _, id := range si.CombinedFrom {
				item, ok := ds.ContractItems.Get(id.Value)
				if !id.Valid || !ok {
					row.ContractItems = append(row.ContractItems, id.String()+": (Not found in contract items)")
					continue
				}
				row.ContractItems = append(row.ContractItems, fmt.Sprintf("%d: %s", item.ID, item.Description))
			}
			agg, _ := resolver.ResolveScopeItemAggregate(si)
			row.Sheets = agg.SheetsText()
			row.Specs = agg.SpecsText()
			sheet.Rows = append(sheet.Rows, row)
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

// BidItemExportRow is one bid item of the bid items workbook.
type BidItemExportRow struct {
	ItemNumber  string
	Description string
	Category    string
	Status      string
	DrawingRefs string
	SpecRefs    string
}

// BidItemExportSheet holds the rows of one scope.
type BidItemExportSheet struct {
	Title string
	Rows  []BidItemExportRow
}

// BuildBidItemExport flattens data.json into one sheet per scope, sorted by
// category then item number.
func BuildBidItemExport(bd *BidData) []BidItemExportSheet {
	var sheets []BidItemExportSheet
	for _, scope := range bd.Scopes {
		if _, ok := bd.BidItems[scope.ID]; !ok {
			continue
		}
		sheet := BidItemExportSheet{Title: scope.Name}
		for _, cat := range bd.Categories(scope.ID) {
			items := append([]BidItem(nil), bd.BidItems[scope.ID][cat]...)
			sortByItemNumber(items)
			for _, item := range items {
				sheet.Rows = append(sheet.Rows, BidItemExportRow{
					ItemNumber:  item.ItemNumber,
					Description: item.Description,
					Category:    cat,
					Status:      item.Status,
					DrawingRefs: flattenRefs(item.DrawingRefs),
					SpecRefs:    flattenRefs(item.SpecRefs),
				})
			}
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

func flattenRefs(refs []Ref) string {
	var parts []string
	for _, r := range refs {
		parts = append(parts, r.Items...)
	}
	return strings.Join(parts, ", ")
}
