package services

import (
	"context"
	"time"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

// Export is a generated file ready to be downloaded or written to disk.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportGRPSExcel loads every discipline and builds the scope item mapping
// workbook.
func (l *Loader) ExportGRPSExcel(ctx context.Context) (Export, error) {
	data, err := GenerateGRPSExcel(BuildGRPSExport(l.LoadGRPS(ctx)))
	if err != nil {
		return Export{}, err
	}
	return Export{Filename: "GRPS_Scope_Items_Mapping.xlsx", ContentType: xlsxContentType, Data: data}, nil
}

// ExportGRPSPDF is ExportGRPSExcel rendered as a PDF.
func (l *Loader) ExportGRPSPDF(ctx context.Context) (Export, error) {
	generatedOn := time.Now().Format("02 Jan 2006 15:04")
	data, err := GenerateGRPSPDF(BuildGRPSExport(l.LoadGRPS(ctx)), generatedOn)
	if err != nil {
		return Export{}, err
	}
	return Export{Filename: "GRPS_Scope_Items_Mapping.pdf", ContentType: pdfContentType, Data: data}, nil
}

// ExportPackageMappingExcel builds the package group to spec workbook. A
// failed load is an error here rather than an empty workbook.
func (l *Loader) ExportPackageMappingExcel(ctx context.Context) (Export, error) {
	pm, err := l.LoadPackageMappings(ctx)
	if err != nil {
		return Export{}, err
	}
	data, err := GeneratePackageMappingExcel(pm)
	if err != nil {
		return Export{}, err
	}
	return Export{Filename: "Package_Group_to_Spec_Mapping.xlsx", ContentType: xlsxContentType, Data: data}, nil
}

// ExportBidItemsExcel builds the bid items by category workbook.
func (l *Loader) ExportBidItemsExcel(ctx context.Context) (Export, error) {
	bd, err := l.LoadBidData(ctx)
	if err != nil {
		return Export{}, err
	}
	data, err := GenerateBidItemsExcel(BuildBidItemExport(bd))
	if err != nil {
		return Export{}, err
	}
	return Export{Filename: "Bid_Items_By_Category.xlsx", ContentType: xlsxContentType, Data: data}, nil
}
