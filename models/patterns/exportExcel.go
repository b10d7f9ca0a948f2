package patterns

import (
	"context"
	"fmt"
	"strings"

	"github.com/childfind-ng/childfind_backend/utils"
	"github.com/xuri/excelize/v2"
)

// ExportPatternsExcel renders the current pattern summary as a workbook with
// one sheet per alert-relevant detector. The caller owns writing/closing the
// returned file.
func ExportPatternsExcel(ctx context.Context) (*excelize.File, error) {
	summary, err := GetAllPatterns(ctx, true)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	sheet := "High Risk Locations"
	f.SetSheetName("Sheet1", sheet)
	writeHeader(f, sheet, "City", "Area", "Landmark", "Case Count", "Case Numbers")
	for i, loc := range summary.HighRiskLocations {
		writeRow(f, sheet, i+2,
			loc.MissingLocationCity,
			loc.MissingLocationArea,
			utils.DereferencePtr(loc.MissingLocationLandmark, ""),
			loc.CaseCount,
			strings.Join(loc.CaseNumbers, ", "),
		)
	}

	sheet = "Repeat Suspects"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	writeHeader(f, sheet, "Suspect Id", "First Name", "Last Name", "Alias", "Case Count", "Case Numbers")
	for i, s := range summary.RepeatSuspects {
		writeRow(f, sheet, i+2,
			s.SuspectId,
			utils.DereferencePtr(s.FirstName, ""),
			utils.DereferencePtr(s.LastName, ""),
			utils.DereferencePtr(s.Alias, ""),
			s.CaseCount,
			strings.Join(s.CaseNumbers, ", "),
		)
	}

	sheet = "Suspicious Zones"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	writeHeader(f, sheet, "City", "Area", "Landmark", "Unique Children", "Total Sightings", "Case Numbers")
	for i, zone := range summary.SuspiciousZones {
		writeRow(f, sheet, i+2,
			zone.LocationCity,
			zone.LocationArea,
			utils.DereferencePtr(zone.LocationLandmark, ""),
			zone.UniqueChildren,
			zone.TotalSightings,
			strings.Join(zone.CaseNumbers, ", "),
		)
	}

	return f, nil
}

func writeHeader(f *excelize.File, sheet string, headings ...string) {
	col := 'A'
	for _, h := range headings {
		f.SetCellValue(sheet, string(col)+"1", h)
		col++
	}
}

func writeRow(f *excelize.File, sheet string, rowNo int, values ...interface{}) {
	col := 'A'
	for _, v := range values {
		f.SetCellValue(sheet, string(col)+fmt.Sprint(rowNo), v)
		col++
	}
}
