package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{"ID", "NAME", "EMAIL", "FIRST NAME", "LAST NAME", "COUNTRY OF ORIGIN", "TARGET COUNTRY", "STATUS", "REGISTERED AT"}

// ExportCandidates renders the same list ListCandidatesForAdmin returns as an xlsx workbook.
func (u *adminUsecase) ExportCandidates(ctx context.Context, actor domain.Actor, filter domain.CandidateFilter) ([]byte, string, error) {
	candidates, err := u.ListCandidatesForAdmin(ctx, actor, filter)
	if err != nil {
		return nil, "", err
	}
	data, err := candidatesWorkbook(candidates)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	filename := fmt.Sprintf("candidates_%s.xlsx", u.now().Format("20060102_150405"))
	return data, filename, nil
}

func candidatesWorkbook(candidates []domain.CandidateSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Candidates"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	// Dark blue header with white text
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, c := range candidates {
		row := []interface{}{
			c.ID,
			c.Name,
			c.Email,
			deref(c.Profile.FirstName),
			deref(c.Profile.LastName),
			deref(c.Profile.CountryOfOrigin),
			deref(c.Profile.TargetCountry),
			strings.ToUpper(c.Profile.Status),
			c.CreatedAt.UTC().Format("2006-01-02 15:04"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
