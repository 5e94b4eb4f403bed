package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
)

const exportSheet = "Applications"

var exportColumns = []string{
	"ID", "JOB TITLE", "COMPANY", "LOCATION", "STATUS", "APPLIED DATE", "RESUME VERSION", "COVER LETTER",
}

func exportRow(app domain.ApplicationDetail) []string {
	title, company, location := "(removed job)", "", ""
	if app.Job != nil {
		title, location = app.Job.Title, app.Job.Location
		if app.Job.Company != nil {
			company = app.Job.Company.Name
		}
	}
	cover := ""
	if app.CoverLetter != nil {
		cover = *app.CoverLetter
	}
	return []string{
		strconv.FormatInt(app.ID, 10),
		title,
		company,
		location,
		app.Status,
		app.AppliedDate.Format("2006-01-02"),
		app.ResumeVersion,
		cover,
	}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("applications_%s.%s", time.Now().UTC().Format("20060102_150405"), ext)
}

func exportExcel(apps []domain.ApplicationDetail) (*domain.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, apperror.Internal(err)
	}

	header := make([]any, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, apperror.Internal(err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err := f.SetCellStyle(exportSheet, "A1", endCell, headerStyle); err != nil {
		return nil, apperror.Internal(err)
	}

	for i, app := range apps {
		cells := exportRow(app)
		row := make([]any, len(cells))
		for j, v := range cells {
			row[j] = v
		}
		// the id column stays numeric so spreadsheets sort it correctly
		row[0] = app.ID
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportColumns))
	if err := f.SetColWidth(exportSheet, "A", lastCol, 20); err != nil {
		return nil, apperror.Internal(err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to write Excel file: %w", err))
	}
	return &domain.ExportFile{
		Filename:    exportFilename(ExportFormatXLSX),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func exportCSV(apps []domain.ApplicationDetail) (*domain.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportColumns); err != nil {
		return nil, apperror.Internal(err)
	}
	for _, app := range apps {
		if err := w.Write(exportRow(app)); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.ExportFile{
		Filename:    exportFilename(ExportFormatCSV),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
