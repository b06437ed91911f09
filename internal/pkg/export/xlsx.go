package export

import (
	"bytes"

	"bps-peka/internal/adapters/persistence/models"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var recapHeaders = []string{"Tanggal", "Nama", "NIP", "Departemen", "Jabatan", "Uraian Pekerjaan", "Durasi (Jam)", "Volume", "Satuan", "Status"}

// MonthlyRecap renders approved entries (with owner profiles joined) into an
// xlsx workbook for download.
func MonthlyRecap(monthLabel string, entries []*models.WorkEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("⚠️ Failed to close xlsx file: %v", err)
		}
	}()

	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, recapHeaders)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		row++
		col := 1
		values := []interface{}{
			e.Date.Format("2006-01-02"), "", "", "", "",
			e.Description, e.Duration, e.Volume, e.Unit, e.Status,
		}
		if e.Owner != nil {
			values[1] = e.Owner.FullName
			values[2] = e.Owner.NIP
			values[3] = e.Owner.Department
			values[4] = e.Owner.Position
		}
		for _, v := range values {
			if err := writeColumn(f, sheet, col, row, v); err != nil {
				return nil, err
			}
			col++
		}
	}

	f.SetSheetName(sheet, "Rekap "+monthLabel)
	return f.WriteToBuffer()
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return row, err
	}

	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err := f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return row, err
	}

	for idx, value := range headers {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}
