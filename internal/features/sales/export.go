package sales

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"go-apre/internal/common/apierror"

	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{"salesperson", "totalSales"}

// checkFormat rejects export formats other than CSV and XLSX.
func checkFormat(format string) error {
	switch format {
	case FormatCSV, FormatXLSX:
		return nil
	default:
		return apierror.BadRequest(fmt.Sprintf("unsupported format: %s", format))
	}
}

// exportRows renders report rows as CSV or XLSX and returns the file name.
func exportRows(rows []SalespersonSales, name, format string) ([]byte, string, error) {
	name = fileSafe(name)
	switch format {
	case FormatCSV:
		data, err := toCSV(rows)
		return data, name + ".csv", err
	case FormatXLSX:
		data, err := toXLSX(rows)
		return data, name + ".xlsx", err
	default:
		return nil, "", checkFormat(format)
	}
}

func toCSV(rows []SalespersonSales) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportColumns); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{row.Salesperson, strconv.FormatFloat(row.TotalSales, 'f', -1, 64)}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toXLSX(rows []SalespersonSales) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Report"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		nameCell, _ := excelize.CoordinatesToCellName(1, i+2)
		totalCell, _ := excelize.CoordinatesToCellName(2, i+2)
		if err := f.SetCellValue(sheetName, nameCell, row.Salesperson); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, totalCell, row.TotalSales); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "B", 20); err != nil {
		return nil, err
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}
