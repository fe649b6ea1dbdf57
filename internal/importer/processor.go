package importer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/itsm-portal/internal/domain"
)

// Result aggregates one import attempt: successful records in row order,
// one human-readable error per failed row, and row totals.
type Result struct {
	Success       bool
	Records       []domain.FormRecord
	Errors        []string
	TotalRows     int
	ProcessedRows int
}

// Processor converts uploaded spreadsheet bytes into form records. It never
// returns an error to the caller; file-level failures land in the Result.
type Processor struct {
	mapping ColumnMapping
}

// NewProcessor builds a processor with the given column mapping.
func NewProcessor(mapping ColumnMapping) *Processor {
	return &Processor{mapping: mapping}
}

// Process decodes the workbook, reads the first sheet only, treats row 0 as
// headers, and parses each data row independently. One row's failure does
// not abort the rest; Success is true only when zero row errors occurred.
func (p *Processor) Process(data []byte) Result {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return fileLevelFailure(fmt.Sprintf("unable to read workbook: %v", err))
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return fileLevelFailure("workbook contains no sheets")
	}

	rows, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return fileLevelFailure(fmt.Sprintf("unable to read sheet %q: %v", sheet, err))
	}
	if len(rows) < 2 {
		return fileLevelFailure("file must contain a header row and at least one data row")
	}

	headers := rows[0]
	dataRows := rows[1:]
	indexes := ResolveColumns(headers, p.mapping)

	records := make([]domain.FormRecord, 0, len(dataRows))
	var rowErrors []string
	for i, row := range dataRows {
		// +2: data starts on spreadsheet row 2, after the header.
		record, err := ParseRow(row, indexes, i+2)
		if err != nil {
			rowErrors = append(rowErrors, err.Error())
			continue
		}
		records = append(records, record)
	}

	return Result{
		Success:       len(rowErrors) == 0,
		Records:       records,
		Errors:        rowErrors,
		TotalRows:     len(dataRows),
		ProcessedRows: len(records),
	}
}

func fileLevelFailure(message string) Result {
	return Result{
		Success: false,
		Records: []domain.FormRecord{},
		Errors:  []string{message},
	}
}
