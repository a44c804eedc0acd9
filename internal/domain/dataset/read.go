package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Read parses an uploaded file into a Dataset, choosing the reader by file
// extension. ".xlsx" goes through excelize; anything else is treated as
// delimited text.
func Read(r io.Reader, filename string) (*Dataset, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return ReadXLSX(r, filename)
	}
	return ReadCSV(r, filename)
}

// ReadCSV parses comma-delimited text. The first record is the header;
// ragged rows are padded to the header width.
func ReadCSV(r io.Reader, source string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // upstream exports have ragged rows
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Source: source, Err: errors.New("file is empty")}
		}
		return nil, &ParseError{Source: source, Err: err}
	}

	d := New(header)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Source: source, Err: err}
		}
		d.AppendRow(record)
	}

	return d, nil
}

// ReadXLSX parses the first sheet of a workbook.
func ReadXLSX(r io.Reader, source string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Source: source, Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Source: source, Err: errors.New("sheet is empty")}
	}

	d := New(rows[0])
	for _, row := range rows[1:] {
		d.AppendRow(row)
	}

	return d, nil
}
