// internal/writers/xlsx.go
package writers

import (
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"labnotex/internal/output"
)

func init() { Register(output.FormatXLSX, writeXLSX) }

// writeXLSX writes one sheet named after the report kind: header row,
// data rows, a blank row, then the notes in column A. Cells that hold a
// plain number are stored as numbers.
func writeXLSX(w io.Writer, rep output.Report, _ Options) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(rep.Kind)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "xlsx: rename sheet")
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return errors.Wrap(err, "xlsx: stream writer")
	}

	row := 1
	put := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return sw.SetRow(cell, values)
	}

	if err := put(strCells(rep.Table.Columns)); err != nil {
		return errors.Wrap(err, "xlsx: header")
	}
	for _, r := range rep.Table.Rows {
		if err := put(typedCells(r)); err != nil {
			return errors.Wrapf(err, "xlsx: row %d", row)
		}
	}
	if len(rep.Table.Notes) > 0 {
		row++
		for _, n := range rep.Table.Notes {
			if err := put([]interface{}{n}); err != nil {
				return errors.Wrap(err, "xlsx: notes")
			}
		}
	}
	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "xlsx: flush")
	}
	return f.Write(w)
}

func sheetName(kind string) string {
	if kind == "" {
		return "Results"
	}
	if len(kind) > 31 {
		return kind[:31]
	}
	return kind
}

func strCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func typedCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
			out[i] = v
			continue
		}
		out[i] = s
	}
	return out
}
