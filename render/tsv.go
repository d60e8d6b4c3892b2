package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/unit"
)

// Tab separated tables, one header line followed by the rows.

func newTSVWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return cw
}

// FormatFloat writes f in its shortest exact form.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WriteUnits writes the records of an analysis.
func WriteUnits(w io.Writer, header [4]string, records []unit.Record) error {
	cw := newTSVWriter(w)
	if err := cw.Write(header[:]); err != nil {
		return err
	}

	for _, r := range records {
		err := cw.Write([]string{r.SentenceID, r.Text, strconv.Itoa(r.Construct), strconv.Itoa(r.Constituent)})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXFY writes an xfy table.
func WriteXFY(w io.Writer, t stat.Table) error {
	cw := newTSVWriter(w)
	header := stat.Header()
	if err := cw.Write(header[:]); err != nil {
		return err
	}

	for _, r := range t {
		err := cw.Write([]string{FormatFloat(r.Construct), strconv.Itoa(r.Frequency), FormatFloat(r.AvgConstituentLen)})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
