package filesystem

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/storage"
	"github.com/revelaction/menzerath/unit"
)

var ErrHeader = errors.New("unexpected header")

func newTSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	return cr
}

func isXFYHeader(fields []string) bool {
	h := stat.Header()
	return len(fields) == len(h) && fields[0] == h[0] && fields[1] == h[1] && fields[2] == h[2]
}

func readUnits(r io.Reader) (storage.UnitTable, error) {
	cr := newTSVReader(r)
	cr.FieldsPerRecord = 4

	header, err := cr.Read()
	if err != nil {
		return storage.UnitTable{}, fmt.Errorf("%w: %v", ErrHeader, err)
	}

	t := storage.UnitTable{}
	copy(t.Header[:], header)

	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return storage.UnitTable{}, err
		}

		construct, err := strconv.Atoi(fields[2])
		if err != nil {
			return storage.UnitTable{}, err
		}

		constituent, err := strconv.Atoi(fields[3])
		if err != nil {
			return storage.UnitTable{}, err
		}

		t.Records = append(t.Records, unit.Record{
			SentenceID:  fields[0],
			Text:        fields[1],
			Construct:   construct,
			Constituent: constituent,
		})
	}

	return t, nil
}

func readXFY(r io.Reader) (stat.Table, error) {
	cr := newTSVReader(r)
	cr.FieldsPerRecord = 3

	header, err := cr.Read()
	if err != nil || !isXFYHeader(header) {
		return nil, fmt.Errorf("%w: %v", ErrHeader, header)
	}

	t := stat.Table{}
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var row stat.Row
		if row.Construct, err = strconv.ParseFloat(fields[0], 64); err != nil {
			return nil, err
		}
		if row.Frequency, err = strconv.Atoi(fields[1]); err != nil {
			return nil, err
		}
		if row.AvgConstituentLen, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, err
		}

		t = append(t, row)
	}

	return t, nil
}
