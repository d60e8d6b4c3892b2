// Package stat aggregates unit records into construct/frequency/constituent
// (xfy) tables and summarizes treebanks.
package stat

import (
	"sort"

	"github.com/revelaction/menzerath/unit"
)

// DefaultWeightLimit is the frequency below which a row is merged into its
// neighbour by Weighted.
const DefaultWeightLimit = 10

// Row is one construct length with its frequency and the mean length of its
// constituents.
type Row struct {
	Construct         float64
	Frequency         int
	AvgConstituentLen float64
}

type Table []Row

// Header names the columns of a Table.
func Header() [3]string {
	return [3]string{"construct", "frequency", "avg_constituent_len"}
}

type Handler struct {
	count map[int]int
	sum   map[int]int
}

func NewHandler() *Handler {
	return &Handler{
		count: map[int]int{},
		sum:   map[int]int{},
	}
}

// Add records one construct. Pairs with a zero construct or a zero
// constituent length are ignored.
func (h *Handler) Add(construct, constituent int) {
	if construct == 0 || constituent == 0 {
		return
	}

	h.count[construct]++
	h.sum[construct] += constituent
}

// Aggregate adds every record.
func (h *Handler) Aggregate(records []unit.Record) {
	for _, r := range records {
		h.Add(r.Construct, r.Constituent)
	}
}

// Get returns the table sorted by construct. The constituent length of a row
// is the summed constituent length divided by the frequency and by the
// construct length.
func (h *Handler) Get() Table {
	constructs := make([]int, 0, len(h.count))
	for c := range h.count {
		constructs = append(constructs, c)
	}
	sort.Ints(constructs)

	t := make(Table, 0, len(constructs))
	for _, c := range constructs {
		n := h.count[c]
		t = append(t, Row{
			Construct:         float64(c),
			Frequency:         n,
			AvgConstituentLen: float64(h.sum[c]) / float64(n) / float64(c),
		})
	}
	return t
}

// XFY returns the table of records.
func XFY(records []unit.Record) Table {
	h := NewHandler()
	h.Aggregate(records)
	return h.Get()
}

// Weighted merges, bottom-up, every row whose frequency is below limit into
// the previous row, or into the next row for the first one. Merged values
// are frequency weighted means. A single row is returned as is.
func Weighted(t Table, limit int) Table {
	rows := make(Table, len(t))
	copy(rows, t)

	if len(rows) < 2 {
		return rows
	}

	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Frequency >= limit || len(rows) < 2 {
			continue
		}

		into := i - 1
		if i == 0 {
			into = 1
		}

		rows[into] = merge(rows[i], rows[into])
		rows = append(rows[:i], rows[i+1:]...)
	}

	return rows
}

func merge(a, b Row) Row {
	f := a.Frequency + b.Frequency
	return Row{
		Construct:         (a.Construct*float64(a.Frequency) + b.Construct*float64(b.Frequency)) / float64(f),
		Frequency:         f,
		AvgConstituentLen: (a.AvgConstituentLen*float64(a.Frequency) + b.AvgConstituentLen*float64(b.Frequency)) / float64(f),
	}
}

// Points returns the construct and constituent columns of t.
func (t Table) Points() (x, y []float64) {
	x = make([]float64, len(t))
	y = make([]float64, len(t))
	for i, r := range t {
		x[i] = r.Construct
		y[i] = r.AvgConstituentLen
	}
	return x, y
}
