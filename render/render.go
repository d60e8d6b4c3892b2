package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/revelaction/menzerath/fit"
	"github.com/revelaction/menzerath/lds"
	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/subtree"
	"github.com/revelaction/menzerath/treebank"
)

var (
	Red       = "\033[1;31m"
	Yellow    = "\033[0;33m"
	Teal      = "\033[1;36m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

const segmentSeparator = " | "

type Renderer struct {
	HasColor bool

	Out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out}
}

func (r *Renderer) color(c, text string) string {
	if !r.HasColor {
		return text
	}
	return c + text + Off
}

// Sentence renders the word table of s followed by one line per clause with
// its words and linear dependency segments.
func (r *Renderer) Sentence(s *treebank.Sentence) {
	fmt.Fprintf(r.Out, "%s %s\n", r.color(Grey256, "["+s.ID+"]"), r.text(s))

	for i := range s.Words {
		w := &s.Words[i]
		form := w.Form
		switch {
		case w.Clause:
			form = r.color(Green256, form)
		case w.IsPunct():
			form = r.color(Grey256, form)
		}

		fmt.Fprintf(r.Out, "%3d  %s\t%3d  %-12s %s\n", w.ID, form, w.Head, w.Deprel, w.Translit)
	}

	for _, h := range s.ClauseHeads() {
		head := s.Word(h)
		segments := []string{}
		for _, seg := range lds.Segment(s, h) {
			forms := make([]string, 0, len(seg))
			for _, w := range seg {
				forms = append(forms, w.Form)
			}
			segments = append(segments, strings.Join(forms, " "))
		}

		fmt.Fprintf(r.Out, "%s %s%s  %s\n",
			r.color(Yellow256, "clause"),
			subtree.Stringify(s, head.DirectChildren),
			r.color(Green256, head.Form),
			strings.Join(segments, segmentSeparator))
	}
}

func (r *Renderer) text(s *treebank.Sentence) string {
	if s.Text != "" {
		return s.Text
	}

	var b strings.Builder
	for _, w := range s.Words {
		b.WriteString(w.Form)
	}
	return b.String()
}

// Summary renders the counts of a treebank and its words per sentence
// distribution.
func (r *Renderer) Summary(sum stat.Summary) {
	fmt.Fprintf(r.Out, "sentences\t%d\n", sum.NumSentences)
	fmt.Fprintf(r.Out, "words\t%d\n", sum.NumWords)
	fmt.Fprintf(r.Out, "punct\t%d\n", sum.NumPunct)
	fmt.Fprintf(r.Out, "clauses\t%d\n", sum.NumClauses)
	fmt.Fprintf(r.Out, "words/sentence\t%.2f\n", sum.WordsPerSentenceMean)

	lengths := make([]int, 0, len(sum.WordsPerSentenceDis))
	for l := range sum.WordsPerSentenceDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	for _, l := range lengths {
		fmt.Fprintf(r.Out, "%5d %s\n", l, strings.Repeat("▇", sum.WordsPerSentenceDis[l]))
	}
}

// Fit renders one line per fitted model of the named table.
func (r *Renderer) Fit(name string, results []fit.Result) {
	for _, res := range results {
		fmt.Fprintf(r.Out, "%-45s %-10s a=%-10.4f b=%-10.4f c=%-10.4f R²=%.4f\n",
			r.color(Teal, name), res.Model, res.A, res.B, res.C, res.RSquared)
	}
}
