// Package browse is an interactive prompt over a loaded treebank.
package browse

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/menzerath/render"
	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/treebank"
	"github.com/revelaction/menzerath/unit"
)

const (
	completionThreshold = 1
	maxSuggestions      = 12

	cmdQuit = "quit"
	cmdStat = "stat"
)

var ErrUnknownSentence = errors.New("unknown sentence")

type Handler struct {
	Treebank *treebank.Treebank
	Analyses []unit.Analysis
	Renderer *render.Renderer
}

func NewHandler(tb *treebank.Treebank, analyses []unit.Analysis, r *render.Renderer) *Handler {
	return &Handler{
		Treebank: tb,
		Analyses: analyses,
		Renderer: r,
	}
}

func (h *Handler) Run() error {
	fmt.Fprintln(h.Renderer.Out, "🔑 <sent_id> [analysis], stat, Ctrl+X: toggle color, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🌳 ", h.completer,
			prompt.OptionTitle("menzerath browse"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(maxSuggestions),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasColor = !h.Renderer.HasColor
					fmt.Fprintf(h.Renderer.Out, "Color set to %t\n", h.Renderer.HasColor)
				}}),
		)

		if strings.TrimSpace(in) == cmdQuit {
			return nil
		}

		history = append(history, in)
		if err := h.Execute(in); err != nil {
			fmt.Fprintf(h.Renderer.Out, "%v\n", err)
		}
	}
}

// Execute runs one prompt line: a sentence ID, optionally followed by an
// analysis name, or the stat command.
func (h *Handler) Execute(in string) error {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return nil
	}

	if fields[0] == cmdStat {
		h.Renderer.Summary(stat.Summarize(h.Treebank))
		return nil
	}

	s, ok := h.Treebank.Sentence(fields[0])
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSentence, fields[0])
	}

	if len(fields) == 1 {
		h.Renderer.Sentence(s)
		return nil
	}

	analyses, err := unit.Select(h.Analyses, fields[1:])
	if err != nil {
		return err
	}

	for _, a := range analyses {
		fmt.Fprintf(h.Renderer.Out, "# %s\n", a.Name)
		if err := render.WriteUnits(h.Renderer.Out, a.Header, a.RunSentence(s)); err != nil {
			return err
		}
	}

	return nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.suggest(in.TextBeforeCursor())
}

// suggest completes sentence IDs for the first word and analysis names for
// the following ones.
func (h *Handler) suggest(before string) []prompt.Suggest {
	s := []prompt.Suggest{}
	if len(before) < completionThreshold {
		return s
	}

	tokens := strings.Split(before, " ")
	last := tokens[len(tokens)-1]

	if len(tokens) == 1 {
		for _, id := range h.Treebank.IDs() {
			if strings.HasPrefix(id, last) {
				s = append(s, prompt.Suggest{Text: id})
			}
		}

		for _, cmd := range []string{cmdStat, cmdQuit} {
			if strings.HasPrefix(cmd, last) {
				s = append(s, prompt.Suggest{Text: cmd})
			}
		}
		return s
	}

	names := unit.Names(h.Analyses)
	sort.Strings(names)
	for _, n := range names {
		if strings.HasPrefix(n, last) {
			s = append(s, prompt.Suggest{Text: n})
		}
	}

	return s
}
