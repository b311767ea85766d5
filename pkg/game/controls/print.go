package controls

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

var (
	styleHeading = color.Style{color.FgMagenta, color.OpBold}
	styleSource  = color.Style{color.FgGreen, color.OpBold}
	styleAction  = color.Style{color.FgBlue}
)

// PrintBindings writes the binding table, one input per line. width is the
// terminal width; narrow terminals get a compact layout. Colour codes are
// only written when styled is set.
func PrintBindings(w io.Writer, b *Binding, styled bool, width int) error {
	paint := func(s color.Style, text string) string {
		if !styled {
			return text
		}
		return s.Sprint(text)
	}

	entries := b.Entries()
	col := len("Input")
	for _, e := range entries {
		if len(e.Source) > col {
			col = len(e.Source)
		}
	}

	if _, err := fmt.Fprintln(w, paint(styleHeading, "Controls")); err != nil {
		return err
	}
	for _, e := range entries {
		var line string
		if width < col+16 {
			line = paint(styleSource, e.Source) + ": " + paint(styleAction, Describe(e.Effect))
		} else {
			pad := strings.Repeat(" ", col-len(e.Source)+2)
			line = "  " + paint(styleSource, e.Source) + pad + paint(styleAction, Describe(e.Effect))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
