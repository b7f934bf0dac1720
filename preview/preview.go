// Package preview renders a pending payload as a human-readable, per-section
// diff before it is dispatched. Intended for --dry-run output in a terminal.
package preview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"tourdesk/dehydrate"
	"tourdesk/form"
)

var (
	sectionColor = color.New(color.FgCyan, color.Bold).SprintfFunc()
	insertColor  = color.New(color.FgGreen).SprintfFunc()
	deleteColor  = color.New(color.FgRed, color.CrossedOut).SprintfFunc()
)

// EnableColorsFor disables coloring when w is not a terminal. Call it once
// with the destination writer before Render.
func EnableColorsFor(w io.Writer) {
	f, ok := w.(*os.File)
	color.NoColor = !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Render writes a section-by-section diff of the pending payload against the
// hydrated snapshot it was built from.
func Render(w io.Writer, orig form.TourForm, p dehydrate.Payload) error {
	if p.IsEmpty() {
		_, err := fmt.Fprintln(w, "No changes.")
		return err
	}

	// The original serialized the same way the payload was gives the "before"
	// side for every section.
	before, err := dehydrate.FullPayload(orig)
	if err != nil {
		return err
	}

	dmp := diffpatch.New()
	for _, section := range p.Sections() {
		if section == "tourid" {
			continue
		}
		from := prettify(before.Get(section))
		to := prettify(p.Get(section))

		if _, err := fmt.Fprintln(w, sectionColor("— %s", section)); err != nil {
			return err
		}
		diffs := dmp.DiffMain(from, to, true)
		diffs = dmp.DiffCleanupSemantic(diffs)
		for _, d := range diffs {
			var chunk string
			switch d.Type {
			case diffpatch.DiffInsert:
				chunk = insertColor("%s", d.Text)
			case diffpatch.DiffDelete:
				chunk = deleteColor("%s", d.Text)
			default:
				chunk = d.Text
			}
			if _, err := io.WriteString(w, chunk); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// prettify re-indents JSON section bodies so diffs read line by line; plain
// scalar fields pass through unchanged.
func prettify(s string) string {
	if s == "" {
		return s
	}
	if s[0] != '{' && s[0] != '[' {
		return s
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}
