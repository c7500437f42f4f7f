package changelog

import (
	"fmt"
	"io"
	"strings"
)

// RenderVersion writes the changes of v as Markdown suitable for a release
// body: one "### Category" heading per non-empty category followed by "- "
// bullets, with a blank line between categories.
func RenderVersion(v *Version, w io.Writer) error {
	first := true
	for _, cat := range v.Changes.Categories() {
		if len(cat.Entries) == 0 {
			continue
		}
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false

		if _, err := fmt.Fprintf(w, "### %s\n", cat.Name); err != nil {
			return err
		}
		for _, entry := range cat.Entries {
			if _, err := fmt.Fprintf(w, "- %s\n", entry); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderVersionString renders v and trims the trailing newline so the result
// can be placed into a larger document.
func RenderVersionString(v *Version) (string, error) {
	var b strings.Builder
	if err := RenderVersion(v, &b); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
