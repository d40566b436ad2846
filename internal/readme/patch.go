// Package readme splices the rendered SDK Reference section into the
// README by text-pattern matching, leaving unrelated content untouched.
package readme

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// sectionPattern spans from the reference heading up to the next known
// section heading. RE2 has no lookahead, so the following marker is
// captured and restored on replacement.
var sectionPattern = regexp.MustCompile(`(?s)## SDK Reference\n.*?(## (?:Documentation|License))`)

// insertAnchors are tried in order when the section does not exist yet;
// the fragment is inserted before the first occurrence of the first
// anchor found.
var insertAnchors = []string{"## Documentation", "## License"}

// Patch replaces the existing SDK Reference section of doc with
// fragment, or inserts fragment before the first known anchor when the
// section is absent. When neither the section nor an anchor exists, doc
// is returned unmodified. The second return reports whether doc changed.
func Patch(doc, fragment string) (string, bool) {
	if loc := sectionPattern.FindStringSubmatchIndex(doc); loc != nil {
		updated := doc[:loc[0]] + fragment + "\n" + doc[loc[2]:]
		return updated, updated != doc
	}

	for _, anchor := range insertAnchors {
		if i := strings.Index(doc, anchor); i >= 0 {
			return doc[:i] + fragment + "\n" + doc[i:], true
		}
	}

	return doc, false
}

// UpdateFile patches the document at path in place. The file is written
// back only when the content actually changed; the return reports
// whether a write happened.
func UpdateFile(path, fragment string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading readme: %w", err)
	}

	updated, changed := Patch(string(data), fragment)
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return false, fmt.Errorf("writing readme: %w", err)
	}

	return true, nil
}
