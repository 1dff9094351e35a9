package typo

import "strings"

// Correction rewrites Pattern to Replacement when the input starts with Pattern.
type Correction struct {
	Pattern     string
	Replacement string
}

// Table is an ordered list of corrections; the first match wins.
type Table []Correction

// defaultTable must not contain a pattern that is a prefix of another
// pattern, otherwise the later entry can be shadowed.
var defaultTable = Table{
	{Pattern: "ush", Replacement: "git push"},
	{Pattern: "gitp ush", Replacement: "git push"},
	{Pattern: "git psuh", Replacement: "git push"},
	{Pattern: "git puhs", Replacement: "git push"},
	{Pattern: "git pshu", Replacement: "git push"},
	{Pattern: "git phus", Replacement: "git push"},
	{Pattern: "git ush", Replacement: "git push"},
	{Pattern: "git stauts", Replacement: "git status"},
	{Pattern: "git statsu", Replacement: "git status"},
	{Pattern: "git chekcout", Replacement: "git checkout"},
	{Pattern: "git checkotu", Replacement: "git checkout"},
	{Pattern: "git comit ", Replacement: "git commit "},
	{Pattern: "git commti", Replacement: "git commit"},
	{Pattern: "git pul ", Replacement: "git pull "},
	{Pattern: "git fecth", Replacement: "git fetch"},
	{Pattern: "gti ", Replacement: "git "},
	{Pattern: "got ", Replacement: "git "},
}

// DefaultTable returns a copy of the built-in correction table.
func DefaultTable() Table {
	table := make(Table, len(defaultTable))
	copy(table, defaultTable)
	return table
}

// Correct applies the first correction whose pattern prefixes input.
// The remainder after the pattern is kept verbatim. It reports whether a
// correction was applied.
func (t Table) Correct(input string) (string, bool) {
	for _, c := range t {
		if rest, ok := strings.CutPrefix(input, c.Pattern); ok {
			return c.Replacement + rest, true
		}
	}
	return input, false
}

// Normalize corrects input using the default table.
func Normalize(input string) string {
	corrected, _ := defaultTable.Correct(input)
	return corrected
}
