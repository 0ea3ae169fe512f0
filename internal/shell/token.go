package shell

import "strings"

// CommandLine is one tokenized line of user input: the raw text, the leading
// command name, and the remaining argument tokens. A blank line yields the
// zero CommandLine. It lives for a single dispatch cycle.
type CommandLine struct {
	Raw  string
	Name string
	Args []string
}

// ParseLine splits raw on runs of whitespace, discarding leading and
// trailing whitespace and empty fragments. There is no quoting, escaping, or
// comment handling: tokens are exactly the whitespace-separated fragments.
func ParseLine(raw string) CommandLine {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return CommandLine{Raw: raw}
	}
	return CommandLine{Raw: raw, Name: fields[0], Args: fields[1:]}
}

// Empty reports whether the line held no tokens at all.
func (c CommandLine) Empty() bool {
	return c.Name == ""
}
