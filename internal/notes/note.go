package notes

import "strings"

type Note struct {
	Tag  string
	Body string
}

// ParseLine splits an imported line on its first colon: the text before it
// is the tag, the rest is the body. A line without a colon is all body.
func ParseLine(line string) Note {
	tag, body, ok := strings.Cut(line, ":")
	if !ok {
		return Note{Body: strings.TrimSpace(line)}
	}
	return Note{Tag: strings.TrimSpace(tag), Body: strings.TrimSpace(body)}
}

// String renders the note in the form ParseLine accepts. An untagged body
// holding a colon gets an empty tag in front so it is not split. A tag that
// itself contains a colon cannot be read back.
func (n Note) String() string {
	if n.Tag == "" {
		if strings.Contains(n.Body, ":") {
			return ": " + n.Body
		}
		return n.Body
	}
	return n.Tag + ": " + n.Body
}
