package uidef

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

// headerRegex matches a complete header line, e.g. `[Frame1]` or `[ .hidden ]`.
var headerRegex = regexp.MustCompile(`^\[\s*(\.?\w+)\s*\]$`)

var utf8BOM = []byte("\xef\xbb\xbf")

// SyntaxError reports a line that does not fit the grammar, or a section
// that is declared twice.
type SyntaxError struct {
	Line  int
	Text  string
	Msg   string
	Range hcl.Range
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

// Parse reads a definition. The filename is only used for source ranges.
//
// Keys and values are taken exactly as written between the first colon and
// the surrounding whitespace; quotes of any kind carry no meaning.
func Parse(filename string, src []byte) (*File, error) {
	src = bytes.TrimPrefix(src, utf8BOM)

	out := &File{
		Filename: filename,
		Preamble: newSection("", -1, hcl.Range{Filename: filename}),
	}
	current := out.Preamble
	seen := make(map[string]int)

	offset := 0
	lineNum := 0
	for len(src) > 0 {
		lineNum++
		raw := src
		next := len(src)
		if i := bytes.IndexByte(src, '\n'); i >= 0 {
			raw = src[:i]
			next = i + 1
		}
		src = src[next:]
		start := offset
		offset += next

		text := strings.TrimRight(string(raw), "\r")
		body := strings.TrimSpace(text)
		if body == "" || body[0] == '#' || body[0] == ';' {
			continue
		}

		rng := lineRange(filename, lineNum, start, text)

		if body[0] == '[' {
			m := headerRegex.FindStringSubmatch(body)
			if m == nil {
				return nil, malformed(lineNum, text, rng)
			}
			name := m[1]
			if prev, dup := seen[name]; dup {
				return nil, &SyntaxError{
					Line:  lineNum,
					Text:  text,
					Msg:   fmt.Sprintf("Section '%s' is already defined on line %d", name, prev),
					Range: rng,
				}
			}
			seen[name] = lineNum
			current = newSection(name, len(out.Sections), rng)
			out.Sections = append(out.Sections, current)
			continue
		}

		colon := strings.IndexByte(body, ':')
		if colon < 0 {
			return nil, malformed(lineNum, text, rng)
		}
		key := strings.TrimSpace(body[:colon])
		if key == "" {
			return nil, malformed(lineNum, text, rng)
		}
		current.set(Attribute{
			Key:   key,
			Value: strings.TrimSpace(body[colon+1:]),
			Range: rng,
		})
	}

	return out, nil
}

func malformed(line int, text string, rng hcl.Range) *SyntaxError {
	return &SyntaxError{
		Line:  line,
		Text:  text,
		Msg:   fmt.Sprintf("Could not parse line %d: '%s'", line, strings.TrimSpace(text)),
		Range: rng,
	}
}

// lineRange covers the non-blank part of a line.
func lineRange(filename string, line, lineStart int, text string) hcl.Range {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	lead := len(text) - len(trimmed)
	body := strings.TrimRightFunc(trimmed, unicode.IsSpace)

	startCol := utf8.RuneCountInString(text[:lead]) + 1
	return hcl.Range{
		Filename: filename,
		Start:    hcl.Pos{Line: line, Column: startCol, Byte: lineStart + lead},
		End:      hcl.Pos{Line: line, Column: startCol + utf8.RuneCountInString(body), Byte: lineStart + lead + len(body)},
	}
}
