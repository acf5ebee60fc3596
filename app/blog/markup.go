package blog

import (
	"strings"
)

// Segment is a piece of post content, either prose or a fenced code block.
type Segment struct {
	Text string
	Code bool
	Lang string // language of a code block, lower-cased, may be empty
}

// Segments splits content on ``` fences. Prose keeps its text as is, code blocks
// lose the fence lines. An unclosed fence runs to the end of the content.
func Segments(content string) []Segment {
	var res []Segment
	var buf []string
	inCode, lang := false, ""

	flush := func() {
		if len(buf) == 0 && !inCode {
			return
		}
		text := strings.Join(buf, "\n")
		if !inCode && strings.TrimSpace(text) == "" {
			buf = buf[:0]
			return
		}
		res = append(res, Segment{Text: text, Code: inCode, Lang: lang})
		buf = buf[:0]
	}

	for line := range strings.SplitSeq(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "```") {
			buf = append(buf, line)
			continue
		}
		if inCode {
			flush()
			inCode, lang = false, ""
			continue
		}
		flush()
		inCode = true
		lang = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, "```")))
	}
	flush()
	return res
}

// CodeBlocks returns only the fenced code blocks of content.
func CodeBlocks(content string) []Segment {
	var res []Segment
	for _, s := range Segments(content) {
		if s.Code {
			res = append(res, s)
		}
	}
	return res
}
