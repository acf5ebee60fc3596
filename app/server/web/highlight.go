package web

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/umputun/shelf/app/blog"
	"github.com/umputun/shelf/app/enum"
)

// codeStyles maps the resolved scheme to the chroma style of its stylesheet.
var codeStyles = map[enum.Scheme]string{enum.SchemeLight: "github", enum.SchemeDark: "github-dark"}

// Highlighter renders post content, highlighting fenced code blocks.
type Highlighter struct {
	formatter *chromahtml.Formatter
}

// NewHighlighter creates a new Highlighter instance.
func NewHighlighter() *Highlighter {
	// css classes, so the stylesheet can follow the resolved theme
	return &Highlighter{formatter: chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.PreventSurroundingPre(false),
		chromahtml.WithLineNumbers(false),
	)}
}

// Render converts post content to HTML: prose paragraphs are escaped, blank lines
// separate paragraphs, fenced code blocks are highlighted by their language.
func (h *Highlighter) Render(content string) template.HTML {
	var sb strings.Builder
	for _, seg := range blog.Segments(content) {
		if seg.Code {
			sb.WriteString(string(h.Code(seg.Text, seg.Lang)))
			continue
		}
		for para := range strings.SplitSeq(seg.Text, "\n\n") {
			if strings.TrimSpace(para) == "" {
				continue
			}
			lines := strings.Split(strings.TrimSpace(para), "\n")
			for i, l := range lines {
				lines[i] = html.EscapeString(l)
			}
			sb.WriteString("<p>" + strings.Join(lines, "<br>") + "</p>\n")
		}
	}
	return template.HTML(sb.String()) //nolint:gosec // prose escaped, code from chroma
}

// Code applies syntax highlighting to code based on the fence language.
// Returns plain escaped text if the language is empty, unknown or highlighting fails.
func (h *Highlighter) Code(code, lang string) template.HTML {
	plain := template.HTML(`<pre class="code">` + html.EscapeString(code) + "</pre>") //nolint:gosec // escaped
	if lang == "" || lang == "text" {
		return plain
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		return plain
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plain
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, styles.Fallback, iterator); err != nil {
		return plain
	}
	return template.HTML(buf.String()) //nolint:gosec // chroma output is safe
}

// CSS returns the stylesheet for highlighted code under the given scheme.
func (h *Highlighter) CSS(s enum.Scheme) ([]byte, error) {
	style := styles.Get(codeStyles[s])
	if style == nil {
		style = styles.Fallback
	}
	var buf bytes.Buffer
	if err := h.formatter.WriteCSS(&buf, style); err != nil {
		return nil, fmt.Errorf("failed to write %s code stylesheet: %w", s, err)
	}
	return buf.Bytes(), nil
}
