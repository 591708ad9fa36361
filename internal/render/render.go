package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bulletGlyph = "•"
	quoteGlyph  = "│ "
	ruleGlyph   = "─"
	indentStep  = 2
)

// Styles are the lipgloss styles applied to markdown elements.
type Styles struct {
	Text     lipgloss.Style
	Heading  lipgloss.Style
	Strong   lipgloss.Style
	Emphasis lipgloss.Style
	Strike   lipgloss.Style
	Code     lipgloss.Style
	Link     lipgloss.Style
	Quote    lipgloss.Style
	Bullet   lipgloss.Style
	Rule     lipgloss.Style

	// CodeTheme names the chroma style used for fenced code blocks.
	CodeTheme string
	// PlainCode draws code blocks in the Code style without syntax colours.
	PlainCode bool
}

// Renderer turns slide bodies into styled terminal text.
type Renderer struct {
	md     goldmark.Markdown
	styles Styles
}

// New returns a renderer for GitHub flavoured markdown.
func New(styles Styles) *Renderer {
	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		styles: styles,
	}
}

// Render formats body to fit width columns. Blocks are separated by a blank
// line.
func (r *Renderer) Render(body string, width int) string {
	if width < 1 {
		width = 1
	}
	src := []byte(body)
	doc := r.md.Parser().Parse(text.NewReader(src))

	w := &writer{r: r, src: src}
	blocks := w.blocks(doc, width)
	return strings.Join(blocks, "\n\n")
}

type writer struct {
	r   *Renderer
	src []byte
}

func (w *writer) blocks(parent ast.Node, width int) []string {
	var out []string
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if s, ok := w.block(n, width); ok {
			out = append(out, s)
		}
	}
	return out
}

func (w *writer) block(n ast.Node, width int) (string, bool) {
	st := w.r.styles
	switch n := n.(type) {
	case *ast.Heading:
		return wrap(paint(st.Heading, w.plain(n)), width), true
	case *ast.Paragraph, *ast.TextBlock:
		return wrap(w.inlines(n), width), true
	case *ast.List:
		return w.list(n, width), true
	case *ast.Blockquote:
		inner := strings.Join(w.blocks(n, width-ansi.StringWidth(quoteGlyph)), "\n\n")
		bar := st.Quote.Render(quoteGlyph)
		return prefixLines(inner, bar, bar), true
	case *ast.FencedCodeBlock:
		return w.code(w.lines(n), string(n.Language(w.src))), true
	case *ast.CodeBlock:
		return w.code(w.lines(n), ""), true
	case *ast.ThematicBreak:
		return st.Rule.Render(strings.Repeat(ruleGlyph, width)), true
	case *ast.HTMLBlock:
		return "", false
	default:
		if n.HasChildren() {
			return strings.Join(w.blocks(n, width), "\n\n"), true
		}
		return "", false
	}
}

func (w *writer) list(l *ast.List, width int) string {
	st := w.r.styles
	var items []string
	num := l.Start
	if num == 0 {
		num = 1
	}
	for n := l.FirstChild(); n != nil; n = n.NextSibling() {
		marker := bulletGlyph
		if l.IsOrdered() {
			marker = strconv.Itoa(num) + "."
			num++
		}
		marker = st.Bullet.Render(marker) + " "
		indent := strings.Repeat(" ", ansi.StringWidth(marker))

		sep := "\n"
		if !l.IsTight {
			sep = "\n\n"
		}
		body := strings.Join(w.blocks(n, max(1, width-len(indent))), sep)
		items = append(items, prefixLines(body, marker, indent))
	}
	if l.IsTight {
		return strings.Join(items, "\n")
	}
	return strings.Join(items, "\n\n")
}

func (w *writer) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(w.src))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (w *writer) inlines(parent ast.Node) string {
	var b strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		b.WriteString(w.inline(n))
	}
	return b.String()
}

func (w *writer) inline(n ast.Node) string {
	st := w.r.styles
	switch n := n.(type) {
	case *ast.Text:
		s := string(n.Segment.Value(w.src))
		switch {
		case n.HardLineBreak():
			s += "\n"
		case n.SoftLineBreak():
			s += " "
		}
		return paint(st.Text, s)
	case *ast.String:
		return paint(st.Text, string(n.Value))
	case *ast.Emphasis:
		inner := w.inlines(n)
		if n.Level >= 2 {
			return paint(st.Strong, inner)
		}
		return paint(st.Emphasis, inner)
	case *east.Strikethrough:
		return paint(st.Strike, w.inlines(n))
	case *ast.CodeSpan:
		return paint(st.Code, w.plain(n))
	case *ast.Link:
		label := w.plain(n)
		dest := string(n.Destination)
		if dest == "" || dest == label {
			return paint(st.Link, label)
		}
		return fmt.Sprintf("%s (%s)", paint(st.Link, label), dest)
	case *ast.AutoLink:
		return paint(st.Link, string(n.URL(w.src)))
	case *ast.Image:
		return paint(st.Emphasis, "["+w.plain(n)+"]")
	case *ast.RawHTML:
		return ""
	default:
		return w.inlines(n)
	}
}

// plain collects the unstyled text under n.
func (w *writer) plain(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(w.src))
			if c.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// paint styles each line of s separately so lipgloss does not pad
// multi-line input into a block.
func (w *writer) code(text, lang string) string {
	st := w.r.styles
	if !st.PlainCode {
		return highlight(text, lang, st.CodeTheme)
	}
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return ""
	}
	return paint(st.Code, text)
}

func paint(style lipgloss.Style, s string) string {
	if !strings.Contains(s, "\n") {
		return style.Render(s)
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func wrap(s string, width int) string {
	return ansi.Wordwrap(s, width, "-")
}

func prefixLines(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		p := rest
		if i == 0 {
			p = first
		}
		if line == "" && i > 0 {
			lines[i] = strings.TrimRight(p, " ")
			continue
		}
		lines[i] = p + line
	}
	return strings.Join(lines, "\n")
}
