package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// DefaultCodeTheme is used when Styles.CodeTheme is empty.
const DefaultCodeTheme = "catppuccin-mocha"

// highlight colours code with chroma. Unknown languages are guessed from the
// content and fall back to plain text.
func highlight(code, lang, theme string) string {
	if code == "" {
		return ""
	}
	if theme == "" {
		theme = DefaultCodeTheme
	}
	style := styles.Get(theme)

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var b strings.Builder
	for tok := it(); tok != chroma.EOF; tok = it() {
		b.WriteString(paint(tokenStyle(style, tok.Type), tok.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}

func tokenStyle(style *chroma.Style, tt chroma.TokenType) lipgloss.Style {
	entry := style.Get(tt)
	s := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}
