// Package render formats markdown slide bodies for the terminal. Block
// structure comes from goldmark with the GFM extension, styling from
// lipgloss, and fenced code blocks are coloured with chroma.
package render
