package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/term"
)

// colorEnabled reports whether listing output should be colorized.
// Color is off when the flag disables it, when YAPLDIS_NO_COLOR is set,
// or when stdout is not a terminal.
func colorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	if os.Getenv("YAPLDIS_NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// getListingLexer returns an assembly-flavored lexer with fallbacks.
func getListingLexer() chroma.Lexer {
	candidates := []string{"nasm", "armasm"}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

// getListingStyle returns the highlight style with fallbacks.
func getListingStyle() *chroma.Style {
	if style := styles.Get("monokai"); style != nil {
		return style
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter.
func getTerminalFormatter() chroma.Formatter {
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// colorizeListing highlights a rendered listing line by line. Banners
// and addresses are styled directly; the instruction text goes through
// chroma. Input is returned unchanged when no lexer is available.
func colorizeListing(listing string) string {
	lexer := getListingLexer()
	if lexer == nil {
		return listing
	}
	style := getListingStyle()
	formatter := getTerminalFormatter()

	lines := strings.Split(listing, "\n")
	for i, line := range lines {
		lines[i] = colorizeLine(line, lexer, style, formatter)
	}
	return strings.Join(lines, "\n")
}

func colorizeLine(line string, lexer chroma.Lexer, style *chroma.Style, formatter chroma.Formatter) string {
	if line == "" {
		return line
	}

	if strings.HasPrefix(line, "====") {
		return fmt.Sprintf("\033[1;36m%s\033[0m", line)
	}

	// Instruction lines carry a "<va>: " prefix; the address goes gray,
	// the rest through chroma.
	addr, rest, found := strings.Cut(line, ": ")
	if !found || !isDecimal(addr) {
		return chromaText(line, lexer, style, formatter)
	}

	return fmt.Sprintf("\033[38;2;128;128;128m%s:\033[0m %s",
		addr, chromaText(rest, lexer, style, formatter))
}

func chromaText(text string, lexer chroma.Lexer, style *chroma.Style, formatter chroma.Formatter) string {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return text
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
