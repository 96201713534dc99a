package stylec

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// splitSpace splits a CSS value on top-level whitespace using the CSS
// lexer, so function values (var(), calc(), clamp(), url()) stay opaque:
// "10px calc(100% - 2rem)" yields two tokens, never four.
func splitSpace(value string) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	lexer := css.NewLexer(parse.NewInputString(value))
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
			current.Write(data)
		case css.RightParenthesisToken:
			depth--
			current.Write(data)
		case css.WhitespaceToken:
			if depth > 0 {
				current.Write(data)
			} else if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.Write(data)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// splitSlash splits a value on a top-level "/" delimiter, as used by the
// border-radius shorthand. Slashes inside parentheses do not split.
func splitSlash(value string) (string, string, bool) {
	depth := 0

	lexer := css.NewLexer(parse.NewInputString(value))
	pos := 0
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.DelimToken:
			if depth == 0 && len(data) == 1 && data[0] == '/' {
				return strings.TrimSpace(value[:pos]), strings.TrimSpace(value[pos+1:]), true
			}
		}
		pos += len(data)
	}

	return value, "", false
}

// splitImportant strips a trailing "!important" from a value, returning the
// bare value and the suffix to re-append after expansion.
func splitImportant(value string) (string, string) {
	trimmed := strings.TrimSpace(value)
	lower := strings.ToLower(trimmed)
	if strings.HasSuffix(lower, "!important") {
		bare := strings.TrimSpace(trimmed[:len(trimmed)-len("!important")])
		return bare, " !important"
	}
	return trimmed, ""
}
