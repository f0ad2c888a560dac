package compiler

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokOther tokenKind = iota
	tokNumber
	tokIdent
	tokOpen
	tokClose
)

type token struct {
	kind tokenKind
	text string
}

// normalize rewrites implicit multiplication into explicit operators so the
// parser sees "2*x" for "2x" and "(x+1)*(x-1)" for "(x+1)(x-1)".
// A function name directly followed by "(" stays a call.
func normalize(src string) string {
	tokens := tokenize(src)

	var b strings.Builder
	b.Grow(len(src) + 8)

	var prev *token
	for i := range tokens {
		tok := &tokens[i]
		if tok.kind == tokOther && strings.TrimSpace(tok.text) == "" {
			b.WriteString(tok.text)
			continue
		}
		if prev != nil && implicitProduct(prev, tok) {
			b.WriteByte('*')
		}
		b.WriteString(tok.text)
		prev = tok
	}
	return b.String()
}

func implicitProduct(left, right *token) bool {
	switch left.kind {
	case tokNumber, tokClose:
	case tokIdent:
		if right.kind == tokOpen && isFunction(left.text) {
			return false
		}
	default:
		return false
	}

	switch right.kind {
	case tokNumber, tokIdent, tokOpen:
		return true
	default:
		return false
	}
}

func tokenize(src string) []token {
	runes := []rune(src)
	var tokens []token

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsDigit(r) || (r == '.' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			j := scanNumber(runes, i)
			tokens = append(tokens, token{kind: tokNumber, text: string(runes[i:j])})
			i = j
		case r == '_' || unicode.IsLetter(r):
			j := i + 1
			for j < len(runes) && (runes[j] == '_' || unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j])) {
				j++
			}
			tokens = append(tokens, token{kind: tokIdent, text: string(runes[i:j])})
			i = j
		case r == '(':
			tokens = append(tokens, token{kind: tokOpen, text: "("})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokClose, text: ")"})
			i++
		default:
			tokens = append(tokens, token{kind: tokOther, text: string(r)})
			i++
		}
	}
	return tokens
}

// scanNumber returns the end of the numeric literal starting at i. An exponent
// is only consumed when digits follow it, so "2e" stays "2" followed by "e".
func scanNumber(runes []rune, i int) int {
	j := i
	for j < len(runes) && unicode.IsDigit(runes[j]) {
		j++
	}
	if j < len(runes) && runes[j] == '.' {
		j++
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
	}
	if j < len(runes) && (runes[j] == 'e' || runes[j] == 'E') {
		k := j + 1
		if k < len(runes) && (runes[k] == '+' || runes[k] == '-') {
			k++
		}
		if k < len(runes) && unicode.IsDigit(runes[k]) {
			for k < len(runes) && unicode.IsDigit(runes[k]) {
				k++
			}
			j = k
		}
	}
	return j
}
