package obj

// TokenKind classifies a lexed token.
type TokenKind int

const (
	// KEYWORD is an identifier at any position: a line keyword such as
	// "v" or "f", or a bareword argument such as a material name.
	KEYWORD TokenKind = iota
	// NUMBER is a numeric literal with optional sign, decimal point,
	// and exponent.
	NUMBER
	// SLASH separates the index groups of a face element ("1/2/3").
	SLASH
	// NEWLINE terminates a statement.
	NEWLINE
	// EOF terminates the token stream. Exactly one EOF is emitted.
	EOF
)

// Token is a single lexical unit of OBJ source text.
type Token struct {
	Kind  TokenKind
	Value string
}

// Lex tokenizes OBJ source text. It never fails: bytes that do not start
// a valid token are skipped.
func Lex(src string) []Token {
	tokens := make([]Token, 0, 64)
	i := 0
	n := len(src)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '\n':
			tokens = append(tokens, Token{Kind: NEWLINE, Value: "\n"})
			i++
		case c == '#':
			for i < n && src[i] != '\n' {
				i++
			}
		case c == '/':
			tokens = append(tokens, Token{Kind: SLASH, Value: "/"})
			i++
		case isNumberStart(src, i):
			start := i
			i = scanNumber(src, i)
			tokens = append(tokens, Token{Kind: NUMBER, Value: src[start:i]})
		case isIdentStart(c):
			start := i
			for i < n && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: KEYWORD, Value: src[start:i]})
		default:
			i++
		}
	}
	return append(tokens, Token{Kind: EOF})
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberStart reports whether position i begins a numeric literal. A
// bare sign or dot only counts when a digit follows, so stray punctuation
// falls through to the skip path.
func isNumberStart(src string, i int) bool {
	c := src[i]
	if isDigit(c) {
		return true
	}
	if c == '+' || c == '-' {
		i++
		if i < len(src) && src[i] == '.' {
			i++
		}
		return i < len(src) && isDigit(src[i])
	}
	if c == '.' {
		return i+1 < len(src) && isDigit(src[i+1])
	}
	return false
}

// scanNumber consumes a numeric literal starting at i and returns the
// index just past it: optional sign, integer digits, optional fraction,
// optional exponent with optional sign.
func scanNumber(src string, i int) int {
	n := len(src)
	if src[i] == '+' || src[i] == '-' {
		i++
	}
	for i < n && isDigit(src[i]) {
		i++
	}
	if i < n && src[i] == '.' {
		i++
		for i < n && isDigit(src[i]) {
			i++
		}
	}
	if i < n && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < n && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < n && isDigit(src[j]) {
			i = j
			for i < n && isDigit(src[i]) {
				i++
			}
		}
	}
	return i
}
