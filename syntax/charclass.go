package syntax

// CharClass is the lexical category of a single source byte.  The lexer uses it
// to pick the rule that tokenizes the bytes starting at its current position.
type CharClass int

// Enumeration of character classes.
const (
	CC_DIGIT CharClass = iota
	CC_LETTER
	CC_PLUS
	CC_MINUS
	CC_ASTER
	CC_SLASH
	CC_LPAREN
	CC_RPAREN
	CC_EQUAL
	CC_LSS
	CC_GTR
	CC_COMMA
	CC_PERIOD
	CC_SEMI
	CC_COLON
	CC_SPACE
	CC_OTHER
)

// Classify returns the character class of b.  Only ASCII letters are letters.
func Classify(b byte) CharClass {
	switch {
	case '0' <= b && b <= '9':
		return CC_DIGIT
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z':
		return CC_LETTER
	}

	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return CC_SPACE
	case '+':
		return CC_PLUS
	case '-':
		return CC_MINUS
	case '*':
		return CC_ASTER
	case '/':
		return CC_SLASH
	case '(':
		return CC_LPAREN
	case ')':
		return CC_RPAREN
	case '=':
		return CC_EQUAL
	case '<':
		return CC_LSS
	case '>':
		return CC_GTR
	case ',':
		return CC_COMMA
	case '.':
		return CC_PERIOD
	case ';':
		return CC_SEMI
	case ':':
		return CC_COLON
	}

	return CC_OTHER
}

// IsReserved returns whether the class names a byte that may appear in a
// token.
func (cc CharClass) IsReserved() bool {
	return cc != CC_OTHER && cc != CC_SPACE
}
