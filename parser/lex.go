package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type item struct {
	typ itemType
	pos Pos
	val string
}

func (i item) String() string {
	switch {
	case i.typ == itemEOF:
		return "EOF"
	case i.typ == itemEOL:
		return "end of line"
	case i.typ == itemError:
		return i.val
	}
	return fmt.Sprintf("%q", i.val)
}

type itemType int

// Pos is a byte offset into the source text.
type Pos int

const (
	itemError itemType = iota
	itemEOF
	itemEOL
	itemAnd
	itemDo
	itemElse
	itemElseIf
	itemEnd
	itemFalse
	itemFor
	itemFunction
	itemIf
	itemMod
	itemNot
	itemNull
	itemOr
	itemReturn
	itemStep
	itemThen
	itemTo
	itemTrue
	itemWhile
	itemIdentifier
	itemIntegerLiteral
	itemRealLiteral
	itemStringLiteral
	itemAssign
	itemEqual
	itemNotEqual
	itemLess
	itemLessEqual
	itemGreater
	itemGreaterEqual
	itemPlus
	itemMinus
	itemMultiply
	itemDivide
	itemComma
	itemColon
	itemSemicolon
	itemOpenParen
	itemCloseParen
	itemOpenBracket
	itemCloseBracket
	itemOpenBrace
	itemCloseBrace
	itemIntSuffix
	itemRealSuffix
	itemStringSuffix
	itemRefSuffix
	itemListSuffix
	itemDictSuffix
)

var key = map[string]itemType{
	"and":      itemAnd,
	"do":       itemDo,
	"else":     itemElse,
	"elseif":   itemElseIf,
	"end":      itemEnd,
	"false":    itemFalse,
	"for":      itemFor,
	"function": itemFunction,
	"if":       itemIf,
	"mod":      itemMod,
	"not":      itemNot,
	"null":     itemNull,
	"or":       itemOr,
	"return":   itemReturn,
	"step":     itemStep,
	"then":     itemThen,
	"to":       itemTo,
	"true":     itemTrue,
	"while":    itemWhile,
}

var singleCharItems = map[rune]itemType{
	'+': itemPlus,
	'-': itemMinus,
	'*': itemMultiply,
	'/': itemDivide,
	',': itemComma,
	':': itemColon,
	';': itemSemicolon,
	'(': itemOpenParen,
	')': itemCloseParen,
	'[': itemOpenBracket,
	']': itemCloseBracket,
	'{': itemOpenBrace,
	'}': itemCloseBrace,
	'%': itemIntSuffix,
	'#': itemRealSuffix,
	'$': itemStringSuffix,
	'@': itemRefSuffix,
	'&': itemListSuffix,
	'!': itemDictSuffix,
}

const eof = -1

type stateFn func(*lexer) stateFn

type lexer struct {
	name  string
	input string
	state stateFn
	pos   Pos
	start Pos
	width Pos
	items chan item
}

func (l *lexer) next() rune {
	if int(l.pos) >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = Pos(w)
	l.pos += l.width
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) emit(t itemType) {
	l.items <- item{t, l.start, l.input[l.start:l.pos]}
	l.start = l.pos
}

func (l *lexer) emitValue(t itemType, val string) {
	l.items <- item{t, l.start, val}
	l.start = l.pos
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) acceptRun(valid string) {
	for strings.IndexRune(valid, l.next()) >= 0 {
	}
	l.backup()
}

// position returns the 1-based line and column of pos.
func (l *lexer) position(pos Pos) (line, col int) {
	if int(pos) > len(l.input) {
		pos = Pos(len(l.input))
	}
	text := l.input[:pos]
	line = 1 + strings.Count(text, "\n")
	col = 1 + utf8.RuneCountInString(text[strings.LastIndexByte(text, '\n')+1:])
	return line, col
}

func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.items <- item{itemError, l.start, fmt.Sprintf(format, args...)}
	return nil
}

// nextItem returns the next item. Once the lexer has finished, it keeps
// returning EOF.
func (l *lexer) nextItem() item {
	it, ok := <-l.items
	if !ok {
		return item{itemEOF, Pos(len(l.input)), ""}
	}
	return it
}

// drain consumes the remaining items so that the lexing goroutine exits.
func (l *lexer) drain() {
	for range l.items {
	}
}

func lex(name, input string) *lexer {
	l := &lexer{
		name:  name,
		input: input,
		items: make(chan item),
	}
	go l.run()
	return l
}

func (l *lexer) run() {
	for l.state = lexText; l.state != nil; {
		l.state = l.state(l)
	}
	close(l.items)
}

func lexText(l *lexer) stateFn {
	r := l.peek()
	switch {
	case r == ' ' || r == '\r' || r == '\t':
		l.acceptRun("\r\t ")
		l.ignore()
		return lexText
	case r == '\n':
		l.next()
		l.emit(itemEOL)
		return lexText
	case r >= '0' && r <= '9':
		return lexNumber
	case isAlpha(r):
		return lexIdentifier
	case r == '"':
		return lexStringLiteral
	case r == '/' && strings.HasPrefix(l.input[l.pos:], "//"):
		return lexLineComment
	case r == '/' && strings.HasPrefix(l.input[l.pos:], "/*"):
		return lexBlockComment
	case r == '=' || r == '<' || r == '>':
		return lexRelationalOperator
	case r == eof:
		l.emit(itemEOF)
		return nil
	}

	if typ, ok := singleCharItems[r]; ok {
		l.next()
		l.emit(typ)
		return lexText
	}

	return l.errorf("unrecognized character %q", r)
}

func isAlpha(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func lexNumber(l *lexer) stateFn {
	l.acceptRun("0123456789")
	if l.peek() != '.' {
		l.emit(itemIntegerLiteral)
		return lexText
	}

	l.next()
	if r := l.peek(); r < '0' || r > '9' {
		return l.errorf("invalid real number %q", l.input[l.start:l.pos])
	}
	l.acceptRun("0123456789")
	l.emit(itemRealLiteral)
	return lexText
}

func lexIdentifier(l *lexer) stateFn {
	for r := l.next(); isAlpha(r) || (r >= '0' && r <= '9'); r = l.next() {
	}
	l.backup()

	if typ, found := key[strings.ToLower(l.input[l.start:l.pos])]; found {
		l.emit(typ)
	} else {
		l.emit(itemIdentifier)
	}
	return lexText
}

func lexStringLiteral(l *lexer) stateFn {
	l.next()
	for {
		switch l.next() {
		case '"':
			l.emitValue(itemStringLiteral, l.input[l.start+1:l.pos-1])
			return lexText
		case '\n', eof:
			return l.errorf("string literal must be closed")
		}
	}
}

func lexLineComment(l *lexer) stateFn {
	for r := l.peek(); r != '\n' && r != eof; r = l.peek() {
		l.next()
	}
	l.ignore()
	return lexText
}

// block comments swallow their newlines, so a comment spanning lines doesn't
// end a statement.
func lexBlockComment(l *lexer) stateFn {
	end := strings.Index(l.input[l.pos+2:], "*/")
	if end < 0 {
		return l.errorf("comment must be closed")
	}
	l.pos += Pos(end + 4)
	l.ignore()
	return lexText
}

func lexRelationalOperator(l *lexer) stateFn {
	r := l.next()
	switch r {
	case '=':
		if l.peek() == '=' {
			l.next()
			l.emit(itemEqual)
		} else {
			l.emit(itemAssign)
		}
	case '<':
		switch l.peek() {
		case '=':
			l.next()
			l.emit(itemLessEqual)
		case '>':
			l.next()
			l.emit(itemNotEqual)
		default:
			l.emit(itemLess)
		}
	case '>':
		if l.peek() == '=' {
			l.next()
			l.emit(itemGreaterEqual)
		} else {
			l.emit(itemGreater)
		}
	default:
		return l.errorf("unexpected %c", r)
	}
	return lexText
}

var itemNames = map[itemType]string{
	itemError:          "error",
	itemEOF:            "eof",
	itemEOL:            "eol",
	itemIdentifier:     "identifier",
	itemIntegerLiteral: "int",
	itemRealLiteral:    "real",
	itemStringLiteral:  "string",
	itemAssign:         "assign",
	itemEqual:          "equal",
	itemNotEqual:       "notequal",
	itemLess:           "less",
	itemLessEqual:      "lessequal",
	itemGreater:        "greater",
	itemGreaterEqual:   "greaterequal",
	itemPlus:           "plus",
	itemMinus:          "minus",
	itemMultiply:       "multiply",
	itemDivide:         "divide",
	itemComma:          "comma",
	itemColon:          "colon",
	itemSemicolon:      "semicolon",
	itemOpenParen:      "openparen",
	itemCloseParen:     "closeparen",
	itemOpenBracket:    "openbracket",
	itemCloseBracket:   "closebracket",
	itemOpenBrace:      "openbrace",
	itemCloseBrace:     "closebrace",
	itemIntSuffix:      "intsuffix",
	itemRealSuffix:     "realsuffix",
	itemStringSuffix:   "stringsuffix",
	itemRefSuffix:      "refsuffix",
	itemListSuffix:     "listsuffix",
	itemDictSuffix:     "dictsuffix",
}

func (t itemType) String() string {
	if name, ok := itemNames[t]; ok {
		return name
	}
	for word, typ := range key {
		if typ == t {
			return word
		}
	}
	return fmt.Sprintf("item(%d)", int(t))
}

// Token is a lexical token together with its position in the source.
type Token struct {
	Kind   string
	Text   string
	Line   int
	Column int
}

// Tokenize splits text into tokens. Lexing stops at the first error.
func Tokenize(name, text string) ([]Token, error) {
	l := lex(name, text)
	defer l.drain()

	var tokens []Token
	for {
		it := l.nextItem()
		line, col := l.position(it.pos)
		if it.typ == itemError {
			return tokens, fmt.Errorf("%s:%d:%d: %s", name, line, col, it.val)
		}
		tokens = append(tokens, Token{Kind: it.typ.String(), Text: it.val, Line: line, Column: col})
		if it.typ == itemEOF {
			return tokens, nil
		}
	}
}
