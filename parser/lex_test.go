package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer(t *testing.T) {
	testData := []string{
		`a = 1`,
		`name$ = "hello world"`,
		`x = 3.25 * (y + 2) mod 7`,
		`if a >= 1 and b <> 2 then Print("x") end`,
		`For I = 10 To 1 Step -1 Do Print(Str(i)) End`,
		`list = [1, 2.5, "three", null]`,
		`v = list[0]$ + list[1]#$`,
		`d = {"a": 1, "b": [2]}
		x = d["b"][0]%`,
		`// a line comment
		a = 1 /* block
		comment */ b = 2`,
		`function Foo$(a, b#, c$, d@, e&, f!)
			return c
		end`,
		`while not (a < 10) or true do a = a - 1; end`,
	}

testLoop:
	for idx, entry := range testData {
		t.Logf("%d. Lexing %q", idx, entry)
		l := lex("", entry)
		for item := l.nextItem(); item.typ != itemEOF; item = l.nextItem() {
			t.Logf("\titem = %#v", item)
			if item.typ == itemError {
				t.Errorf("%d. error: %s", idx, item.val)
				l.drain()
				continue testLoop
			}
		}
	}
}

func TestLexerItems(t *testing.T) {
	testData := []struct {
		name     string
		input    string
		expected []itemType
	}{
		{
			name:     "assignment",
			input:    "a = 1",
			expected: []itemType{itemIdentifier, itemAssign, itemIntegerLiteral, itemEOF},
		},
		{
			name:  "relational operators",
			input: "== <> < <= > >=",
			expected: []itemType{
				itemEqual, itemNotEqual, itemLess, itemLessEqual, itemGreater, itemGreaterEqual, itemEOF,
			},
		},
		{
			name:     "keywords are case-insensitive",
			input:    "IF Then eLsE ElseIf END",
			expected: []itemType{itemIf, itemThen, itemElse, itemElseIf, itemEnd, itemEOF},
		},
		{
			name:     "type suffixes",
			input:    "% # $ @ & !",
			expected: []itemType{itemIntSuffix, itemRealSuffix, itemStringSuffix, itemRefSuffix, itemListSuffix, itemDictSuffix, itemEOF},
		},
		{
			name:     "dict literal",
			input:    `{"a": 1}`,
			expected: []itemType{itemOpenBrace, itemStringLiteral, itemColon, itemIntegerLiteral, itemCloseBrace, itemEOF},
		},
		{
			name:     "minus is never part of a literal",
			input:    "a-1",
			expected: []itemType{itemIdentifier, itemMinus, itemIntegerLiteral, itemEOF},
		},
		{
			name:     "newlines are items",
			input:    "a\n\nb",
			expected: []itemType{itemIdentifier, itemEOL, itemEOL, itemIdentifier, itemEOF},
		},
		{
			name:     "block comment swallows newlines",
			input:    "a /* x\ny */ b",
			expected: []itemType{itemIdentifier, itemIdentifier, itemEOF},
		},
		{
			name:     "line comment keeps newline",
			input:    "a // x\nb",
			expected: []itemType{itemIdentifier, itemEOL, itemIdentifier, itemEOF},
		},
		{
			name:     "real literal",
			input:    "3.1415",
			expected: []itemType{itemRealLiteral, itemEOF},
		},
	}

	for _, tt := range testData {
		t.Run(tt.name, func(t *testing.T) {
			l := lex("", tt.input)
			var got []itemType
			for {
				it := l.nextItem()
				require.NotEqual(t, itemError, it.typ, it.val)
				got = append(got, it.typ)
				if it.typ == itemEOF {
					break
				}
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLexerErrors(t *testing.T) {
	testData := []struct {
		name  string
		input string
	}{
		{"unterminated string", `a = "abc`},
		{"string with newline", "a = \"abc\ndef\""},
		{"unterminated comment", "a /* b"},
		{"unknown character", "a = 1 ? 2"},
		{"real without fraction", "a = 1."},
	}

	for _, tt := range testData {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize("test.pico", tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "test.pico:1:")
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("test.pico", "a = \"x\"\n  b$")
	require.NoError(t, err)

	assert.Equal(t, []Token{
		{Kind: "identifier", Text: "a", Line: 1, Column: 1},
		{Kind: "assign", Text: "=", Line: 1, Column: 3},
		{Kind: "string", Text: "x", Line: 1, Column: 5},
		{Kind: "eol", Text: "\n", Line: 1, Column: 8},
		{Kind: "identifier", Text: "b", Line: 2, Column: 3},
		{Kind: "stringsuffix", Text: "$", Line: 2, Column: 4},
		{Kind: "eof", Text: "", Line: 2, Column: 5},
	}, tokens)
}
