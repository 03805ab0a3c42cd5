package system

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseInt parses the leading decimal integer of text. Leading white space
// and a single sign are accepted. If text doesn't start with a number, 0 is
// returned. Numbers that don't fit into an int saturate at math.MinInt or
// math.MaxInt.
func ParseInt(text string) int {
	prefix := intPrefix(strings.TrimLeft(text, " \t\r\n\v\f"))
	if prefix == "" {
		return 0
	}

	v, err := strconv.ParseInt(prefix, 10, strconv.IntSize)
	if err != nil {
		if prefix[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}

	return int(v)
}

// ParseFloat parses the leading decimal floating point number of text, or
// one of inf, infinity and nan. If text doesn't start with a number, 0 is
// returned.
func ParseFloat(text string) float64 {
	prefix := floatPrefix(strings.TrimLeft(text, " \t\r\n\v\f"))
	if prefix == "" {
		return 0
	}

	// out of range values come back as ±Inf or 0 together with an error,
	// which is exactly what we want to return.
	v, _ := strconv.ParseFloat(prefix, 64)
	return v
}

// FormatInt returns the base 10 representation of value.
func FormatInt(value int) string {
	return strconv.Itoa(value)
}

// FormatFloat returns the shortest decimal representation of value that
// ParseFloat turns back into the same value. No exponent is used.
func FormatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Split splits text at every occurrence of the first character of
// delimiterSource. If delimiterSource is empty, text is split at spaces.
// Consecutive delimiters result in empty tokens.
func Split(text, delimiterSource string) []string {
	delim := " "
	if delimiterSource != "" {
		_, size := utf8.DecodeRuneInString(delimiterSource)
		delim = delimiterSource[:size]
	}
	return strings.Split(text, delim)
}

// Join concatenates tokens, putting separator between consecutive tokens.
func Join(tokens []string, separator string) string {
	return strings.Join(tokens, separator)
}

func intPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := countDigits(s[i:])
	if digits == 0 {
		return ""
	}

	return s[:i+digits]
}

func floatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	for _, word := range []string{"infinity", "inf", "nan"} {
		if len(s)-i >= len(word) && strings.EqualFold(s[i:i+len(word)], word) {
			if word == "nan" {
				return s[i : i+len(word)]
			}
			return s[:i+len(word)]
		}
	}

	mantissa := countDigits(s[i:])
	i += mantissa

	if i < len(s) && s[i] == '.' {
		fraction := countDigits(s[i+1:])
		if mantissa == 0 && fraction == 0 {
			return ""
		}
		mantissa += fraction
		i += 1 + fraction
	}

	if mantissa == 0 {
		return ""
	}

	// the exponent only counts if it is followed by at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if exp := countDigits(s[j:]); exp > 0 {
			i = j + exp
		}
	}

	return s[:i]
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
