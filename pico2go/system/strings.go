package system

import (
	"strings"

	"fortio.org/safecast"
)

// pico strings are byte strings: lengths, offsets and case conversion all
// work on single bytes.

func Len(str string) int {
	return len(str)
}

// Left returns the first count bytes of str.
func Left(str string, count int) string {
	return str[:Clamp(count, 0, len(str))]
}

// Right returns the last count bytes of str.
func Right(str string, count int) string {
	return str[len(str)-Clamp(count, 0, len(str)):]
}

// Mid returns count bytes of str starting at offset.
func Mid(str string, offset, count int) string {
	start := Clamp(offset, 0, len(str))
	return str[start : start+Clamp(count, 0, len(str)-start)]
}

// Lower converts the ASCII letters of str to lower case.
func Lower(str string) string {
	return mapASCII(str, 'A', 'Z', 'a'-'A')
}

// Upper converts the ASCII letters of str to upper case.
func Upper(str string) string {
	return mapASCII(str, 'a', 'z', 'A'-'a')
}

func mapASCII(str string, from, to byte, delta int) string {
	buf := []byte(str)
	for i, c := range buf {
		if c >= from && c <= to {
			buf[i] = byte(int(c) + delta)
		}
	}
	return string(buf)
}

// Find returns the index of the first occurrence of find in str at or after
// offset, or -1.
func Find(str, find string, offset int) int {
	offset = Clamp(offset, 0, len(str))
	idx := strings.Index(str[offset:], find)
	if idx < 0 {
		return -1
	}
	return offset + idx
}

// Replace replaces all occurrences of find in str. An empty find leaves str
// unchanged.
func Replace(str, find, replacement string) string {
	if find == "" {
		return str
	}
	return strings.ReplaceAll(str, find, replacement)
}

// Trim removes leading and trailing white space.
func Trim(str string) string {
	return strings.Trim(str, " \t\n\v\f\r")
}

// Asc returns the byte at index idx of str, or 0 if idx is out of range.
func Asc(str string, idx int) int {
	if idx < 0 || idx >= len(str) {
		return 0
	}
	return int(str[idx])
}

// Chr returns the one-byte string containing c. Values that don't fit into
// a byte yield an empty string.
func Chr(c int) string {
	b, err := safecast.Conv[byte](c)
	if err != nil {
		logger.Warn("Chr: invalid character code", "code", c, "error", err)
		return ""
	}
	return string([]byte{b})
}

// StripExt removes the extension, including the dot, from filename.
func StripExt(filename string) string {
	if dot := extIndex(filename); dot >= 0 {
		return filename[:dot]
	}
	return filename
}

// StripDir removes the directory part from filename.
func StripDir(filename string) string {
	return filename[dirIndex(filename)+1:]
}

// ExtractExt returns the extension of filename without the dot.
func ExtractExt(filename string) string {
	if dot := extIndex(filename); dot >= 0 {
		return filename[dot+1:]
	}
	return ""
}

// ExtractDir returns the directory part of filename without the trailing
// separator.
func ExtractDir(filename string) string {
	if sep := dirIndex(filename); sep >= 0 {
		return filename[:sep]
	}
	return ""
}

// both kinds of separators are accepted so that programs behave the same on
// every platform.
func dirIndex(filename string) int {
	return strings.LastIndexAny(filename, `/\`)
}

func extIndex(filename string) int {
	dot := strings.LastIndexByte(filename, '.')
	if dot < dirIndex(filename) {
		return -1
	}
	return dot
}
