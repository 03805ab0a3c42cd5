package system

import "strings"

// List is the ordered, dynamically typed sequence of pico programs. The zero
// value is an empty list, and all methods can be called on a nil *List.
type List struct {
	values []any
}

// NewList returns a list containing values.
func NewList(values ...any) *List {
	return &List{values: values}
}

// StringList returns a list containing the strings in values.
func StringList(values []string) *List {
	l := &List{values: make([]any, 0, len(values))}
	for _, v := range values {
		l.values = append(l.values, v)
	}
	return l
}

// Size returns the number of elements in l.
func (l *List) Size() int {
	if l == nil {
		return 0
	}
	return len(l.values)
}

// Set stores v at index idx. Setting an index past the end of the list grows
// it; the elements in between become 0. Negative indexes are ignored.
func (l *List) Set(idx int, v any) *List {
	if l == nil {
		return nil
	}
	if idx < 0 {
		logger.Warn("negative list index", "index", idx)
		return l
	}
	for len(l.values) <= idx {
		l.values = append(l.values, 0)
	}
	l.values[idx] = v
	return l
}

// Get returns the element at idx, or nil if idx is out of range.
func (l *List) Get(idx int) any {
	if idx < 0 || idx >= l.Size() {
		return nil
	}
	return l.values[idx]
}

// Int returns the element at idx converted to an int.
func (l *List) Int(idx int) int {
	return valueInt(l.Get(idx))
}

// Float returns the element at idx converted to a float64.
func (l *List) Float(idx int) float64 {
	return valueFloat(l.Get(idx))
}

// Str returns the element at idx converted to a string.
func (l *List) Str(idx int) string {
	return valueString(l.Get(idx))
}

// Ref returns the element at idx unconverted.
func (l *List) Ref(idx int) any {
	return l.Get(idx)
}

// List returns the element at idx if it is a list, nil otherwise.
func (l *List) List(idx int) *List {
	sub, _ := l.Get(idx).(*List)
	return sub
}

// Dict returns the element at idx if it is a dict, nil otherwise.
func (l *List) Dict(idx int) *Dict {
	d, _ := l.Get(idx).(*Dict)
	return d
}

// Remove deletes the element at idx and moves the following elements down.
func (l *List) Remove(idx int) {
	if idx < 0 || idx >= l.Size() {
		return
	}
	l.values = append(l.values[:idx], l.values[idx+1:]...)
}

// Clear removes all elements from l.
func (l *List) Clear() {
	if l == nil {
		return
	}
	l.values = nil
}

// Strings returns all elements of l converted to strings.
func (l *List) Strings() []string {
	strs := make([]string, 0, l.Size())
	for i := 0; i < l.Size(); i++ {
		strs = append(strs, l.Str(i))
	}
	return strs
}

// Text renders l as a bracketed, comma separated list. Nested lists are
// rendered recursively.
func (l *List) Text() string {
	var buf strings.Builder

	buf.WriteString("[")
	for idx, v := range l.Slice() {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(valueText(v))
	}
	buf.WriteString("]")

	return buf.String()
}

// Slice returns the elements of l. The returned slice must not be modified.
func (l *List) Slice() []any {
	if l == nil {
		return nil
	}
	return l.values
}

func valueInt(v any) int {
	switch tv := v.(type) {
	case int:
		return tv
	case float64:
		return Int(tv)
	case string:
		return ParseInt(tv)
	}
	return 0
}

func valueFloat(v any) float64 {
	switch tv := v.(type) {
	case int:
		return float64(tv)
	case float64:
		return tv
	case string:
		return ParseFloat(tv)
	}
	return 0
}

func valueString(v any) string {
	switch tv := v.(type) {
	case int:
		return FormatInt(tv)
	case float64:
		return FormatFloat(tv)
	case string:
		return tv
	case *List:
		return tv.Text()
	case *Dict:
		return tv.Text()
	}
	return ""
}

// valueText renders v as an element of a list or dict. Strings are quoted.
func valueText(v any) string {
	if s, ok := v.(string); ok {
		return `"` + s + `"`
	}
	return valueString(v)
}

// ListSize returns the number of elements of l.
func ListSize(l *List) int {
	return l.Size()
}

// RemoveIndex deletes the element at idx from l.
func RemoveIndex(l *List, idx int) {
	l.Remove(idx)
}

// ClearList removes all elements from l.
func ClearList(l *List) {
	l.Clear()
}

// SplitList works like Split but returns the tokens as a list.
func SplitList(text, delimiterSource string) *List {
	return StringList(Split(text, delimiterSource))
}

// JoinList works like Join on the elements of l converted to strings.
func JoinList(l *List, separator string) string {
	return Join(l.Strings(), separator)
}
