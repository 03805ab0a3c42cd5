package system

import (
	"maps"
	"slices"
	"strings"
)

// Dict maps string keys onto dynamically typed values. All methods can be
// called on a nil *Dict.
type Dict struct {
	values map[string]any
}

// DictOf returns a dict built from alternating keys and values. Later keys
// overwrite earlier ones.
func DictOf(keyvals ...any) *Dict {
	d := &Dict{values: make(map[string]any, len(keyvals)/2)}
	for i := 0; i+1 < len(keyvals); i += 2 {
		d.Set(valueString(keyvals[i]), keyvals[i+1])
	}
	return d
}

// Size returns the number of entries in d.
func (d *Dict) Size() int {
	if d == nil {
		return 0
	}
	return len(d.values)
}

// Set stores v under key.
func (d *Dict) Set(key string, v any) *Dict {
	if d == nil {
		return nil
	}
	if d.values == nil {
		d.values = make(map[string]any)
	}
	d.values[key] = v
	return d
}

// Get returns the value stored under key, or nil if there is none.
func (d *Dict) Get(key string) any {
	if d == nil {
		return nil
	}
	return d.values[key]
}

func (d *Dict) Int(key string) int {
	return valueInt(d.Get(key))
}

func (d *Dict) Float(key string) float64 {
	return valueFloat(d.Get(key))
}

func (d *Dict) Str(key string) string {
	return valueString(d.Get(key))
}

func (d *Dict) Ref(key string) any {
	return d.Get(key)
}

// List returns the value under key if it is a list, nil otherwise.
func (d *Dict) List(key string) *List {
	l, _ := d.Get(key).(*List)
	return l
}

// Dict returns the value under key if it is a dict, nil otherwise.
func (d *Dict) Dict(key string) *Dict {
	sub, _ := d.Get(key).(*Dict)
	return sub
}

func (d *Dict) Contains(key string) bool {
	if d == nil {
		return false
	}
	_, ok := d.values[key]
	return ok
}

func (d *Dict) Remove(key string) {
	if d == nil {
		return
	}
	delete(d.values, key)
}

func (d *Dict) Clear() {
	if d == nil {
		return
	}
	clear(d.values)
}

// Keys returns the keys of d in ascending order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(d.values))
}

// Text renders d as {"key": value, ...} with the keys in ascending order.
func (d *Dict) Text() string {
	var buf strings.Builder

	buf.WriteString("{")
	for idx, key := range d.Keys() {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(valueText(key))
		buf.WriteString(": ")
		buf.WriteString(valueText(d.values[key]))
	}
	buf.WriteString("}")

	return buf.String()
}

// Contains returns 1 if d has an entry for key, 0 otherwise.
func Contains(d *Dict, key string) int {
	return BoolInt(d.Contains(key))
}

// RemoveKey deletes the entry for key from d.
func RemoveKey(d *Dict, key string) {
	d.Remove(key)
}

// DictSize returns the number of entries in d.
func DictSize(d *Dict) int {
	return d.Size()
}

// ClearDict removes all entries from d.
func ClearDict(d *Dict) {
	d.Clear()
}

// DictKeys returns the keys of d in ascending order.
func DictKeys(d *Dict) *List {
	return StringList(d.Keys())
}
