package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictConversions(t *testing.T) {
	d := DictOf("i", 7, "r", 2.5, "s", "12abc", "l", NewList(1), "d", DictOf("x", "y"))

	require.Equal(t, 5, d.Size())

	assert.Equal(t, 7, d.Int("i"))
	assert.Equal(t, 7.0, d.Float("i"))
	assert.Equal(t, "7", d.Str("i"))
	assert.Equal(t, 2, d.Int("r"))
	assert.Equal(t, "2.5", d.Str("r"))
	assert.Equal(t, 12, d.Int("s"))

	require.NotNil(t, d.List("l"))
	assert.Equal(t, 1, d.List("l").Int(0))
	assert.Nil(t, d.List("i"))

	require.NotNil(t, d.Dict("d"))
	assert.Equal(t, "y", d.Dict("d").Str("x"))
	assert.Nil(t, d.Dict("l"))

	assert.Nil(t, d.Ref("missing"))
	assert.Equal(t, 0, d.Int("missing"))
	assert.Equal(t, "", d.Str("missing"))
}

func TestDictOfDuplicateKeys(t *testing.T) {
	d := DictOf("a", 1, "a", 2, "dangling")
	assert.Equal(t, 1, d.Size())
	assert.Equal(t, 2, d.Int("a"))
}

func TestDictEntries(t *testing.T) {
	d := DictOf()
	d.Set("b", 1).Set("a", "x")

	assert.Equal(t, 1, Contains(d, "a"))
	assert.Equal(t, 0, Contains(d, "c"))
	assert.Equal(t, []any{"a", "b"}, DictKeys(d).Slice())

	RemoveKey(d, "a")
	assert.Equal(t, 1, DictSize(d))
	RemoveKey(d, "a")
	assert.Equal(t, 1, DictSize(d))

	ClearDict(d)
	assert.Equal(t, 0, DictSize(d))

	d.Set("c", 3)
	assert.Equal(t, 3, d.Int("c"))
}

func TestNilDict(t *testing.T) {
	var d *Dict

	assert.Equal(t, 0, d.Size())
	assert.Nil(t, d.Set("a", 1))
	assert.Equal(t, 0, d.Int("a"))
	assert.Equal(t, 0, Contains(d, "a"))
	assert.Equal(t, "{}", d.Text())
	assert.Equal(t, 0, DictKeys(d).Size())
	d.Remove("a")
	d.Clear()

	var zero Dict
	zero.Set("a", 1)
	assert.Equal(t, 1, zero.Int("a"))
}

func TestDictText(t *testing.T) {
	d := DictOf("b", NewList("x", 1), "a", 1.5, "c", DictOf("k", "v"))
	assert.Equal(t, `{"a": 1.5, "b": ["x", 1], "c": {"k": "v"}}`, d.Text())

	l := NewList(DictOf("k", 1))
	assert.Equal(t, `[{"k": 1}]`, l.Text())
	assert.Equal(t, 1, l.Dict(0).Int("k"))
	assert.Nil(t, l.Dict(1))
}
