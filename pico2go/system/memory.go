package system

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"

	"fortio.org/safecast"
)

// Memory is a resizable block of raw bytes. Multi-byte values are stored in
// little-endian byte order. All methods can be called on a nil *Memory,
// which behaves like an empty block.
type Memory struct {
	buf []byte
}

// Dim allocates a zeroed memory block of size bytes.
func Dim(size int) *Memory {
	if size < 0 {
		logger.Warn("Dim: negative size", "size", size)
		size = 0
	}
	return &Memory{buf: make([]byte, size)}
}

// AsMemory returns ref as a *Memory, or nil if ref isn't a memory block.
func AsMemory(ref any) *Memory {
	m, _ := ref.(*Memory)
	return m
}

// Ref returns m as a pico reference value. A nil block becomes the null
// reference, so that it compares equal to null.
func Ref(m *Memory) any {
	if m == nil {
		return nil
	}
	return m
}

// Undim releases the contents of m. m has size 0 afterwards.
func Undim(m *Memory) {
	if m == nil {
		return
	}
	m.buf = nil
}

// Redim resizes m to size bytes, keeping its contents. New bytes are zero.
func Redim(m *Memory, size int) {
	if m == nil {
		return
	}
	if size < 0 {
		logger.Warn("Redim: negative size", "size", size)
		size = 0
	}
	buf := make([]byte, size)
	copy(buf, m.buf)
	m.buf = buf
}

// LoadDim reads filename into a new memory block. It returns nil if the file
// can't be read.
func LoadDim(filename string) *Memory {
	data, err := os.ReadFile(filename)
	if err != nil {
		logger.Warn("LoadDim: reading file failed", "file", filename, "error", err)
		return nil
	}
	return &Memory{buf: data}
}

// SaveDim writes the contents of m to filename.
func SaveDim(m *Memory, filename string) {
	if m == nil {
		return
	}
	if err := os.WriteFile(filename, m.buf, 0644); err != nil {
		logger.Warn("SaveDim: writing file failed", "file", filename, "error", err)
	}
}

// DimSize returns the size of m in bytes.
func DimSize(m *Memory) int {
	if m == nil {
		return 0
	}
	return len(m.buf)
}

// span returns the n bytes at offset, or nil if they are out of range.
func (m *Memory) span(op string, offset, n int) []byte {
	size := DimSize(m)
	if m == nil || offset < 0 || n > size-offset {
		logger.Warn(op+": access out of range", "offset", offset, "length", n, "size", size)
		return nil
	}
	return m.buf[offset : offset+n]
}

func (m *Memory) PeekByte(offset int) int {
	b := m.span("PeekByte", offset, 1)
	if b == nil {
		return 0
	}
	return int(b[0])
}

func (m *Memory) PeekShort(offset int) int {
	b := m.span("PeekShort", offset, 2)
	if b == nil {
		return 0
	}
	return int(binary.LittleEndian.Uint16(b))
}

func (m *Memory) PeekInt(offset int) int {
	b := m.span("PeekInt", offset, 4)
	if b == nil {
		return 0
	}
	return int(int32(binary.LittleEndian.Uint32(b)))
}

func (m *Memory) PeekFloat(offset int) float64 {
	b := m.span("PeekFloat", offset, 4)
	if b == nil {
		return 0
	}
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}

// PeekString returns the bytes starting at offset up to the next NUL byte
// or the end of the block.
func (m *Memory) PeekString(offset int) string {
	b := m.span("PeekString", offset, 0)
	if b == nil {
		return ""
	}
	rest := m.buf[offset:]
	if end := bytes.IndexByte(rest, 0); end >= 0 {
		rest = rest[:end]
	}
	return string(rest)
}

// PokeByte stores the lowest 8 bits of val at offset.
func (m *Memory) PokeByte(offset, val int) {
	_, errU := safecast.Conv[uint8](val)
	_, errS := safecast.Conv[int8](val)
	warnTruncated("PokeByte", val, errU, errS)

	if b := m.span("PokeByte", offset, 1); b != nil {
		b[0] = byte(val)
	}
}

// PokeShort stores the lowest 16 bits of val at offset.
func (m *Memory) PokeShort(offset, val int) {
	_, errU := safecast.Conv[uint16](val)
	_, errS := safecast.Conv[int16](val)
	warnTruncated("PokeShort", val, errU, errS)

	if b := m.span("PokeShort", offset, 2); b != nil {
		binary.LittleEndian.PutUint16(b, uint16(val))
	}
}

// PokeInt stores the lowest 32 bits of val at offset.
func (m *Memory) PokeInt(offset, val int) {
	_, errU := safecast.Conv[uint32](val)
	_, errS := safecast.Conv[int32](val)
	warnTruncated("PokeInt", val, errU, errS)

	if b := m.span("PokeInt", offset, 4); b != nil {
		binary.LittleEndian.PutUint32(b, uint32(val))
	}
}

// PokeFloat stores val as a 32 bit float at offset.
func (m *Memory) PokeFloat(offset int, val float64) {
	if b := m.span("PokeFloat", offset, 4); b != nil {
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(val)))
	}
}

// PokeString stores val followed by a NUL byte at offset. Nothing is written
// if the string doesn't fit.
func (m *Memory) PokeString(offset int, val string) {
	if b := m.span("PokeString", offset, len(val)+1); b != nil {
		copy(b, val)
		b[len(val)] = 0
	}
}

// a value is only reported when it fits neither the signed nor the unsigned
// type of the target width.
func warnTruncated(op string, val int, errU, errS error) {
	if errU != nil && errS != nil {
		logger.Debug(op+": value truncated", "value", val, "error", errU)
	}
}
