// Package buffer implements the cursor-based, big-endian wire buffer used
// to encode and decode every packet on the wire. It mirrors the original
// client's Buffer type: a growable byte slice with a read/write cursor,
// plus the finalize/resize pair that stitches the 5-byte frame header
// (4-byte length, 1-byte packet id) around a packet's payload.
package buffer

import (
	"encoding/binary"
	"errors"
	"math"
)

// HeaderSize is the length of the frame header: a 4-byte big-endian total
// length (including the header itself) followed by a 1-byte packet id.
const HeaderSize = 5

// ErrShortBuffer is returned by any read that would run past the end of
// the buffer's data.
var ErrShortBuffer = errors.New("buffer: short buffer")

// Buffer is a big-endian byte buffer with an explicit cursor, matching the
// wire protocol's framing and primitive encodings.
type Buffer struct {
	Data  []byte
	Index int
}

// New returns an empty buffer positioned at offset 0.
func New() *Buffer {
	return &Buffer{Data: make([]byte, 0, 64)}
}

// NewWithHeader returns a buffer pre-padded with HeaderSize zero bytes and
// the cursor advanced past them, ready for payload writes before a later
// Finalize fills the header in.
func NewWithHeader() *Buffer {
	b := &Buffer{Data: make([]byte, HeaderSize, 64)}
	b.Index = HeaderSize
	return b
}

// NewFromBytes wraps an existing byte slice for reading, cursor at 0.
func NewFromBytes(data []byte) *Buffer {
	return &Buffer{Data: data}
}

// Reset empties the buffer and rewinds the cursor to 0.
func (b *Buffer) Reset() {
	b.Data = b.Data[:0]
	b.Index = 0
}

// Remaining reports how many unread bytes are left after the cursor.
func (b *Buffer) Remaining() int {
	return len(b.Data) - b.Index
}

// Advance moves the cursor forward n bytes without reading.
func (b *Buffer) Advance(n int) {
	b.Index += n
}

func (b *Buffer) grow(n int) {
	want := b.Index + n
	if want <= len(b.Data) {
		return
	}
	if want > cap(b.Data) {
		grown := make([]byte, want)
		copy(grown, b.Data)
		b.Data = grown
	} else {
		b.Data = b.Data[:want]
	}
}

func (b *Buffer) ensure(n int) error {
	if b.Index+n > len(b.Data) {
		return ErrShortBuffer
	}
	return nil
}

// Finalize prepends the 4-byte big-endian total length (including the
// 5-byte header) and the 1-byte packet id, turning the buffer's current
// contents into a complete outbound frame. Only valid on buffers built
// with NewWithHeader.
func (b *Buffer) Finalize(packetID byte) []byte {
	total := len(b.Data)
	binary.BigEndian.PutUint32(b.Data[0:4], uint32(total))
	b.Data[4] = packetID
	return b.Data
}

// Resize reads the 4-byte big-endian length prefix at offset 0 and grows
// the backing slice to that length, preserving the first HeaderSize bytes
// already present. Used while assembling an inbound frame incrementally as
// more bytes arrive from the socket.
func (b *Buffer) Resize() (int, error) {
	if len(b.Data) < 4 {
		return 0, ErrShortBuffer
	}
	total := int(binary.BigEndian.Uint32(b.Data[0:4]))
	if total < HeaderSize {
		return 0, ErrShortBuffer
	}
	if total > len(b.Data) {
		grown := make([]byte, total)
		copy(grown, b.Data)
		b.Data = grown
	}
	return total, nil
}

// --- unsigned reads/writes ---

func (b *Buffer) WriteU8(v uint8) {
	b.grow(1)
	b.Data[b.Index] = v
	b.Index++
}

func (b *Buffer) ReadU8() (uint8, error) {
	if err := b.ensure(1); err != nil {
		return 0, err
	}
	v := b.Data[b.Index]
	b.Index++
	return v, nil
}

func (b *Buffer) WriteU16(v uint16) {
	b.grow(2)
	binary.BigEndian.PutUint16(b.Data[b.Index:], v)
	b.Index += 2
}

func (b *Buffer) ReadU16() (uint16, error) {
	if err := b.ensure(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(b.Data[b.Index:])
	b.Index += 2
	return v, nil
}

func (b *Buffer) WriteU32(v uint32) {
	b.grow(4)
	binary.BigEndian.PutUint32(b.Data[b.Index:], v)
	b.Index += 4
}

func (b *Buffer) ReadU32() (uint32, error) {
	if err := b.ensure(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(b.Data[b.Index:])
	b.Index += 4
	return v, nil
}

func (b *Buffer) WriteU64(v uint64) {
	b.grow(8)
	binary.BigEndian.PutUint64(b.Data[b.Index:], v)
	b.Index += 8
}

func (b *Buffer) ReadU64() (uint64, error) {
	if err := b.ensure(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(b.Data[b.Index:])
	b.Index += 8
	return v, nil
}

// --- signed reads/writes ---

func (b *Buffer) WriteI8(v int8)   { b.WriteU8(uint8(v)) }
func (b *Buffer) ReadI8() (int8, error) {
	v, err := b.ReadU8()
	return int8(v), err
}

func (b *Buffer) WriteI16(v int16) { b.WriteU16(uint16(v)) }
func (b *Buffer) ReadI16() (int16, error) {
	v, err := b.ReadU16()
	return int16(v), err
}

func (b *Buffer) WriteI32(v int32) { b.WriteU32(uint32(v)) }
func (b *Buffer) ReadI32() (int32, error) {
	v, err := b.ReadU32()
	return int32(v), err
}

func (b *Buffer) WriteI64(v int64) { b.WriteU64(uint64(v)) }
func (b *Buffer) ReadI64() (int64, error) {
	v, err := b.ReadU64()
	return int64(v), err
}

// --- floats, bit-cast to their integer representation on the wire ---

func (b *Buffer) WriteF32(v float32) { b.WriteU32(math.Float32bits(v)) }
func (b *Buffer) ReadF32() (float32, error) {
	v, err := b.ReadU32()
	return math.Float32frombits(v), err
}

func (b *Buffer) WriteF64(v float64) { b.WriteU64(math.Float64bits(v)) }
func (b *Buffer) ReadF64() (float64, error) {
	v, err := b.ReadU64()
	return math.Float64frombits(v), err
}

// --- bool, string, bytes ---

func (b *Buffer) WriteBool(v bool) {
	if v {
		b.WriteU8(1)
	} else {
		b.WriteU8(0)
	}
}

func (b *Buffer) ReadBool() (bool, error) {
	v, err := b.ReadU8()
	return v != 0, err
}

// WriteString writes a u16-length-prefixed UTF-8 string, the encoding used
// by most short string fields (names, guids, gameIds).
func (b *Buffer) WriteString(s string) {
	raw := []byte(s)
	b.WriteU16(uint16(len(raw)))
	b.grow(len(raw))
	copy(b.Data[b.Index:], raw)
	b.Index += len(raw)
}

func (b *Buffer) ReadString() (string, error) {
	n, err := b.ReadU16()
	if err != nil {
		return "", err
	}
	if err := b.ensure(int(n)); err != nil {
		return "", err
	}
	s := string(b.Data[b.Index : b.Index+int(n)])
	b.Index += int(n)
	return s, nil
}

// WriteUTFString writes a u32-length-prefixed UTF-8 string, used for long
// free-form text fields (chat messages, notifications).
func (b *Buffer) WriteUTFString(s string) {
	raw := []byte(s)
	b.WriteU32(uint32(len(raw)))
	b.grow(len(raw))
	copy(b.Data[b.Index:], raw)
	b.Index += len(raw)
}

func (b *Buffer) ReadUTFString() (string, error) {
	n, err := b.ReadU32()
	if err != nil {
		return "", err
	}
	if err := b.ensure(int(n)); err != nil {
		return "", err
	}
	s := string(b.Data[b.Index : b.Index+int(n)])
	b.Index += int(n)
	return s, nil
}

// WriteBytes appends raw bytes without any length prefix.
func (b *Buffer) WriteBytes(raw []byte) {
	b.grow(len(raw))
	copy(b.Data[b.Index:], raw)
	b.Index += len(raw)
}

// ReadBytes reads n raw bytes without expecting a length prefix.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if err := b.ensure(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b.Data[b.Index:b.Index+n])
	b.Index += n
	return out, nil
}
