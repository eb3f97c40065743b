package wire

import (
	"encoding/binary"
	"math"
)

// Fixed-width primitives encode little-endian at exactly their natural
// width. Floats travel as the little-endian bytes of their IEEE-754 bit
// pattern, never as text. Encoding cannot fail; decoding fails only on
// buffer underflow.

// AppendUint8 appends v as one byte.
func (b *Buffer) AppendUint8(v uint8) { b.AppendByte(v) }

// AppendUint16 appends v as 2 little-endian bytes.
func (b *Buffer) AppendUint16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.Append(tmp[:])
}

// AppendUint32 appends v as 4 little-endian bytes.
func (b *Buffer) AppendUint32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.Append(tmp[:])
}

// AppendUint64 appends v as 8 little-endian bytes.
func (b *Buffer) AppendUint64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.Append(tmp[:])
}

// AppendInt8 appends v as one byte.
func (b *Buffer) AppendInt8(v int8) { b.AppendByte(byte(v)) }

// AppendInt16 appends v as 2 little-endian bytes.
func (b *Buffer) AppendInt16(v int16) { b.AppendUint16(uint16(v)) }

// AppendInt32 appends v as 4 little-endian bytes.
func (b *Buffer) AppendInt32(v int32) { b.AppendUint32(uint32(v)) }

// AppendInt64 appends v as 8 little-endian bytes.
func (b *Buffer) AppendInt64(v int64) { b.AppendUint64(uint64(v)) }

// AppendBool appends a single byte, 1 for true and 0 for false.
func (b *Buffer) AppendBool(v bool) {
	if v {
		b.AppendByte(1)
	} else {
		b.AppendByte(0)
	}
}

// AppendFloat32 appends the IEEE-754 bit pattern of v as 4 little-endian
// bytes.
func (b *Buffer) AppendFloat32(v float32) { b.AppendUint32(math.Float32bits(v)) }

// AppendFloat64 appends the IEEE-754 bit pattern of v as 8 little-endian
// bytes.
func (b *Buffer) AppendFloat64(v float64) { b.AppendUint64(math.Float64bits(v)) }

// ReadUint8 reads one byte.
func (b *Buffer) ReadUint8() (uint8, error) { return b.ReadByte() }

// ReadUint16 reads 2 little-endian bytes.
func (b *Buffer) ReadUint16() (uint16, error) {
	p, err := b.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

// ReadUint32 reads 4 little-endian bytes.
func (b *Buffer) ReadUint32() (uint32, error) {
	p, err := b.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// ReadUint64 reads 8 little-endian bytes.
func (b *Buffer) ReadUint64() (uint64, error) {
	p, err := b.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(p), nil
}

// ReadInt8 reads one byte.
func (b *Buffer) ReadInt8() (int8, error) {
	c, err := b.ReadByte()
	return int8(c), err
}

// ReadInt16 reads 2 little-endian bytes.
func (b *Buffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

// ReadInt32 reads 4 little-endian bytes.
func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads 8 little-endian bytes.
func (b *Buffer) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()
	return int64(v), err
}

// ReadBool reads one byte; any nonzero value decodes as true, matching the
// historical wire behavior for booleans.
func (b *Buffer) ReadBool() (bool, error) {
	c, err := b.ReadByte()
	return c != 0, err
}

// ReadFloat32 reads 4 little-endian bytes as an IEEE-754 bit pattern.
func (b *Buffer) ReadFloat32() (float32, error) {
	v, err := b.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads 8 little-endian bytes as an IEEE-754 bit pattern.
func (b *Buffer) ReadFloat64() (float64, error) {
	v, err := b.ReadUint64()
	return math.Float64frombits(v), err
}
