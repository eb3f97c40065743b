package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestPrimitiveWidths(t *testing.T) {
	b := NewBuffer()

	b.AppendUint8(1)
	b.AppendInt8(-1)
	b.AppendUint16(1)
	b.AppendInt16(-1)
	b.AppendUint32(1)
	b.AppendInt32(-1)
	b.AppendUint64(1)
	b.AppendInt64(-1)
	b.AppendFloat32(0)
	b.AppendFloat64(0)
	b.AppendBool(true)

	want := 1 + 1 + 2 + 2 + 4 + 4 + 8 + 8 + 4 + 8 + 1
	if b.Len() != want {
		t.Errorf("total encoded size = %d, want %d", b.Len(), want)
	}
}

func TestPrimitiveLittleEndian(t *testing.T) {
	b := NewBuffer()
	b.AppendUint16(0x0102)
	b.AppendUint32(0x01020304)
	b.AppendUint64(0x0102030405060708)

	want := []byte{
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("encoded = % x, want % x", b.Bytes(), want)
	}
}

func TestFloatBitPatterns(t *testing.T) {
	// Values chosen to map unambiguously to binary floating point.
	testCases := []struct {
		value float32
		bits  uint32
	}{
		{0.0, 0x00000000},
		{0.5, 0x3f000000},
		{1.0, 0x3f800000},
		{2.0, 0x40000000},
		{4.0, 0x40800000},
		{785.066650390625, 0x44444444},
	}

	for _, tc := range testCases {
		b := NewBuffer()
		b.AppendFloat32(tc.value)
		got, err := NewBufferBytes(b.Bytes()).ReadUint32()
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.bits {
			t.Errorf("float32(%v) bits = %#08x, want %#08x", tc.value, got, tc.bits)
		}

		back, err := NewBufferBytes(b.Bytes()).ReadFloat32()
		if err != nil {
			t.Fatal(err)
		}
		if back != tc.value {
			t.Errorf("float32 round trip = %v, want %v", back, tc.value)
		}
	}
}

func TestDoubleBitPatterns(t *testing.T) {
	testCases := []struct {
		value float64
		bits  uint64
	}{
		{0.0, 0x0000000000000000},
		{0.5, 0x3fe0000000000000},
		{1.0, 0x3ff0000000000000},
		{2.0, 0x4000000000000000},
		{4.0, 0x4010000000000000},
		{785.066650390625, 0x4088888880000000},
	}

	for _, tc := range testCases {
		b := NewBuffer()
		b.AppendFloat64(tc.value)
		got, err := NewBufferBytes(b.Bytes()).ReadUint64()
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.bits {
			t.Errorf("float64(%v) bits = %#016x, want %#016x", tc.value, got, tc.bits)
		}

		back, err := NewBufferBytes(b.Bytes()).ReadFloat64()
		if err != nil {
			t.Fatal(err)
		}
		if back != tc.value {
			t.Errorf("float64 round trip = %v, want %v", back, tc.value)
		}
	}
}

func TestPrimitiveRoundTrip(t *testing.T) {
	b := NewBuffer()
	b.AppendUint8(0xab)
	b.AppendInt8(-5)
	b.AppendUint16(0xbeef)
	b.AppendInt16(-12345)
	b.AppendUint32(0xdeadbeef)
	b.AppendInt32(math.MinInt32)
	b.AppendUint64(math.MaxUint64)
	b.AppendInt64(math.MinInt64)
	b.AppendBool(true)
	b.AppendBool(false)
	b.AppendFloat32(float32(math.Pi))
	b.AppendFloat64(math.E)

	if v, err := b.ReadUint8(); err != nil || v != 0xab {
		t.Errorf("uint8 = %v, %v", v, err)
	}
	if v, err := b.ReadInt8(); err != nil || v != -5 {
		t.Errorf("int8 = %v, %v", v, err)
	}
	if v, err := b.ReadUint16(); err != nil || v != 0xbeef {
		t.Errorf("uint16 = %v, %v", v, err)
	}
	if v, err := b.ReadInt16(); err != nil || v != -12345 {
		t.Errorf("int16 = %v, %v", v, err)
	}
	if v, err := b.ReadUint32(); err != nil || v != 0xdeadbeef {
		t.Errorf("uint32 = %v, %v", v, err)
	}
	if v, err := b.ReadInt32(); err != nil || v != math.MinInt32 {
		t.Errorf("int32 = %v, %v", v, err)
	}
	if v, err := b.ReadUint64(); err != nil || v != math.MaxUint64 {
		t.Errorf("uint64 = %v, %v", v, err)
	}
	if v, err := b.ReadInt64(); err != nil || v != math.MinInt64 {
		t.Errorf("int64 = %v, %v", v, err)
	}
	if v, err := b.ReadBool(); err != nil || v != true {
		t.Errorf("bool = %v, %v", v, err)
	}
	if v, err := b.ReadBool(); err != nil || v != false {
		t.Errorf("bool = %v, %v", v, err)
	}
	if v, err := b.ReadFloat32(); err != nil || v != float32(math.Pi) {
		t.Errorf("float32 = %v, %v", v, err)
	}
	if v, err := b.ReadFloat64(); err != nil || v != math.E {
		t.Errorf("float64 = %v, %v", v, err)
	}
	if b.Remaining() != 0 {
		t.Errorf("%d bytes left unread", b.Remaining())
	}
}

func TestPrimitiveReadUnderflow(t *testing.T) {
	b := NewBufferBytes([]byte{1, 2, 3})
	if _, err := b.ReadUint32(); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("uint32 from 3 bytes: %v, want ErrInsufficientData", err)
	}
}
