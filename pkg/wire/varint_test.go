package wire

import (
	"encoding/hex"
	"errors"
	"math"
	"testing"
)

func TestVarUintBitPatterns(t *testing.T) {
	testCases := []struct {
		value uint64
		hex   string
	}{
		{0, "00"},
		{0x7f, "7f"},
		{0x80, "8000"},
		{0x1234, "a334"},
		{0xffff, "82fe7f"},
		{0x123456, "c7e756"},
		{0x80123456, "86ffc7e756"},
		{0xffffffff, "8efefefe7f"},
		{0x7fffffffffffffff, "fefefefefefefefe7f"},
		{0xffffffffffffffff, "80fefefefefefefefe7f"},
	}

	for _, tc := range testCases {
		b := NewBuffer()
		WriteVarUint(b, tc.value)
		if got := hex.EncodeToString(b.Bytes()); got != tc.hex {
			t.Errorf("encode %#x = %s, want %s", tc.value, got, tc.hex)
		}
		if got := VarUintLen(tc.value); got != len(tc.hex)/2 {
			t.Errorf("VarUintLen(%#x) = %d, want %d", tc.value, got, len(tc.hex)/2)
		}

		raw, err := hex.DecodeString(tc.hex)
		if err != nil {
			t.Fatal(err)
		}
		v, err := ReadVarUint(NewBufferBytes(raw))
		if err != nil {
			t.Fatalf("decode %s: %v", tc.hex, err)
		}
		if v != tc.value {
			t.Errorf("decode %s = %#x, want %#x", tc.hex, v, tc.value)
		}
	}
}

func TestVarUintRoundTrip(t *testing.T) {
	b := NewBuffer()
	var size uint64

	for i := uint64(0); i < 100000; i++ {
		WriteVarUint(b, i)
		size += uint64(VarUintLen(i))
		if size != uint64(b.Len()) {
			t.Fatalf("size accumulation diverged at %d: %d vs %d", i, size, b.Len())
		}
	}
	for i := uint64(0); i < 100000000000; i += 999999937 {
		WriteVarUint(b, i)
		size += uint64(VarUintLen(i))
		if size != uint64(b.Len()) {
			t.Fatalf("size accumulation diverged at %d: %d vs %d", i, size, b.Len())
		}
	}

	for i := uint64(0); i < 100000; i++ {
		v, err := ReadVarUint(b)
		if err != nil {
			t.Fatalf("decode at %d: %v", i, err)
		}
		if v != i {
			t.Fatalf("decoded %d, want %d", v, i)
		}
	}
	for i := uint64(0); i < 100000000000; i += 999999937 {
		v, err := ReadVarUint(b)
		if err != nil {
			t.Fatalf("decode at %d: %v", i, err)
		}
		if v != i {
			t.Fatalf("decoded %d, want %d", v, i)
		}
	}
	if b.Remaining() != 0 {
		t.Errorf("%d bytes left unread", b.Remaining())
	}
}

func TestVarIntWidthLimits(t *testing.T) {
	b := NewBuffer()

	roundTrip := func(write func(), read func() error) {
		b.Clear()
		write()
		if err := read(); err != nil {
			t.Fatal(err)
		}
	}

	roundTrip(func() { WriteVarInt(b, uint8(math.MaxUint8)) }, func() error {
		v, err := ReadVarInt[uint8](b)
		if err == nil && v != math.MaxUint8 {
			t.Errorf("uint8 max round trip = %d", v)
		}
		return err
	})
	roundTrip(func() { WriteVarInt(b, int8(math.MaxInt8)) }, func() error {
		v, err := ReadVarInt[int8](b)
		if err == nil && v != math.MaxInt8 {
			t.Errorf("int8 max round trip = %d", v)
		}
		return err
	})
	roundTrip(func() { WriteVarInt(b, uint16(math.MaxUint16)) }, func() error {
		v, err := ReadVarInt[uint16](b)
		if err == nil && v != math.MaxUint16 {
			t.Errorf("uint16 max round trip = %d", v)
		}
		return err
	})
	roundTrip(func() { WriteVarInt(b, int16(math.MaxInt16)) }, func() error {
		v, err := ReadVarInt[int16](b)
		if err == nil && v != math.MaxInt16 {
			t.Errorf("int16 max round trip = %d", v)
		}
		return err
	})
	roundTrip(func() { WriteVarInt(b, uint32(math.MaxUint32)) }, func() error {
		v, err := ReadVarInt[uint32](b)
		if err == nil && v != math.MaxUint32 {
			t.Errorf("uint32 max round trip = %d", v)
		}
		return err
	})
	roundTrip(func() { WriteVarInt(b, int32(math.MaxInt32)) }, func() error {
		v, err := ReadVarInt[int32](b)
		if err == nil && v != math.MaxInt32 {
			t.Errorf("int32 max round trip = %d", v)
		}
		return err
	})
	roundTrip(func() { WriteVarInt(b, uint64(math.MaxUint64)) }, func() error {
		v, err := ReadVarInt[uint64](b)
		if err == nil && v != math.MaxUint64 {
			t.Errorf("uint64 max round trip = %d", v)
		}
		return err
	})
	roundTrip(func() { WriteVarInt(b, int64(math.MaxInt64)) }, func() error {
		v, err := ReadVarInt[int64](b)
		if err == nil && v != math.MaxInt64 {
			t.Errorf("int64 max round trip = %d", v)
		}
		return err
	})
}

func TestVarIntNegativeNativeWidth(t *testing.T) {
	// Signed values carry their sign through the native width: int16(-1)
	// travels as the 16-bit pattern 0xffff, not a 64-bit sign extension.
	b := NewBuffer()
	WriteVarInt(b, int16(-1))
	if got := hex.EncodeToString(b.Bytes()); got != "82fe7f" {
		t.Errorf("int16(-1) = %s, want 82fe7f", got)
	}
	v, err := ReadVarInt[int16](NewBufferBytes(b.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if v != -1 {
		t.Errorf("round trip int16(-1) = %d", v)
	}
}

func TestVarIntDecodeOverflow(t *testing.T) {
	// A magnitude that fits no integral type at all.
	long := make([]byte, 64)
	for i := range long {
		long[i] = 0x80
	}
	if _, err := ReadVarInt[uint32](NewBufferBytes(long)); !errors.Is(err, ErrOverflow) {
		t.Errorf("64 continuation bytes: %v, want ErrOverflow", err)
	}

	// A magnitude too large for the requested narrower type.
	wide := []byte{0xff, 0xff, 0xff, 0xff}
	if _, err := ReadVarInt[uint16](NewBufferBytes(wide)); !errors.Is(err, ErrOverflow) {
		t.Errorf("wide varint into uint16: %v, want ErrOverflow", err)
	}
	// The same bytes fit a 64-bit target.
	if _, err := ReadVarInt[uint64](NewBufferBytes(wide)); err != nil {
		t.Errorf("wide varint into uint64: %v", err)
	}
}

func TestVarUintTruncated(t *testing.T) {
	// Continuation bit set on the final byte means the stream ended
	// mid-value.
	if _, err := ReadVarUint(NewBufferBytes([]byte{0x80})); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("truncated varint: %v, want ErrInsufficientData", err)
	}
}
