package wire

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// The VarInt encoding packs an unsigned 64-bit magnitude into MSB-first
// base-128 groups. Every group except the last carries a continuation bit,
// and each continued group is stored minus one, which removes the
// "leading zero group" redundancy: every byte sequence decodes to a distinct
// integer. It is used for arbitrary magnitudes; lengths use CompactSize.
//
// Reference bit patterns:
//
//	0          -> 00
//	0x7f       -> 7f
//	0x80       -> 80 00
//	0x1234     -> a3 34
//	0xffffffff -> 8e fe fe fe 7f

// WriteVarUint appends the VarInt encoding of v.
func WriteVarUint(b *Buffer, v uint64) {
	var tmp [10]byte
	i := len(tmp) - 1
	for {
		tmp[i] = byte(v & 0x7f)
		if i != len(tmp)-1 {
			tmp[i] |= 0x80
		}
		if v <= 0x7f {
			break
		}
		v = v>>7 - 1
		i--
	}
	b.Append(tmp[i:])
}

// ReadVarUint decodes a VarInt magnitude. Fails with ErrOverflow when the
// encoded value does not fit 64 bits and with ErrInsufficientData when the
// buffer ends mid-group.
func ReadVarUint(b *Buffer) (uint64, error) {
	var n uint64
	for {
		c, err := b.ReadByte()
		if err != nil {
			return 0, err
		}
		if n > math.MaxUint64>>7 {
			return 0, errors.Wrap(ErrOverflow, "varint exceeds 64 bits")
		}
		n = n<<7 | uint64(c&0x7f)
		if c&0x80 == 0 {
			return n, nil
		}
		if n == math.MaxUint64 {
			return 0, errors.Wrap(ErrOverflow, "varint exceeds 64 bits")
		}
		n++
	}
}

// WriteVarInt appends the VarInt encoding of v for any integer type. Signed
// values pass through the unsigned bit pattern of their own width, so the
// sign is carried by the native width rather than zig-zag remapped: the
// caller's choice of type is part of the wire contract.
func WriteVarInt[T constraints.Integer](b *Buffer, v T) {
	WriteVarUint(b, varUintBits(v))
}

// ReadVarInt decodes a VarInt into the requested integer type, failing with
// ErrOverflow when the magnitude does not fit that type's width.
func ReadVarInt[T constraints.Integer](b *Buffer) (T, error) {
	n, err := ReadVarUint(b)
	if err != nil {
		return 0, err
	}
	var zero T
	if bits := uint(unsafe.Sizeof(zero)) * 8; bits < 64 {
		if max := uint64(1)<<bits - 1; n > max {
			return 0, errors.Wrapf(ErrOverflow, "varint %#x exceeds %d-bit target", n, bits)
		}
	}
	return T(n), nil
}

// VarUintLen reports the encoded length of v in bytes without encoding it.
func VarUintLen(v uint64) int {
	n := 1
	for v > 0x7f {
		v = v>>7 - 1
		n++
	}
	return n
}

// VarIntLen reports the encoded length of v in bytes for any integer type.
func VarIntLen[T constraints.Integer](v T) int {
	return VarUintLen(varUintBits(v))
}

// varUintBits widens v to uint64 through the unsigned type of v's own
// width, so negative values keep their native-width bit pattern instead of
// sign-extending to 64 bits.
func varUintBits[T constraints.Integer](v T) uint64 {
	switch unsafe.Sizeof(v) {
	case 1:
		return uint64(uint8(v))
	case 2:
		return uint64(uint16(v))
	case 4:
		return uint64(uint32(v))
	default:
		return uint64(v)
	}
}
