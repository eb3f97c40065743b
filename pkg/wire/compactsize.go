package wire

import "github.com/cockroachdb/errors"

// CompactSize is the canonical length-prefix encoding used for every
// collection, string and record-length field:
//
//	n < 0xfd              one byte, the value itself
//	0xfd <= n <= 0xffff   0xfd + 2-byte little-endian n
//	0x10000 <= n <= 2^32-1  0xfe + 4-byte little-endian n
//	larger                0xff + 8-byte little-endian n
//
// Every valid encoding is the shortest one for its value; decoders reject
// the rest. Both directions enforce the buffer's configured ceiling, since
// not every representable 64-bit value is a legal size.

// WriteCompactSize appends the CompactSize encoding of n, failing with
// ErrSizeTooLarge when n exceeds the buffer's ceiling.
func WriteCompactSize(b *Buffer, n uint64) error {
	if n > b.maxSize {
		return errors.Wrapf(ErrSizeTooLarge, "write compact size %d, maximum %d", n, b.maxSize)
	}
	switch {
	case n < 0xfd:
		b.AppendByte(byte(n))
	case n <= 0xffff:
		b.AppendByte(0xfd)
		b.AppendUint16(uint16(n))
	case n <= 0xffffffff:
		b.AppendByte(0xfe)
		b.AppendUint32(uint32(n))
	default:
		b.AppendByte(0xff)
		b.AppendUint64(n)
	}
	return nil
}

// ReadCompactSize decodes a CompactSize, rejecting non-minimal encodings
// with ErrNonCanonical and values above the buffer's ceiling with
// ErrSizeTooLarge.
func ReadCompactSize(b *Buffer) (uint64, error) {
	c, err := b.ReadByte()
	if err != nil {
		return 0, err
	}
	var n uint64
	switch c {
	case 0xfd:
		v, err := b.ReadUint16()
		if err != nil {
			return 0, err
		}
		if v < 0xfd {
			return 0, errors.Wrapf(ErrNonCanonical, "value %d encoded with 0xfd prefix", v)
		}
		n = uint64(v)
	case 0xfe:
		v, err := b.ReadUint32()
		if err != nil {
			return 0, err
		}
		if v < 0x10000 {
			return 0, errors.Wrapf(ErrNonCanonical, "value %d encoded with 0xfe prefix", v)
		}
		n = uint64(v)
	case 0xff:
		v, err := b.ReadUint64()
		if err != nil {
			return 0, err
		}
		if v < 0x100000000 {
			return 0, errors.Wrapf(ErrNonCanonical, "value %d encoded with 0xff prefix", v)
		}
		n = v
	default:
		n = uint64(c)
	}
	if n > b.maxSize {
		return 0, errors.Wrapf(ErrSizeTooLarge, "read compact size %d, maximum %d", n, b.maxSize)
	}
	return n, nil
}

// CompactSizeLen reports the encoded length of n in bytes.
func CompactSizeLen(n uint64) int {
	switch {
	case n < 0xfd:
		return 1
	case n <= 0xffff:
		return 3
	case n <= 0xffffffff:
		return 5
	default:
		return 9
	}
}
