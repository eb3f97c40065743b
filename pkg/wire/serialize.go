package wire

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Serializable is the symmetric contract every wire record implements.
// Serialize and Deserialize must be exact inverses: for every value v,
// decoding the encoding of v reproduces v. A record's encoding is the
// concatenation of its fields' encodings in declared order, with no implicit
// length prefix of its own.
type Serializable interface {
	Serialize(b *Buffer) error
	Deserialize(b *Buffer) error
}

// maxPrealloc caps the capacity handed to make() before elements are read,
// so a hostile length prefix cannot force a huge upfront allocation. The
// slice still grows to the claimed count if the data really is there.
const maxPrealloc = 4096

// Encode serializes v into a fresh buffer and returns the bytes.
func Encode(v Serializable) ([]byte, error) {
	b := NewBuffer()
	if err := v.Serialize(b); err != nil {
		return nil, err
	}
	return b.TakeAndClear(), nil
}

// Decode deserializes v from p. Trailing bytes after the value are not an
// error; the caller owns any framing above the value itself.
func Decode(p []byte, v Serializable) error {
	return v.Deserialize(NewBufferBytes(p))
}

// WriteString appends a CompactSize length followed by the raw bytes of s,
// with no terminator and no escaping.
func WriteString(b *Buffer, s string) error {
	if err := WriteCompactSize(b, uint64(len(s))); err != nil {
		return err
	}
	b.AppendString(s)
	return nil
}

// ReadString decodes a CompactSize-prefixed string.
func ReadString(b *Buffer) (string, error) {
	p, err := readLengthPrefixed(b)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

// WriteBytes appends a CompactSize length followed by the raw bytes of p.
func WriteBytes(b *Buffer, p []byte) error {
	if err := WriteCompactSize(b, uint64(len(p))); err != nil {
		return err
	}
	b.Append(p)
	return nil
}

// ReadBytes decodes a CompactSize-prefixed byte run into freshly owned
// storage.
func ReadBytes(b *Buffer) ([]byte, error) {
	p, err := readLengthPrefixed(b)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

func readLengthPrefixed(b *Buffer) ([]byte, error) {
	n, err := ReadCompactSize(b)
	if err != nil {
		return nil, err
	}
	if n > uint64(b.Remaining()) {
		return nil, errors.Wrapf(ErrInsufficientData, "length prefix %d with %d bytes unread", n, b.Remaining())
	}
	return b.Read(int(n))
}

// WriteSeq appends a CompactSize element count followed by each element in
// order, encoded by elem.
func WriteSeq[T any](b *Buffer, items []T, elem func(*Buffer, T) error) error {
	if err := WriteCompactSize(b, uint64(len(items))); err != nil {
		return err
	}
	for i := range items {
		if err := elem(b, items[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadSeq decodes a CompactSize-counted sequence. A claimed count larger
// than the number of unread bytes fails up front with ErrInsufficientData
// (every element encoding occupies at least one byte); element decode errors
// propagate as-is.
func ReadSeq[T any](b *Buffer, elem func(*Buffer) (T, error)) ([]T, error) {
	n, err := seqCount(b)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, min(n, maxPrealloc))
	for i := uint64(0); i < n; i++ {
		v, err := elem(b)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteList appends a CompactSize count followed by each record's own
// encoding, for element types implementing Serializable on their pointer.
func WriteList[T any, PT interface {
	*T
	Serializable
}](b *Buffer, items []T) error {
	if err := WriteCompactSize(b, uint64(len(items))); err != nil {
		return err
	}
	for i := range items {
		if err := PT(&items[i]).Serialize(b); err != nil {
			return err
		}
	}
	return nil
}

// ReadList decodes a CompactSize-counted sequence of records.
func ReadList[T any, PT interface {
	*T
	Serializable
}](b *Buffer) ([]T, error) {
	return ReadSeq(b, func(b *Buffer) (T, error) {
		var v T
		err := PT(&v).Deserialize(b)
		return v, err
	})
}

// WriteMap appends a CompactSize entry count followed by key/value pairs in
// ascending key order. Sorting makes the encoding canonical: the same
// logical map produces the same bytes in every process, which unordered
// iteration would not guarantee.
func WriteMap[K constraints.Ordered, V any](b *Buffer, m map[K]V, key func(*Buffer, K) error, val func(*Buffer, V) error) error {
	if err := WriteCompactSize(b, uint64(len(m))); err != nil {
		return err
	}
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		if err := key(b, k); err != nil {
			return err
		}
		if err := val(b, m[k]); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap decodes a CompactSize-counted map, inserting entries in the order
// read.
func ReadMap[K comparable, V any](b *Buffer, key func(*Buffer) (K, error), val func(*Buffer) (V, error)) (map[K]V, error) {
	n, err := seqCount(b)
	if err != nil {
		return nil, err
	}
	m := make(map[K]V, min(n, maxPrealloc))
	for i := uint64(0); i < n; i++ {
		k, err := key(b)
		if err != nil {
			return nil, err
		}
		v, err := val(b)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// WriteSet appends a CompactSize member count followed by the members in
// ascending order, for the same canonical-bytes reason as WriteMap.
func WriteSet[K constraints.Ordered](b *Buffer, s map[K]struct{}, key func(*Buffer, K) error) error {
	if err := WriteCompactSize(b, uint64(len(s))); err != nil {
		return err
	}
	keys := maps.Keys(s)
	slices.Sort(keys)
	for _, k := range keys {
		if err := key(b, k); err != nil {
			return err
		}
	}
	return nil
}

// ReadSet decodes a CompactSize-counted set.
func ReadSet[K comparable](b *Buffer, key func(*Buffer) (K, error)) (map[K]struct{}, error) {
	n, err := seqCount(b)
	if err != nil {
		return nil, err
	}
	s := make(map[K]struct{}, min(n, maxPrealloc))
	for i := uint64(0); i < n; i++ {
		k, err := key(b)
		if err != nil {
			return nil, err
		}
		s[k] = struct{}{}
	}
	return s, nil
}

// WriteOption appends a presence byte, then the value's encoding only when v
// is non-nil.
func WriteOption[T any](b *Buffer, v *T, elem func(*Buffer, T) error) error {
	if v == nil {
		b.AppendByte(0)
		return nil
	}
	b.AppendByte(1)
	return elem(b, *v)
}

// ReadOption decodes an optional value. The presence byte must be exactly 0
// or 1; anything else fails with ErrTypeMismatch rather than being treated
// permissively as present.
func ReadOption[T any](b *Buffer, elem func(*Buffer) (T, error)) (*T, error) {
	c, err := b.ReadByte()
	if err != nil {
		return nil, err
	}
	switch c {
	case 0:
		return nil, nil
	case 1:
		v, err := elem(b)
		if err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, errors.Wrapf(ErrTypeMismatch, "presence byte %#02x", c)
	}
}

func seqCount(b *Buffer) (uint64, error) {
	n, err := ReadCompactSize(b)
	if err != nil {
		return 0, err
	}
	if n > uint64(b.Remaining()) {
		return 0, errors.Wrapf(ErrInsufficientData, "count %d with %d bytes unread", n, b.Remaining())
	}
	return n, nil
}

func min(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
