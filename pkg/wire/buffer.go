package wire

import (
	"github.com/cockroachdb/errors"
)

// DefaultMaxSize is the CompactSize ceiling used when the embedding system
// does not supply its own: 32 MiB, the classic protocol message limit.
const DefaultMaxSize = 0x02000000

// Buffer is a growable contiguous byte arena with an independent read
// cursor. It is the substrate every encoder writes into and every decoder
// reads from. A Buffer is owned by exactly one caller at a time and carries
// no internal locking.
//
// A Buffer also carries the configured CompactSize ceiling, the way the
// owning subsystem supplied it; see NewBufferLimit.
type Buffer struct {
	buf      []byte
	pos      int
	maxSize  uint64
	counting bool
	count    uint64
}

// NewBuffer returns an empty Buffer with the DefaultMaxSize ceiling.
func NewBuffer() *Buffer {
	return &Buffer{maxSize: DefaultMaxSize}
}

// NewBufferBytes returns a Buffer reading from p. The Buffer takes ownership
// of p; the caller must not mutate it afterwards.
func NewBufferBytes(p []byte) *Buffer {
	return &Buffer{buf: p, maxSize: DefaultMaxSize}
}

// NewBufferBytesLimit returns a Buffer reading from p with the CompactSize
// ceiling set to max. Ownership of p follows NewBufferBytes.
func NewBufferBytesLimit(p []byte, max uint64) *Buffer {
	return &Buffer{buf: p, maxSize: max}
}

// NewBufferLimit returns an empty Buffer whose CompactSize ceiling is max.
// The ceiling is policy owned by the embedding system, for example the
// largest message the peer protocol admits.
func NewBufferLimit(max uint64) *Buffer {
	return &Buffer{maxSize: max}
}

// NewSizeCounter returns a Buffer in counting mode: appends accumulate
// lengths without materializing bytes. Every Write* function runs the same
// code path against a counting Buffer, which is what keeps SizeOf and the
// real encoding in exact agreement.
func NewSizeCounter() *Buffer {
	return &Buffer{maxSize: DefaultMaxSize, counting: true}
}

// MaxSize reports the configured CompactSize ceiling.
func (b *Buffer) MaxSize() uint64 { return b.maxSize }

// Len reports the total number of bytes held, read and unread.
func (b *Buffer) Len() int { return len(b.buf) }

// Pos reports the read cursor position.
func (b *Buffer) Pos() int { return b.pos }

// Remaining reports how many bytes are left to read.
func (b *Buffer) Remaining() int { return len(b.buf) - b.pos }

// Bytes returns the full contents, read and unread. The slice aliases the
// buffer's storage and is invalidated by the next mutation.
func (b *Buffer) Bytes() []byte { return b.buf }

// Size reports the number of bytes appended so far. In counting mode this is
// the accumulated total; otherwise it equals Len.
func (b *Buffer) Size() uint64 {
	if b.counting {
		return b.count
	}
	return uint64(len(b.buf))
}

// Append adds p at the end of the buffer.
func (b *Buffer) Append(p []byte) {
	if b.counting {
		b.count += uint64(len(p))
		return
	}
	b.buf = append(b.buf, p...)
}

// AppendByte adds a single byte at the end of the buffer.
func (b *Buffer) AppendByte(c byte) {
	if b.counting {
		b.count++
		return
	}
	b.buf = append(b.buf, c)
}

// AppendString adds the raw bytes of s, with no length prefix.
func (b *Buffer) AppendString(s string) {
	if b.counting {
		b.count += uint64(len(s))
		return
	}
	b.buf = append(b.buf, s...)
}

// Insert places p at offset off, shifting everything at and after off
// rightwards. off may be 0, Len, or any interior position. If the read
// cursor sits at or after off it moves with the bytes it pointed at.
func (b *Buffer) Insert(off int, p []byte) error {
	if off < 0 || off > len(b.buf) {
		return errors.Wrapf(ErrBadOffset, "insert at %d, length %d", off, len(b.buf))
	}
	b.buf = append(b.buf, p...)
	copy(b.buf[off+len(p):], b.buf[off:])
	copy(b.buf[off:], p)
	if b.pos >= off {
		b.pos += len(p)
	}
	return nil
}

// Erase removes the bytes in [begin, end), shifting the tail leftwards. The
// read cursor keeps pointing at the same logical byte; if that byte was
// erased the cursor lands on the first byte after the erased range.
func (b *Buffer) Erase(begin, end int) error {
	if begin < 0 || end > len(b.buf) || begin > end {
		return errors.Wrapf(ErrBadOffset, "erase [%d, %d), length %d", begin, end, len(b.buf))
	}
	b.buf = append(b.buf[:begin], b.buf[end:]...)
	switch {
	case b.pos >= end:
		b.pos -= end - begin
	case b.pos > begin:
		b.pos = begin
	}
	return nil
}

// Read returns the next n unread bytes and advances the cursor past them.
// The returned slice aliases the buffer's storage and is invalidated by the
// next mutation. Fails with ErrInsufficientData when fewer than n bytes
// remain; no partial data is ever returned.
func (b *Buffer) Read(n int) ([]byte, error) {
	if n < 0 || n > len(b.buf)-b.pos {
		return nil, errors.Wrapf(ErrInsufficientData, "read %d bytes with %d unread", n, len(b.buf)-b.pos)
	}
	p := b.buf[b.pos : b.pos+n]
	b.pos += n
	return p, nil
}

// ReadByte returns the next unread byte and advances the cursor.
func (b *Buffer) ReadByte() (byte, error) {
	if b.pos >= len(b.buf) {
		return 0, errors.Wrap(ErrInsufficientData, "read 1 byte with 0 unread")
	}
	c := b.buf[b.pos]
	b.pos++
	return c, nil
}

// Peek returns the next n unread bytes without advancing the cursor.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if n < 0 || n > len(b.buf)-b.pos {
		return nil, errors.Wrapf(ErrInsufficientData, "peek %d bytes with %d unread", n, len(b.buf)-b.pos)
	}
	return b.buf[b.pos : b.pos+n], nil
}

// Clear truncates the buffer to empty and resets the read cursor, keeping
// the allocated storage for reuse.
func (b *Buffer) Clear() {
	b.buf = b.buf[:0]
	b.pos = 0
	b.count = 0
}

// TakeAndClear hands off the accumulated bytes without copying and leaves
// the buffer empty. Used to pass a fully built message to its consumer.
func (b *Buffer) TakeAndClear() []byte {
	p := b.buf
	b.buf = nil
	b.pos = 0
	b.count = 0
	return p
}
