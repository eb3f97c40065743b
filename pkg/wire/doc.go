// Package wire implements the consensus-critical binary serialization used
// across the node: every peer message and every stored record passes through
// these encoders, and a single diverging byte changes a hash and forks the
// chain. The package therefore favors exactness over convenience; nothing
// here is best-effort.
//
// # Layers
//
// Buffer is the substrate: a growable contiguous byte arena with an
// independent read cursor, supporting insertion and erasure at arbitrary
// offsets as well as the usual append/read operations. Fixed-width integers,
// booleans and IEEE-754 floats encode little-endian directly on the Buffer.
//
// Two variable-length integer encodings sit above that:
//
//   - VarInt (WriteVarUint/ReadVarUint and the generic WriteVarInt/ReadVarInt)
//     encodes an arbitrary 64-bit magnitude in MSB-first base-128 groups with
//     the subtract-one rule that makes every byte sequence decode to a
//     distinct value. It is used for general magnitudes, never for lengths.
//
//   - CompactSize (WriteCompactSize/ReadCompactSize) is the self-describing
//     length prefix used for every collection and string length. Decoding
//     rejects non-minimal encodings and any value above the configured
//     ceiling; encoding refuses values above the ceiling outright.
//
// Composite dispatch composes those layers for strings, sequences, maps,
// sets, optionals and user-defined records. A record type participates by
// implementing Serializable; its encoding is the concatenation of its fields'
// encodings in declared order, which makes field order part of the wire
// contract.
//
// # Size calculation
//
// A Buffer created with NewSizeCounter runs every append through the same
// dispatch path but only accumulates lengths, so SizeOf(v) agrees with the
// byte length of an actual encoding by construction rather than by a second,
// parallel implementation.
//
// # Limits
//
// The CompactSize ceiling is policy, not protocol: it is carried by the
// Buffer (NewBufferLimit) so the embedding system decides the largest legal
// message or collection. NewBuffer uses DefaultMaxSize, the classic 32 MiB
// protocol ceiling.
//
// # Errors
//
// Failures are reported as wrapped sentinel errors: ErrInsufficientData,
// ErrOverflow, ErrNonCanonical, ErrSizeTooLarge and ErrTypeMismatch. Match
// them with errors.Is. No operation retries or swallows an error; a failed
// decode aborts the value being decoded.
//
// # Concurrency
//
// A Buffer carries no synchronization and must not be mutated concurrently.
// Callers that produce messages on one goroutine and consume them on another
// should hand off the built bytes with TakeAndClear rather than share the
// Buffer itself.
package wire
