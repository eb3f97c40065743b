package records

import (
	"github.com/skaldic/seidr/pkg/wire"
)

// BlockHeaderSize is the fixed encoded length of a block header.
const BlockHeaderSize = 80

// BlockHeader is the 80-byte header layout: version, previous block hash,
// merkle root, timestamp, difficulty bits, nonce.
type BlockHeader struct {
	Version    int32
	PrevBlock  Hash
	MerkleRoot Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

func (h *BlockHeader) Serialize(b *wire.Buffer) error {
	b.AppendInt32(h.Version)
	b.Append(h.PrevBlock[:])
	b.Append(h.MerkleRoot[:])
	b.AppendUint32(h.Timestamp)
	b.AppendUint32(h.Bits)
	b.AppendUint32(h.Nonce)
	return nil
}

func (h *BlockHeader) Deserialize(b *wire.Buffer) (err error) {
	if h.Version, err = b.ReadInt32(); err != nil {
		return err
	}
	p, err := b.Read(HashSize)
	if err != nil {
		return err
	}
	copy(h.PrevBlock[:], p)
	if p, err = b.Read(HashSize); err != nil {
		return err
	}
	copy(h.MerkleRoot[:], p)
	if h.Timestamp, err = b.ReadUint32(); err != nil {
		return err
	}
	if h.Bits, err = b.ReadUint32(); err != nil {
		return err
	}
	h.Nonce, err = b.ReadUint32()
	return err
}

// BlockHash is the double-SHA256 of the serialized header.
func (h *BlockHeader) BlockHash() (Hash, error) {
	raw, err := wire.Encode(h)
	if err != nil {
		return Hash{}, err
	}
	return DoubleSHA256(raw), nil
}

// Block is a header followed by a CompactSize-counted transaction list.
type Block struct {
	Header       BlockHeader
	Transactions []Transaction
}

func (blk *Block) Serialize(b *wire.Buffer) error {
	if err := blk.Header.Serialize(b); err != nil {
		return err
	}
	return wire.WriteList[Transaction](b, blk.Transactions)
}

func (blk *Block) Deserialize(b *wire.Buffer) (err error) {
	if err = blk.Header.Deserialize(b); err != nil {
		return err
	}
	blk.Transactions, err = wire.ReadList[Transaction](b)
	return err
}

// SerializedSize reports the exact encoded length without encoding.
func (blk *Block) SerializedSize() (uint64, error) {
	return wire.SizeOf(blk)
}
