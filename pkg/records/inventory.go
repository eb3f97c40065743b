package records

import (
	"github.com/skaldic/seidr/pkg/wire"
)

// InvType tags what an inventory vector announces.
type InvType uint32

const (
	InvTypeError InvType = 0
	InvTypeTx    InvType = 1
	InvTypeBlock InvType = 2
)

func (t InvType) String() string {
	switch t {
	case InvTypeError:
		return "ERROR"
	case InvTypeTx:
		return "MSG_TX"
	case InvTypeBlock:
		return "MSG_BLOCK"
	default:
		return "UNKNOWN"
	}
}

// InvVect announces one object by type and hash, as relayed between peers.
type InvVect struct {
	Type InvType
	Hash Hash
}

func (iv *InvVect) Serialize(b *wire.Buffer) error {
	b.AppendUint32(uint32(iv.Type))
	b.Append(iv.Hash[:])
	return nil
}

func (iv *InvVect) Deserialize(b *wire.Buffer) error {
	v, err := b.ReadUint32()
	if err != nil {
		return err
	}
	iv.Type = InvType(v)
	p, err := b.Read(HashSize)
	if err != nil {
		return err
	}
	copy(iv.Hash[:], p)
	return nil
}

// InvMessage is a CompactSize-counted list of inventory vectors.
type InvMessage struct {
	Inventory []InvVect
}

func (m *InvMessage) Serialize(b *wire.Buffer) error {
	return wire.WriteList[InvVect](b, m.Inventory)
}

func (m *InvMessage) Deserialize(b *wire.Buffer) (err error) {
	m.Inventory, err = wire.ReadList[InvVect](b)
	return err
}
