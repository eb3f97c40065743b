package records

import (
	"github.com/skaldic/seidr/pkg/wire"
)

// OutPoint names a transaction output by the transaction's hash and the
// output's index within it.
type OutPoint struct {
	Hash  Hash
	Index uint32
}

// Serialize writes the 32-byte hash followed by the little-endian index.
func (o *OutPoint) Serialize(b *wire.Buffer) error {
	b.Append(o.Hash[:])
	b.AppendUint32(o.Index)
	return nil
}

// Deserialize reads the fields written by Serialize.
func (o *OutPoint) Deserialize(b *wire.Buffer) error {
	p, err := b.Read(HashSize)
	if err != nil {
		return err
	}
	copy(o.Hash[:], p)
	o.Index, err = b.ReadUint32()
	return err
}

// TxIn spends a previous output. SignatureScript is opaque bytes here; the
// script machinery lives elsewhere.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

func (in *TxIn) Serialize(b *wire.Buffer) error {
	if err := in.PreviousOutPoint.Serialize(b); err != nil {
		return err
	}
	if err := wire.WriteBytes(b, in.SignatureScript); err != nil {
		return err
	}
	b.AppendUint32(in.Sequence)
	return nil
}

func (in *TxIn) Deserialize(b *wire.Buffer) (err error) {
	if err = in.PreviousOutPoint.Deserialize(b); err != nil {
		return err
	}
	if in.SignatureScript, err = wire.ReadBytes(b); err != nil {
		return err
	}
	in.Sequence, err = b.ReadUint32()
	return err
}

// TxOut carries a value in satoshis and the locking script.
type TxOut struct {
	Value    int64
	PkScript []byte
}

func (out *TxOut) Serialize(b *wire.Buffer) error {
	b.AppendInt64(out.Value)
	return wire.WriteBytes(b, out.PkScript)
}

func (out *TxOut) Deserialize(b *wire.Buffer) (err error) {
	if out.Value, err = b.ReadInt64(); err != nil {
		return err
	}
	out.PkScript, err = wire.ReadBytes(b)
	return err
}

// Transaction is the canonical transaction wire layout: version, inputs,
// outputs, lock time. The input and output lists are CompactSize-counted.
type Transaction struct {
	Version  int32
	Inputs   []TxIn
	Outputs  []TxOut
	LockTime uint32
}

func (tx *Transaction) Serialize(b *wire.Buffer) error {
	b.AppendInt32(tx.Version)
	if err := wire.WriteList[TxIn](b, tx.Inputs); err != nil {
		return err
	}
	if err := wire.WriteList[TxOut](b, tx.Outputs); err != nil {
		return err
	}
	b.AppendUint32(tx.LockTime)
	return nil
}

func (tx *Transaction) Deserialize(b *wire.Buffer) (err error) {
	if tx.Version, err = b.ReadInt32(); err != nil {
		return err
	}
	if tx.Inputs, err = wire.ReadList[TxIn](b); err != nil {
		return err
	}
	if tx.Outputs, err = wire.ReadList[TxOut](b); err != nil {
		return err
	}
	tx.LockTime, err = b.ReadUint32()
	return err
}

// TxID is the double-SHA256 of the transaction's serialization.
func (tx *Transaction) TxID() (Hash, error) {
	raw, err := wire.Encode(tx)
	if err != nil {
		return Hash{}, err
	}
	return DoubleSHA256(raw), nil
}

// SerializedSize reports the exact encoded length without encoding.
func (tx *Transaction) SerializedSize() (uint64, error) {
	return wire.SizeOf(tx)
}
