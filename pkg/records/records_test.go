package records

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	"github.com/skaldic/seidr/pkg/wire"
)

// The genesis coinbase transaction, byte for byte.
const genesisTxHex = "01000000010000000000000000000000000000000000000000000000000000000000000000" +
	"ffffffff4d04ffff001d0104455468652054696d65732030332f4a616e2f32303039204368616e63656c6c6f72206f6e206272696e6b206f66207365636f6e64206261696c6f757420666f722062616e6b73ffffffff" +
	"0100f2052a01000000434104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"

const genesisTxID = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

// The genesis block header and its hash.
const genesisHeaderHex = "01000000" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"3ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a" +
	"29ab5f49" + "ffff001d" + "1dac2b7c"

const genesisBlockHash = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"

func TestTransactionGenesisVector(t *testing.T) {
	raw, err := hex.DecodeString(genesisTxHex)
	if err != nil {
		t.Fatal(err)
	}

	var tx Transaction
	if err := wire.Decode(raw, &tx); err != nil {
		t.Fatalf("decode genesis tx: %v", err)
	}

	if tx.Version != 1 {
		t.Errorf("version = %d, want 1", tx.Version)
	}
	if len(tx.Inputs) != 1 || len(tx.Outputs) != 1 {
		t.Fatalf("inputs = %d, outputs = %d, want 1 and 1", len(tx.Inputs), len(tx.Outputs))
	}
	if tx.Inputs[0].PreviousOutPoint.Hash != (Hash{}) || tx.Inputs[0].PreviousOutPoint.Index != 0xffffffff {
		t.Errorf("coinbase outpoint = %+v", tx.Inputs[0].PreviousOutPoint)
	}
	if tx.Outputs[0].Value != 50_0000_0000 {
		t.Errorf("output value = %d, want 5000000000", tx.Outputs[0].Value)
	}
	if tx.LockTime != 0 {
		t.Errorf("lock time = %d, want 0", tx.LockTime)
	}

	// Re-encoding reproduces the input bytes exactly.
	out, err := wire.Encode(&tx)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, raw) {
		t.Errorf("re-encoded tx differs from wire bytes")
	}

	size, err := tx.SerializedSize()
	if err != nil {
		t.Fatal(err)
	}
	if size != uint64(len(raw)) {
		t.Errorf("SerializedSize = %d, want %d", size, len(raw))
	}

	id, err := tx.TxID()
	if err != nil {
		t.Fatal(err)
	}
	if id.String() != genesisTxID {
		t.Errorf("txid = %s, want %s", id, genesisTxID)
	}
}

func TestBlockHeaderGenesisVector(t *testing.T) {
	raw, err := hex.DecodeString(genesisHeaderHex)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != BlockHeaderSize {
		t.Fatalf("vector length = %d, want %d", len(raw), BlockHeaderSize)
	}

	var h BlockHeader
	if err := wire.Decode(raw, &h); err != nil {
		t.Fatalf("decode genesis header: %v", err)
	}
	if h.Version != 1 || h.PrevBlock != (Hash{}) || h.Timestamp != 1231006505 || h.Bits != 0x1d00ffff || h.Nonce != 2083236893 {
		t.Errorf("decoded header = %+v", h)
	}

	out, err := wire.Encode(&h)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, raw) {
		t.Error("re-encoded header differs from wire bytes")
	}

	hash, err := h.BlockHash()
	if err != nil {
		t.Fatal(err)
	}
	if hash.String() != genesisBlockHash {
		t.Errorf("block hash = %s, want %s", hash, genesisBlockHash)
	}

	size, err := wire.SizeOf(&h)
	if err != nil {
		t.Fatal(err)
	}
	if size != BlockHeaderSize {
		t.Errorf("SizeOf header = %d, want %d", size, BlockHeaderSize)
	}
}

func TestBlockRoundTrip(t *testing.T) {
	rawTx, err := hex.DecodeString(genesisTxHex)
	if err != nil {
		t.Fatal(err)
	}
	var tx Transaction
	if err := wire.Decode(rawTx, &tx); err != nil {
		t.Fatal(err)
	}
	rawHdr, err := hex.DecodeString(genesisHeaderHex)
	if err != nil {
		t.Fatal(err)
	}
	var hdr BlockHeader
	if err := wire.Decode(rawHdr, &hdr); err != nil {
		t.Fatal(err)
	}

	blk := Block{Header: hdr, Transactions: []Transaction{tx}}
	raw, err := wire.Encode(&blk)
	if err != nil {
		t.Fatal(err)
	}

	// Header bytes, one-element count, then the transaction bytes.
	want := append(append(append([]byte{}, rawHdr...), 0x01), rawTx...)
	if !bytes.Equal(raw, want) {
		t.Error("block encoding is not header || count || txs")
	}

	var got Block
	if err := wire.Decode(raw, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, blk) {
		t.Errorf("block round trip mismatch")
	}

	size, err := blk.SerializedSize()
	if err != nil {
		t.Fatal(err)
	}
	if size != uint64(len(raw)) {
		t.Errorf("SerializedSize = %d, want %d", size, len(raw))
	}
}

func TestInvMessageRoundTrip(t *testing.T) {
	txid, err := NewHashFromString(genesisTxID)
	if err != nil {
		t.Fatal(err)
	}
	blkHash, err := NewHashFromString(genesisBlockHash)
	if err != nil {
		t.Fatal(err)
	}

	m := InvMessage{Inventory: []InvVect{
		{Type: InvTypeTx, Hash: txid},
		{Type: InvTypeBlock, Hash: blkHash},
	}}

	raw, err := wire.Encode(&m)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 1+2*(4+HashSize) {
		t.Errorf("inv encoding length = %d", len(raw))
	}

	var got InvMessage
	if err := wire.Decode(raw, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("inv round trip mismatch")
	}
}

func TestHashStringRoundTrip(t *testing.T) {
	h, err := NewHashFromString(genesisBlockHash)
	if err != nil {
		t.Fatal(err)
	}
	if h.String() != genesisBlockHash {
		t.Errorf("hash string round trip = %s", h)
	}
	// Wire order is the reverse of the printed form.
	if h[31] != 0x00 || h[0] != 0x6f {
		t.Errorf("unexpected wire order: % x", h[:])
	}

	if _, err := NewHashFromString("abcd"); err == nil {
		t.Error("short hash string accepted")
	}
	if _, err := NewHashFromString(string(make([]byte, 64))); err == nil {
		t.Error("non-hex hash string accepted")
	}
}

func TestTransactionTruncated(t *testing.T) {
	raw, err := hex.DecodeString(genesisTxHex)
	if err != nil {
		t.Fatal(err)
	}

	// Every strict prefix must fail, never decode to a partial value.
	for _, cut := range []int{0, 3, 4, 40, 41, 100, len(raw) - 1} {
		var tx Transaction
		if err := wire.Decode(raw[:cut], &tx); !errors.Is(err, wire.ErrInsufficientData) {
			t.Errorf("decode %d-byte prefix: %v, want ErrInsufficientData", cut, err)
		}
	}
}

func TestTransactionOversizedScriptLength(t *testing.T) {
	// A script length prefix promising more bytes than remain is rejected
	// before any allocation.
	b := wire.NewBuffer()
	b.AppendInt32(1)
	if err := wire.WriteCompactSize(b, 1); err != nil {
		t.Fatal(err)
	}
	op := OutPoint{Index: 0xffffffff}
	if err := op.Serialize(b); err != nil {
		t.Fatal(err)
	}
	if err := wire.WriteCompactSize(b, 1_000_000); err != nil {
		t.Fatal(err)
	}
	b.AppendByte(0xde)

	var tx Transaction
	if err := wire.Decode(b.TakeAndClear(), &tx); !errors.Is(err, wire.ErrInsufficientData) {
		t.Errorf("oversized script length: %v, want ErrInsufficientData", err)
	}
}
