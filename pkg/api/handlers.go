package api

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"

	"github.com/skaldic/seidr/pkg/records"
	"github.com/skaldic/seidr/pkg/store"
	"github.com/skaldic/seidr/pkg/wire"
)

// TxInputInfo summarizes one transaction input
type TxInputInfo struct {
	PrevTxID  string `json:"prev_txid"`
	PrevIndex uint32 `json:"prev_index"`
	ScriptHex string `json:"script_hex"`
	Sequence  uint32 `json:"sequence"`
}

// TxOutputInfo summarizes one transaction output
type TxOutputInfo struct {
	Value     int64  `json:"value"`
	ScriptHex string `json:"script_hex"`
}

// TxInfo is the decoded view of a serialized transaction
type TxInfo struct {
	TxID     string         `json:"txid"`
	Version  int32          `json:"version"`
	LockTime uint32         `json:"lock_time"`
	Size     uint64         `json:"size"`
	Inputs   []TxInputInfo  `json:"inputs"`
	Outputs  []TxOutputInfo `json:"outputs"`
}

// HeaderInfo is the decoded view of a serialized block header
type HeaderInfo struct {
	Hash       string `json:"hash"`
	Version    int32  `json:"version"`
	PrevBlock  string `json:"prev_block"`
	MerkleRoot string `json:"merkle_root"`
	Timestamp  uint32 `json:"timestamp"`
	Bits       uint32 `json:"bits"`
	Nonce      uint32 `json:"nonce"`
}

// StoredRecordInfo reports where an appended record landed
type StoredRecordInfo struct {
	ID   string `json:"id"`
	TxID string `json:"txid"`
	Size uint64 `json:"size"`
}

// RecordResponse returns a stored record's bytes and identity
type RecordResponse struct {
	Hex  string `json:"hex"`
	TxID string `json:"txid"`
	Size uint64 `json:"size"`
}

// Server holds the API server state
type Server struct {
	store   IRecordStore
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(store IRecordStore, config ServerConfig, metrics *Metrics) *Server {
	if config.MaxMessageSize == 0 {
		config.MaxMessageSize = wire.DefaultMaxSize
	}
	return &Server{
		store:   store,
		config:  config,
		metrics: metrics,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// decodeBody parses a JSON request body into v
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		sendError(w, "Invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// decodeHexField parses the hex payload of a decode request
func decodeHexField(w http.ResponseWriter, s string) ([]byte, bool) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		sendError(w, "Invalid hex: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return raw, true
}

func (s *Server) handleEncodeVarint(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req EncodeIntRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b := wire.NewBuffer()
	wire.WriteVarUint(b, req.Value)
	out := b.Bytes()
	s.metrics.RecordCodecOperation("encode_varint", true, time.Since(start), len(out))
	sendSuccess(w, IntResult{Value: req.Value, Length: len(out), Hex: hex.EncodeToString(out)})
}

func (s *Server) handleDecodeVarint(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req DecodeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	raw, ok := decodeHexField(w, req.Hex)
	if !ok {
		return
	}

	b := wire.NewBufferBytes(raw)
	v, err := wire.ReadVarUint(b)
	if err != nil {
		s.metrics.RecordCodecOperation("decode_varint", false, time.Since(start), len(raw))
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.metrics.RecordCodecOperation("decode_varint", true, time.Since(start), b.Pos())
	sendSuccess(w, IntResult{
		Value:     v,
		Length:    b.Pos(),
		Remaining: hex.EncodeToString(raw[b.Pos():]),
	})
}

func (s *Server) handleEncodeCompactSize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req EncodeIntRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b := wire.NewBufferLimit(s.config.MaxMessageSize)
	if err := wire.WriteCompactSize(b, req.Value); err != nil {
		s.metrics.RecordCodecOperation("encode_compactsize", false, time.Since(start), 0)
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	out := b.Bytes()
	s.metrics.RecordCodecOperation("encode_compactsize", true, time.Since(start), len(out))
	sendSuccess(w, IntResult{Value: req.Value, Length: len(out), Hex: hex.EncodeToString(out)})
}

func (s *Server) handleDecodeCompactSize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req DecodeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	raw, ok := decodeHexField(w, req.Hex)
	if !ok {
		return
	}

	b := wire.NewBufferBytesLimit(raw, s.config.MaxMessageSize)
	v, err := wire.ReadCompactSize(b)
	if err != nil {
		s.metrics.RecordCodecOperation("decode_compactsize", false, time.Since(start), len(raw))
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.metrics.RecordCodecOperation("decode_compactsize", true, time.Since(start), b.Pos())
	sendSuccess(w, IntResult{
		Value:     v,
		Length:    b.Pos(),
		Remaining: hex.EncodeToString(raw[b.Pos():]),
	})
}

// decodeStrict deserializes v from raw and rejects trailing bytes
func (s *Server) decodeStrict(raw []byte, v wire.Serializable) error {
	b := wire.NewBufferBytesLimit(raw, s.config.MaxMessageSize)
	if err := v.Deserialize(b); err != nil {
		return err
	}
	if b.Remaining() != 0 {
		return errors.Wrapf(wire.ErrTypeMismatch, "%d trailing bytes", b.Remaining())
	}
	return nil
}

func txInfo(tx *records.Transaction) (*TxInfo, error) {
	txid, err := tx.TxID()
	if err != nil {
		return nil, err
	}
	size, err := tx.SerializedSize()
	if err != nil {
		return nil, err
	}

	info := &TxInfo{
		TxID:     txid.String(),
		Version:  tx.Version,
		LockTime: tx.LockTime,
		Size:     size,
		Inputs:   make([]TxInputInfo, 0, len(tx.Inputs)),
		Outputs:  make([]TxOutputInfo, 0, len(tx.Outputs)),
	}
	for _, in := range tx.Inputs {
		info.Inputs = append(info.Inputs, TxInputInfo{
			PrevTxID:  in.PreviousOutPoint.Hash.String(),
			PrevIndex: in.PreviousOutPoint.Index,
			ScriptHex: hex.EncodeToString(in.SignatureScript),
			Sequence:  in.Sequence,
		})
	}
	for _, out := range tx.Outputs {
		info.Outputs = append(info.Outputs, TxOutputInfo{
			Value:     out.Value,
			ScriptHex: hex.EncodeToString(out.PkScript),
		})
	}
	return info, nil
}

func (s *Server) handleInspectTx(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req DecodeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	raw, ok := decodeHexField(w, req.Hex)
	if !ok {
		return
	}

	var tx records.Transaction
	if err := s.decodeStrict(raw, &tx); err != nil {
		s.metrics.RecordCodecOperation("inspect_tx", false, time.Since(start), len(raw))
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	info, err := txInfo(&tx)
	if err != nil {
		s.metrics.RecordCodecOperation("inspect_tx", false, time.Since(start), len(raw))
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordCodecOperation("inspect_tx", true, time.Since(start), len(raw))
	sendSuccess(w, info)
}

func (s *Server) handleInspectHeader(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req DecodeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	raw, ok := decodeHexField(w, req.Hex)
	if !ok {
		return
	}

	var h records.BlockHeader
	if err := s.decodeStrict(raw, &h); err != nil {
		s.metrics.RecordCodecOperation("inspect_header", false, time.Since(start), len(raw))
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	hash, err := h.BlockHash()
	if err != nil {
		s.metrics.RecordCodecOperation("inspect_header", false, time.Since(start), len(raw))
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordCodecOperation("inspect_header", true, time.Since(start), len(raw))
	sendSuccess(w, HeaderInfo{
		Hash:       hash.String(),
		Version:    h.Version,
		PrevBlock:  h.PrevBlock.String(),
		MerkleRoot: h.MerkleRoot.String(),
		Timestamp:  h.Timestamp,
		Bits:       h.Bits,
		Nonce:      h.Nonce,
	})
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req PatchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	raw, ok := decodeHexField(w, req.Hex)
	if !ok {
		return
	}

	b := wire.NewBufferBytesLimit(raw, s.config.MaxMessageSize)
	for i, op := range req.Ops {
		var err error
		switch op.Op {
		case "insert":
			var p []byte
			if p, err = hex.DecodeString(op.Hex); err == nil {
				err = b.Insert(op.Offset, p)
			}
		case "erase":
			err = b.Erase(op.Begin, op.End)
		default:
			err = fmt.Errorf("unknown op %q", op.Op)
		}
		if err != nil {
			s.metrics.RecordCodecOperation("patch", false, time.Since(start), len(raw))
			sendError(w, fmt.Sprintf("op %d: %v", i, err), http.StatusUnprocessableEntity)
			return
		}
	}
	out := b.Bytes()
	s.metrics.RecordCodecOperation("patch", true, time.Since(start), len(out))
	sendSuccess(w, map[string]interface{}{
		"hex":    hex.EncodeToString(out),
		"length": len(out),
	})
}

func (s *Server) handleStoreRecord(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	raw, ok := decodeHexField(w, req.Hex)
	if !ok {
		return
	}

	var tx records.Transaction
	if err := s.decodeStrict(raw, &tx); err != nil {
		s.metrics.RecordStoreOperation("append", false)
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	id, err := s.store.Append(&tx)
	if err != nil {
		s.metrics.RecordStoreOperation("append", false)
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	txid, err := tx.TxID()
	if err != nil {
		s.metrics.RecordStoreOperation("append", false)
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordStoreOperation("append", true)
	sendSuccess(w, StoredRecordInfo{ID: id.String(), TxID: txid.String(), Size: uint64(len(raw))})
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid record id: "+err.Error(), http.StatusBadRequest)
		return
	}

	var tx records.Transaction
	if err := s.store.Get(id.Bytes(), &tx); err != nil {
		s.metrics.RecordStoreOperation("get", false)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, "Record not found", http.StatusNotFound)
			return
		}
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	raw, err := wire.Encode(&tx)
	if err != nil {
		s.metrics.RecordStoreOperation("get", false)
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	txid, err := tx.TxID()
	if err != nil {
		s.metrics.RecordStoreOperation("get", false)
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordStoreOperation("get", true)
	sendSuccess(w, RecordResponse{
		Hex:  hex.EncodeToString(raw),
		TxID: txid.String(),
		Size: uint64(len(raw)),
	})
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid record id: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.store.Delete(id.Bytes()); err != nil {
		s.metrics.RecordStoreOperation("delete", false)
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordStoreOperation("delete", true)
	sendSuccess(w, map[string]string{"id": id.String(), "status": "deleted"})
}
