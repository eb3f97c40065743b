package api

import (
	"github.com/segmentio/ksuid"

	"github.com/skaldic/seidr/pkg/wire"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port           int
	Bind           string
	APIKey         string
	DataDir        string
	MaxMessageSize uint64 // CompactSize ceiling applied to decode requests
}

// IRecordStore defines the store surface the handlers need
type IRecordStore interface {
	Put(key []byte, rec wire.Serializable) error
	Get(key []byte, rec wire.Serializable) error
	Append(rec wire.Serializable) (ksuid.KSUID, error)
	Delete(key []byte) error
}

// EncodeIntRequest carries a value to encode
type EncodeIntRequest struct {
	Value uint64 `json:"value"`
}

// DecodeRequest carries hex-encoded bytes to decode
type DecodeRequest struct {
	Hex string `json:"hex"`
}

// IntResult reports a decoded integer and the bytes it occupied
type IntResult struct {
	Value     uint64 `json:"value"`
	Length    int    `json:"length"`
	Hex       string `json:"hex,omitempty"`
	Remaining string `json:"remaining,omitempty"`
}

// PatchOp is a single buffer edit: "insert" uses Offset and Hex,
// "erase" uses Begin and End.
type PatchOp struct {
	Op     string `json:"op"`
	Offset int    `json:"offset,omitempty"`
	Begin  int    `json:"begin,omitempty"`
	End    int    `json:"end,omitempty"`
	Hex    string `json:"hex,omitempty"`
}

// PatchRequest applies a sequence of edits to a byte buffer
type PatchRequest struct {
	Hex string    `json:"hex"`
	Ops []PatchOp `json:"ops"`
}
