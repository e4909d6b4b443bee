package domain

import (
	"bytes"
	"encoding/json"
)

// SaveDocument is the decoded in-memory form of a save file.
//
// Info and Data hold the two JSON payloads in compact form. Both the codec
// and the text bridge produce compact payloads, so a document survives a
// trip through text without changing its encoded bytes.
type SaveDocument struct {
	Version int32           `json:"version"`
	Info    json.RawMessage `json:"info"`
	Data    json.RawMessage `json:"data"`
}

// Equal reports whether two documents carry the same version and
// JSON-equivalent payloads. Insignificant whitespace is ignored.
func (d *SaveDocument) Equal(other *SaveDocument) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Version != other.Version {
		return false
	}
	return payloadEqual(d.Info, other.Info) && payloadEqual(d.Data, other.Data)
}

func payloadEqual(a, b json.RawMessage) bool {
	var ca, cb bytes.Buffer
	if err := json.Compact(&ca, a); err != nil {
		return bytes.Equal(a, b)
	}
	if err := json.Compact(&cb, b); err != nil {
		return false
	}
	return bytes.Equal(ca.Bytes(), cb.Bytes())
}
