package jsonrpc

import "encoding/json"

// Request is an inbound JSON-RPC request envelope.  ID and Params are kept
// raw so that string and number identifiers round-trip without losing their
// original type.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"` // accepts string | number | null
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// DecodedID returns the request identifier as the value it decodes to, plus
// whether it is a string or a number (the only types the protocol allows).
func (req *Request) DecodedID() (any, bool) {
	if len(req.ID) == 0 {
		return nil, false
	}

	var id any
	if err := json.Unmarshal(req.ID, &id); err != nil {
		return nil, false
	}

	switch id.(type) {
	case string, float64:
		return id, true
	}

	return nil, false
}
