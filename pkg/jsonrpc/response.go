package jsonrpc

import "encoding/json"

// Response is an outbound JSON-RPC response envelope.
type Response struct {
	Message
	Result any    `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

/*
MarshalJSON emits exactly one of result or error.  The result key is always
present on success, even when the result is an empty array: omitempty would
swallow it, and callers of tasks/list rely on receiving [].
*/
func (resp Response) MarshalJSON() ([]byte, error) {
	if resp.Error != nil {
		return json.Marshal(struct {
			JSONRPC string `json:"jsonrpc"`
			ID      any    `json:"id"`
			Error   *Error `json:"error"`
		}{
			JSONRPC: resp.JSONRPC,
			ID:      resp.ID,
			Error:   resp.Error,
		})
	}

	return json.Marshal(struct {
		JSONRPC string `json:"jsonrpc"`
		ID      any    `json:"id"`
		Result  any    `json:"result"`
	}{
		JSONRPC: resp.JSONRPC,
		ID:      resp.ID,
		Result:  resp.Result,
	})
}

// NewResponse wraps a result for the given request id.
func NewResponse(id any, result any) Response {
	return Response{
		Message: Message{
			MessageIdentifier: MessageIdentifier{ID: id},
			JSONRPC:           Version,
		},
		Result: result,
	}
}

// NewErrorResponse wraps an error object for the given request id.  A nil id
// is rendered as JSON null, which is what the protocol requires when the
// request could not be trusted enough to echo an id.
func NewErrorResponse(id any, code int, message string) Response {
	return Response{
		Message: Message{
			MessageIdentifier: MessageIdentifier{ID: id},
			JSONRPC:           Version,
		},
		Error: &Error{
			Code:    code,
			Message: message,
		},
	}
}
