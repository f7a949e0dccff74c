package output

import (
	"context"
	"encoding/json"
)

// Bridge is the asynchronous request/response channel to the save-file
// backend. Arguments and results are JSON values; a rejected request surfaces
// as an error wrapping domain.ErrBridgeRejected.
type Bridge interface {
	Invoke(ctx context.Context, method string, args ...any) (json.RawMessage, error)
}
