package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/ports/output"
)

const maxResponseSize = 16 << 20

var _ output.Bridge = (*HTTPBridge)(nil)

// HTTPBridge reaches the backend over HTTP. Every call is a POST of
// {"method": ..., "args": [...]} to <base>/invoke; the backend answers with
// {"result": ...} or {"error": "..."}.
type HTTPBridge struct {
	baseURL string
	client  *http.Client
}

func NewHTTPBridge(baseURL string, timeout time.Duration) *HTTPBridge {
	return &HTTPBridge{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type invokeRequest struct {
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

func (b *HTTPBridge) Invoke(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	if args == nil {
		args = []any{}
	}
	body, err := json.Marshal(invokeRequest{Method: method, Args: args})
	if err != nil {
		return nil, fmt.Errorf("invoke %s: encode args: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/invoke", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("invoke %s: read response: %w", method, err)
	}

	if !gjson.ValidBytes(data) {
		if resp.StatusCode/100 != 2 {
			return nil, fmt.Errorf("invoke %s: status %d: %w", method, resp.StatusCode, domain.ErrBridgeRejected)
		}
		return nil, fmt.Errorf("invoke %s: malformed response", method)
	}
	if e := gjson.GetBytes(data, "error"); e.Exists() && e.Type != gjson.Null {
		return nil, fmt.Errorf("invoke %s: %s: %w", method, e.String(), domain.ErrBridgeRejected)
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("invoke %s: status %d: %w", method, resp.StatusCode, domain.ErrBridgeRejected)
	}

	result := gjson.GetBytes(data, "result")
	if !result.Exists() {
		return json.RawMessage("null"), nil
	}
	return json.RawMessage(result.Raw), nil
}
