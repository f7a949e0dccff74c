package domain

import "errors"

// Domain errors.
var (
	ErrInvalidEncoding   = errors.New("invalid hex encoding")
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrUnknownCategory   = errors.New("unknown lookup category")
	ErrInvalidTableKey   = errors.New("lookup key is not canonical for its category")
	ErrUnknownMode       = errors.New("unknown editor mode")
	ErrInvalidTransition = errors.New("mode transition not allowed")
	ErrUnknownTab        = errors.New("tab does not belong to the current tab set")
	ErrUnknownKind       = errors.New("unknown entity kind")
	ErrStaleLoad         = errors.New("load superseded by a newer request")
	ErrBridgeRejected    = errors.New("backend rejected the request")
	ErrNoPendingRequest  = errors.New("no load request to refresh")
)

var codes = map[error]string{
	ErrInvalidEncoding:   "invalid_encoding",
	ErrUnsupportedLocale: "unsupported_locale",
	ErrUnknownCategory:   "unknown_category",
	ErrInvalidTableKey:   "invalid_table_key",
	ErrUnknownMode:       "unknown_mode",
	ErrInvalidTransition: "invalid_transition",
	ErrUnknownTab:        "unknown_tab",
	ErrUnknownKind:       "unknown_kind",
	ErrStaleLoad:         "stale_load",
	ErrBridgeRejected:    "bridge_rejected",
	ErrNoPendingRequest:  "no_pending_request",
}

// Code returns the stable identifier of the domain error wrapped by err, or ""
// when err does not wrap one. Identifiers are used as translation keys.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
