package config

import "errors"

// Validation failures. Validate wraps each problem with one of these so callers can test with errors.Is.
var (
	ErrDegenerateView     = errors.New("degenerate camera view")
	ErrInvalidProjection  = errors.New("invalid projection")
	ErrInvalidSpeed       = errors.New("invalid controller speed")
	ErrUnknownClipSpace   = errors.New("unknown clip space")
	ErrUnknownKey         = errors.New("unknown key")
	ErrUnknownDirection   = errors.New("unknown direction")
	ErrUnknownPresentMode = errors.New("unknown present mode")
	ErrInvalidWindow      = errors.New("invalid window size")
)
