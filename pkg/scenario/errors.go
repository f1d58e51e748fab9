package scenario

import "errors"

// Sentinel errors the loader wraps with fmt.Errorf("%w", ...) so callers
// can errors.Is/errors.As against a specific failure class.
var (
	ErrUnknownJigType    = errors.New("scenario: unknown jig type")
	ErrUnknownJigName    = errors.New("scenario: unknown jig name")
	ErrRackOverCapacity  = errors.New("scenario: rack contents exceed capacity")
	ErrMalformedDocument = errors.New("scenario: malformed document")
)
