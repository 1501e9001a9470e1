package langrecord

import "errors"

// ErrMalformedPayload is returned when a string is not a valid encoded record-set.
var ErrMalformedPayload = errors.New("langrecord: malformed payload")
