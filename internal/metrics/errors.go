package metrics

import "errors"

var (
	ErrDuplicateMetric   = errors.New("metric already registered")
	ErrUnknownMetric     = errors.New("metric not registered")
	ErrWrongKind         = errors.New("metric kind mismatch")
	ErrLabelMismatch     = errors.New("labels do not match metric definition")
	ErrInvalidDefinition = errors.New("invalid metric definition")
	ErrInvalidValue      = errors.New("invalid observation value")
	ErrMissingStatus     = errors.New("response status unavailable")
)
