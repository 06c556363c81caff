package metric

import "errors"

var (
	ErrMetricNotFound = errors.New("health metric not found")
	ErrInvalidType    = errors.New("invalid metric type")
	ErrValueRequired  = errors.New("metric value is required")
	ErrDateRequired   = errors.New("metric date is required")
)
