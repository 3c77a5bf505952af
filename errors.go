package gauge

import "errors"

// ErrEmptyViewport is returned when an image is requested from a gauge
// whose viewport has no drawable area.
var ErrEmptyViewport = errors.New("gauge: viewport is empty")
