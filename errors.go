package msdfgen

import "errors"

// Sentinel errors returned by structural/misuse checks. Geometry
// degeneracy is never reported through these: it is recovered locally per
// §4.2/§7 and only ever affects the numeric result, never the control
// flow.
var (
	// ErrChannelCountMismatch is returned when a Bitmap's channel count
	// does not match the generator variant being invoked (SDF/PSDF want
	// 1, MSDF wants 3, MTSDF wants 4).
	ErrChannelCountMismatch = errors.New("msdfgen: bitmap channel count does not match generator variant")

	// ErrEmptyShape is returned by operations that require at least one
	// contour with at least one edge, such as TransformationForRange.
	ErrEmptyShape = errors.New("msdfgen: shape has no edges")
)

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "msdfgen: invalid config." + e.Field + ": " + e.Reason
}
