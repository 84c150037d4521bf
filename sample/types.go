// Sampling configuration and sentinel errors. See doc.go for the package
// overview.

package sample

import "errors"

// Sentinel errors for sampling.
var (
	// ErrNilGraph indicates Sample received a nil skeleton graph.
	ErrNilGraph = errors.New("sample: graph is nil")

	// ErrBadStartDistance indicates a zero or negative StartDistance.
	ErrBadStartDistance = errors.New("sample: StartDistance must be positive")

	// ErrNotLeaf indicates OffsetPoint was called for a node that does not
	// have exactly one neighbor.
	ErrNotLeaf = errors.New("sample: offset point requires a node with exactly one neighbor")

	// ErrCenterOutOfPath indicates the arc-length midpoint lies beyond the
	// path's last edge: the recorded length disagrees with the path edges.
	ErrCenterOutOfPath = errors.New("sample: half length beyond path end")
)

// DefaultStartDistance insets the first sample point by half the leaf edge.
const DefaultStartDistance = 2.0

// Options configures sampling.
//
// MaxLengthForOnePoint - islands whose longest path is shorter than this
// collapse to a single centroid point. StartDistance - divisor of the leaf
// edge length giving the inset of the first sample point on long islands.
type Options struct {
	MaxLengthForOnePoint float64
	StartDistance        float64
}

// Option is a functional option for Sample.
type Option func(*Options)

// WithMaxLengthForOnePoint sets the single-point collapse threshold.
// Negative thresholds are meaningless and panic early.
func WithMaxLengthForOnePoint(v float64) Option {
	if v < 0 {
		panic("sample: MaxLengthForOnePoint must be non-negative")
	}

	return func(o *Options) { o.MaxLengthForOnePoint = v }
}

// WithStartDistance sets the leaf-inset divisor. Must be positive; zero or
// negative values panic early (they would divide by zero downstream).
func WithStartDistance(v float64) Option {
	if v <= 0 {
		panic(ErrBadStartDistance.Error())
	}

	return func(o *Options) { o.StartDistance = v }
}

// DefaultOptions returns the sampling defaults: no single-point collapse,
// StartDistance = DefaultStartDistance.
func DefaultOptions() Options {
	return Options{
		MaxLengthForOnePoint: 0,
		StartDistance:        DefaultStartDistance,
	}
}
