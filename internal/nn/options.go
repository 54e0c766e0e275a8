package nn

// Options configures the units a constructor builds.
//
// The zero value is the default configuration: a nonlinear unit with a
// rectified-linear activation. Set Linear for a purely affine unit, as the
// output layer of a network typically is.
//
// Options travels with each Model architecture step and is forwarded to
// every unit the step constructs.
type Options struct {
	// Linear disables the rectified-linear activation.
	Linear bool
}
