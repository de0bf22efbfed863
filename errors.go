package isocurve

// Error types attached to the errors returned by this package. Use
// errors.IsType from github.com/aukilabs/go-tooling/pkg/errors to tell them
// apart.
const (
	// ErrTypeDivisionByZero is returned when dividing by zero or by an
	// interval that contains zero, including raising such an interval to a
	// negative power.
	ErrTypeDivisionByZero = "division_by_zero"

	// ErrTypeUnsupported is returned by operations that have no interval
	// extension in this package, such as non-integer exponents.
	ErrTypeUnsupported = "unsupported"

	// ErrTypeInvalidArgument is returned for arguments outside an operation's
	// domain, such as the 0th root or an even root of a negative interval.
	ErrTypeInvalidArgument = "invalid_argument"

	// ErrTypeSubdivisionLimit is returned by the subdivision drivers when at
	// least one box could not be classified before reaching the configured
	// depth or width limit. The accompanying Result is still valid.
	ErrTypeSubdivisionLimit = "subdivision_limit"
)
