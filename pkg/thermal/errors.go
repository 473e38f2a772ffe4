package thermal

import "errors"

// ErrInvalidArgument reports a request that cannot be synthesized: negative
// counts, non-positive dimensions or out-of-range parameters.
var ErrInvalidArgument = errors.New("invalid argument")
