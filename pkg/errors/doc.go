// Package errors provides structured error types for programmatic error
// handling across shampug.
//
// Every failure raised by the random source, the registry, the line composer
// and the facade is a *StructuredError with one of the ErrCode constants, so
// callers branch on codes rather than matching message text:
//
//	v, err := src.Int32N(0)
//	if errors.HasCode(err, errors.ErrCodeInvalidBound) {
//	    // bound must be positive
//	}
//
// Errors wrap their cause and optional context:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidPattern,
//	    "failed to compile pattern",
//	    cause,
//	    map[string]any{
//	        "pattern": pattern,
//	        "limit":   limit,
//	    },
//	)
package errors
