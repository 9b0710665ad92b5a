// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "component config missing",
//	    os.ErrNotExist,
//	    map[string]interface{}{
//	        "path": confPath,
//	        "machine": machineID,
//	    },
//	)
package errors
