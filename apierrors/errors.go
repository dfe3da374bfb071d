package apierrors

import "errors"

// Error messages for the region peaks pipeline
var (
	ErrMetadataUnavailable = errors.New("could not get metadata")
	ErrDataUnavailable     = errors.New("could not get data")
	ErrDecode              = errors.New("could not decode response body")
	ErrRegionDimension     = errors.New("region dimension is missing or incomplete")
	ErrRegionNotFound      = errors.New("region code not found in metadata")
	ErrInvalidPercentage   = errors.New("percentage value is not numeric")
)

// Process exit codes returned by ExitCode
const (
	ExitOK = iota
	ExitFailure
	ExitUnavailable
	ExitDecode
	ExitLookup
	ExitParse
)

// ExitCode maps an error returned by the pipeline to the process exit code for its category.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMetadataUnavailable), errors.Is(err, ErrDataUnavailable):
		return ExitUnavailable
	case errors.Is(err, ErrDecode):
		return ExitDecode
	case errors.Is(err, ErrRegionDimension), errors.Is(err, ErrRegionNotFound):
		return ExitLookup
	case errors.Is(err, ErrInvalidPercentage):
		return ExitParse
	default:
		return ExitFailure
	}
}

// Message returns the diagnostic printed for a failed run. Unavailable services report only the
// category so the console shows "could not get metadata" or "could not get data".
func Message(err error) string {
	switch {
	case errors.Is(err, ErrMetadataUnavailable):
		return ErrMetadataUnavailable.Error()
	case errors.Is(err, ErrDataUnavailable):
		return ErrDataUnavailable.Error()
	default:
		return err.Error()
	}
}
