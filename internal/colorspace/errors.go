package colorspace

import "errors"

// ErrInvalidArgument is the class of error returned for unrecognized variant
// values and malformed inputs. Packages that reject an argument wrap it so
// callers can test with errors.Is.
var ErrInvalidArgument = errors.New("colorassist: invalid argument")
