package parse

import "errors"

// ErrSyntax is returned for input that does not match the expected record format.
var ErrSyntax = errors.New("parse: malformed input")
