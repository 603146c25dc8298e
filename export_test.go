package rose

// Things that need to be exported for testing, but should not be part of the
// public API. The identifiers are in the rose package, but the filename ends
// in _test.go, preventing their inclusion in the public API.

var TestingIndent = indent
