package crypto

import "errors"

// ErrAuthentication is returned by [KeyChainService.Open] when a container
// cannot be authenticated: wrong key, corrupted or truncated file, or a
// payload that is not a container at all. The causes are intentionally not
// distinguishable from each other.
var ErrAuthentication = errors.New("container authentication failed")
