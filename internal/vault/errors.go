package vault

import "errors"

var (
	// ErrFormat is returned by [Decode] when bytes that already passed
	// container authentication fail to decode. In normal operation this
	// indicates an internal inconsistency, not adversarial input, and the
	// load should be treated as unrecoverable.
	ErrFormat = errors.New("profile list format invalid")

	// ErrNotUnlocked is returned when a profile mutation or import is
	// attempted while the session is not in [StateUnlocked].
	ErrNotUnlocked = errors.New("vault is not unlocked")

	// ErrSubmitNotAllowed is returned by [Session.Submit] outside the
	// NoContainer and Locked states. A rejected key must be acknowledged
	// before another passphrase is submitted.
	ErrSubmitNotAllowed = errors.New("submit not allowed in current vault state")
)
