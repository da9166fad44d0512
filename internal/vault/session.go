// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/rdp-keeper/internal/crypto"
	"github.com/MKhiriev/rdp-keeper/internal/logger"
	"github.com/MKhiriev/rdp-keeper/internal/store"
	"github.com/MKhiriev/rdp-keeper/models"
)

// State is the key-lifecycle state of a [Session]. Transitions happen only
// in response to an explicit caller action (submit a passphrase,
// acknowledge a rejection), never spontaneously.
type State int

const (
	// StateNoContainer: no container file exists yet; the next submitted
	// passphrase creates one.
	StateNoContainer State = iota
	// StateLocked: a container exists but no key has opened it yet.
	StateLocked
	// StateUnlocked: the container was opened; mutations are allowed.
	StateUnlocked
	// StateRejectedKey: the last submitted passphrase failed
	// authentication and awaits acknowledgement.
	StateRejectedKey
)

func (s State) String() string {
	switch s {
	case StateNoContainer:
		return "no_container"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	case StateRejectedKey:
		return "rejected_key"
	default:
		return "unknown"
	}
}

// legacyZeroKey is the degenerate all-zero key that early builds of the
// tool encrypted under before master passphrases existed. Only the import
// path may ever use it; new data is always sealed under the session key.
func legacyZeroKey() []byte {
	return make([]byte, crypto.KeySize)
}

// Session owns the vault key and the profile list for the lifetime of the
// process and is the only writer of the container file. Exactly one
// Session instance exists per process; all operations are synchronous and
// run to completion on the calling goroutine, so no locking is needed.
//
// Every successful mutation is immediately re-encoded, sealed and written
// as a whole-file replacement, so the on-disk container never lags the
// in-memory list by more than one mutation.
type Session struct {
	keychain crypto.KeyChainService
	store    store.ContainerStore
	log      *logger.Logger

	state    State
	key      []byte
	profiles []models.Profile
}

// NewSession constructs a Session over the given container store. The
// initial state is [StateNoContainer] if no container file exists at the
// store's path, otherwise [StateLocked].
func NewSession(keychain crypto.KeyChainService, containerStore store.ContainerStore, log *logger.Logger) *Session {
	state := StateNoContainer
	if containerStore.Exists() {
		state = StateLocked
	}

	log.Debug().
		Str("path", containerStore.Path()).
		Str("state", state.String()).
		Msg("vault session created")

	return &Session{
		keychain: keychain,
		store:    containerStore,
		log:      log,
		state:    state,
	}
}

// State returns the current key-lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Profiles returns a copy of the profile list in insertion order. Only
// meaningful while unlocked; in every other state the list is empty.
func (s *Session) Profiles() []models.Profile {
	out := make([]models.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Submit derives a key from passphrase and attempts to open or create the
// vault.
//
//   - From [StateNoContainer]: the profile list starts empty and is
//     persisted immediately, so the chosen passphrase is validated against
//     itself on every later unlock.
//   - From [StateLocked]: the container is read and opened. Success decodes
//     the list and unlocks; an authentication failure transitions to
//     [StateRejectedKey] and returns an error matching
//     [crypto.ErrAuthentication].
//
// I/O and format errors are returned without a state change; the caller
// may retry. Submit in any other state returns [ErrSubmitNotAllowed].
func (s *Session) Submit(passphrase []byte) error {
	switch s.state {
	case StateNoContainer:
		return s.create(passphrase)
	case StateLocked:
		return s.unlock(passphrase)
	default:
		return fmt.Errorf("%w: %s", ErrSubmitNotAllowed, s.state)
	}
}

func (s *Session) create(passphrase []byte) error {
	key := s.keychain.DeriveKey(passphrase)

	s.key = key
	s.profiles = []models.Profile{}
	if err := s.persist(); err != nil {
		// Creation failed: drop the key and stay containerless.
		s.keychain.Wipe(key)
		s.key = nil
		return err
	}

	s.state = StateUnlocked
	s.log.Info().Str("path", s.store.Path()).Msg("vault created")
	return nil
}

func (s *Session) unlock(passphrase []byte) error {
	key := s.keychain.DeriveKey(passphrase)

	container, err := s.store.Load()
	if err != nil {
		s.keychain.Wipe(key)
		return err
	}

	plaintext, err := s.keychain.Open(container, key)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthentication) {
			// The attempted key is held until Acknowledge wipes it.
			s.key = key
			s.state = StateRejectedKey
			s.log.Info().Msg("vault key rejected")
			return err
		}
		s.keychain.Wipe(key)
		return err
	}

	profiles, err := Decode(plaintext)
	if err != nil {
		// Authenticated bytes that fail to decode mean the load is
		// unrecoverable; the vault stays locked.
		s.keychain.Wipe(key)
		return err
	}

	s.key = key
	s.profiles = profiles
	s.state = StateUnlocked
	s.log.Info().Int("profiles", len(profiles)).Msg("vault unlocked")
	return nil
}

// Acknowledge moves the session from [StateRejectedKey] back to
// [StateLocked], wiping the rejected key. It is a no-op in any other
// state.
func (s *Session) Acknowledge() {
	if s.state != StateRejectedKey {
		return
	}

	s.keychain.Wipe(s.key)
	s.key = nil
	s.state = StateLocked
}

// Add appends a profile and persists the whole list. Valid only while
// unlocked.
func (s *Session) Add(p models.Profile) error {
	if s.state != StateUnlocked {
		return ErrNotUnlocked
	}

	s.profiles = append(s.profiles, p)
	return s.persist()
}

// Edit replaces the profile at index i and persists the whole list. An
// out-of-range index is a caller bug and panics, matching ordinary slice
// indexing. Valid only while unlocked.
func (s *Session) Edit(i int, p models.Profile) error {
	if s.state != StateUnlocked {
		return ErrNotUnlocked
	}

	s.profiles[i] = p
	return s.persist()
}

// Remove deletes the profile at index i and persists the whole list. An
// out-of-range index is a caller bug and panics. Valid only while
// unlocked.
func (s *Session) Remove(i int) error {
	if s.state != StateUnlocked {
		return ErrNotUnlocked
	}

	s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
	return s.persist()
}

// ImportLegacy reads a container at path, opens it under the explicit
// all-zero legacy key, appends its profiles to the in-memory list and
// persists the whole list (imported entries included) under the current
// session key. Returns the number of imported profiles. Valid only while
// unlocked.
func (s *Session) ImportLegacy(path string) (int, error) {
	if s.state != StateUnlocked {
		return 0, ErrNotUnlocked
	}

	container, err := s.store.LoadFrom(path)
	if err != nil {
		return 0, err
	}

	plaintext, err := s.keychain.Open(container, legacyZeroKey())
	if err != nil {
		return 0, err
	}

	imported, err := Decode(plaintext)
	if err != nil {
		return 0, err
	}

	s.profiles = append(s.profiles, imported...)
	s.log.Info().Int("imported", len(imported)).Str("from", path).Msg("legacy container imported")
	return len(imported), s.persist()
}

// Close wipes the session key. The session is unusable afterwards and
// should be dropped. Safe to call in any state.
func (s *Session) Close() {
	if s.key != nil {
		s.keychain.Wipe(s.key)
		s.key = nil
	}
	s.profiles = nil
	s.state = StateLocked
}

// persist re-encodes, seals and writes the profile list as a whole-file
// replacement. A persist failure is reported to the caller but does not
// change session state: the in-memory list remains the source of truth
// until a later persist succeeds, at the accepted risk of losing unsaved
// changes on a crash.
func (s *Session) persist() error {
	payload, err := Encode(s.profiles)
	if err != nil {
		return err
	}

	container, err := s.keychain.Seal(payload, s.key)
	if err != nil {
		return fmt.Errorf("seal profile list: %w", err)
	}

	if err := s.store.Save(container); err != nil {
		s.log.Error().Err(err).Msg("persist vault container")
		return err
	}

	return nil
}
