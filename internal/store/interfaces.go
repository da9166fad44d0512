package store

// ContainerStore persists the encrypted vault container as a single
// whole-file unit at a fixed, well-known path. There is no header or
// version byte on disk: format identification is purely "file exists at
// the known path". Writes are full-file replacements, never in-place
// patches, so a crash mid-write leaves the previous container intact.
type ContainerStore interface {
	// Exists reports whether a container file is present at the store's
	// path. It decides the initial vault session state.
	Exists() bool

	// Load reads the whole container file.
	Load() ([]byte, error)

	// Save atomically replaces the container file with the given bytes.
	Save(container []byte) error

	// LoadFrom reads a container from an arbitrary caller-supplied path.
	// Used by the legacy import flow, which opens containers living
	// outside the store's own path.
	LoadFrom(path string) ([]byte, error)

	// Path returns the store's container file path.
	Path() string
}
