// Package savegame persists a player's progress: the node they stand on,
// their step count, the items they hold and the seed of their world.
package savegame

import "fmt"

// State is one saved game. Position is the node's text form.
type State struct {
	Position string
	Steps    int
	Items    []string
	Seed     int64
	HasSeed  bool
}

// Store defines the interface for save persistence. Load reports false
// without an error when nothing has been saved yet.
type Store interface {
	Save(st State) error
	Load() (State, bool, error)
	Close() error
}

// Backend names
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend at path
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown save backend %q", backend)
	}
}

func normalize(st State) State {
	if st.Steps < 0 {
		st.Steps = 0
	}
	return st
}
