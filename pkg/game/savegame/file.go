package savegame

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Keys of the flat save format
const (
	keyPosition  = "posicao"
	keySteps     = "passos"
	keyInventory = "inventario"
	keySeed      = "semente"
)

// FileStore keeps the save as key=value lines in a text file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store writing to path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Save writes st, creating the parent directory if needed
func (s *FileStore) Save(st State) error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save dir: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, Encode(normalize(st)), 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// Load reads the save file. A missing file is reported as no save.
func (s *FileStore) Load() (State, bool, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("read save: %w", err)
	}
	return Decode(data), true, nil
}

// Close does nothing for a file store
func (s *FileStore) Close() error {
	return nil
}

// Encode renders st in the flat format. The seed line is only written when
// the state carries one.
func Encode(st State) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s=%s\n", keyPosition, st.Position)
	fmt.Fprintf(&buf, "%s=%d\n", keySteps, st.Steps)
	fmt.Fprintf(&buf, "%s=%s\n", keyInventory, strings.Join(st.Items, ","))
	if st.HasSeed {
		fmt.Fprintf(&buf, "%s=%d\n", keySeed, st.Seed)
	}
	return buf.Bytes()
}

// Decode parses the flat format. Unknown lines are ignored; a step count that
// is not a non-negative integer reads as 0.
func Decode(data []byte) State {
	var st State
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(sc.Text()), "=")
		if !ok {
			continue
		}
		switch key {
		case keyPosition:
			st.Position = value
		case keySteps:
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				n = 0
			}
			st.Steps = n
		case keyInventory:
			st.Items = splitItems(value)
		case keySeed:
			if seed, err := strconv.ParseInt(value, 10, 64); err == nil {
				st.Seed = seed
				st.HasSeed = true
			}
		}
	}
	return st
}

func splitItems(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
