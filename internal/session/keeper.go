package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Keeper persists the bearer credential between runs. An empty token means
// anonymous. A Keeper also serves as the API client's credential source,
// so the value it holds is what every outgoing request carries.
type Keeper interface {
	Token() string
	Save(token string) error
	Clear() error
}

// FileKeeper stores the token in a single file, the durable-storage
// analogue of the browser's localStorage key.
type FileKeeper struct {
	mu     sync.Mutex
	path   string
	token  string
	loaded bool
}

func NewFileKeeper(path string) *FileKeeper {
	return &FileKeeper{path: path}
}

// Token returns the current credential, reading the backing file once.
// A missing or unreadable file degrades to anonymous.
func (k *FileKeeper) Token() string {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.loaded {
		data, err := os.ReadFile(k.path)
		if err == nil {
			k.token = strings.TrimSpace(string(data))
		}
		k.loaded = true
	}

	return k.token
}

func (k *FileKeeper) Save(token string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(k.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(k.path, []byte(token+"\n"), 0o600); err != nil {
		return err
	}

	k.token = token
	k.loaded = true
	return nil
}

func (k *FileKeeper) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.token = ""
	k.loaded = true

	if err := os.Remove(k.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryKeeper holds the token in memory only. Used in tests and wherever
// persistence across runs is not wanted.
type MemoryKeeper struct {
	mu    sync.Mutex
	token string
}

func (k *MemoryKeeper) Token() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.token
}

func (k *MemoryKeeper) Save(token string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.token = token
	return nil
}

func (k *MemoryKeeper) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.token = ""
	return nil
}
