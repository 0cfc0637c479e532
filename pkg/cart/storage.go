package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage persists the cart and the last completed receipt as opaque JSON
// blobs, the way a browser keeps them in localStorage.
type Storage interface {
	SaveCart(state State) error
	LoadCart() (State, bool, error)
	SaveReceipt(receipt json.RawMessage) error
	LoadReceipt() (json.RawMessage, bool, error)
}

const (
	cartFile    = "cart.json"
	receiptFile = "last_order.json"
)

// FileStorage keeps the blobs under a directory on the local disk.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) writeBlob(name string, data []byte) error {
	return os.WriteFile(filepath.Join(f.dir, name), data, 0o644)
}

func (f *FileStorage) readBlob(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileStorage) SaveCart(state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return f.writeBlob(cartFile, data)
}

func (f *FileStorage) LoadCart() (State, bool, error) {
	var state State

	data, found, err := f.readBlob(cartFile)
	if err != nil || !found {
		return state, false, err
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, false, err
	}

	return state, true, nil
}

func (f *FileStorage) SaveReceipt(receipt json.RawMessage) error {
	return f.writeBlob(receiptFile, receipt)
}

func (f *FileStorage) LoadReceipt() (json.RawMessage, bool, error) {
	data, found, err := f.readBlob(receiptFile)
	if err != nil || !found {
		return nil, false, err
	}
	return json.RawMessage(data), true, nil
}

// MemoryStorage backs the cart in tests.
type MemoryStorage struct {
	cart       *State
	receipt    json.RawMessage
	hasReceipt bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) SaveCart(state State) error {
	saved := state.clone()
	m.cart = &saved
	return nil
}

func (m *MemoryStorage) LoadCart() (State, bool, error) {
	if m.cart == nil {
		return State{}, false, nil
	}
	return m.cart.clone(), true, nil
}

func (m *MemoryStorage) SaveReceipt(receipt json.RawMessage) error {
	m.receipt = append(json.RawMessage(nil), receipt...)
	m.hasReceipt = true
	return nil
}

func (m *MemoryStorage) LoadReceipt() (json.RawMessage, bool, error) {
	if !m.hasReceipt {
		return nil, false, nil
	}
	return m.receipt, true, nil
}
