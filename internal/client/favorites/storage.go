package favorites

import (
	"errors"
	"sync"

	"github.com/Abhishek10293/PropertyManagement/pkg/badgerkv"
)

// KeyValueStorage - постоянное хранилище "ключ - значение" клиента
type KeyValueStorage interface {
	// Get возвращает ok=false, если ключа нет
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// MemoryStorage живет до конца процесса
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryStorage) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// BadgerStorage хранит данные CLI на диске
type BadgerStorage struct {
	store *badgerkv.Store
}

func NewBadgerStorage(store *badgerkv.Store) *BadgerStorage {
	return &BadgerStorage{store: store}
}

func (s *BadgerStorage) Get(key string) ([]byte, bool, error) {
	v, err := s.store.Get(key)
	if errors.Is(err, badgerkv.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *BadgerStorage) Set(key string, value []byte) error {
	return s.store.Set(key, value)
}

func (s *BadgerStorage) Remove(key string) error {
	return s.store.Delete(key)
}
