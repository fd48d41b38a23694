package badgerkv

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// ErrKeyNotFound возвращается Get, если ключа нет
var ErrKeyNotFound = errors.New("badgerkv: key not found")

// Config параметры открытия базы
type Config struct {
	Path     string // каталог с файлами; обязателен, если InMemory=false
	InMemory bool
}

// Store - тонкая обертка над badger.DB для строковых ключей
type Store struct {
	db *badger.DB
}

func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	// внутренний логгер badger пишет в stderr и мешает выводу CLI
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("badgerkv: get %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("badgerkv: set %q: %w", key, err)
	}
	return nil
}

// Delete не считает ошибкой отсутствие ключа
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("badgerkv: delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
