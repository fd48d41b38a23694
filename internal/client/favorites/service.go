package favorites

import (
	"encoding/json"
	"sync"

	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
)

// StorageKey - ключ, под которым лежит JSON-массив идентификаторов
const StorageKey = "property-favorites"

// Service - множество избранных объявлений поверх KeyValueStorage.
// Порядок добавления сохраняется. Сбои хранилища не пробрасываются:
// чтение дает пустой список, запись пишется в лог на уровне debug.
type Service struct {
	mu      sync.Mutex
	storage KeyValueStorage
	logger  port.LoggerPort
}

func NewService(storage KeyValueStorage, logger port.LoggerPort) *Service {
	return &Service{
		storage: storage,
		logger:  logger.WithFields(port.Fields{"component": "FavoritesService"}),
	}
}

func (s *Service) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Service) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.load(), id) >= 0
}

func (s *Service) Count() int {
	return len(s.List())
}

// Add идемпотентна
func (s *Service) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load()
	if indexOf(ids, id) >= 0 {
		return
	}
	s.save(append(ids, id))
}

func (s *Service) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load()
	i := indexOf(ids, id)
	if i < 0 {
		return
	}
	s.save(append(ids[:i], ids[i+1:]...))
}

// Toggle возвращает новое состояние: true - объявление теперь в избранном
func (s *Service) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load()
	if i := indexOf(ids, id); i >= 0 {
		s.save(append(ids[:i], ids[i+1:]...))
		return false
	}
	s.save(append(ids, id))
	return true
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Remove(StorageKey); err != nil {
		s.logger.Debug("Failed to clear favorites", port.Fields{"error": err.Error()})
	}
}

// Sync оставляет только идентификаторы из liveIDs, сохраняя порядок избранного.
// Хранилище переписывается, только если что-то удалено.
func (s *Service) Sync(liveIDs []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := make(map[string]struct{}, len(liveIDs))
	for _, id := range liveIDs {
		live[id] = struct{}{}
	}

	ids := s.load()
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := live[id]; ok {
			kept = append(kept, id)
		}
	}

	if len(kept) != len(ids) {
		s.logger.Debug("Stale favorites dropped", port.Fields{"dropped": len(ids) - len(kept)})
		s.save(kept)
	}
	return append([]string{}, kept...)
}

func (s *Service) load() []string {
	raw, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Debug("Failed to read favorites", port.Fields{"error": err.Error()})
		return []string{}
	}
	if !ok {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.logger.Debug("Stored favorites are corrupt, treating as empty", port.Fields{"error": err.Error()})
		return []string{}
	}
	return dedupe(ids)
}

func (s *Service) save(ids []string) {
	raw, err := json.Marshal(ids)
	if err != nil {
		s.logger.Debug("Failed to encode favorites", port.Fields{"error": err.Error()})
		return
	}
	if err := s.storage.Set(StorageKey, raw); err != nil {
		s.logger.Debug("Failed to write favorites", port.Fields{"error": err.Error()})
	}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// dedupe: в хранилище могли попасть повторы, набор не должен их содержать
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
