package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TimerStore menyimpan sisa waktu per soal untuk satu slug kursus,
// supaya countdown bisa dilanjutkan setelah navigasi bolak-balik.
// Peta dihapus begitu submit berhasil agar retake mulai bersih.
type TimerStore interface {
	Load(slug string) (map[int]int, error)
	Save(slug string, timers map[int]int) error
	Clear(slug string) error
}

// ===== File store (pengganti localStorage) =====

type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("timer store: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slug string) string {
	// Nama file mengikuti key lama di browser: quiz_<slug>_timers.
	safe := strings.ReplaceAll(slug, string(os.PathSeparator), "-")
	return filepath.Join(s.dir, "quiz_"+safe+"_timers.json")
}

func (s *FileStore) Load(slug string) (map[int]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(slug))
	if os.IsNotExist(err) {
		return map[int]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("timer store: load %s: %w", slug, err)
	}

	var timers map[int]int
	if err := json.Unmarshal(raw, &timers); err != nil {
		// File korup diperlakukan seperti tidak ada sesi tersimpan.
		return map[int]int{}, nil
	}
	return timers, nil
}

func (s *FileStore) Save(slug string, timers map[int]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(timers)
	if err != nil {
		return fmt.Errorf("timer store: encode %s: %w", slug, err)
	}
	if err := os.WriteFile(s.path(slug), raw, 0o644); err != nil {
		return fmt.Errorf("timer store: save %s: %w", slug, err)
	}
	return nil
}

func (s *FileStore) Clear(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(slug)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("timer store: clear %s: %w", slug, err)
	}
	return nil
}

// ===== Memory store (untuk test) =====

type MemoryStore struct {
	mu     sync.Mutex
	timers map[string]map[int]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{timers: make(map[string]map[int]int)}
}

func (s *MemoryStore) Load(slug string) (map[int]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := map[int]int{}
	for k, v := range s.timers[slug] {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) Save(slug string, timers map[int]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := map[int]int{}
	for k, v := range timers {
		cp[k] = v
	}
	s.timers[slug] = cp
	return nil
}

func (s *MemoryStore) Clear(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.timers, slug)
	return nil
}

// Has melaporkan apakah slug masih punya peta tersimpan (helper test).
func (s *MemoryStore) Has(slug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[slug]
	return ok
}
