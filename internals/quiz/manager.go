package quiz

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/simakpelajar/qila-system/internals/upstream"
)

// Interval janitor menyapu session kedaluwarsa.
const sweepEvery = time.Minute

// Manager memegang seluruh session quiz yang sedang berjalan. Satu
// goroutine janitor menyapu session selesai ataupun terbengkalai
// supaya map dan goroutine countdown tidak menumpuk.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	store    TimerStore
	logger   *zap.Logger

	done     chan struct{}
	doneOnce sync.Once
}

func NewManager(store TimerStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go m.janitor()
	return m
}

func (m *Manager) janitor() {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep(time.Now())
		}
	}
}

// sweep mengevakuasi session yang sudah lewat umurnya. Dipanggil
// janitor; test memanggilnya langsung dengan jam buatan.
func (m *Manager) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, session := range m.sessions {
		if !session.expired(now) {
			continue
		}
		session.Close()
		m.logger.Info("session quiz kedaluwarsa disapu",
			zap.String("sessionID", id),
			zap.String("slug", session.Slug))
		delete(m.sessions, id)
	}
}

// Stop mematikan janitor dan menutup seluruh session tersisa.
func (m *Manager) Stop() {
	m.doneOnce.Do(func() { close(m.done) })

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, session := range m.sessions {
		session.Close()
		delete(m.sessions, id)
	}
}

// CreateSession memulai pengerjaan quiz: soal sudah dimuat pemanggil,
// sisa waktu tersimpan untuk slug ini ikut dipulihkan, lalu countdown
// soal pertama langsung berjalan.
func (m *Manager) CreateSession(slug string, questions []upstream.QuizQuestion, submit Submitter) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := newSession(uuid.New().String(), slug, questions, m.store, submit, m.logger)
	session.start()
	m.sessions[session.ID] = session

	m.logger.Info("session quiz dibuat",
		zap.String("sessionID", session.ID),
		zap.String("slug", slug),
		zap.Int("questions", len(questions)))
	return session
}

func (m *Manager) GetSession(sessionID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[sessionID]
	return session, ok
}

// EndSession menghentikan countdown dan melepas session dari manager.
func (m *Manager) EndSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[sessionID]; ok {
		session.Close()
		m.logger.Info("session quiz berakhir", zap.String("sessionID", sessionID), zap.String("slug", session.Slug))
		delete(m.sessions, sessionID)
	}
}
