package quiz

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/simakpelajar/qila-system/internals/upstream"
)

// QuestionSeconds: jatah waktu default satu soal.
const QuestionSeconds = 30

// Ambang aba-aba audio. Sekali lewat, sekali bunyi.
const (
	cueTicking = 9
	cueAlarm   = 5
)

// Umur session di manager. Session selesai dibiarkan sebentar supaya
// halaman hasil masih bisa dirender, session terbengkalai disapu
// setelah TTL.
const (
	completedGrace = 10 * time.Minute
	sessionTTL     = 6 * time.Hour
)

// ErrSubmitTooEarly: submit manual hanya sah di soal terakhir.
var ErrSubmitTooEarly = errors.New("selesaikan semua soal dulu sebelum submit")

type State string

const (
	StateInProgress State = "in_progress"
	StateSubmitting State = "submitting"
	StateCompleted  State = "completed"
)

// Submitter: bagian dari upstream client yang dibutuhkan session.
// Dipisah sebagai interface supaya test bisa menyuntik backend palsu.
type Submitter interface {
	SubmitAnswers(ctx context.Context, slug string, req upstream.SubmitAnswersRequest) (*upstream.QuizResult, error)
}

// Session adalah state machine pengerjaan quiz satu siswa pada satu
// slug kursus: index soal aktif, pilihan jawaban, countdown per soal
// dengan sisa waktu yang dipersistenkan, dan submit batch di akhir.
// Countdown dijalankan satu goroutine milik session dan berhenti pasti
// saat Close, jadi tidak ada timer yatim setelah halaman ditinggal.
type Session struct {
	ID   string
	Slug string

	mu          sync.Mutex
	state       State
	questions   []upstream.QuizQuestion
	idx         int
	answers     map[int]int
	timers      map[int]int
	timeLeft    int
	timerActive bool
	submitting  bool
	result      *upstream.QuizResult
	createdAt   time.Time
	completedAt time.Time

	store  TimerStore
	submit Submitter
	log    *zap.Logger

	events   chan Event
	stop     chan struct{}
	stopOnce sync.Once
}

func newSession(id, slug string, questions []upstream.QuizQuestion, store TimerStore, submit Submitter, log *zap.Logger) *Session {
	timers, err := store.Load(slug)
	if err != nil {
		log.Warn("gagal memuat timer tersimpan, mulai kosong", zap.String("slug", slug), zap.Error(err))
		timers = map[int]int{}
	}

	s := &Session{
		ID:        id,
		Slug:      slug,
		state:     StateInProgress,
		questions: questions,
		answers:   map[int]int{},
		timers:    timers,
		store:     store,
		submit:    submit,
		log:       log,
		events:    make(chan Event, 32),
		stop:      make(chan struct{}),
		createdAt: time.Now(),
	}
	s.timeLeft = s.savedOrDefault(questions[0].QuestionID)
	s.timerActive = true
	return s
}

// start menjalankan task countdown satu detik milik session.
func (s *Session) start() {
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()
}

// Close menghentikan countdown secara deterministik. Aman dipanggil
// berulang (teardown websocket dan manager sama-sama memanggilnya).
func (s *Session) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Events: aliran kejadian untuk halaman quiz (websocket).
func (s *Session) Events() <-chan Event { return s.events }

func (s *Session) savedOrDefault(questionID int) int {
	if t := s.timers[questionID]; t > 0 {
		return t
	}
	return QuestionSeconds
}

// tick menjalankan satu detik countdown. Dipanggil oleh goroutine
// ticker; test memanggilnya langsung agar deterministik.
func (s *Session) tick() {
	s.mu.Lock()

	if s.state != StateInProgress || !s.timerActive {
		s.mu.Unlock()
		return
	}

	s.timeLeft--
	current := s.questions[s.idx]
	s.timers[current.QuestionID] = s.timeLeft
	if err := s.store.Save(s.Slug, s.timers); err != nil {
		s.log.Warn("gagal menyimpan timer", zap.String("slug", s.Slug), zap.Error(err))
	}

	if s.timeLeft > 0 {
		s.emit(Event{Kind: EventTick, Index: s.idx, TimeLeft: s.timeLeft})
		if s.timeLeft == cueTicking || s.timeLeft == cueAlarm {
			s.emit(Event{Kind: EventCue, Index: s.idx, TimeLeft: s.timeLeft})
		}
		s.mu.Unlock()
		return
	}

	// Waktu habis.
	s.timerActive = false
	s.emit(Event{Kind: EventTimeUp, Index: s.idx, Notice: noticeTimeUp})

	if s.idx == len(s.questions)-1 {
		// Soal terakhir: submit paksa dengan flag timeout. Jangan pegang
		// lock selama memanggil backend.
		s.mu.Unlock()
		go func() {
			_ = s.Submit(context.Background(), true)
		}()
		return
	}

	// Bukan terakhir: otomatis maju dengan jatah 30 detik baru.
	s.idx++
	s.timeLeft = QuestionSeconds
	s.timerActive = true
	s.emit(Event{Kind: EventAdvanced, Index: s.idx, TimeLeft: s.timeLeft, Notice: noticeMovedOn})
	s.mu.Unlock()
}

// Next maju satu soal; di soal terakhir berubah jadi submit manual.
func (s *Session) Next(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return nil
	}
	if s.idx == len(s.questions)-1 {
		s.mu.Unlock()
		return s.Submit(ctx, false)
	}

	s.idx++
	s.timeLeft = s.savedOrDefault(s.questions[s.idx].QuestionID)
	s.timerActive = true
	s.emit(Event{Kind: EventAdvanced, Index: s.idx, TimeLeft: s.timeLeft})
	s.mu.Unlock()
	return nil
}

// Previous mundur satu soal, hanya bila sisa waktu soal sebelumnya
// masih positif. Kalau sudah habis, no-op.
func (s *Session) Previous() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress || s.idx == 0 {
		return false
	}
	prev := s.questions[s.idx-1]
	remaining := s.timers[prev.QuestionID]
	if remaining <= 0 {
		return false
	}

	s.idx--
	s.timeLeft = remaining
	s.timerActive = true
	s.emit(Event{Kind: EventAdvanced, Index: s.idx, TimeLeft: s.timeLeft})
	return true
}

// Select mencatat jawaban untuk satu soal. Tidak menyentuh timer.
func (s *Session) Select(questionID, answerID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateCompleted {
		return
	}
	s.answers[questionID] = answerID
}

// Submit mengirim seluruh jawaban (sentinel 0 untuk yang kosong) plus
// flag timeout dalam satu request. Sukses: timer tersimpan dihapus dan
// hasil disimpan untuk ditampilkan. Gagal: state dipertahankan apa
// adanya, siswa mengulang submit manual.
func (s *Session) Submit(ctx context.Context, isTimeout bool) error {
	s.mu.Lock()
	if s.submitting || s.state == StateCompleted {
		s.mu.Unlock()
		return nil
	}
	if !isTimeout && s.idx != len(s.questions)-1 {
		// Tombol submit hanya muncul di soal terakhir; request yang
		// dikarang tangan tetap ditolak di sini.
		s.mu.Unlock()
		return ErrSubmitTooEarly
	}
	s.submitting = true
	s.state = StateSubmitting
	s.timerActive = false
	req := s.buildPayloadLocked(isTimeout)
	s.mu.Unlock()

	result, err := s.submit.SubmitAnswers(ctx, s.Slug, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		s.state = StateInProgress
		s.log.Error("submit jawaban gagal", zap.String("slug", s.Slug), zap.Bool("timeout", isTimeout), zap.Error(err))
		s.emit(Event{Kind: EventSubmitFailed, Index: s.idx, Notice: noticeFailed})
		return err
	}

	if err := s.store.Clear(s.Slug); err != nil {
		s.log.Warn("gagal menghapus timer tersimpan", zap.String("slug", s.Slug), zap.Error(err))
	}
	s.timers = map[int]int{}
	s.state = StateCompleted
	s.completedAt = time.Now()
	s.result = result
	s.emit(Event{Kind: EventCompleted, Index: s.idx, Notice: noticeCompleted, Result: result})
	// Session selesai tidak butuh countdown lagi; ticker dimatikan di
	// sini, tidak menunggu siswa membuka halaman hasil.
	s.Close()
	return nil
}

// expired menentukan kapan manager boleh menyapu session ini.
func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateCompleted {
		return now.Sub(s.completedAt) >= completedGrace
	}
	return now.Sub(s.createdAt) >= sessionTTL
}

func (s *Session) buildPayloadLocked(isTimeout bool) upstream.SubmitAnswersRequest {
	entries := make([]upstream.AnswerEntry, 0, len(s.questions))
	for _, q := range s.questions {
		entries = append(entries, upstream.AnswerEntry{
			QuestionID: q.QuestionID,
			AnswerID:   s.answers[q.QuestionID], // 0 = tidak dijawab
		})
	}
	return upstream.SubmitAnswersRequest{Answers: entries, IsTimeout: isTimeout}
}

// emit tidak pernah memblokir; kalau tidak ada yang mendengarkan,
// event dibuang.
func (s *Session) emit(ev Event) {
	select {
	case s.events <- ev:
	default:
	}
}

// Snapshot: potret state untuk dirender handler.
type Snapshot struct {
	Index       int
	Total       int
	Question    upstream.QuizQuestion
	TimeLeft    int
	TimerActive bool
	Answers     map[int]int
	State       State
	Result      *upstream.QuizResult
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return Snapshot{
		Index:       s.idx,
		Total:       len(s.questions),
		Question:    s.questions[s.idx],
		TimeLeft:    s.timeLeft,
		TimerActive: s.timerActive,
		Answers:     answers,
		State:       s.state,
		Result:      s.result,
	}
}
