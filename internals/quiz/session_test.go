package quiz

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/simakpelajar/qila-system/internals/upstream"
)

type fakeSubmitter struct {
	mu     sync.Mutex
	calls  []upstream.SubmitAnswersRequest
	result *upstream.QuizResult
	err    error
	done   chan struct{}
}

func newFakeSubmitter(result *upstream.QuizResult, err error) *fakeSubmitter {
	return &fakeSubmitter{result: result, err: err, done: make(chan struct{}, 4)}
}

func (f *fakeSubmitter) SubmitAnswers(_ context.Context, _ string, req upstream.SubmitAnswersRequest) (*upstream.QuizResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	f.done <- struct{}{}
	return f.result, f.err
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSubmitter) lastCall(t *testing.T) upstream.SubmitAnswersRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("submitter belum pernah dipanggil")
	}
	return f.calls[len(f.calls)-1]
}

func threeQuestions() []upstream.QuizQuestion {
	return []upstream.QuizQuestion{
		{QuestionID: 11, Question: "Soal satu", Answers: []upstream.QuizAnswer{{AnswerID: 1}, {AnswerID: 2}}},
		{QuestionID: 22, Question: "Soal dua", Answers: []upstream.QuizAnswer{{AnswerID: 3}, {AnswerID: 4}}},
		{QuestionID: 33, Question: "Soal tiga", Answers: []upstream.QuizAnswer{{AnswerID: 5}, {AnswerID: 6}}},
	}
}

func testSession(t *testing.T, store TimerStore, submit Submitter, questions []upstream.QuizQuestion) *Session {
	t.Helper()
	// Countdown tidak dijalankan sebagai goroutine di test; tick()
	// dipanggil langsung supaya deterministik.
	return newSession("test-session", "kursus-go", questions, store, submit, zap.NewNop())
}

// moveToLast memosisikan session di soal terakhir; submit manual hanya
// sah dari sana.
func moveToLast(t *testing.T, s *Session) {
	t.Helper()
	s.mu.Lock()
	s.idx = len(s.questions) - 1
	s.mu.Unlock()
}

func drainEvents(s *Session) []Event {
	var out []Event
	for {
		select {
		case ev := <-s.Events():
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestNewSessionDefaultsToFullTime(t *testing.T) {
	s := testSession(t, NewMemoryStore(), newFakeSubmitter(nil, nil), threeQuestions())

	snap := s.Snapshot()
	if snap.TimeLeft != QuestionSeconds {
		t.Fatalf("soal pertama harus mulai %ds, dapat %d", QuestionSeconds, snap.TimeLeft)
	}
	if snap.Index != 0 || snap.Total != 3 || snap.State != StateInProgress {
		t.Fatalf("snapshot awal salah: %+v", snap)
	}
}

func TestNewSessionRestoresSavedTimers(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save("kursus-go", map[int]int{11: 17, 22: 4}); err != nil {
		t.Fatalf("save: %v", err)
	}

	s := testSession(t, store, newFakeSubmitter(nil, nil), threeQuestions())
	if got := s.Snapshot().TimeLeft; got != 17 {
		t.Fatalf("sisa waktu tersimpan harus dipulihkan, dapat %d", got)
	}
}

func TestTickDecrementsAndPersists(t *testing.T) {
	store := NewMemoryStore()
	s := testSession(t, store, newFakeSubmitter(nil, nil), threeQuestions())

	s.tick()
	if got := s.Snapshot().TimeLeft; got != QuestionSeconds-1 {
		t.Fatalf("tick harus mengurangi tepat 1 detik, dapat %d", got)
	}

	saved, err := store.Load("kursus-go")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if saved[11] != QuestionSeconds-1 {
		t.Fatalf("sisa waktu harus dipersistenkan per soal, dapat %v", saved)
	}
}

func TestCueEventsFireOncePerThreshold(t *testing.T) {
	s := testSession(t, NewMemoryStore(), newFakeSubmitter(nil, nil), threeQuestions())

	cues := map[int]int{}
	for s.Snapshot().TimeLeft > 1 {
		s.tick()
		for _, ev := range drainEvents(s) {
			if ev.Kind == EventCue {
				cues[ev.TimeLeft]++
			}
		}
	}

	if cues[9] != 1 || cues[5] != 1 {
		t.Fatalf("aba-aba harus tepat sekali di 9s dan 5s, dapat %v", cues)
	}
	if len(cues) != 2 {
		t.Fatalf("tidak boleh ada aba-aba di ambang lain: %v", cues)
	}
}

func TestTimeoutAdvancesWithFreshTime(t *testing.T) {
	store := NewMemoryStore()
	// Soal pertama tinggal 1 detik, soal kedua punya sisa 12 detik
	// tersimpan. Habisnya soal pertama harus memberi jatah PENUH pada
	// soal kedua, bukan sisa tersimpannya.
	if err := store.Save("kursus-go", map[int]int{11: 1, 22: 12}); err != nil {
		t.Fatalf("save: %v", err)
	}
	s := testSession(t, store, newFakeSubmitter(nil, nil), threeQuestions())

	s.tick()

	snap := s.Snapshot()
	if snap.Index != 1 {
		t.Fatalf("waktu habis harus maju otomatis, index = %d", snap.Index)
	}
	if snap.TimeLeft != QuestionSeconds {
		t.Fatalf("soal berikutnya harus mulai segar %ds, dapat %d", QuestionSeconds, snap.TimeLeft)
	}

	var sawTimeUp, sawAdvanced bool
	for _, ev := range drainEvents(s) {
		switch ev.Kind {
		case EventTimeUp:
			sawTimeUp = true
		case EventAdvanced:
			sawAdvanced = true
			if ev.Notice == "" {
				t.Fatal("pindah karena timeout harus membawa notice")
			}
		}
	}
	if !sawTimeUp || !sawAdvanced {
		t.Fatal("event time_up dan advanced harus terkirim")
	}
}

func TestTimeoutOnLastQuestionForcesSubmit(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save("kursus-go", map[int]int{33: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	submit := newFakeSubmitter(&upstream.QuizResult{Score: 70}, nil)
	questions := threeQuestions()
	s := testSession(t, store, submit, questions)

	// Posisikan di soal terakhir lewat jalur normal.
	if err := s.Next(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := s.Next(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}

	s.tick()

	select {
	case <-submit.done:
	case <-time.After(2 * time.Second):
		t.Fatal("submit paksa tidak pernah terjadi")
	}

	req := submit.lastCall(t)
	if !req.IsTimeout {
		t.Fatal("submit karena waktu habis harus membawa is_timeout=true")
	}
}

func TestNextRestoresSavedTimeAndSubmitsOnLast(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save("kursus-go", map[int]int{22: 12}); err != nil {
		t.Fatalf("save: %v", err)
	}
	submit := newFakeSubmitter(&upstream.QuizResult{Score: 90}, nil)
	s := testSession(t, store, submit, threeQuestions())

	if err := s.Next(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}
	snap := s.Snapshot()
	if snap.Index != 1 || snap.TimeLeft != 12 {
		t.Fatalf("next harus memulihkan sisa waktu tersimpan: %+v", snap)
	}

	if err := s.Next(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}
	if got := s.Snapshot().TimeLeft; got != QuestionSeconds {
		t.Fatalf("soal tanpa sisa tersimpan harus mulai %ds, dapat %d", QuestionSeconds, got)
	}

	// Di soal terakhir, Next menjadi submit manual.
	if err := s.Next(context.Background()); err != nil {
		t.Fatalf("submit lewat next: %v", err)
	}
	if submit.callCount() != 1 {
		t.Fatalf("submit harus terpanggil sekali, dapat %d", submit.callCount())
	}
	if submit.lastCall(t).IsTimeout {
		t.Fatal("submit manual tidak boleh membawa is_timeout")
	}
}

func TestPreviousGatedOnRemainingTime(t *testing.T) {
	store := NewMemoryStore()
	s := testSession(t, store, newFakeSubmitter(nil, nil), threeQuestions())

	if s.Previous() {
		t.Fatal("di soal pertama tidak ada previous")
	}

	// Maju, lalu habiskan sisa soal pertama.
	if err := s.Next(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}
	s.mu.Lock()
	s.timers[11] = 0
	s.mu.Unlock()
	if s.Previous() {
		t.Fatal("previous harus ditolak bila waktu soal sebelumnya habis")
	}

	s.mu.Lock()
	s.timers[11] = 7
	s.mu.Unlock()
	if !s.Previous() {
		t.Fatal("previous harus boleh bila masih ada sisa waktu")
	}
	snap := s.Snapshot()
	if snap.Index != 0 || snap.TimeLeft != 7 {
		t.Fatalf("previous harus melanjutkan sisa waktu: %+v", snap)
	}
}

func TestSubmitPayloadUsesSentinelForUnanswered(t *testing.T) {
	store := NewMemoryStore()
	submit := newFakeSubmitter(&upstream.QuizResult{Score: 50}, nil)
	s := testSession(t, store, submit, threeQuestions())

	// Hanya soal pertama dan ketiga dijawab.
	s.Select(11, 2)
	s.Select(33, 5)

	moveToLast(t, s)
	if err := s.Submit(context.Background(), false); err != nil {
		t.Fatalf("submit: %v", err)
	}

	req := submit.lastCall(t)
	if len(req.Answers) != 3 {
		t.Fatalf("payload harus memuat semua soal, dapat %d entri", len(req.Answers))
	}
	want := map[int]int{11: 2, 22: 0, 33: 5}
	for _, entry := range req.Answers {
		if entry.AnswerID != want[entry.QuestionID] {
			t.Fatalf("soal %d: answer_id = %d, want %d", entry.QuestionID, entry.AnswerID, want[entry.QuestionID])
		}
	}
}

func TestSubmitSuccessClearsTimersAndCompletes(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save("kursus-go", map[int]int{11: 5}); err != nil {
		t.Fatalf("save: %v", err)
	}
	result := &upstream.QuizResult{TotalQuestions: 3, WrongAnswers: 1, Score: 80, SuccesRate: 67}
	s := testSession(t, store, newFakeSubmitter(result, nil), threeQuestions())

	moveToLast(t, s)
	if err := s.Submit(context.Background(), false); err != nil {
		t.Fatalf("submit: %v", err)
	}

	snap := s.Snapshot()
	if snap.State != StateCompleted {
		t.Fatalf("state harus completed, dapat %s", snap.State)
	}
	if snap.Result == nil || snap.Result.Score != 80 {
		t.Fatalf("hasil backend harus tersimpan: %+v", snap.Result)
	}
	if store.Has("kursus-go") {
		t.Fatal("timer tersimpan harus dihapus setelah submit sukses")
	}

	// Submit ulang setelah selesai: no-op, backend tidak dipanggil lagi.
	if err := s.Submit(context.Background(), false); err != nil {
		t.Fatalf("submit ulang: %v", err)
	}
}

func TestSubmitFailureKeepsStateForRetry(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save("kursus-go", map[int]int{11: 5}); err != nil {
		t.Fatalf("save: %v", err)
	}
	submit := newFakeSubmitter(nil, errors.New("backend down"))
	s := testSession(t, store, submit, threeQuestions())
	s.Select(11, 1)

	moveToLast(t, s)
	if err := s.Submit(context.Background(), false); err == nil {
		t.Fatal("submit gagal harus mengembalikan error")
	}

	snap := s.Snapshot()
	if snap.State != StateInProgress {
		t.Fatalf("state harus kembali in_progress untuk retry, dapat %s", snap.State)
	}
	if snap.Answers[11] != 1 {
		t.Fatal("jawaban tidak boleh hilang saat submit gagal")
	}
	if !store.Has("kursus-go") {
		t.Fatal("timer tersimpan tidak boleh dihapus saat submit gagal")
	}

	var sawFailed bool
	for _, ev := range drainEvents(s) {
		if ev.Kind == EventSubmitFailed {
			sawFailed = true
		}
	}
	if !sawFailed {
		t.Fatal("event submit_failed harus terkirim")
	}
}

func TestSubmitRejectedBeforeLastQuestion(t *testing.T) {
	submit := newFakeSubmitter(&upstream.QuizResult{Score: 100}, nil)
	s := testSession(t, NewMemoryStore(), submit, threeQuestions())
	s.Select(11, 2)

	// Soal pertama dan kedua: submit manual ditolak, backend tidak
	// pernah dipanggil.
	for i := 0; i < 2; i++ {
		if err := s.Submit(context.Background(), false); !errors.Is(err, ErrSubmitTooEarly) {
			t.Fatalf("submit di soal %d harus ditolak, dapat %v", i, err)
		}
		if err := s.Next(context.Background()); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	if submit.callCount() != 0 {
		t.Fatalf("backend tidak boleh dipanggil sebelum soal terakhir, dapat %d call", submit.callCount())
	}
	if snap := s.Snapshot(); snap.State != StateInProgress || snap.Answers[11] != 2 {
		t.Fatalf("state dan jawaban harus utuh setelah penolakan: %+v", snap)
	}

	// Di soal terakhir submit manual sah.
	if err := s.Submit(context.Background(), false); err != nil {
		t.Fatalf("submit di soal terakhir: %v", err)
	}
	if submit.callCount() != 1 {
		t.Fatalf("backend harus dipanggil tepat sekali, dapat %d", submit.callCount())
	}
}

func TestSubmitSuccessStopsCountdown(t *testing.T) {
	s := testSession(t, NewMemoryStore(), newFakeSubmitter(&upstream.QuizResult{Score: 90}, nil), threeQuestions())

	moveToLast(t, s)
	if err := s.Submit(context.Background(), false); err != nil {
		t.Fatalf("submit: %v", err)
	}

	select {
	case <-s.stop:
	default:
		t.Fatal("stop channel harus tertutup setelah submit sukses")
	}

	// tick setelah selesai: no-op, waktu tidak bergerak.
	before := s.Snapshot().TimeLeft
	s.tick()
	if after := s.Snapshot().TimeLeft; after != before {
		t.Fatalf("tick setelah selesai tidak boleh mengubah waktu: %d -> %d", before, after)
	}
}

func TestManagerSweepEvictsCompletedAfterGrace(t *testing.T) {
	manager := NewManager(NewMemoryStore(), zap.NewNop())
	defer manager.Stop()

	s := manager.CreateSession("kursus-go", threeQuestions(), newFakeSubmitter(&upstream.QuizResult{Score: 75}, nil))
	moveToLast(t, s)
	if err := s.Submit(context.Background(), false); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Masih dalam masa tenggang: halaman hasil harus tetap bisa ambil
	// session.
	manager.sweep(time.Now())
	if _, ok := manager.GetSession(s.ID); !ok {
		t.Fatal("session selesai tidak boleh langsung disapu")
	}

	manager.sweep(time.Now().Add(completedGrace + time.Minute))
	if _, ok := manager.GetSession(s.ID); ok {
		t.Fatal("session selesai harus disapu setelah masa tenggang")
	}
}

func TestManagerSweepEvictsAbandonedAfterTTL(t *testing.T) {
	manager := NewManager(NewMemoryStore(), zap.NewNop())
	defer manager.Stop()

	s := manager.CreateSession("kursus-go", threeQuestions(), newFakeSubmitter(nil, nil))

	manager.sweep(time.Now().Add(time.Hour))
	if _, ok := manager.GetSession(s.ID); !ok {
		t.Fatal("session yang masih berjalan tidak boleh disapu sebelum TTL")
	}

	manager.sweep(time.Now().Add(sessionTTL + time.Minute))
	if _, ok := manager.GetSession(s.ID); ok {
		t.Fatal("session terbengkalai harus disapu setelah TTL")
	}
	select {
	case <-s.stop:
	default:
		t.Fatal("sweep harus menghentikan countdown session yang disapu")
	}
}

func TestManagerLifecycle(t *testing.T) {
	manager := NewManager(NewMemoryStore(), zap.NewNop())
	defer manager.Stop()
	submit := newFakeSubmitter(nil, nil)

	s := manager.CreateSession("kursus-go", threeQuestions(), submit)
	defer s.Close()

	got, ok := manager.GetSession(s.ID)
	if !ok || got != s {
		t.Fatal("session yang dibuat harus bisa diambil kembali")
	}

	manager.EndSession(s.ID)
	if _, ok := manager.GetSession(s.ID); ok {
		t.Fatal("session yang diakhiri tidak boleh tersisa di manager")
	}
}
