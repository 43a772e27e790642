package quiz

import "github.com/simakpelajar/qila-system/internals/upstream"

// EventKind membedakan pesan yang dialirkan ke halaman quiz lewat
// websocket. Halaman hanya menampilkan; tidak ada keputusan di sana.
type EventKind string

const (
	// Tick: sisa waktu soal aktif berkurang satu detik.
	EventTick EventKind = "tick"

	// Cue: aba-aba audio satu kali di ambang 9s dan 5s.
	EventCue EventKind = "cue"

	// TimeUp: waktu soal aktif habis ("Waktu habis!").
	EventTimeUp EventKind = "time_up"

	// Advanced: pindah soal (manual atau karena waktu habis).
	EventAdvanced EventKind = "advanced"

	// Completed: submit sukses, hasil dari backend siap ditampilkan.
	EventCompleted EventKind = "completed"

	// SubmitFailed: submit gagal, state dipertahankan, retry manual.
	EventSubmitFailed EventKind = "submit_failed"
)

type Event struct {
	Kind     EventKind            `json:"kind"`
	Index    int                  `json:"index"`
	TimeLeft int                  `json:"time_left"`
	Notice   string               `json:"notice,omitempty"`
	Result   *upstream.QuizResult `json:"result,omitempty"`
}

// Teks notifikasi mengikuti UI lama.
const (
	noticeTimeUp    = "Waktu habis!"
	noticeMovedOn   = "Pindah ke soal berikutnya karena waktu habis"
	noticeCompleted = "Quiz berhasil diselesaikan!"
	noticeFailed    = "Gagal mengirim jawaban"
)
