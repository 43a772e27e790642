package quiz

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	timers := map[int]int{11: 25, 22: 7}
	if err := store.Save("kursus-go", timers); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load("kursus-go")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got[11] != 25 || got[22] != 7 {
		t.Fatalf("load tidak cocok: %v", got)
	}
}

func TestFileStoreLoadMissingSlug(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	got, err := store.Load("belum-pernah")
	if err != nil {
		t.Fatalf("slug tanpa file harus mengembalikan map kosong, dapat error %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("harus kosong, dapat %v", got)
	}
}

func TestFileStoreCorruptFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path := filepath.Join(dir, "quiz_kursus-go_timers.json")
	if err := os.WriteFile(path, []byte("{bukan json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := store.Load("kursus-go")
	if err != nil {
		t.Fatalf("file rusak harus dianggap kosong, dapat error %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("harus kosong, dapat %v", got)
	}
}

func TestFileStoreClear(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save("kursus-go", map[int]int{11: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear("kursus-go"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := store.Load("kursus-go")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("setelah clear harus kosong, dapat %v", got)
	}

	// Clear pada slug tanpa file bukan error.
	if err := store.Clear("belum-pernah"); err != nil {
		t.Fatalf("clear slug kosong: %v", err)
	}
}

func TestFileStoreIsolatesSlugs(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save("kursus-a", map[int]int{1: 10}); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if err := store.Save("kursus-b", map[int]int{1: 20}); err != nil {
		t.Fatalf("save b: %v", err)
	}
	if err := store.Clear("kursus-a"); err != nil {
		t.Fatalf("clear a: %v", err)
	}

	got, err := store.Load("kursus-b")
	if err != nil {
		t.Fatalf("load b: %v", err)
	}
	if got[1] != 20 {
		t.Fatalf("slug lain tidak boleh terpengaruh, dapat %v", got)
	}
}
