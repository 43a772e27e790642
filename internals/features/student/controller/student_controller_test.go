package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"github.com/simakpelajar/qila-system/internals/upstream"
)

// testApp merender template asli supaya jalur handler ke halaman ikut
// teruji, bukan cuma penyusunan data.
func testApp(t *testing.T) *fiber.App {
	t.Helper()
	engine := html.New("../../../../views", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	engine.AddFunc("pages", func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	})
	return fiber.New(fiber.Config{Views: engine, ViewsLayout: "layouts/main"})
}

func stubBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/course-students", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":[
			{"id":1,"name":"Belajar Golang","slug":"belajar-golang","category_id":7,"questions":10,"score":80,"attempts":2,"succes_rate":80},
			{"id":2,"name":"Dasar Pemasaran","slug":"dasar-pemasaran","category_id":9,"questions":5,"score":0,"attempts":0,"succes_rate":0}
		]}`)
	})
	mux.HandleFunc("/category", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"data":[
			{"category_id":7,"name":"Pemrograman","slug":"pemrograman"},
			{"category_id":9,"name":"Marketing","slug":"marketing"}
		]}}`)
	})
	return httptest.NewServer(mux)
}

func TestCoursesResolvesCategoryNames(t *testing.T) {
	backend := stubBackend(t)
	defer backend.Close()

	app := testApp(t)
	ctrl := NewStudentController(upstream.New(backend.URL, zap.NewNop()), zap.NewNop())
	app.Get("/user/courses", ctrl.Courses)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/user/courses", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("baca body: %v", err)
	}
	page := string(body)

	// Nama kategori dipetakan dari category_id kursus.
	if !strings.Contains(page, "Pemrograman") || !strings.Contains(page, "Marketing") {
		t.Fatalf("kartu kursus harus menampilkan nama kategori, body:\n%s", page)
	}
	if !strings.Contains(page, "Belajar Golang") || !strings.Contains(page, "Dasar Pemasaran") {
		t.Fatal("semua kursus terdaftar harus dirender")
	}
}

func TestCoursesFiltersByCategoryAndSearch(t *testing.T) {
	backend := stubBackend(t)
	defer backend.Close()

	app := testApp(t)
	ctrl := NewStudentController(upstream.New(backend.URL, zap.NewNop()), zap.NewNop())
	app.Get("/user/courses", ctrl.Courses)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/user/courses?category=7", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("baca body: %v", err)
	}
	page := string(body)

	if !strings.Contains(page, "Belajar Golang") {
		t.Fatal("kursus dalam kategori terpilih harus tampil")
	}
	if strings.Contains(page, "Dasar Pemasaran") {
		t.Fatal("kursus di luar kategori terpilih tidak boleh tampil")
	}
}
