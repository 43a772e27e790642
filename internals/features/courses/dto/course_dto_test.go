package dto

import (
	"testing"
	"time"

	"github.com/simakpelajar/qila-system/internals/upstream"
)

func TestCategoryBadgeIsStablePerCategory(t *testing.T) {
	cases := map[int]string{
		1: "badge-blue",
		2: "badge-purple",
		6: "badge-pink",
		7: "badge-blue", // palet berputar setiap 6 kategori
		8: "badge-purple",
	}
	for id, want := range cases {
		if got := CategoryBadge(id); got != want {
			t.Errorf("CategoryBadge(%d) = %q, want %q", id, got, want)
		}
	}

	// ID tidak valid jatuh ke warna pertama, bukan panic.
	if got := CategoryBadge(0); got != "badge-blue" {
		t.Errorf("CategoryBadge(0) = %q", got)
	}
	if got := CategoryBadge(-3); got != "badge-blue" {
		t.Errorf("CategoryBadge(-3) = %q", got)
	}
}

func TestToCourseRow(t *testing.T) {
	created := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	course := upstream.Course{
		CourseID:  5,
		Name:      "Belajar Go",
		Slug:      "belajar-go",
		CreatedAt: created,
		Category:  &upstream.Category{CategoryID: 2, Name: "Backend"},
	}

	row := ToCourseRow(course)
	if row.CreatedAt != "7 March 2025" {
		t.Fatalf("format tanggal salah: %q", row.CreatedAt)
	}
	if row.CategoryName != "Backend" || row.Badge != "badge-purple" {
		t.Fatalf("kategori salah: %+v", row)
	}
}

func TestToCourseRowWithoutCategory(t *testing.T) {
	row := ToCourseRow(upstream.Course{CourseID: 1, Name: "Tanpa Kategori"})
	if row.CategoryName != "Uncategorized" {
		t.Fatalf("kursus tanpa kategori: %+v", row)
	}
}

func TestFilterCoursesMatchesNameAndCategory(t *testing.T) {
	courses := []upstream.Course{
		{CourseID: 1, Name: "Belajar Go", Category: &upstream.Category{Name: "Backend"}},
		{CourseID: 2, Name: "Dasar CSS", Category: &upstream.Category{Name: "Frontend"}},
		{CourseID: 3, Name: "Backend Lanjut"},
	}

	byName := FilterCourses(courses, "belajar")
	if len(byName) != 1 || byName[0].CourseID != 1 {
		t.Fatalf("pencarian nama salah: %+v", byName)
	}

	// "backend" cocok lewat nama kategori maupun nama kursus.
	byCategory := FilterCourses(courses, "backend")
	if len(byCategory) != 2 {
		t.Fatalf("pencarian kategori salah: %+v", byCategory)
	}

	if got := FilterCourses(courses, ""); len(got) != 3 {
		t.Fatalf("query kosong harus mengembalikan semua: %+v", got)
	}
	if len(courses) != 3 {
		t.Fatal("list asli tidak boleh berubah")
	}
}
