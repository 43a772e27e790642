package dto

import (
	"time"

	helper "github.com/simakpelajar/qila-system/internals/helpers"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

// Palet warna badge kategori. Warna dipilih murni dari category_id,
// jadi kategori yang sama selalu tampil dengan warna yang sama di
// mana pun posisinya dalam list.
var categoryBadges = []string{
	"badge-blue",
	"badge-purple",
	"badge-green",
	"badge-red",
	"badge-yellow",
	"badge-pink",
}

func CategoryBadge(categoryID int) string {
	if categoryID < 1 {
		return categoryBadges[0]
	}
	return categoryBadges[(categoryID-1)%len(categoryBadges)]
}

// CourseRow: satu baris tabel kursus admin.
type CourseRow struct {
	CourseID     int
	Name         string
	Slug         string
	CreatedAt    string
	CategoryName string
	Badge        string
}

func ToCourseRow(c upstream.Course) CourseRow {
	row := CourseRow{
		CourseID:     c.CourseID,
		Name:         c.Name,
		Slug:         c.Slug,
		CategoryName: "Uncategorized",
	}
	if !c.CreatedAt.IsZero() {
		row.CreatedAt = c.CreatedAt.Format("2 January 2006")
	} else {
		row.CreatedAt = time.Now().Format("2 January 2006")
	}
	if c.Category != nil {
		row.CategoryName = c.Category.Name
		row.Badge = CategoryBadge(c.Category.CategoryID)
	} else {
		row.Badge = CategoryBadge(0)
	}
	return row
}

// FilterCourses: subset kursus yang nama atau nama kategorinya memuat
// query (case-insensitive). List asli tidak disentuh.
func FilterCourses(courses []upstream.Course, query string) []upstream.Course {
	if query == "" {
		return courses
	}
	return helper.Filter(courses, func(c upstream.Course) bool {
		if helper.ContainsFold(c.Name, query) {
			return true
		}
		return c.Category != nil && helper.ContainsFold(c.Category.Name, query)
	})
}
