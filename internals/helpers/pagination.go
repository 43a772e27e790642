package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 0

// Params pagination sisi klien: seluruh list sudah ada di memori,
// tinggal dipotong per halaman. Page mulai dari 0 (mengikuti UI lama).
type Params struct {
	Page    int
	PerPage int
}

// ParseFiber mengambil ?page= dari query. PerPage ditentukan per-view
// (5 atau 10), bukan dari query.
func ParseFiber(c *fiber.Ctx, perPage int) Params {
	page := atoiDefault(strings.TrimSpace(c.Query("page")), DefaultPage)
	if page < 0 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = 10
	}
	return Params{Page: page, PerPage: perPage}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// PageCount = ceil(total / perPage).
func PageCount(total, perPage int) int {
	if total <= 0 || perPage < 1 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(perPage)))
}

// ClampPage menjaga page tetap menunjuk halaman yang berisi setelah
// list hasil filter menyusut. List kosong ⇒ page 0.
func ClampPage(page, total, perPage int) int {
	count := PageCount(total, perPage)
	if count == 0 {
		return 0
	}
	if page >= count {
		return count - 1
	}
	if page < 0 {
		return 0
	}
	return page
}

// Paginate memotong halaman ke-p: items[p*perPage : p*perPage+perPage].
func Paginate[T any](items []T, p Params) []T {
	start := p.Page * p.PerPage
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := start + p.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Filter mengembalikan subset items yang lolos keep, tanpa menyentuh
// list aslinya.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// ContainsFold: pencocokan substring case-insensitive untuk search box.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Meta untuk response / template
type Meta struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

func BuildMeta(total int, p Params) Meta {
	totalPages := PageCount(total, p.PerPage)
	return Meta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    p.Page > 0,
		HasNext:    totalPages > 0 && p.Page < totalPages-1,
	}
}
