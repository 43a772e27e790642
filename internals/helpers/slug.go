package helper

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var slugNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug menormalkan nama jadi slug: huruf kecil, spasi dan
// karakter lain jadi tanda hubung.
func GenerateSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugNonAlnum.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// GenerateUniqueSlug menambahkan timestamp supaya slug kursus tidak
// bentrok (keunikan sesungguhnya tetap dijaga backend).
func GenerateUniqueSlug(name string) string {
	return fmt.Sprintf("%s-%d", GenerateSlug(name), time.Now().UnixMilli())
}
