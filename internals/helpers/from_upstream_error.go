package helper

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/simakpelajar/qila-system/internals/configs"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

// FromUpstreamError menerjemahkan error client backend ke perilaku web:
//   - 401: token dibuang, redirect ke /signin (token kedaluwarsa/invalid)
//   - 404: redirect ke fallback dengan flash error
//   - lainnya: flash error, tetap di fallback
//
// Handler memanggil ini di jalur gagal fetch, lalu `return` hasilnya.
func FromUpstreamError(c *fiber.Ctx, err error, fallback, notice string) error {
	if errors.Is(err, upstream.ErrUnauthorized) {
		c.Cookie(&fiber.Cookie{
			Name:     configs.TokenCookie,
			Value:    "",
			MaxAge:   -1,
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
		})
		return c.Redirect("/signin", fiber.StatusFound)
	}

	if notice == "" {
		notice = "Terjadi kesalahan saat mengambil data"
	}
	SetFlash(c, "error", notice)
	return c.Redirect(fallback, fiber.StatusFound)
}
