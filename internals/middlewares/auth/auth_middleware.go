package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/simakpelajar/qila-system/internals/configs"
)

// WebAuth menjaga subtree yang butuh login. Cek-nya biner: ada token
// tersimpan atau tidak. Tanpa token ⇒ redirect ke /signin tanpa
// merender apa pun. Token kedaluwarsa ketahuan belakangan lewat 401
// dari backend, bukan di sini.
func WebAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Cookies(configs.TokenCookie))
		if token == "" {
			return c.Redirect("/signin", fiber.StatusFound)
		}

		claims := ParseDisplayClaims(token)
		c.Locals(LocToken, token)
		c.Locals(LocName, claims.Name)
		c.Locals(LocEmail, claims.Email)
		return c.Next()
	}
}

// AdminOnly membatasi subtree admin untuk akun admin; akun lain
// diarahkan ke area siswa.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserEmail(c) != configs.AdminEmail {
			return c.Redirect("/user/overview-user", fiber.StatusFound)
		}
		return c.Next()
	}
}

// ClearToken menghapus cookie token (logout atau 401 dari backend).
func ClearToken(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     configs.TokenCookie,
		Value:    "",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}

// SetToken menyimpan bearer token hasil login di cookie sesi.
func SetToken(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     configs.TokenCookie,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
