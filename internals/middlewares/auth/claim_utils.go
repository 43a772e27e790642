package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

/* ======== Locals keys ======== */

const (
	LocToken = "token"
	LocName  = "user_name"
	LocEmail = "user_email"
)

// DisplayClaims: isi token yang dipakai untuk tampilan saja (sapaan,
// routing admin/siswa). Front end tidak memegang secret backend, jadi
// token TIDAK diverifikasi di sini — verifikasi terjadi di backend
// pada setiap panggilan API.
type DisplayClaims struct {
	Name  string
	Email string
}

// ParseDisplayClaims membaca claims tanpa verifikasi signature.
// Token yang tidak bisa diparse diperlakukan "ada tapi buram":
// guard tetap lolos, tampilan memakai default.
func ParseDisplayClaims(tokenString string) DisplayClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return DisplayClaims{}
	}

	out := DisplayClaims{}
	if v, ok := claims["name"].(string); ok {
		out.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	}
	return out
}

/* ======== Accessors untuk handler ======== */

func Token(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocToken).(string); ok {
		return v
	}
	return ""
}

func UserName(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocName).(string); ok {
		return v
	}
	return ""
}

func UserEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocEmail).(string); ok {
		return v
	}
	return ""
}
