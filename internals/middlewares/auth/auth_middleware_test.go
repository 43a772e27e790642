package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/simakpelajar/qila-system/internals/configs"
)

// Token dummy (HS256) dengan claims {"name":"Budi","email":"budi@example.com"}.
// Signature-nya tidak diverifikasi di sisi ini, jadi isinya bebas.
const dummyToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
	"eyJuYW1lIjoiQnVkaSIsImVtYWlsIjoiYnVkaUBleGFtcGxlLmNvbSJ9." +
	"invalid-signature"

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", WebAuth(), func(c *fiber.Ctx) error {
		return c.SendString("name=" + UserName(c))
	})
	app.Get("/admin-only", WebAuth(), AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString("admin")
	})
	return app
}

func TestWebAuthRedirectsWithoutToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("tanpa token harus redirect, status %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/signin" {
		t.Fatalf("Location = %q, want /signin", loc)
	}
}

func TestWebAuthExposesClaims(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: configs.TokenCookie, Value: dummyToken})
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("token ada harus lolos, status %d", res.StatusCode)
	}
}

func TestAdminOnlyRedirectsNonAdmin(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: configs.TokenCookie, Value: dummyToken})
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("non-admin harus diarahkan keluar, status %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/user/overview-user" {
		t.Fatalf("Location = %q, want /user/overview-user", loc)
	}
}

func TestParseDisplayClaims(t *testing.T) {
	claims := ParseDisplayClaims(dummyToken)
	if claims.Name != "Budi" || claims.Email != "budi@example.com" {
		t.Fatalf("claims salah: %+v", claims)
	}

	// Token rusak: guard tetap memberi claims kosong, bukan error.
	if got := ParseDisplayClaims("bukan.jwt"); got.Name != "" || got.Email != "" {
		t.Fatalf("token rusak harus menghasilkan claims kosong: %+v", got)
	}
}
