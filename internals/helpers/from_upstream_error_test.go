package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/simakpelajar/qila-system/internals/configs"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

func TestFromUpstreamErrorUnauthorizedClearsTokenAndRedirects(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", func(c *fiber.Ctx) error {
		return FromUpstreamError(c, upstream.ErrUnauthorized, "/user/overview-user", "")
	})

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: configs.TokenCookie, Value: "token-basi"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != "/signin" {
		t.Fatalf("Location = %q, want /signin", loc)
	}

	var cleared bool
	for _, ck := range resp.Cookies() {
		if ck.Name != configs.TokenCookie {
			continue
		}
		cleared = true
		if ck.Value != "" {
			t.Fatalf("cookie token harus dikosongkan, dapat %q", ck.Value)
		}
		if ck.Expires.IsZero() || !ck.Expires.Before(time.Now()) {
			t.Fatalf("cookie token harus kedaluwarsa, dapat expires %v", ck.Expires)
		}
	}
	if !cleared {
		t.Fatal("response harus membuang cookie token")
	}
}

func TestFromUpstreamErrorOtherErrorsFlashAndStay(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", func(c *fiber.Ctx) error {
		return FromUpstreamError(c, upstream.ErrNotFound, "/user/courses", "Kursus tidak ditemukan")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != "/user/courses" {
		t.Fatalf("Location = %q, want /user/courses", loc)
	}

	var hasFlash bool
	for _, ck := range resp.Cookies() {
		if ck.Name == flashCookie && ck.Value != "" {
			hasFlash = true
		}
	}
	if !hasFlash {
		t.Fatal("error selain 401 harus meninggalkan flash untuk halaman tujuan")
	}
}
