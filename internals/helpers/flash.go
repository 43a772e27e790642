package helper

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// Flash: notifikasi sekali-tampil antar redirect (pengganti toast).
// Disimpan di cookie pendek dan dihapus saat dibaca.

const (
	flashCookie     = "flash"
	flashKindCookie = "flash_kind"
)

type Flash struct {
	Kind    string // "success" | "error" | "warning"
	Message string
}

func SetFlash(c *fiber.Ctx, kind, message string) {
	c.Cookie(&fiber.Cookie{Name: flashCookie, Value: url.QueryEscape(message), MaxAge: 60, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: flashKindCookie, Value: kind, MaxAge: 60, HTTPOnly: true})
}

func PopFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		msg = raw
	}
	kind := c.Cookies(flashKindCookie)
	if kind == "" {
		kind = "success"
	}

	c.Cookie(&fiber.Cookie{Name: flashCookie, Value: "", MaxAge: -1, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: flashKindCookie, Value: "", MaxAge: -1, HTTPOnly: true})
	return &Flash{Kind: kind, Message: msg}
}
