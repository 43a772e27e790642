package upstream

import (
	"errors"
	"fmt"
)

var (
	// Token ditolak backend (401). Penanganan: hapus cookie, redirect signin.
	ErrUnauthorized = errors.New("upstream: unauthorized")

	// Resource tidak ditemukan (404), mis. slug quiz tanpa soal.
	ErrNotFound = errors.New("upstream: not found")
)

// StatusError membawa status non-2xx lain apa adanya ke pemanggil.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream: status %d", e.Code)
	}
	return fmt.Sprintf("upstream: status %d: %s", e.Code, e.Message)
}

// FieldErrors: error validasi per-field dari backend, dipetakan balik ke
// form oleh handler bila field-nya dikenali.
type FieldErrors struct {
	Code   int
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	return fmt.Sprintf("upstream: validation failed (%d fields)", len(e.Fields))
}
