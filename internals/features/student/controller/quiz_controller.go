package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/simakpelajar/qila-system/internals/configs"
	helper "github.com/simakpelajar/qila-system/internals/helpers"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/quiz"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

const quizSessionCookie = "quiz_session"

// QuizController menjembatani halaman quiz dengan session engine:
// GET merender potret state, POST meneruskan aksi siswa (jawab,
// next, previous, submit), dan websocket mengalirkan event countdown.
type QuizController struct {
	API     *upstream.Client
	Manager *quiz.Manager
	Log     *zap.Logger
}

func NewQuizController(api *upstream.Client, manager *quiz.Manager, log *zap.Logger) *QuizController {
	return &QuizController{API: api, Manager: manager, Log: log}
}

func (ctrl *QuizController) api(c *fiber.Ctx) *upstream.Client {
	return ctrl.API.WithToken(authmw.Token(c))
}

// session mengambil session aktif milik request (cookie) dan memastikan
// slug-nya cocok dengan URL.
func (ctrl *QuizController) session(c *fiber.Ctx, slug string) (*quiz.Session, bool) {
	id := c.Cookies(quizSessionCookie)
	if id == "" {
		return nil, false
	}
	s, ok := ctrl.Manager.GetSession(id)
	if !ok || s.Slug != slug {
		return nil, false
	}
	return s, true
}

// GET /user/quiz/:slug
func (ctrl *QuizController) Page(c *fiber.Ctx) error {
	slug := c.Params("slug")

	s, ok := ctrl.session(c, slug)
	if !ok {
		api := ctrl.api(c)
		questions, err := api.QuizQuestions(c.UserContext(), slug)
		if err != nil {
			return helper.FromUpstreamError(c, err, "/user/courses", "Failed to load quiz.")
		}
		if len(questions) == 0 {
			helper.SetFlash(c, "error", "Quiz belum memiliki soal")
			return c.Redirect("/user/courses", fiber.StatusFound)
		}

		s = ctrl.Manager.CreateSession(slug, questions, api)
		c.Cookie(&fiber.Cookie{
			Name:     quizSessionCookie,
			Value:    s.ID,
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}

	snap := s.Snapshot()
	if snap.State == quiz.StateCompleted {
		return ctrl.renderResult(c, s, snap)
	}

	return c.Render("user/quiz", fiber.Map{
		"Title":     "Quiz",
		"UserName":  authmw.UserName(c),
		"Slug":      slug,
		"SessionID": s.ID,
		"Snap":      snap,
		"Selected":  snap.Answers[snap.Question.QuestionID],
		"Flash":     helper.PopFlash(c),
	})
}

// renderResult menampilkan skor akhir lalu melepas session. Halaman
// hasil mengarahkan balik ke daftar kursus setelah jeda singkat.
func (ctrl *QuizController) renderResult(c *fiber.Ctx, s *quiz.Session, snap quiz.Snapshot) error {
	ctrl.Manager.EndSession(s.ID)
	c.Cookie(&fiber.Cookie{Name: quizSessionCookie, Value: "", MaxAge: -1, HTTPOnly: true})

	return c.Render("user/quiz_result", fiber.Map{
		"Title":         "Hasil Quiz",
		"UserName":      authmw.UserName(c),
		"Result":        snap.Result,
		"RedirectAfter": int(configs.ResultRedirectDelay.Seconds()),
	})
}

// POST /user/quiz/:slug/answer
func (ctrl *QuizController) Answer(c *fiber.Ctx) error {
	slug := c.Params("slug")
	s, ok := ctrl.session(c, slug)
	if !ok {
		return c.Redirect("/user/quiz/"+slug, fiber.StatusFound)
	}

	questionID, err1 := strconv.Atoi(c.FormValue("question_id"))
	answerID, err2 := strconv.Atoi(c.FormValue("answer_id"))
	if err1 != nil || err2 != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Jawaban tidak valid")
	}

	s.Select(questionID, answerID)
	return c.Redirect("/user/quiz/"+slug, fiber.StatusFound)
}

// POST /user/quiz/:slug/next
func (ctrl *QuizController) Next(c *fiber.Ctx) error {
	slug := c.Params("slug")
	s, ok := ctrl.session(c, slug)
	if !ok {
		return c.Redirect("/user/quiz/"+slug, fiber.StatusFound)
	}

	if err := s.Next(c.UserContext()); err != nil {
		ctrl.Log.Error("submit lewat tombol next gagal", zap.String("slug", slug), zap.Error(err))
		helper.SetFlash(c, "error", "Gagal mengirim jawaban, coba lagi")
	}
	return c.Redirect("/user/quiz/"+slug, fiber.StatusFound)
}

// POST /user/quiz/:slug/previous
func (ctrl *QuizController) Previous(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if s, ok := ctrl.session(c, slug); ok {
		s.Previous()
	}
	return c.Redirect("/user/quiz/"+slug, fiber.StatusFound)
}

// POST /user/quiz/:slug/submit
func (ctrl *QuizController) Submit(c *fiber.Ctx) error {
	slug := c.Params("slug")
	s, ok := ctrl.session(c, slug)
	if !ok {
		return c.Redirect("/user/quiz/"+slug, fiber.StatusFound)
	}

	if err := s.Submit(c.UserContext(), false); err != nil {
		if errors.Is(err, quiz.ErrSubmitTooEarly) {
			helper.SetFlash(c, "error", "Selesaikan semua soal dulu sebelum submit")
		} else {
			helper.SetFlash(c, "error", "Gagal mengirim jawaban, coba lagi")
		}
	}
	return c.Redirect("/user/quiz/"+slug, fiber.StatusFound)
}

// Upgrade menolak request non-websocket sebelum sampai ke handler ws.
func (ctrl *QuizController) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Events: websocket yang mengalirkan event session (tick, cue, pindah
// soal, selesai) ke halaman quiz. Satu koneksi per halaman; koneksi
// putus tidak menghentikan countdown — itu urusan EndSession.
func (ctrl *QuizController) Events(conn *websocket.Conn) {
	defer conn.Close()

	s, ok := ctrl.Manager.GetSession(conn.Cookies(quizSessionCookie))
	if !ok || s.Slug != conn.Params("slug") {
		_ = conn.WriteJSON(fiber.Map{"kind": "error", "message": "session tidak ditemukan"})
		return
	}

	// Reader hanya untuk mendeteksi close dari browser.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case ev := <-s.Events():
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
			if ev.Kind == quiz.EventCompleted {
				return
			}
		}
	}
}
