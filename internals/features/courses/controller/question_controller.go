package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "github.com/simakpelajar/qila-system/internals/helpers"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

// QuestionController mengelola soal + jawaban satu kursus (halaman
// detail kursus admin). Aturan satu-jawaban-benar dijaga di form:
// tepat satu opsi ditandai benar, skor menempel pada jawaban benar.
type QuestionController struct {
	API *upstream.Client
	Log *zap.Logger
}

func NewQuestionController(api *upstream.Client, log *zap.Logger) *QuestionController {
	return &QuestionController{API: api, Log: log}
}

func (ctrl *QuestionController) api(c *fiber.Ctx) *upstream.Client {
	return ctrl.API.WithToken(authmw.Token(c))
}

// GET /admin/course/:id/detail
func (ctrl *QuestionController) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	api := ctrl.api(c)

	course, err := api.Course(c.UserContext(), id)
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Kursus tidak ditemukan")
	}

	questions, err := api.CourseQuestions(c.UserContext(), id)
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Gagal mengambil data soal")
	}
	// Lengkapi setiap soal dengan opsi jawabannya.
	for i := range questions {
		answers, err := api.QuestionAnswers(c.UserContext(), questions[i].QuestionID)
		if err != nil {
			ctrl.Log.Warn("gagal memuat jawaban soal",
				zap.Int("questionID", questions[i].QuestionID), zap.Error(err))
			continue
		}
		questions[i].Answers = answers
	}

	return c.Render("admin/course_detail", fiber.Map{
		"Title":     "Detail Kursus - " + course.Name,
		"UserName":  authmw.UserName(c),
		"Course":    course,
		"Questions": questions,
		"Flash":     helper.PopFlash(c),
	})
}

type questionForm struct {
	Question     string
	Options      []string
	CorrectIndex int
	Score        int
	ok           bool
	reason       string
}

func parseQuestionForm(c *fiber.Ctx) questionForm {
	f := questionForm{
		Question: strings.TrimSpace(c.FormValue("question")),
		Options: []string{
			c.FormValue("option_0"),
			c.FormValue("option_1"),
			c.FormValue("option_2"),
			c.FormValue("option_3"),
		},
	}
	f.Score, _ = strconv.Atoi(c.FormValue("score"))

	idx, err := strconv.Atoi(c.FormValue("correct_index"))
	if f.Question == "" || err != nil || idx < 0 || idx >= len(f.Options) {
		f.reason = "Pertanyaan dan jawaban benar harus diisi!"
		return f
	}
	f.CorrectIndex = idx

	for _, opt := range f.Options {
		if strings.TrimSpace(opt) == "" {
			f.reason = "Semua opsi jawaban harus diisi!"
			return f
		}
	}
	f.ok = true
	return f
}

// POST /admin/course/:id/questions — buat soal lalu keempat jawabannya.
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	detailURL := "/admin/course/" + strconv.Itoa(id) + "/detail"

	form := parseQuestionForm(c)
	if !form.ok {
		helper.SetFlash(c, "error", form.reason)
		return c.Redirect(detailURL, fiber.StatusFound)
	}

	api := ctrl.api(c)
	questionID, err := api.CreateQuestion(c.UserContext(), upstream.QuestionPayload{
		CourseID: id,
		Question: form.Question,
	})
	if err != nil {
		return helper.FromUpstreamError(c, err, detailURL, "Gagal menambahkan pertanyaan")
	}

	if err := ctrl.createAnswers(c, questionID, form); err != nil {
		return helper.FromUpstreamError(c, err, detailURL, "Gagal menambahkan jawaban")
	}

	helper.SetFlash(c, "success", "Pertanyaan dan jawaban berhasil ditambahkan")
	return c.Redirect(detailURL, fiber.StatusFound)
}

// POST /admin/course/:id/questions/:qid/update — perbarui teks soal,
// buang jawaban lama, buat ulang dari form.
func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	questionID, err := c.ParamsInt("qid")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID soal tidak valid")
	}
	detailURL := "/admin/course/" + strconv.Itoa(id) + "/detail"

	form := parseQuestionForm(c)
	if !form.ok {
		helper.SetFlash(c, "error", form.reason)
		return c.Redirect(detailURL, fiber.StatusFound)
	}

	api := ctrl.api(c)
	if err := api.UpdateQuestion(c.UserContext(), questionID, upstream.QuestionPayload{
		CourseID: id,
		Question: form.Question,
	}); err != nil {
		return helper.FromUpstreamError(c, err, detailURL, "Gagal memperbarui pertanyaan")
	}
	if err := api.DeleteQuestionAnswers(c.UserContext(), questionID); err != nil {
		return helper.FromUpstreamError(c, err, detailURL, "Gagal memperbarui jawaban")
	}
	if err := ctrl.createAnswers(c, questionID, form); err != nil {
		return helper.FromUpstreamError(c, err, detailURL, "Gagal memperbarui jawaban")
	}

	helper.SetFlash(c, "success", "Pertanyaan berhasil diperbarui")
	return c.Redirect(detailURL, fiber.StatusFound)
}

// POST /admin/course/:id/questions/:qid/delete
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	questionID, err := c.ParamsInt("qid")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID soal tidak valid")
	}
	detailURL := "/admin/course/" + strconv.Itoa(id) + "/detail"

	if err := ctrl.api(c).DeleteQuestion(c.UserContext(), questionID); err != nil {
		return helper.FromUpstreamError(c, err, detailURL, "Gagal menghapus pertanyaan")
	}

	helper.SetFlash(c, "success", "Pertanyaan berhasil dihapus")
	return c.Redirect(detailURL, fiber.StatusFound)
}

func (ctrl *QuestionController) createAnswers(c *fiber.Ctx, questionID int, form questionForm) error {
	api := ctrl.api(c)
	for i, opt := range form.Options {
		payload := upstream.AnswerPayload{
			QuestionID: questionID,
			Answer:     opt,
			IsCorrect:  i == form.CorrectIndex,
			Score:      form.Score,
		}
		if err := api.CreateAnswer(c.UserContext(), payload); err != nil {
			return err
		}
	}
	return nil
}
