package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/simakpelajar/qila-system/internals/features/students/dto"
	helper "github.com/simakpelajar/qila-system/internals/helpers"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

const studentsPerPage = 10

// StudentController: kelola siswa per kursus (terima/batalkan
// pendaftaran) dan raport per kursus.
type StudentController struct {
	API *upstream.Client
	Log *zap.Logger
}

func NewStudentController(api *upstream.Client, log *zap.Logger) *StudentController {
	return &StudentController{API: api, Log: log}
}

func (ctrl *StudentController) api(c *fiber.Ctx) *upstream.Client {
	return ctrl.API.WithToken(authmw.Token(c))
}

type studentRow struct {
	upstream.CourseStudent
	StatusColor string
}

// GET /admin/course/:id/students
func (ctrl *StudentController) Manage(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	api := ctrl.api(c)

	course, err := api.Course(c.UserContext(), courseID)
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Kursus tidak ditemukan")
	}
	students, err := api.CourseStudents(c.UserContext(), courseID)
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Gagal mengambil data siswa")
	}

	query := c.Query("q")
	filtered := students
	if query != "" {
		filtered = helper.Filter(students, func(s upstream.CourseStudent) bool {
			return helper.ContainsFold(s.Name, query) || helper.ContainsFold(s.Email, query)
		})
	}

	p := helper.ParseFiber(c, studentsPerPage)
	p.Page = helper.ClampPage(p.Page, len(filtered), p.PerPage)

	rows := make([]studentRow, 0, p.PerPage)
	for _, s := range helper.Paginate(filtered, p) {
		rows = append(rows, studentRow{CourseStudent: s, StatusColor: dto.StatusColor(s.Status)})
	}

	return c.Render("admin/students", fiber.Map{
		"Title":    "Kelola Siswa - " + course.Name,
		"UserName": authmw.UserName(c),
		"Course":   course,
		"Rows":     rows,
		"Query":    query,
		"Meta":     helper.BuildMeta(len(filtered), p),
		"Flash":    helper.PopFlash(c),
	})
}

// POST /admin/course/:id/students/:userID/accept
func (ctrl *StudentController) Accept(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	userID, err := c.ParamsInt("userID")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	backURL := "/admin/course/" + strconv.Itoa(courseID) + "/students"

	if err := ctrl.api(c).AcceptStudent(c.UserContext(), userID, courseID); err != nil {
		return helper.FromUpstreamError(c, err, backURL, "Gagal menerima student")
	}

	helper.SetFlash(c, "success", "Student berhasil diterima ke kursus")
	return c.Redirect(backURL, fiber.StatusFound)
}

// POST /admin/course/:id/students/:userID/cancel
func (ctrl *StudentController) Cancel(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	userID, err := c.ParamsInt("userID")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	backURL := "/admin/course/" + strconv.Itoa(courseID) + "/students"

	if err := ctrl.api(c).CancelEnrollment(c.UserContext(), userID, courseID); err != nil {
		return helper.FromUpstreamError(c, err, backURL, "Gagal membatalkan pendaftaran")
	}

	helper.SetFlash(c, "success", "Pendaftaran berhasil dibatalkan")
	return c.Redirect(backURL, fiber.StatusFound)
}

type raportRow struct {
	upstream.RaportRow
	Grade      string
	GradeColor string
	Status     string
}

// GET /admin/course/:id/raport
func (ctrl *StudentController) Raport(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	api := ctrl.api(c)

	course, err := api.Course(c.UserContext(), courseID)
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Kursus tidak ditemukan")
	}
	students, err := api.CourseRaport(c.UserContext(), courseID)
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Gagal memuat data raport")
	}

	query := c.Query("q")
	filtered := students
	if query != "" {
		filtered = helper.Filter(students, func(s upstream.RaportRow) bool {
			return helper.ContainsFold(s.Name, query)
		})
	}

	p := helper.ParseFiber(c, studentsPerPage)
	p.Page = helper.ClampPage(p.Page, len(filtered), p.PerPage)

	rows := make([]raportRow, 0, p.PerPage)
	for _, s := range helper.Paginate(filtered, p) {
		grade := dto.CalculateGrade(s.Score)
		rows = append(rows, raportRow{
			RaportRow:  s,
			Grade:      grade,
			GradeColor: dto.GradeColor(grade),
			Status:     dto.PassStatus(grade),
		})
	}

	return c.Render("admin/raport", fiber.Map{
		"Title":    "Raport Kursus - " + course.Name,
		"UserName": authmw.UserName(c),
		"Course":   course,
		"Rows":     rows,
		"Query":    query,
		"Meta":     helper.BuildMeta(len(filtered), p),
		"Flash":    helper.PopFlash(c),
	})
}
