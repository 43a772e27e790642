package controller

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	coursedto "github.com/simakpelajar/qila-system/internals/features/courses/dto"
	raportdto "github.com/simakpelajar/qila-system/internals/features/students/dto"
	helper "github.com/simakpelajar/qila-system/internals/helpers"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

// StudentController melayani area siswa: overview, daftar kursus
// terdaftar, dan raport pribadi. Pengerjaan quiz ada di QuizController.
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

// CourseCard: satu kartu kursus di halaman siswa.
type CourseCard struct {
	upstream.EnrolledCourse
	CategoryName string
	BadgeClass   string
	Grade        string
	GradeClass   string
}

// GET /user/overview-user
func (ctrl *StudentController) Overview(c *fiber.Ctx) error {
	api := ctrl.api(c)

	me, err := api.Me(c.UserContext())
	if err != nil {
		return helper.FromUpstreamError(c, err, "/signin", "")
	}

	stats, err := api.StudentOverviewStats(c.UserContext())
	if err != nil {
		ctrl.Log.Warn("gagal memuat statistik siswa", zap.Error(err))
		stats = &upstream.StudentOverview{}
	}

	// Progress dihitung ulang di sini supaya kartu tetap benar walau
	// backend mengirim 0: selesai/terdaftar, dibulatkan ke persen.
	progress := stats.OverallProgress
	if progress == 0 && stats.Enrolled > 0 {
		progress = int(math.Round(float64(stats.Completed) / float64(stats.Enrolled) * 100))
	}

	return c.Render("user/overview", fiber.Map{
		"Title":    "Overview",
		"UserName": me.Name,
		"Stats":    stats,
		"Progress": progress,
		"Flash":    helper.PopFlash(c),
	})
}

// GET /user/courses
func (ctrl *StudentController) Courses(c *fiber.Ctx) error {
	api := ctrl.api(c)

	courses, err := api.EnrolledCourses(c.UserContext())
	if err != nil {
		return helper.FromUpstreamError(c, err, "/user/overview-user", "Failed to fetch courses.")
	}
	categories, err := api.Categories(c.UserContext())
	if err != nil {
		ctrl.Log.Warn("gagal memuat kategori", zap.Error(err))
	}

	categoryNames := make(map[int]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.CategoryID] = cat.Name
	}

	search := c.Query("search")
	categoryID, _ := strconv.Atoi(c.Query("category"))

	filtered := helper.Filter(courses, func(ec upstream.EnrolledCourse) bool {
		if categoryID != 0 && ec.CategoryID != categoryID {
			return false
		}
		return search == "" || helper.ContainsFold(ec.Name, search)
	})

	cards := make([]CourseCard, 0, len(filtered))
	for _, ec := range filtered {
		grade := raportdto.CalculateGrade(ec.SuccesRate)
		cards = append(cards, CourseCard{
			EnrolledCourse: ec,
			CategoryName:   categoryNames[ec.CategoryID],
			BadgeClass:     coursedto.CategoryBadge(ec.CategoryID),
			Grade:          grade,
			GradeClass:     raportdto.GradeColor(grade),
		})
	}

	return c.Render("user/courses", fiber.Map{
		"Title":      "Courses",
		"UserName":   authmw.UserName(c),
		"Cards":      cards,
		"Categories": categories,
		"Search":     search,
		"CategoryID": categoryID,
		"Flash":      helper.PopFlash(c),
	})
}

// RaportEntry: baris raport siswa berikut kelas warna badge.
type RaportEntry struct {
	upstream.UserGrade
	GradeClass  string
	StatusClass string
}

// GET /user/raport-user
func (ctrl *StudentController) Raport(c *fiber.Ctx) error {
	grades, err := ctrl.api(c).UserGrades(c.UserContext())
	if err != nil {
		return helper.FromUpstreamError(c, err, "/user/overview-user", "Failed to fetch raport.")
	}

	p := helper.ParseFiber(c, 10)
	p.Page = helper.ClampPage(p.Page, len(grades), p.PerPage)

	rows := make([]RaportEntry, 0, p.PerPage)
	for _, g := range helper.Paginate(grades, p) {
		rows = append(rows, RaportEntry{
			UserGrade:   g,
			GradeClass:  raportdto.GradeColor(g.Grade),
			StatusClass: raportdto.StatusColor(g.Status),
		})
	}

	return c.Render("user/raport", fiber.Map{
		"Title":    "Raport",
		"UserName": authmw.UserName(c),
		"Query":    "",
		"Rows":     rows,
		"Meta":     helper.BuildMeta(len(grades), p),
		"Flash":    helper.PopFlash(c),
	})
}
