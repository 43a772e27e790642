package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/simakpelajar/qila-system/internals/features/courses/dto"
	helper "github.com/simakpelajar/qila-system/internals/helpers"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

const coursesPerPage = 10

type CourseController struct {
	API *upstream.Client
	Log *zap.Logger
}

func NewCourseController(api *upstream.Client, log *zap.Logger) *CourseController {
	return &CourseController{API: api, Log: log}
}

func (ctrl *CourseController) api(c *fiber.Ctx) *upstream.Client {
	return ctrl.API.WithToken(authmw.Token(c))
}

// GET /admin/course — daftar kursus: search + pagination sisi klien.
func (ctrl *CourseController) Index(c *fiber.Ctx) error {
	api := ctrl.api(c)

	courses, err := api.Courses(c.UserContext())
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/overview", "Gagal mengambil data kursus")
	}
	categories, err := api.Categories(c.UserContext())
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/overview", "Gagal mengambil data kategori")
	}

	query := c.Query("q")
	filtered := dto.FilterCourses(courses, query)

	p := helper.ParseFiber(c, coursesPerPage)
	p.Page = helper.ClampPage(p.Page, len(filtered), p.PerPage)

	rows := make([]dto.CourseRow, 0, p.PerPage)
	for _, course := range helper.Paginate(filtered, p) {
		rows = append(rows, dto.ToCourseRow(course))
	}

	return c.Render("admin/courses", fiber.Map{
		"Title":      "Course",
		"UserName":   authmw.UserName(c),
		"Rows":       rows,
		"Categories": categories,
		"Query":      query,
		"Meta":       helper.BuildMeta(len(filtered), p),
		"Flash":      helper.PopFlash(c),
	})
}

// POST /admin/course — tambah kursus baru.
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	name := c.FormValue("name")
	categoryID, _ := strconv.Atoi(c.FormValue("category_id"))
	if name == "" || categoryID == 0 {
		helper.SetFlash(c, "error", "Nama dan kategori harus diisi!")
		return c.Redirect("/admin/course", fiber.StatusFound)
	}

	payload := upstream.CoursePayload{
		Name:       name,
		Slug:       helper.GenerateUniqueSlug(name),
		CategoryID: categoryID,
		Cover:      "course.png",
	}
	if err := ctrl.api(c).CreateCourse(c.UserContext(), payload); err != nil {
		ctrl.Log.Error("gagal menambah kursus", zap.String("name", name), zap.Error(err))
		return helper.FromUpstreamError(c, err, "/admin/course", "Gagal menambahkan course")
	}

	helper.SetFlash(c, "success", "Course berhasil ditambahkan!")
	return c.Redirect("/admin/course", fiber.StatusFound)
}

// GET /admin/course/:id/edit
func (ctrl *CourseController) EditForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	api := ctrl.api(c)

	course, err := api.Course(c.UserContext(), id)
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Kursus tidak ditemukan")
	}
	categories, err := api.Categories(c.UserContext())
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Gagal mengambil data kategori")
	}

	return c.Render("admin/course_edit", fiber.Map{
		"Title":      "Edit Course",
		"UserName":   authmw.UserName(c),
		"Course":     course,
		"Categories": categories,
		"Flash":      helper.PopFlash(c),
	})
}

// POST /admin/course/:id/edit
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	name := c.FormValue("name")
	categoryID, _ := strconv.Atoi(c.FormValue("category_id"))
	if name == "" || categoryID == 0 {
		helper.SetFlash(c, "error", "Nama dan kategori harus diisi!")
		return c.Redirect("/admin/course/"+strconv.Itoa(id)+"/edit", fiber.StatusFound)
	}

	payload := upstream.CoursePayload{
		Name:       name,
		Slug:       helper.GenerateSlug(name),
		CategoryID: categoryID,
		Cover:      c.FormValue("cover", "course.png"),
	}
	if err := ctrl.api(c).UpdateCourse(c.UserContext(), id, payload); err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Gagal memperbarui course")
	}

	helper.SetFlash(c, "success", "Course berhasil diperbarui!")
	return c.Redirect("/admin/course", fiber.StatusFound)
}

// GET /admin/course/:id/delete — halaman konfirmasi. Batal = kembali
// tanpa request apa pun ke backend.
func (ctrl *CourseController) DeleteConfirm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	course, err := ctrl.api(c).Course(c.UserContext(), id)
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Kursus tidak ditemukan")
	}

	return c.Render("confirm_delete", fiber.Map{
		"Title":     "Hapus Kursus",
		"UserName":  authmw.UserName(c),
		"Heading":   "Hapus Kursus",
		"Message":   "Apakah anda yakin ingin menghapus kursus \"" + course.Name + "\"?",
		"ActionURL": "/admin/course/" + strconv.Itoa(id) + "/delete",
		"CancelURL": "/admin/course",
	})
}

// POST /admin/course/:id/delete
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	if err := ctrl.api(c).DeleteCourse(c.UserContext(), id); err != nil {
		return helper.FromUpstreamError(c, err, "/admin/course", "Gagal menghapus kursus")
	}

	helper.SetFlash(c, "success", "Kursus berhasil dihapus!")
	return c.Redirect("/admin/course", fiber.StatusFound)
}
