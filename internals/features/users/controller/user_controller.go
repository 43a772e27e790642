package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/simakpelajar/qila-system/internals/configs"
	helper "github.com/simakpelajar/qila-system/internals/helpers"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

const usersPerPage = 5

type UserController struct {
	API *upstream.Client
	Log *zap.Logger
}

func NewUserController(api *upstream.Client, log *zap.Logger) *UserController {
	return &UserController{API: api, Log: log}
}

func (ctrl *UserController) api(c *fiber.Ctx) *upstream.Client {
	return ctrl.API.WithToken(authmw.Token(c))
}

// UserRow menambah atribut tampilan tetap (semua user non-admin di
// sistem ini adalah siswa aktif).
type UserRow struct {
	upstream.User
	Role   string
	Status string
}

// GET /admin/users — stat cards + tabel user.
func (ctrl *UserController) Index(c *fiber.Ctx) error {
	api := ctrl.api(c)

	users, err := api.Users(c.UserContext())
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/overview", "Failed to fetch users.")
	}

	total, err := api.UserCount(c.UserContext())
	if err != nil {
		ctrl.Log.Warn("gagal mengambil jumlah user", zap.Error(err))
	}
	newToday, err := api.NewUsersToday(c.UserContext())
	if err != nil {
		ctrl.Log.Warn("gagal mengambil user baru hari ini", zap.Error(err))
	}

	// Akun superadmin tidak ikut ditampilkan di tabel.
	visible := helper.Filter(users, func(u upstream.User) bool {
		return u.Email != configs.AdminEmail
	})

	query := c.Query("q")
	filtered := visible
	if query != "" {
		filtered = helper.Filter(visible, func(u upstream.User) bool {
			return helper.ContainsFold(u.Name, query) || helper.ContainsFold(u.Email, query)
		})
	}

	p := helper.ParseFiber(c, usersPerPage)
	p.Page = helper.ClampPage(p.Page, len(filtered), p.PerPage)

	rows := make([]UserRow, 0, p.PerPage)
	for _, u := range helper.Paginate(filtered, p) {
		rows = append(rows, UserRow{User: u, Role: "Student", Status: "Active"})
	}

	return c.Render("admin/users", fiber.Map{
		"Title":         "Users Dashboard",
		"UserName":      authmw.UserName(c),
		"Rows":          rows,
		"Query":         query,
		"Meta":          helper.BuildMeta(len(filtered), p),
		"TotalUsers":    total,
		"NewUsersToday": newToday,
		"Flash":         helper.PopFlash(c),
	})
}

// POST /admin/users/:id/update
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID user tidak valid")
	}

	user := upstream.User{
		ID:    id,
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
	}
	if user.Name == "" || user.Email == "" {
		helper.SetFlash(c, "error", "Nama dan email harus diisi")
		return c.Redirect("/admin/users", fiber.StatusFound)
	}

	if err := ctrl.api(c).UpdateUser(c.UserContext(), id, user); err != nil {
		return helper.FromUpstreamError(c, err, "/admin/users", "Failed to update user.")
	}

	helper.SetFlash(c, "success", "User updated successfully!")
	return c.Redirect("/admin/users", fiber.StatusFound)
}

// GET /admin/users/:id/delete — konfirmasi dulu, baru hapus.
func (ctrl *UserController) DeleteConfirm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID user tidak valid")
	}

	return c.Render("confirm_delete", fiber.Map{
		"Title":     "Hapus User",
		"UserName":  authmw.UserName(c),
		"Heading":   "Are you sure?",
		"Message":   "You won't be able to revert this!",
		"ActionURL": "/admin/users/" + strconv.Itoa(id) + "/delete",
		"CancelURL": "/admin/users",
	})
}

// POST /admin/users/:id/delete
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID user tidak valid")
	}
	if err := ctrl.api(c).DeleteUser(c.UserContext(), id); err != nil {
		return helper.FromUpstreamError(c, err, "/admin/users", "Failed to delete user.")
	}

	helper.SetFlash(c, "success", "User deleted")
	return c.Redirect("/admin/users", fiber.StatusFound)
}
