package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "github.com/simakpelajar/qila-system/internals/helpers"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

type CategoryController struct {
	API *upstream.Client
	Log *zap.Logger
}

func NewCategoryController(api *upstream.Client, log *zap.Logger) *CategoryController {
	return &CategoryController{API: api, Log: log}
}

func (ctrl *CategoryController) api(c *fiber.Ctx) *upstream.Client {
	return ctrl.API.WithToken(authmw.Token(c))
}

// GET /admin/category — list + form tambah/edit di halaman yang sama.
func (ctrl *CategoryController) Index(c *fiber.Ctx) error {
	categories, err := ctrl.api(c).Categories(c.UserContext())
	if err != nil {
		return helper.FromUpstreamError(c, err, "/admin/overview", "Failed to fetch categories")
	}

	query := c.Query("q")
	filtered := categories
	if query != "" {
		filtered = helper.Filter(categories, func(cat upstream.Category) bool {
			return helper.ContainsFold(cat.Name, query)
		})
	}

	// Edit mode: ?edit=<id> mengisi form dengan kategori tersebut.
	var editing *upstream.Category
	if editID, err := strconv.Atoi(c.Query("edit")); err == nil {
		for i := range categories {
			if categories[i].CategoryID == editID {
				editing = &categories[i]
				break
			}
		}
	}

	return c.Render("admin/categories", fiber.Map{
		"Title":      "Category Dashboard",
		"UserName":   authmw.UserName(c),
		"Categories": filtered,
		"Query":      query,
		"Editing":    editing,
		"Flash":      helper.PopFlash(c),
	})
}

// POST /admin/category — tambah, atau update bila id terisi.
func (ctrl *CategoryController) Save(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		helper.SetFlash(c, "error", "Please enter a category name")
		return c.Redirect("/admin/category", fiber.StatusFound)
	}

	payload := upstream.CategoryPayload{Name: name, Slug: helper.GenerateSlug(name)}
	api := ctrl.api(c)

	if id, err := strconv.Atoi(c.FormValue("category_id")); err == nil && id > 0 {
		if err := api.UpdateCategory(c.UserContext(), id, payload); err != nil {
			return helper.FromUpstreamError(c, err, "/admin/category", "Failed to update category")
		}
		helper.SetFlash(c, "success", "Category updated successfully")
	} else {
		if err := api.CreateCategory(c.UserContext(), payload); err != nil {
			return helper.FromUpstreamError(c, err, "/admin/category", "Failed to add category")
		}
		helper.SetFlash(c, "success", "Category added successfully")
	}
	return c.Redirect("/admin/category", fiber.StatusFound)
}

// GET /admin/category/:id/delete — konfirmasi sebelum hapus.
func (ctrl *CategoryController) DeleteConfirm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kategori tidak valid")
	}

	name := c.Query("name")
	return c.Render("confirm_delete", fiber.Map{
		"Title":     "Hapus Kategori",
		"UserName":  authmw.UserName(c),
		"Heading":   "Delete category",
		"Message":   "Delete category \"" + name + "\"?",
		"ActionURL": "/admin/category/" + strconv.Itoa(id) + "/delete",
		"CancelURL": "/admin/category",
	})
}

// POST /admin/category/:id/delete
func (ctrl *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kategori tidak valid")
	}
	if err := ctrl.api(c).DeleteCategory(c.UserContext(), id); err != nil {
		return helper.FromUpstreamError(c, err, "/admin/category", "Failed to delete category")
	}

	helper.SetFlash(c, "success", "Category deleted")
	return c.Redirect("/admin/category", fiber.StatusFound)
}
