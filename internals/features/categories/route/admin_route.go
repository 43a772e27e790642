package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	categorycontroller "github.com/simakpelajar/qila-system/internals/features/categories/controller"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

func CategoryAdminRoutes(admin fiber.Router, api *upstream.Client, log *zap.Logger) {
	ctrl := categorycontroller.NewCategoryController(api, log)
	categories := admin.Group("/category")
	categories.Get("/", ctrl.Index)
	categories.Post("/", ctrl.Save)
	categories.Get("/:id/delete", ctrl.DeleteConfirm)
	categories.Post("/:id/delete", ctrl.Delete)
}
