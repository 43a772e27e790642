package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	usercontroller "github.com/simakpelajar/qila-system/internals/features/users/controller"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

func UserAdminRoutes(admin fiber.Router, api *upstream.Client, log *zap.Logger) {
	ctrl := usercontroller.NewUserController(api, log)
	users := admin.Group("/users")
	users.Get("/", ctrl.Index)
	users.Post("/:id/update", ctrl.Update)
	users.Get("/:id/delete", ctrl.DeleteConfirm)
	users.Post("/:id/delete", ctrl.Delete)
}
