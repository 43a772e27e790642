package route

import (
	"github.com/gofiber/fiber/v2"

	homecontroller "github.com/simakpelajar/qila-system/internals/features/home/controller"
)

func HomeRoutes(app fiber.Router) {
	ctrl := homecontroller.NewHomeController()
	app.Get("/", ctrl.Index)
}
