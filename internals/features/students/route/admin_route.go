package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	studentcontroller "github.com/simakpelajar/qila-system/internals/features/students/controller"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

func StudentAdminRoutes(admin fiber.Router, api *upstream.Client, log *zap.Logger) {
	ctrl := studentcontroller.NewStudentController(api, log)
	course := admin.Group("/course/:id")
	course.Get("/students", ctrl.Manage)
	course.Post("/students/:userID/accept", ctrl.Accept)
	course.Post("/students/:userID/cancel", ctrl.Cancel)
	course.Get("/raport", ctrl.Raport)
}
