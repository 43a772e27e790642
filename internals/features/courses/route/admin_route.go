package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	coursecontroller "github.com/simakpelajar/qila-system/internals/features/courses/controller"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

// CourseAdminRoutes: tabel kursus + detail soal/jawaban.
func CourseAdminRoutes(admin fiber.Router, api *upstream.Client, log *zap.Logger) {
	courseCtrl := coursecontroller.NewCourseController(api, log)
	courses := admin.Group("/course")
	courses.Get("/", courseCtrl.Index)
	courses.Post("/", courseCtrl.Create)
	courses.Get("/:id/edit", courseCtrl.EditForm)
	courses.Post("/:id/edit", courseCtrl.Update)
	courses.Get("/:id/delete", courseCtrl.DeleteConfirm)
	courses.Post("/:id/delete", courseCtrl.Delete)

	questionCtrl := coursecontroller.NewQuestionController(api, log)
	courses.Get("/:id/detail", questionCtrl.Detail)
	courses.Post("/:id/questions", questionCtrl.Create)
	courses.Post("/:id/questions/:qid/update", questionCtrl.Update)
	courses.Post("/:id/questions/:qid/delete", questionCtrl.Delete)
}
