package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	studentcontroller "github.com/simakpelajar/qila-system/internals/features/student/controller"
	"github.com/simakpelajar/qila-system/internals/quiz"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

func StudentUserRoutes(user fiber.Router, api *upstream.Client, manager *quiz.Manager, log *zap.Logger) {
	ctrl := studentcontroller.NewStudentController(api, log)
	user.Get("/overview-user", ctrl.Overview)
	user.Get("/courses", ctrl.Courses)
	user.Get("/raport-user", ctrl.Raport)

	quizCtrl := studentcontroller.NewQuizController(api, manager, log)
	user.Get("/quiz/:slug", quizCtrl.Page)
	user.Post("/quiz/:slug/answer", quizCtrl.Answer)
	user.Post("/quiz/:slug/next", quizCtrl.Next)
	user.Post("/quiz/:slug/previous", quizCtrl.Previous)
	user.Post("/quiz/:slug/submit", quizCtrl.Submit)
	user.Get("/quiz/:slug/events", quizCtrl.Upgrade, websocket.New(quizCtrl.Events))
}
