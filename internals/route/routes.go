package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authroute "github.com/simakpelajar/qila-system/internals/features/auth/route"
	categoryroute "github.com/simakpelajar/qila-system/internals/features/categories/route"
	courseroute "github.com/simakpelajar/qila-system/internals/features/courses/route"
	dashboardroute "github.com/simakpelajar/qila-system/internals/features/dashboard/route"
	homeroute "github.com/simakpelajar/qila-system/internals/features/home/route"
	studentuserroute "github.com/simakpelajar/qila-system/internals/features/student/route"
	studentadminroute "github.com/simakpelajar/qila-system/internals/features/students/route"
	userroute "github.com/simakpelajar/qila-system/internals/features/users/route"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/quiz"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, api *upstream.Client, manager *quiz.Manager, logger *zap.Logger) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up HomeRoutes...")
	homeroute.HomeRoutes(app)

	log.Println("[INFO] Setting up AuthRoutes...")
	authroute.AuthRoutes(app, api, logger)

	// ===================== ADMIN (login + akun admin) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/admin", authmw.WebAuth(), authmw.AdminOnly())
	dashboardroute.DashboardAdminRoutes(admin, api, logger)
	courseroute.CourseAdminRoutes(admin, api, logger)
	categoryroute.CategoryAdminRoutes(admin, api, logger)
	userroute.UserAdminRoutes(admin, api, logger)
	studentadminroute.StudentAdminRoutes(admin, api, logger)

	// ===================== USER (login) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/user", authmw.WebAuth())
	studentuserroute.StudentUserRoutes(user, api, manager, logger)
}
