package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	dashboardcontroller "github.com/simakpelajar/qila-system/internals/features/dashboard/controller"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

func DashboardAdminRoutes(admin fiber.Router, api *upstream.Client, log *zap.Logger) {
	ctrl := dashboardcontroller.NewOverviewController(api, log)
	admin.Get("/overview", ctrl.Index)
}
