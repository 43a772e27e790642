package routes

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/simakpelajar/qila-system/internals/configs"
)

func BaseRoutes(app *fiber.App) {
	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("Simulasi panic error!") // testing panic handler
	})

	// Health memeriksa apakah backend API bisa dijangkau; aplikasi ini
	// tidak punya database sendiri.
	app.Get("/health", func(c *fiber.Ctx) error {
		backendStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		req, _ := http.NewRequestWithContext(c.UserContext(), http.MethodGet, configs.APIBaseURL, nil)
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			backendStatus = "Backend API unreachable"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		} else {
			res.Body.Close()
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"backend":        backendStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
		})
	})
}
