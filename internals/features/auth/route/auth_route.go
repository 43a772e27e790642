package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authcontroller "github.com/simakpelajar/qila-system/internals/features/auth/controller"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

func AuthRoutes(app fiber.Router, api *upstream.Client, log *zap.Logger) {
	ctrl := authcontroller.NewAuthController(api, log)
	app.Get("/signin", ctrl.SignInForm)
	app.Post("/signin", ctrl.SignIn)
	app.Get("/signup", ctrl.SignUpForm)
	app.Post("/signup", ctrl.SignUp)
	app.Post("/logout", authmw.WebAuth(), ctrl.Logout)
}
