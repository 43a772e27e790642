package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/simakpelajar/qila-system/internals/configs"
	"github.com/simakpelajar/qila-system/internals/features/auth/dto"
	helper "github.com/simakpelajar/qila-system/internals/helpers"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

type AuthController struct {
	API *upstream.Client
	Log *zap.Logger
}

func NewAuthController(api *upstream.Client, log *zap.Logger) *AuthController {
	return &AuthController{API: api, Log: log}
}

// GET /signin
func (ctrl *AuthController) SignInForm(c *fiber.Ctx) error {
	// Sudah login? Langsung ke area masing-masing.
	if strings.TrimSpace(c.Cookies(configs.TokenCookie)) != "" {
		return c.Redirect(afterLoginPath(authmw.ParseDisplayClaims(c.Cookies(configs.TokenCookie)).Email), fiber.StatusFound)
	}
	return c.Render("signin", fiber.Map{
		"Title": "Sign In",
		"Flash": helper.PopFlash(c),
	})
}

// POST /signin
func (ctrl *AuthController) SignIn(c *fiber.Ctx) error {
	req := dto.SignInRequest{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
	}

	if errs := dto.Validate(req); len(errs) > 0 {
		return c.Render("signin", fiber.Map{
			"Title":  "Sign In",
			"Errors": errs,
			"Email":  req.Email,
		})
	}

	result, err := ctrl.API.Login(c.UserContext(), upstream.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		ctrl.Log.Warn("login gagal", zap.String("email", req.Email), zap.Error(err))
		msg := "Email atau password salah"
		var se *upstream.StatusError
		if errors.As(err, &se) && se.Message != "" {
			msg = se.Message
		}
		return c.Render("signin", fiber.Map{
			"Title":  "Sign In",
			"Errors": map[string]string{"form": msg},
			"Email":  req.Email,
		})
	}

	authmw.SetToken(c, result.Token)
	ctrl.Log.Info("login sukses", zap.String("email", result.User.Email))
	return c.Redirect(afterLoginPath(result.User.Email), fiber.StatusFound)
}

// GET /signup
func (ctrl *AuthController) SignUpForm(c *fiber.Ctx) error {
	return c.Render("signup", fiber.Map{
		"Title": "Sign Up",
		"Flash": helper.PopFlash(c),
	})
}

// POST /signup
func (ctrl *AuthController) SignUp(c *fiber.Ctx) error {
	req := dto.SignUpRequest{
		Name:                 strings.TrimSpace(c.FormValue("name")),
		Email:                strings.TrimSpace(c.FormValue("email")),
		Password:             c.FormValue("password"),
		PasswordConfirmation: c.FormValue("password_confirmation"),
	}

	errs := dto.Validate(req)

	// Email yang sudah terdaftar juga ditolak di sisi form.
	if _, taken := errs["Email"]; !taken && req.Email != "" {
		exists, err := ctrl.API.CheckUser(c.UserContext(), req.Email)
		if err != nil {
			ctrl.Log.Warn("cek email gagal", zap.Error(err))
		} else if exists {
			errs["Email"] = "Email sudah terdaftar"
		}
	}

	if len(errs) > 0 {
		return c.Render("signup", fiber.Map{
			"Title":  "Sign Up",
			"Errors": errs,
			"Name":   req.Name,
			"Email":  req.Email,
		})
	}

	if err := ctrl.API.Register(c.UserContext(), upstream.RegisterRequest{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	}); err != nil {
		ctrl.Log.Warn("registrasi gagal", zap.Error(err))

		var fe *upstream.FieldErrors
		if errors.As(err, &fe) {
			formErrs := map[string]string{}
			for field, msg := range fe.Fields {
				formErrs[exportedField(field)] = msg
			}
			return c.Render("signup", fiber.Map{
				"Title":  "Sign Up",
				"Errors": formErrs,
				"Name":   req.Name,
				"Email":  req.Email,
			})
		}
		return c.Render("signup", fiber.Map{
			"Title":  "Sign Up",
			"Errors": map[string]string{"form": "Registrasi gagal, coba lagi"},
			"Name":   req.Name,
			"Email":  req.Email,
		})
	}

	helper.SetFlash(c, "success", "Akun berhasil dibuat, silakan masuk")
	return c.Redirect("/signin", fiber.StatusFound)
}

// POST /logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	token := authmw.Token(c)
	if token != "" {
		// Token server-side ikut dicabut; gagal pun cookie tetap dibuang.
		if err := ctrl.API.WithToken(token).Logout(c.UserContext()); err != nil {
			ctrl.Log.Warn("logout backend gagal", zap.Error(err))
		}
	}
	authmw.ClearToken(c)
	return c.Redirect("/signin", fiber.StatusFound)
}

// afterLoginPath memilih area tujuan berdasar akun: admin ke dashboard,
// selain itu ke overview siswa.
func afterLoginPath(email string) string {
	if email == configs.AdminEmail {
		return "/admin/overview"
	}
	return "/user/overview-user"
}

// exportedField memetakan nama field snake_case dari backend ke nama
// field form (password_confirmation → PasswordConfirmation).
func exportedField(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}
