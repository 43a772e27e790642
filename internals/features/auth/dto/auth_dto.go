package dto

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// strongpw: minimal satu huruf besar, satu huruf kecil, satu angka.
	_ = v.RegisterValidation("strongpw", func(fl validator.FieldLevel) bool {
		var upper, lower, digit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return upper && lower && digit
	})
	return v
}

type SignInRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type SignUpRequest struct {
	Name                 string `form:"name" validate:"required,min=3"`
	Email                string `form:"email" validate:"required,email"`
	Password             string `form:"password" validate:"required,min=8,strongpw"`
	PasswordConfirmation string `form:"password_confirmation" validate:"required,eqfield=Password"`
}

// Pesan per field+tag; validator mengembalikan tag yang gagal, di sini
// diterjemahkan ke kalimat yang tampil di bawah input form.
var messages = map[string]string{
	"Name.required":                 "Nama wajib diisi",
	"Name.min":                      "Nama minimal 3 karakter",
	"Email.required":                "Email wajib diisi",
	"Email.email":                   "Format email tidak valid",
	"Password.required":             "Password wajib diisi",
	"Password.min":                  "Password terlalu pendek",
	"Password.strongpw":             "Password harus memuat huruf besar, huruf kecil, dan angka",
	"PasswordConfirmation.required": "Konfirmasi password wajib diisi",
	"PasswordConfirmation.eqfield":  "Konfirmasi password tidak sama",
}

// Validate menjalankan aturan di atas dan mengembalikan map
// field → pesan. Map kosong berarti lolos.
func Validate(req interface{}) map[string]string {
	errs := map[string]string{}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok {
			for _, fe := range verrs {
				key := fe.Field() + "." + fe.Tag()
				if msg, found := messages[key]; found {
					errs[fe.Field()] = msg
				} else {
					errs[fe.Field()] = "Input tidak valid"
				}
			}
			return errs
		}
		errs["form"] = "Input tidak valid"
	}
	return errs
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}
