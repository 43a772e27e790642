package dto

import "testing"

func TestSignInValidation(t *testing.T) {
	if errs := Validate(SignInRequest{Email: "a@b.co", Password: "rahasia"}); len(errs) != 0 {
		t.Fatalf("kredensial valid ditolak: %v", errs)
	}

	errs := Validate(SignInRequest{Email: "bukan-email", Password: "12345"})
	if errs["Email"] == "" {
		t.Fatalf("format email salah harus ditolak: %v", errs)
	}
	if errs["Password"] == "" {
		t.Fatalf("password di bawah 6 karakter harus ditolak: %v", errs)
	}

	errs = Validate(SignInRequest{})
	if errs["Email"] != "Email wajib diisi" || errs["Password"] != "Password wajib diisi" {
		t.Fatalf("pesan field kosong salah: %v", errs)
	}
}

func TestSignUpValidation(t *testing.T) {
	valid := SignUpRequest{
		Name:                 "Budi Santoso",
		Email:                "budi@example.com",
		Password:             "Rahasia123",
		PasswordConfirmation: "Rahasia123",
	}
	if errs := Validate(valid); len(errs) != 0 {
		t.Fatalf("pendaftaran valid ditolak: %v", errs)
	}
}

func TestSignUpPasswordComplexity(t *testing.T) {
	base := SignUpRequest{Name: "Budi", Email: "budi@example.com"}

	cases := []struct {
		password string
		reason   string
	}{
		{"pendek1A", ""}, // 8 karakter, lengkap: valid
		{"Abc123", "kurang dari 8 karakter"},
		{"semuahurufkecil1", "tanpa huruf besar"},
		{"SEMUABESAR1", "tanpa huruf kecil"},
		{"TanpaAngka", "tanpa angka"},
	}

	for _, tc := range cases {
		req := base
		req.Password = tc.password
		req.PasswordConfirmation = tc.password
		errs := Validate(req)

		if tc.reason == "" {
			if errs["Password"] != "" {
				t.Errorf("password %q harusnya valid: %v", tc.password, errs)
			}
			continue
		}
		if errs["Password"] == "" {
			t.Errorf("password %q (%s) harus ditolak", tc.password, tc.reason)
		}
	}
}

func TestSignUpConfirmationMustMatch(t *testing.T) {
	req := SignUpRequest{
		Name:                 "Budi",
		Email:                "budi@example.com",
		Password:             "Rahasia123",
		PasswordConfirmation: "Berbeda123",
	}
	errs := Validate(req)
	if errs["PasswordConfirmation"] != "Konfirmasi password tidak sama" {
		t.Fatalf("konfirmasi beda harus ditolak: %v", errs)
	}
}
