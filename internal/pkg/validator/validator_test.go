package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsBusinessEmail(t *testing.T) {
	business := []string{"maria@vitalis.com.br", "joao@empresa.io", "x@GMAILCORP.com"}
	free := []string{"maria@gmail.com", "joao@Hotmail.com", "x@outlook.com", "y@yahoo.com"}
	for _, email := range business {
		if !IsBusinessEmail(email) {
			t.Errorf("IsBusinessEmail(%q) = false, want true", email)
		}
	}
	for _, email := range free {
		if IsBusinessEmail(email) {
			t.Errorf("IsBusinessEmail(%q) = true, want false", email)
		}
	}
}

func TestIsStrongPassword(t *testing.T) {
	strong := []string{"Senha@123", "Abcdef1!", "xY9?aaaa"}
	weak := []string{
		"senha123",  // no uppercase, no symbol
		"SENHA@123", // no lowercase
		"Senha@abc", // no digit
		"Senha123",  // no symbol
		"S@1a",      // too short
	}
	for _, p := range strong {
		if !IsStrongPassword(p) {
			t.Errorf("IsStrongPassword(%q) = false, want true", p)
		}
	}
	for _, p := range weak {
		if IsStrongPassword(p) {
			t.Errorf("IsStrongPassword(%q) = true, want false", p)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-10"); !ok {
		t.Error("IsValidDate(2025-03-10) = false, want true")
	}
	for _, s := range []string{"10/03/2025", "2025-13-01", "", "abc"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}
