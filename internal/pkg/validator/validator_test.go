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
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:05", "17:30", "23:59"}
	invalid := []string{"24:00", "9:05", "09:60", "0905", "09:5", "", "ab:cd"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidWhatsApp(t *testing.T) {
	valid := []string{"+966501234567", "966501234567", "0501-234-567", "20 100 123 4567"}
	invalid := []string{"1234567", "+9665012345678901", "05012a4567", ""}
	for _, phone := range valid {
		if !IsValidWhatsApp(phone) {
			t.Errorf("IsValidWhatsApp(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidWhatsApp(phone) {
			t.Errorf("IsValidWhatsApp(%q) = true, want false", phone)
		}
	}
}

func TestInRange(t *testing.T) {
	if !InRange(1, 1, 5) || !InRange(5, 1, 5) || !InRange(3.5, 1, 5) {
		t.Errorf("InRange rejected a bound or interior value")
	}
	if InRange(0.99, 1, 5) || InRange(5.01, 1, 5) {
		t.Errorf("InRange accepted an out-of-range value")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "whatsapp", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; whatsapp: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "whatsapp", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "whatsapp": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestValidationErrors_RequiredAndErr(t *testing.T) {
	var errs ValidationErrors
	errs.Required("name", "  ")
	errs.Required("email", "a@b.cd")
	if len(errs) != 1 || errs[0].Field != "name" || errs[0].Message != "name is required" {
		t.Fatalf("Required collected %+v", errs)
	}
	if errs.Err() == nil {
		t.Errorf("Err() = nil, want error")
	}

	var none ValidationErrors
	if none.Err() != nil {
		t.Errorf("Err() on empty = %v, want nil", none.Err())
	}
}
