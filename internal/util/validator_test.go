package util

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		t.Fatalf("Failed to register strNotEmpty: %v", err)
	}
	if err := v.RegisterValidation("cmin", CustomMin); err != nil {
		t.Fatalf("Failed to register cmin: %v", err)
	}
	if err := v.RegisterValidation("cmax", CustomMax); err != nil {
		t.Fatalf("Failed to register cmax: %v", err)
	}

	return v
}

func TestStrNotEmpty(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"Normal string", "CERT-2024-001", false},
		{"Empty string", "", true},
		{"Whitespace only", "   ", true},
		{"Leading and trailing spaces", "  ok  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "strNotEmpty")
			if (err != nil) != tt.wantErr {
				t.Errorf("strNotEmpty(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCustomMinMax(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		value   string
		rule    string
		wantErr bool
	}{
		{"Above min", "abcd", "cmin=3", false},
		{"Exactly min", "abc", "cmin=3", false},
		{"Below min after trim", " ab ", "cmin=3", true},
		{"Below max", "ab", "cmax=3", false},
		{"Above max", "abcd", "cmax=3", true},
		{"Above max trimmed within", " abc ", "cmax=3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.rule)
			if (err != nil) != tt.wantErr {
				t.Errorf("%q with %q error = %v, wantErr %v", tt.value, tt.rule, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateErrorMessagesFieldName(t *testing.T) {
	v := newTestValidator(t)

	type form struct {
		Name string `validate:"required"`
	}

	err := v.Struct(form{})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	messages := GenerateErrorMessages(err)
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].Field != "Name" {
		t.Errorf("Expected field Name, got %s", messages[0].Field)
	}
}
