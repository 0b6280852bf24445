package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type samplePayload struct {
	FullName string `json:"fullName" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Title    string `json:"title" binding:"omitempty,notblank,min=4,max=50"`
}

func validate(t *testing.T, v any) error {
	t.Helper()
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("binding validator engine is not validator.Validate")
	}
	return engine.Struct(v)
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	Init()

	err := validate(t, samplePayload{Email: "not-an-email", Password: "short", Title: "ab"})
	details := ToDetails(err)

	tests := []struct {
		field string
		want  string
	}{
		{"fullName", "is required"},
		{"email", "must be a valid email"},
		{"password", "min length 8"},
		{"title", "must be at least 4 characters long"},
	}
	for _, tt := range tests {
		got, ok := details[tt.field]
		if !ok {
			t.Errorf("details missing field %q: %v", tt.field, details)
			continue
		}
		if got != tt.want {
			t.Errorf("details[%q] = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestToDetailsMaxLength(t *testing.T) {
	Init()

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'x'
	}
	err := validate(t, samplePayload{
		FullName: "A B",
		Email:    "a@b.com",
		Password: "longenough",
		Title:    string(long),
	})
	details := ToDetails(err)
	if details["title"] != "must be at most 50 characters long" {
		t.Errorf("details[title] = %q", details["title"])
	}
}

func TestToDetailsRejectsBlankStrings(t *testing.T) {
	Init()

	// Whitespace-only values satisfy required and the length bounds but are
	// still not usable titles or names.
	err := validate(t, samplePayload{
		FullName: "   ",
		Email:    "a@b.com",
		Password: "longenough",
		Title:    "    ",
	})
	details := ToDetails(err)
	if details["fullName"] != "must not be blank" {
		t.Errorf("details[fullName] = %q", details["fullName"])
	}
	if details["title"] != "must not be blank" {
		t.Errorf("details[title] = %q", details["title"])
	}
}

func TestToDetailsValidPayload(t *testing.T) {
	Init()

	err := validate(t, samplePayload{FullName: "A B", Email: "a@b.com", Password: "longenough", Title: "Demo"})
	if err != nil {
		t.Fatalf("valid payload failed validation: %v", err)
	}
	if d := ToDetails(nil); d != nil {
		t.Errorf("ToDetails(nil) = %v, want nil", d)
	}
}

func TestToDetailsMalformedJSON(t *testing.T) {
	var p samplePayload
	err := json.Unmarshal([]byte(`{"fullName":`), &p)
	details := ToDetails(err)
	if details["payload"] != "invalid json" {
		t.Errorf("syntax error details = %v", details)
	}

	err = json.Unmarshal([]byte(`{"fullName": 12}`), &p)
	details = ToDetails(err)
	if details["payload"] != "invalid json" {
		t.Errorf("type error details = %v", details)
	}
}

func TestToDetailsUnknownError(t *testing.T) {
	details := ToDetails(errors.New("boom"))
	if details["payload"] != "invalid payload" {
		t.Errorf("fallback details = %v", details)
	}
}
