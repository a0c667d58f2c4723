package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Submit waits on timers; none may outlive a cancelled call.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func validForm() ContactForm {
	return ContactForm{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+44 2079460958",
		Message: "I would like to talk about a project.",
	}
}

func TestProjectsAreCopies(t *testing.T) {
	got := Projects()
	if len(got) != 5 {
		t.Fatalf("expected 5 projects, got %d", len(got))
	}
	got[0].Title = "changed"
	got[0].TechStack[0] = "changed"

	again := Projects()
	if again[0].Title != "E-commerce Storefront" || again[0].TechStack[0] != "Next.js" {
		t.Fatalf("expected catalogue untouched, got %+v", again[0])
	}
}

func TestProjectByID(t *testing.T) {
	got, ok := ProjectByID("3")
	if !ok {
		t.Fatal("expected project 3")
	}
	want := Project{
		ID:          "3",
		Title:       "Task Management App",
		Description: "A full-stack task management application with user authentication and real-time updates.",
		Href:        "https://example.com/task-app",
		TechStack:   []string{"Node.js", "Express", "MongoDB", "React"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("project mismatch (-want +got):\n%s", diff)
	}

	if _, ok := ProjectByID("42"); ok {
		t.Fatal("expected unknown id to miss")
	}
}

func TestNormalize(t *testing.T) {
	got := ContactForm{
		Name:    "  Ada  ",
		Email:   " Ada@Example.COM ",
		Phone:   " 555 ",
		Message: "\thello there\n",
	}.Normalize()
	want := ContactForm{Name: "Ada", Email: "ada@example.com", Phone: "555", Message: "hello there"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateAcceptsGoodForm(t *testing.T) {
	if err := validForm().Validate(); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
	f := validForm()
	f.Phone = ""
	if err := f.Validate(); err != nil {
		t.Fatalf("expected phone to be optional, got %v", err)
	}
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*ContactForm)
		field string
		want  string
	}{
		{"empty name", func(f *ContactForm) { f.Name = "" }, "name", "Name is required."},
		{"short name", func(f *ContactForm) { f.Name = "A" }, "name", "Name must be at least 2 characters."},
		{"long name", func(f *ContactForm) { f.Name = strings.Repeat("a", 51) }, "name", "Name must be less than 50 characters."},
		{"digits in name", func(f *ContactForm) { f.Name = "R2 D2" }, "name", "Name can only contain letters and spaces."},
		{"bad email", func(f *ContactForm) { f.Email = "not-an-email" }, "email", "Please enter a valid email address."},
		{"display name email", func(f *ContactForm) { f.Email = "Ada <ada@example.com>" }, "email", "Please enter a valid email address."},
		{"long email", func(f *ContactForm) { f.Email = strings.Repeat("a", 95) + "@example.com" }, "email", "Email must be less than 100 characters."},
		{"letters in phone", func(f *ContactForm) { f.Phone = "call me maybe" }, "phone", "Please enter a valid phone number."},
		{"leading zero phone", func(f *ContactForm) { f.Phone = "0123456789" }, "phone", "Please enter a valid phone number."},
		{"short phone", func(f *ContactForm) { f.Phone = "12345" }, "phone", "Phone number must be between 10-15 digits."},
		{"long phone", func(f *ContactForm) { f.Phone = "+1 (555) 123-4567" }, "phone", "Phone number must be between 10-15 digits."},
		{"empty message", func(f *ContactForm) { f.Message = "" }, "message", "Message is required."},
		{"short message", func(f *ContactForm) { f.Message = "hi there" }, "message", "Message must be at least 10 characters."},
		{"long message", func(f *ContactForm) { f.Message = strings.Repeat("x", 1001) }, "message", "Message must be less than 1000 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.edit(&f)
			err := f.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if got := verr.Field(tt.field); got != tt.want {
				t.Fatalf("expected %q on %s, got %q", tt.want, tt.field, got)
			}
			if len(verr.Fields) != 1 {
				t.Fatalf("expected only %s to fail, got %+v", tt.field, verr.Fields)
			}
		})
	}
}

func TestValidateReportsFieldsInOrder(t *testing.T) {
	err := ContactForm{}.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var got []string
	for _, f := range verr.Fields {
		got = append(got, f.Field)
	}
	if diff := cmp.Diff([]string{"name", "email", "message"}, got); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitSucceeds(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	f := validForm()
	f.Email = "  ADA@example.com "

	resp, err := Submit(context.Background(), zap.New(core), f, time.Millisecond)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.Message != SuccessMessage {
		t.Fatalf("expected %q, got %q", SuccessMessage, resp.Message)
	}
	entries := logs.FilterMessage("contact form received").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["email"]; got != "ada@example.com" {
		t.Fatalf("expected normalized email in log, got %v", got)
	}
}

func TestSubmitRejectsInvalidForm(t *testing.T) {
	f := validForm()
	f.Message = "short"
	_, err := Submit(context.Background(), nil, f, 0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := Submit(ctx, nil, validForm(), time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("expected cancellation to cut the delay short")
	}
}
