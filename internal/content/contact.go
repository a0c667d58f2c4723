package content

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// SubmitDelay is how long a submission pretends to travel.
const SubmitDelay = time.Second

// SuccessMessage is the reply to an accepted submission.
const SuccessMessage = "Message sent successfully!"

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneNoise   = strings.NewReplacer(" ", "", "\t", "", "-", "", "(", "", ")", "")
)

// ContactForm is what a visitor sends.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Normalize trims every field and lowercases the email.
func (f ContactForm) Normalize() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.ToLower(strings.TrimSpace(f.Email)),
		Phone:   strings.TrimSpace(f.Phone),
		Message: strings.TrimSpace(f.Message),
	}
}

// FieldError is a rejected field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field in form order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "invalid contact form: " + strings.Join(msgs, "; ")
}

// Field returns the message for field, or "" when it passed.
func (e *ValidationError) Field(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Validate checks a normalized form. It returns nil or a *ValidationError.
func (f ContactForm) Validate() error {
	var fields []FieldError
	add := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}

	switch n := utf8.RuneCountInString(f.Name); {
	case n == 0:
		add("name", "Name is required.")
	case n < 2:
		add("name", "Name must be at least 2 characters.")
	case n > 50:
		add("name", "Name must be less than 50 characters.")
	case !namePattern.MatchString(f.Name):
		add("name", "Name can only contain letters and spaces.")
	}

	switch n := utf8.RuneCountInString(f.Email); {
	case !validEmail(f.Email):
		add("email", "Please enter a valid email address.")
	case n < 5:
		add("email", "Email must be at least 5 characters.")
	case n > 100:
		add("email", "Email must be less than 100 characters.")
	}

	if f.Phone != "" {
		switch n := utf8.RuneCountInString(f.Phone); {
		case !phonePattern.MatchString(phoneNoise.Replace(f.Phone)):
			add("phone", "Please enter a valid phone number.")
		case n < 10 || n > 15:
			add("phone", "Phone number must be between 10-15 digits.")
		}
	}

	switch n := utf8.RuneCountInString(f.Message); {
	case n == 0:
		add("message", "Message is required.")
	case n < 10:
		add("message", "Message must be at least 10 characters.")
	case n > 1000:
		add("message", "Message must be less than 1000 characters.")
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// validEmail accepts a bare address with a dotted domain.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}

// Response is the reply to a submission.
type Response struct {
	Message string
}

// Submit normalizes, validates and records a contact request. The delay
// stands in for delivery and is cut short by ctx.
func Submit(ctx context.Context, log *zap.Logger, form ContactForm, delay time.Duration) (Response, error) {
	if log == nil {
		log = zap.NewNop()
	}
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		log.Debug("contact form rejected", zap.Error(err))
		return Response{}, err
	}
	log.Info("contact form received",
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.Bool("phone", form.Phone != ""),
		zap.Int("message_len", utf8.RuneCountInString(form.Message)),
	)

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			log.Warn("contact form abandoned", zap.Error(ctx.Err()))
			return Response{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	return Response{Message: SuccessMessage}, nil
}
