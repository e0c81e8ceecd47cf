package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrInvalidInput = errors.New("invalid input")

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	phoneRe    = regexp.MustCompile(`^[\+]?[(]?[\d\s\-\(\)]{10,}$`)
)

// FieldError describe un campo de formulario inválido.
// errors.Is(err, ErrInvalidInput) es true para cualquier FieldError.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

func Invalid(field, msg string) error {
	return &FieldError{Field: field, Message: msg}
}

// Required falla si v está vacío después de TrimSpace.
func Required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return Invalid(field, "is required")
	}
	return nil
}

// MaxLen cuenta runas, no bytes.
func MaxLen(field, v string, max int) error {
	if utf8.RuneCountInString(v) > max {
		return Invalid(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

func Email(v string) bool {
	return emailRe.MatchString(v)
}

func Username(v string) bool {
	return usernameRe.MatchString(v)
}

// Phone acepta números con al menos 10 dígitos/separadores, ignorando espacios.
func Phone(v string) bool {
	return phoneRe.MatchString(strings.Join(strings.Fields(v), ""))
}

// FormatPhone aplica la máscara (NNN) NNN-NNNN sobre los dígitos de v.
// Con menos de 3 dígitos devuelve los dígitos tal cual; se recorta a 10 dígitos.
func FormatPhone(v string) string {
	digits := make([]rune, 0, len(v))
	for _, r := range v {
		if unicode.IsDigit(r) && r < utf8.RuneSelf {
			digits = append(digits, r)
		}
	}
	if len(digits) > 10 {
		digits = digits[:10]
	}

	s := string(digits)
	switch {
	case len(s) >= 6:
		return fmt.Sprintf("(%s) %s-%s", s[:3], s[3:6], s[6:])
	case len(s) >= 3:
		return fmt.Sprintf("(%s) %s", s[:3], s[3:])
	default:
		return s
	}
}

// First devuelve el primer error no-nil.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
