package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateForm checks a tagged form struct and flattens any violations into
// one human-readable message for the notifier.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return err
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// prompt prints a label and reads one trimmed line.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads a password without echo when a masked reader is
// configured, falling back to a plain prompt otherwise.
func (s *Shell) promptSecret(label string) (string, error) {
	if s.readPassword == nil {
		return s.prompt(label)
	}
	fmt.Fprintf(s.out, "%s: ", label)
	secret, err := s.readPassword()
	fmt.Fprintln(s.out)
	if err != nil {
		return "", err
	}
	return secret, nil
}

// choose renders a numbered option list and returns the selected index, or
// -1 when the user submits an empty line.
func (s *Shell) choose(label string, options []string) (int, error) {
	for i, opt := range options {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, opt)
	}
	raw, err := s.prompt(label)
	if err != nil {
		return -1, err
	}
	if raw == "" {
		return -1, nil
	}
	idx, convErr := strconv.Atoi(raw)
	if convErr != nil || idx < 1 || idx > len(options) {
		return -1, fmt.Errorf("invalid selection %q", raw)
	}
	return idx - 1, nil
}
