package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodySize = 1 << 20

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в деталях ошибок используются имена полей из JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// uuid совпадает с правилом для id из пути: регистр не важен
	_ = v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		_, ok := parseID(fl.Field().String())
		return ok
	})
	return v
}

// decodeAndValidate читает JSON тело запроса и проверяет его по тегам validate.
// Пустое тело допустимо, если allowEmpty.
func (h *Handler) decodeAndValidate(r *http.Request, dst any, allowEmpty bool) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := decoder.Decode(dst); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			return domain.NewValidationError("invalid JSON body", nil)
		}
	}

	return h.validateStruct(dst)
}

func (h *Handler) validateStruct(s any) error {
	err := h.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	details := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldErr.Field()] = describeFieldError(fieldErr)
	}

	return domain.NewValidationError("validation failed", details)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

// parseID принимает UUID в каноническом виде 8-4-4-4-12 в любом регистре
// и возвращает его в нижнем регистре
func parseID(value string) (string, bool) {
	if len(value) != 36 {
		return "", false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// canonicalID приводит уже провалидированный id к нижнему регистру
func canonicalID(value string) string {
	if id, ok := parseID(value); ok {
		return id
	}
	return value
}

func canonicalIDPtr(value *string) *string {
	if value == nil {
		return nil
	}
	id := canonicalID(*value)
	return &id
}

// pathID возвращает UUID из пути; не-UUID значения считаются несуществующими ресурсами
func pathID(r *http.Request, name string) (string, bool) {
	return parseID(r.PathValue(name))
}

// optionalString различает отсутствующее поле, явный null и значение
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

var dueDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// parseDueDate принимает дату ISO 8601 с временем или без
func parseDueDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, *value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, domain.NewValidationError("validation failed", map[string]string{
		"dueDate": "must be a valid ISO 8601 date",
	})
}
