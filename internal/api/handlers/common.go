package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

const (
	maxBodyBytes = 10 << 20 // бэкап может быть большим

	msgInternalError = "внутренняя ошибка сервера"
)

var validate = validator.New()

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	OK       bool              `json:"ok"`
	Message  string            `json:"message"`
	Reason   string            `json:"reason,omitempty"`
	Conflict *ConflictResponse `json:"conflict,omitempty"`
}

// DecodeJSON читает тело запроса; неизвестные поля отклоняются
func DecodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// DecodeAndValidate читает тело и проверяет теги validate
func DecodeAndValidate(r *http.Request, dest interface{}) error {
	if err := DecodeJSON(r, dest); err != nil {
		return err
	}
	return ValidateStruct(dest)
}

// ValidateStruct проверяет теги validate и собирает понятное сообщение
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(parts, "; "))
}

// RespondJSON пишет ответ в JSON
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondOK ответ {"ok": true}
func RespondOK(w http.ResponseWriter) {
	RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidation 400 с машиночитаемой причиной
func RespondValidation(w http.ResponseWriter, err *domain.ValidationError) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Message: err.Message, Reason: err.Reason})
}

// RespondConflict 409 с описанием мешающей брони
func RespondConflict(w http.ResponseWriter, err *domain.ConflictError) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{
		Message:  err.Error(),
		Reason:   domain.ReasonScheduleConflict,
		Conflict: FromDomainConflict(err.Conflict),
	})
}

// RespondDomainError отвечает на ошибки проверки и пересечения.
// Возвращает false, если err не относится к ним.
func RespondDomainError(w http.ResponseWriter, err error) bool {
	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		RespondConflict(w, conflictErr)
		return true
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		RespondValidation(w, validationErr)
		return true
	}
	return false
}
