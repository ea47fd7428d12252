package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации
	ErrValidationFailed = errors.New("validation failed")
	ErrUploadsDisabled  = errors.New("scorecard uploads are not configured")
	ErrUnsupportedImage = errors.New("unsupported scorecard image type")

	// Ошибки конфликтов
	ErrResultConflict     = errors.New("a result for this matchup is already recorded")
	ErrPlayerNameConflict = errors.New("player name is already in use")

	// Ошибки аутентификации и авторизации
	ErrAuthInvalidCredentials = errors.New("invalid player id or pin")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")

	// Ошибки, специфичные для сущностей
	ErrPlayerNotFound         = errors.New("player not found")
	ErrResultNotFound         = errors.New("match result not found")
	ErrTournamentYearNotFound = errors.New("tournament year not found")
)

// ValidationError carries a message per offending field. errors.Is(err, ErrValidationFailed)
// holds for every ValidationError.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// orNil lets callers write `return v.orNil()` without returning a typed nil.
func (e *ValidationError) orNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// ConflictError reports a duplicate submission for a matchup that already has a result.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrResultConflict.Error()
}

func (e *ConflictError) Unwrap() error {
	return ErrResultConflict
}
