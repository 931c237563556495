package errs

import (
	"errors"
	"net/http"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
)

// ErrInvalidInput: запрос не удалось разобрать (JSON, параметры пути и query).
var ErrInvalidInput = errors.New("invalid input")

func ToHTTP(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, repository.ErrInvalidInput),
		errors.Is(err, repository.ErrInvalidCursor):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, repository.ErrConflict),
		errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Meta: поля для тела ошибки; для ValidationError указывает поле.
func Meta(err error) map[string]any {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Field != "" {
		return map[string]any{"field": verr.Field}
	}
	return nil
}
