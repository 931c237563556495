// Package validation содержит цепочку правил, которая выполняется перед каждой мутацией.
//
// Правила применяются в заданном порядке, первая ошибка прерывает цепочку:
// ошибки не агрегируются. Нарушение правила возвращается как *domain.ValidationError,
// ошибки хранилища пробрасываются как есть.
package validation

import "context"

type Rule[T any] interface {
	Validate(ctx context.Context, v *T) error
}

// RuleFunc позволяет использовать обычную функцию как правило.
type RuleFunc[T any] func(ctx context.Context, v *T) error

func (f RuleFunc[T]) Validate(ctx context.Context, v *T) error {
	return f(ctx, v)
}

func Run[T any](ctx context.Context, v *T, rules ...Rule[T]) error {
	for _, r := range rules {
		if err := r.Validate(ctx, v); err != nil {
			return err
		}
	}
	return nil
}
