package apierrors

import "fmt"

// ValidationError представляет ошибку валидации входных данных.
// Используется для разделения ошибок валидации (HTTP 400) от серверных ошибок (HTTP 500).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError formats its arguments using format and returns a *ValidationError whose Message field is set to the formatted string.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFoundError представляет ошибку "ресурс не найден".
// Используется для возврата HTTP 404 Not Found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a NotFoundError whose Message is the result of formatting the given format string with the provided args.
func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{
		Message: fmt.Sprintf(format, args...),
	}
}

// ParseError — структурная ошибка разбора CSV (битые кавычки, нечитаемый поток).
// Единственная фатальная ошибка пайплайна: партия прерывается целиком.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps err with a contextual message into a *ParseError.
func NewParseError(err error, format string, args ...interface{}) error {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// EmptyInputError — в CSV не оказалось ни одной пригодной строки.
// Не фатальна: фиксируется в итогах партии, обращений к базе не происходит.
type EmptyInputError struct {
	Message string
}

func (e *EmptyInputError) Error() string {
	return e.Message
}

func NewEmptyInputError(format string, args ...interface{}) error {
	return &EmptyInputError{
		Message: fmt.Sprintf(format, args...),
	}
}

// PersistenceError представляет сбой записи одной записи в базу.
// Изолируется на уровне записи: партия продолжает обрабатываться.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(err error, format string, args ...interface{}) error {
	return &PersistenceError{
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
