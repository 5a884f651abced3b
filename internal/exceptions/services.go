package exceptions

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeValidation  string = "VALIDATION"
	CodeConflict    string = "CONFLICT"
	CodeNotFound    string = "NOT_FOUND"
	CodeUnknown     string = "UNKNOWN"
	CodeServerError string = "SERVER_ERROR"
)

const (
	MessageDuplicateKey string = "Resource already exists"
	MessageNotFound     string = "Resource not found"
	MessageUnknown      string = "Something went wrong"
)

type ServiceError struct {
	Code    string
	Message string
}

func NewError(code string, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

func NewNotFoundError() *ServiceError {
	return NewError(CodeNotFound, MessageNotFound)
}

func NewServerError() *ServiceError {
	return NewError(CodeServerError, MessageUnknown)
}

func (e *ServiceError) Error() string {
	return e.Message
}

func FromDBError(err error) *ServiceError {
	if errors.Is(err, sql.ErrNoRows) {
		return NewError(CodeNotFound, MessageNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return NewError(CodeConflict, MessageDuplicateKey)
		case "23503":
			return NewError(CodeNotFound, MessageNotFound)
		default:
			return NewError(CodeUnknown, pgErr.Message)
		}
	}

	return NewError(CodeUnknown, MessageUnknown)
}
