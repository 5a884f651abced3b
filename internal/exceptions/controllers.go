package exceptions

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	StatusConflict   string = "Conflict"
	StatusNotFound   string = "NotFound"
	StatusUnknown    string = "InternalServerError"
	StatusValidation string = "Validation"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(err *ServiceError) ErrorResponse {
	switch err.Code {
	case CodeConflict:
		return ErrorResponse{
			Code:    StatusConflict,
			Message: err.Message,
		}
	case CodeNotFound:
		return ErrorResponse{
			Code:    StatusNotFound,
			Message: err.Message,
		}
	case CodeValidation:
		return ErrorResponse{
			Code:    StatusValidation,
			Message: err.Message,
		}
	case CodeUnknown:
		return ErrorResponse{
			Code:    StatusUnknown,
			Message: StatusUnknown,
		}
	default:
		return ErrorResponse{
			Code:    StatusUnknown,
			Message: err.Message,
		}
	}
}

type FieldError struct {
	Param   string      `json:"param"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

type ValidationErrorResponse struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location string       `json:"location"`
	Fields   []FieldError `json:"fields,omitempty"`
}

const (
	ValidationResponseMessage        string = "Invalid request"
	ValidationResponseLocationQuery  string = "query"
	ValidationResponseLocationParams string = "params"
)

func toSnakeCase(camel string) string {
	if camel == strings.ToUpper(camel) {
		return strings.ToLower(camel)
	}

	var result strings.Builder
	for i, char := range camel {
		if unicode.IsUpper(char) {
			lowered := unicode.ToLower(char)
			if i > 0 {
				result.WriteRune('_')
				result.WriteRune(lowered)
				continue
			}

			result.WriteRune(lowered)
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}

const (
	fieldErrTagRequired string = "required"

	strFieldErrTagMin string = "min"
	strFieldErrTagMax string = "max"
	strFieldNumber    string = "number"
	strFieldNumeric   string = "numeric"

	intFieldErrTagGte string = "gte"
	intFieldErrTagLte string = "lte"
	intFieldErrTagMin string = "min"

	FieldErrMessageInvalid  string = "must be valid"
	FieldErrMessageRequired string = "must be provided"

	StrFieldErrMessageMin    string = "must be longer"
	StrFieldErrMessageMax    string = "must be shorter"
	StrFieldErrMessageNumber string = "must be a number"

	IntFieldErrMessageLte string = "must be less"
	IntFieldErrMessageGte string = "must be greater"
)

func selectStrErrMessage(tag string) string {
	switch tag {
	case fieldErrTagRequired:
		return FieldErrMessageRequired
	case strFieldErrTagMin:
		return StrFieldErrMessageMin
	case strFieldErrTagMax:
		return StrFieldErrMessageMax
	case strFieldNumber, strFieldNumeric:
		return StrFieldErrMessageNumber
	default:
		return FieldErrMessageInvalid
	}
}

func selectIntErrMessage(tag string) string {
	switch tag {
	case fieldErrTagRequired:
		return FieldErrMessageRequired
	case intFieldErrTagLte:
		return IntFieldErrMessageLte
	case intFieldErrTagGte, intFieldErrTagMin:
		return IntFieldErrMessageGte
	default:
		return FieldErrMessageInvalid
	}
}

func buildFieldErrorMessage(tag string, val interface{}) string {
	switch val.(type) {
	case string:
		return selectStrErrMessage(tag)
	case int, int16, int32, int64:
		return selectIntErrMessage(tag)
	default:
		return FieldErrMessageInvalid
	}
}

func ValidationErrorResponseFromErr(err *validator.ValidationErrors, location string) ValidationErrorResponse {
	fields := make([]FieldError, len(*err))

	for i, field := range *err {
		value := field.Value()
		fields[i] = FieldError{
			Value:   value,
			Param:   toSnakeCase(field.Field()),
			Message: buildFieldErrorMessage(field.Tag(), value),
		}
	}

	return ValidationErrorResponse{
		Code:     StatusValidation,
		Message:  ValidationResponseMessage,
		Fields:   fields,
		Location: location,
	}
}

func NewEmptyValidationErrorResponse(location string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:     StatusValidation,
		Message:  ValidationResponseMessage,
		Location: location,
	}
}

func NewRequestErrorStatus(code string) int {
	switch code {
	case CodeConflict:
		return 409
	case CodeValidation:
		return 400
	case CodeNotFound:
		return 404
	default:
		return 500
	}
}
