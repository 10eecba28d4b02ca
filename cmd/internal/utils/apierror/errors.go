package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

func (s *StructuredError) Empty() bool {
	return len(s.Errors) == 0
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")
	UnauthorizedError   = NewSimple(401, "Missing or invalid bearer token")

	NotFoundError  = NewSimple(404, "Resource not found")
	InvalidIDError = NewSimple(400, "The provided ID is invalid, IDs are int64 > 0")

	/*
	 * Used for contracts and documents
	 */
	ClientNotFoundError       = NewSimple(404, "Client not found")
	ContractNotFoundError     = NewSimple(404, "Contract not found")
	ClientHasContractsError   = NewSimple(409, "Client still has contracts and cannot be deleted")
	DuplicateNumberError      = NewSimple(409, "A contract with this number already exists")
	ContractInForceError      = NewSimple(409, "Only draft or cancelled contracts can be deleted")
	DocumentRenderError       = NewSimple(500, "Could not generate the contract document")
	ProfileUnavailableError   = NewSimple(503, "Company configuration is unavailable")
	UploadError               = NewSimple(502, "Could not upload the contract document")
	InvalidCNPJError          = NewSimple(400, "The provided CNPJ is invalid")
	RegistryUnavailableError  = NewSimple(502, "The public CNPJ registry did not answer")
	EmptyProfileUpdateError   = NewSimple(400, "No known company configuration field was provided")
	StorageNotConfiguredError = NewSimple(503, "Object storage is not configured")
)

var messages = map[string]string{
	"required":       "This field is required",
	"email":          "Value must be a valid email address",
	"cnpj":           "Value must be a valid CNPJ",
	"cpf":            "Value must be a valid CPF",
	"uf":             "Value must be a Brazilian state abbreviation",
	"contracttype":   "Unknown contract type",
	"contractstatus": "Unknown contract status",
	"persontype":     "Value must be 'juridica' or 'fisica'",
	"nodupes":        "Values must not repeat",
	"gtefield":       "Value must not be before the start date",
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "gte", "lte":
			problems[field] = append(problems[field], "Value out of range: "+fe.Tag()+" "+fe.Param())
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())

		default:
			msg, ok := messages[fe.Tag()]
			if !ok {
				msg = "Invalid value provided"
			}
			problems[field] = append(problems[field], msg)
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewInvalidQueryError(name, value string) *APIError {
	return NewSimple(http.StatusBadRequest, "Query parameter '%s' has an invalid value: %s", name, value)
}
