package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// UnknownErrorMessage is used when a failure carries no readable message.
const UnknownErrorMessage = "An unknown error occurred"

// APIError is the uniform shape every failure is converted into before it is surfaced.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Code    string `json:"code,omitempty"`
}

func (e APIError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type messager interface {
	Message() string
}

// Normalize converts an arbitrary failure value into an APIError.
// Values already in normalized form are returned unchanged.
func Normalize(v any) APIError {
	switch e := v.(type) {
	case nil:
		return APIError{Message: UnknownErrorMessage}
	case APIError:
		return e
	case *APIError:
		if e == nil {
			return APIError{Message: UnknownErrorMessage}
		}
		return *e
	case error:
		return normalizeError(e)
	case messager:
		if msg := strings.TrimSpace(e.Message()); msg != "" {
			return APIError{Message: msg}
		}
	}
	return APIError{Message: UnknownErrorMessage}
}

func normalizeError(err error) APIError {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var apiErrPtr *APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr
	}

	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return APIError{Message: UnknownErrorMessage}
	}
	out := APIError{Message: msg}
	switch {
	case IsValidation(err):
		out.Status, out.Code = http.StatusBadRequest, "validation_error"
	case IsNotFound(err):
		out.Status, out.Code = http.StatusNotFound, "not_found"
	case IsConflict(err):
		out.Status, out.Code = http.StatusConflict, "conflict"
	case IsInternal(err):
		out.Status, out.Code = http.StatusInternalServerError, "internal_error"
	}
	return out
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "internal error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
