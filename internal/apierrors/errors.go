package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is a request-terminal error carrying the HTTP status it
// maps to and a user-facing message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewErrValidation reports a malformed or missing input.
func NewErrValidation(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewErrEmailIsTaken reports a signup or profile update against an
// email that already belongs to another account.
func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: fmt.Sprintf("email %s is already taken", email)}
}

// NewErrInvalidCredentials reports a failed login. The message is
// identical for an unknown email and a wrong password.
func NewErrInvalidCredentials() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "wrong email or password"}
}

// NewErrMissingAuthorizationToken reports an absent bearer token.
func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "missing authorization token"}
}

// NewErrInvalidAuthorizationToken reports a token that failed
// verification or no longer resolves to a user.
func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "invalid authorization token"}
}

// NewErrBookmarkNotFound reports a bookmark that does not exist or is
// not owned by the requester. The two cases are indistinguishable.
func NewErrBookmarkNotFound(id int64) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf("bookmark %d not found", id)}
}

// NewErrUserNotFound reports a user row that no longer exists.
func NewErrUserNotFound(id int64) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf("user %d not found", id)}
}
