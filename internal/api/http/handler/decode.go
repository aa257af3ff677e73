package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/dsemenov/linkmark/internal/apierrors"
)

// decodeJSON decodes a request body strictly: unknown fields and
// malformed JSON are rejected rather than silently dropped.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apierrors.NewErrValidation("invalid request body")
	}
	return nil
}

// validateEmail checks that the address is well-formed and carries no
// display name.
func validateEmail(email string) error {
	if email == "" {
		return apierrors.NewErrValidation("email must not be empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apierrors.NewErrValidation("email is malformed")
	}
	// mail.ParseAddress accepts bare hostnames; require a dotted domain.
	domain := email[strings.LastIndex(email, "@")+1:]
	if !strings.Contains(domain, ".") {
		return apierrors.NewErrValidation("email is malformed")
	}
	return nil
}
