package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// genericErrorMessage deliberately leaks nothing about what went wrong on
// our side.
const genericErrorMessage = "Unknown error. If this persists please contact us."

type OutcomeKind int

const (
	KindSuccess OutcomeKind = iota
	KindValidationFailure
	KindServerError
	KindRedirect
)

// Outcome is the one result shape every action and load step produces:
// success with a payload, a field-tagged validation failure, a server error,
// or a redirect. Never more than one of those at a time.
type Outcome struct {
	Kind         OutcomeKind
	ErrorMessage string
	ErrorFields  []string
	Location     string
	Data         map[string]any
}

func Success(data map[string]any) Outcome {
	return Outcome{Kind: KindSuccess, Data: data}
}

// Fail is a client-correctable validation failure. fields names the form
// fields to highlight; echo carries the submitted values back to the form.
func Fail(message string, fields []string, echo map[string]any) Outcome {
	return Outcome{Kind: KindValidationFailure, ErrorMessage: message, ErrorFields: fields, Data: echo}
}

func ServerError(message string, echo map[string]any) Outcome {
	return Outcome{Kind: KindServerError, ErrorMessage: message, Data: echo}
}

func Redirect(path string) Outcome {
	return Outcome{Kind: KindRedirect, Location: path}
}

// WriteOutcome renders an Outcome onto the response: 303 for redirects, 400
// for validation failures, 500 for server errors, 200 otherwise, with the
// payload as JSON for the rendering layer.
func WriteOutcome(w http.ResponseWriter, r *http.Request, o Outcome) {
	if o.Kind == KindRedirect {
		http.Redirect(w, r, o.Location, http.StatusSeeOther)
		return
	}

	body := map[string]any{}
	for k, v := range o.Data {
		body[k] = v
	}

	status := http.StatusOK
	switch o.Kind {
	case KindValidationFailure:
		status = http.StatusBadRequest
		body["errorMessage"] = o.ErrorMessage
		if o.ErrorFields != nil {
			body["errorFields"] = o.ErrorFields
		}
	case KindServerError:
		status = http.StatusInternalServerError
		body["errorMessage"] = o.ErrorMessage
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("error writing response: ", err)
	}
}
