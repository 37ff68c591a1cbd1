package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type errorBody struct {
	Error struct {
		Code    Code   `json:"code"`
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"error"`
}

// WriteJSON writes v as a JSON response body.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// WriteError maps an error to its status code and a structured body. Plain
// errors are masked as internal so store failures never leak driver details.
func WriteError(w http.ResponseWriter, err error) {
	var body errorBody

	var app *AppError
	if errors.As(err, &app) {
		body.Error.Code = app.Code
		body.Error.Reason = app.Reason
		body.Error.Message = app.Message
	} else {
		log.Printf("internal error: %v", err)
		body.Error.Code = CodeInternal
		body.Error.Reason = "internal"
		body.Error.Message = "internal error"
	}

	WriteJSON(w, HTTPStatus(err), body)
}
