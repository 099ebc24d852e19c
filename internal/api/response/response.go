// Package response writes the JSON bodies the dashboard client
// expects: bare objects and arrays on success, a message object on
// failure, with an errors field carrying validation detail.
package response

import (
	"encoding/json"
	"net/http"
)

// errorBody is the failure wire shape.
type errorBody struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// JSON sends data as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// OK sends a 200 OK response with data
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created sends a 201 Created response with data
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// Message sends a confirmation message with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Message: message})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(w http.ResponseWriter, message string) {
	Message(w, http.StatusBadRequest, message)
}

// Invalid sends a 400 response carrying field-level validation detail.
func Invalid(w http.ResponseWriter, errors any) {
	JSON(w, http.StatusBadRequest, errorBody{Message: "Invalid data", Errors: errors})
}

// NotFound sends a 404 Not Found response
func NotFound(w http.ResponseWriter, message string) {
	Message(w, http.StatusNotFound, message)
}

// InternalError sends a generic 500 response. Internal detail stays in
// the logs.
func InternalError(w http.ResponseWriter) {
	Message(w, http.StatusInternalServerError, "Internal server error")
}
