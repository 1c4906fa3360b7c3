package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type errorItem struct {
	Msg string `json:"msg"`
}

type errorList struct {
	Errors []errorItem `json:"errors"`
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeMsg sends the {"msg": ...} bodies the frontend matches on.
func writeMsg(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, map[string]string{"msg": message}, statusCode)
}

// writeErrors sends a field-level error list, one entry per failing check.
func writeErrors(w http.ResponseWriter, messages ...string) {
	list := errorList{Errors: make([]errorItem, 0, len(messages))}
	for _, msg := range messages {
		list.Errors = append(list.Errors, errorItem{Msg: msg})
	}
	writeJSON(w, list, http.StatusBadRequest)
}

// writeServerError logs the real cause and hands the client the generic body.
func writeServerError(w http.ResponseWriter, err error) {
	log.Printf("server error: %v", err)
	http.Error(w, "Server Error", http.StatusInternalServerError)
}

// validationMessages maps failing struct fields to their route-specific
// messages, in field order.
func validationMessages(err error, fields []string, messages map[string]string) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{"invalid request"}
	}

	failed := make(map[string]bool, len(validationErrors))
	for _, fieldError := range validationErrors {
		failed[fieldError.Field()] = true
	}

	var result []string
	for _, field := range fields {
		if failed[field] {
			result = append(result, messages[field])
		}
	}

	return result
}
