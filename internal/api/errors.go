package api

import (
	"log"
	"net/http"
)

func BadRequest(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusBadRequest)
}

func Unauthorized(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusUnauthorized)
}

func Forbidden(w http.ResponseWriter) {
	http.Error(w, "Forbidden", http.StatusForbidden)
}

func NotFound(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusNotFound)
}

func Conflict(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusConflict)
}

func MethodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

func InternalServerError(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
