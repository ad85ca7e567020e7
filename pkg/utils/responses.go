package utils

import (
	"fmt"
	"net/http"
)

// Page responses are written to the terminal writer behind the router.
// Status codes travel with them so the shell can react to guards.

// ResponseText writes a plain message with a custom status code
func ResponseText(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if message != "" {
		fmt.Fprintln(w, message)
	}
}

// ResponseRedirect writes a message and the page the user should go next
func ResponseRedirect(w http.ResponseWriter, code int, message, location string) {
	w.Header().Set("Location", location)
	ResponseText(w, code, message)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string) {
	ResponseText(w, http.StatusOK, message)
}

// returns 303 See Other (navigate after a successful action)
func ResponseSeeOther(w http.ResponseWriter, message, location string) {
	ResponseRedirect(w, http.StatusSeeOther, message, location)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseText(w, http.StatusBadRequest, message)
}

// returns 401 Unauthorized, sends the user to the login page
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseRedirect(w, http.StatusUnauthorized, message, "/login")
}

// returns 403 Forbidden, sends the user home
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseRedirect(w, http.StatusForbidden, message, "/")
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseText(w, http.StatusNotFound, message)
}
