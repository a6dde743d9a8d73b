package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const (
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInternalError    = "Internal server error"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// DecodeJSON декодирует тело запроса. Пустое тело считается пустым объектом.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// RespondJSON пишет data в формате JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError пишет {"error": msg}
func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// RespondErrorWithMessage пишет {"error": msg, "message": details}
func RespondErrorWithMessage(w http.ResponseWriter, status int, msg, details string) {
	RespondJSON(w, status, ErrorResponse{Error: msg, Message: details})
}

func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadRequest, msg)
}

func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusNotFound, msg)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, MsgInternalError)
}

// NotFound обработчик неизвестных маршрутов
func NotFound(w http.ResponseWriter, _ *http.Request) {
	RespondNotFound(w, MsgNotFound)
}

// MethodNotAllowed обработчик неподдерживаемых методов
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	RespondError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
