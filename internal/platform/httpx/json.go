package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON serializa v como respuesta JSON con el status dado.
// Antes estaba duplicado por módulo; con cinco dominios ya convenía
// extraerlo a un helper común.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde {"message": msg}, el formato de error de toda la API.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"message": msg})
}
