package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes limita o corpo das requisições JSON
const maxBodyBytes = 1 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dest)
}

func writeSuccess(w http.ResponseWriter, status int, body map[string]any) {
	body["success"] = true
	apiErrors.WriteJSON(w, status, body)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	apiErrors.WriteJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
