package responses

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (r *ErrorResponse) Build(s int, m, d string) {
	r.Status = s
	r.Message = m
	r.Data = d
}

func (r ErrorResponse) Respond(w http.ResponseWriter, s int, m string, d string) {
	r.Build(s, m, d)
	w.WriteHeader(s)
	json.NewEncoder(w).Encode(r)
}
