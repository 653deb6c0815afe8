package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *SlackHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/slack/commands", h.HandleSlashCommand).Methods(http.MethodPost)
	r.HandleFunc("/health", h.HandleHealth).Methods(http.MethodGet)

	return r
}
