package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Ping handles GET /ping
func Ping(w http.ResponseWriter, r *http.Request) {
	log.Debug("Pinging server")
	writeJSON(w, map[string]string{"status": "pong"})
}
