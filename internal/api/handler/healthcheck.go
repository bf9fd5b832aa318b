package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type StatusResponse struct {
	Message string `json:"message"`
}

// RootHandler answers the static status probe on /
func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(StatusResponse{
			Message: "Ads performance report API is running.",
		}); err != nil {
			logrus.WithError(err).Warn("error responding to status probe")
		}
	})
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
