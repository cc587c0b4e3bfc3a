package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Database Pinger
}

func NewHandler(db Pinger) Handler {
	return Handler{Database: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
	defer cancel()

	stop := logData.AddTiming("pingMs")
	err := h.Database.Ping(ctx)
	stop()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return fmt.Errorf("status: database ping: %w", err)
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
