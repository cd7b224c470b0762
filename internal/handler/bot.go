package handler

import (
	"context"
	"net/http"

	"github.com/osse101/MarketBot_Go/internal/reconcile"
)

// LoopController is the price update loop as driven over HTTP
type LoopController interface {
	Start(ctx context.Context) error
	Stop() error
	Status() reconcile.Status
}

// HandleBotStatus returns the loop status
func HandleBotStatus(ctrl LoopController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ctrl.Status())
	}
}

// HandleBotStart starts the loop
func HandleBotStart(ctrl LoopController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.Start(r.Context()); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusAccepted, DataResponse{Message: MsgLoopStarting, Data: ctrl.Status()})
	}
}

// HandleBotStop requests a stop. It returns once the request is recorded;
// the loop drains after its current iteration.
func HandleBotStop(ctrl LoopController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.Stop(); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusAccepted, DataResponse{Message: MsgLoopStopping, Data: ctrl.Status()})
	}
}
