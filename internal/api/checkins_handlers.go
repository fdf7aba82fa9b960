package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/kakune/pkg/entity"
	"github.com/limbo/kakune/pkg/httputil"
)

type CheckInRequest struct {
	PhotoRef *string `json:"photo_ref"`
}

type HomeResponse struct {
	Items []entity.HomeItem `json:"items"`
}

// Home answers the home screen. Every "pending" query value is one
// submission of that item still in flight on the client.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "home")
	if !ok {
		return
	}
	var pending map[uuid.UUID]int
	for _, raw := range r.URL.Query()["pending"] {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("home error: invalid pending id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid pending item id", err)
			return
		}
		if pending == nil {
			pending = make(map[uuid.UUID]int)
		}
		pending[id]++
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	items, err := s.checkInsService.Home(ctx, uid, pending)
	if err != nil {
		writeItemError(w, logger, "home", err)
		return
	}
	if items == nil {
		items = []entity.HomeItem{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HomeResponse{Items: items})
}

func (s *Server) RecordCheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "check-in")
	if !ok {
		return
	}
	itemID, ok := itemIDFromPath(w, r, "check-in")
	if !ok {
		return
	}
	// The body is optional
	var req CheckInRequest
	if r.ContentLength != 0 {
		if err := httputil.DecodeJSON(r, &req); err != nil {
			logger.Error("check-in error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	recorded, err := s.checkInsService.Record(ctx, uid, itemID, req.PhotoRef)
	if err != nil {
		writeItemError(w, logger, "check-in", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, recorded)
	logger.Info("check-in recorded")
}

func (s *Server) TodayLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "today log")
	if !ok {
		return
	}
	itemID, ok := itemIDFromPath(w, r, "today log")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	log, err := s.checkInsService.TodayLog(ctx, uid, itemID)
	if err != nil {
		writeItemError(w, logger, "today log", err)
		return
	}
	if log.Events == nil {
		log.Events = []entity.CheckInEvent{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, log)
}
