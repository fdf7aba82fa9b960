package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/kakune/pkg/httputil"
)

// Calendar answers the month grid. A missing or malformed "month" gives the
// current month.
func (s *Server) Calendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "calendar")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	month, err := s.historyService.Calendar(ctx, uid, r.URL.Query().Get("month"))
	if err != nil {
		logger.Error("calendar error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building calendar", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, month)
}

// Series answers chart points. "period=weekly" selects weeks, anything else
// gives days.
func (s *Server) Series(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "series")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	series, err := s.historyService.Series(ctx, uid, r.URL.Query().Get("period"))
	if err != nil {
		logger.Error("series error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building series", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, series)
}

func (s *Server) Summary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "summary")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	summary, err := s.historyService.Summary(ctx, uid)
	if err != nil {
		logger.Error("summary error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building summary", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}
