package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/limbo/kakune/internal/service"
	"github.com/limbo/kakune/pkg/entity"
	"github.com/limbo/kakune/pkg/httputil"
)

type ItemRequest struct {
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

type ReorderRequest struct {
	IDs []string `json:"ids"`
}

type ItemsResponse struct {
	Items []entity.CheckItem `json:"items"`
}

func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "listing items")
	if !ok {
		return
	}
	includeArchived, _ := strconv.ParseBool(r.URL.Query().Get("archived"))
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	items, err := s.itemsService.List(ctx, uid, includeArchived)
	if err != nil {
		writeItemError(w, logger, "listing items", err)
		return
	}
	if items == nil {
		items = []entity.CheckItem{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ItemsResponse{Items: items})
}

func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "creating item")
	if !ok {
		return
	}
	var req ItemRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("creating item error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	item, err := s.itemsService.Create(ctx, uid, &service.ItemRequest{Name: req.Name, Icon: req.Icon})
	if err != nil {
		writeItemError(w, logger, "creating item", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, item)
	logger.Info("item created")
}

func (s *Server) UpdateItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "updating item")
	if !ok {
		return
	}
	itemID, ok := itemIDFromPath(w, r, "updating item")
	if !ok {
		return
	}
	var req ItemRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("updating item error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	item, err := s.itemsService.Update(ctx, uid, itemID, &service.ItemRequest{Name: req.Name, Icon: req.Icon})
	if err != nil {
		writeItemError(w, logger, "updating item", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
	logger.Info("item updated")
}

func (s *Server) ReorderItems(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "reordering items")
	if !ok {
		return
	}
	var req ReorderRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("reordering items error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("reordering items error: invalid id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in order", err)
			return
		}
		ids = append(ids, id)
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.itemsService.Reorder(ctx, uid, ids); err != nil {
		writeItemError(w, logger, "reordering items", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("items reordered")
}

func (s *Server) ArchiveItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "archiving item")
	if !ok {
		return
	}
	itemID, ok := itemIDFromPath(w, r, "archiving item")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.itemsService.Archive(ctx, uid, itemID); err != nil {
		writeItemError(w, logger, "archiving item", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("item archived")
}

func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "item deletion")
	if !ok {
		return
	}
	itemID, ok := itemIDFromPath(w, r, "item deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.itemsService.Delete(ctx, uid, itemID); err != nil {
		writeItemError(w, logger, "item deletion", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("item deleted")
}
