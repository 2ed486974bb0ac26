package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"ticket-board/models"
)

// fetchErrorMessage is what viewers see when the snapshot could not be fetched
const fetchErrorMessage = "Failed to fetch data"

type errorResponse struct {
	Error string `json:"error"`
}

// BoardHandler serves the board over HTTP
type BoardHandler struct {
	boardService BoardService
	config       *models.Config
	logger       *zap.Logger
	mux          *http.ServeMux
}

// NewBoardHandler creates the HTTP handler exposing /health and /board
func NewBoardHandler(boardService BoardService, config *models.Config, logger *zap.Logger) *BoardHandler {
	h := &BoardHandler{
		boardService: boardService,
		config:       config,
		logger:       logger,
		mux:          http.NewServeMux(),
	}

	h.mux.HandleFunc("/health", h.handleHealth)
	h.mux.HandleFunc("/board", h.handleBoard)

	return h
}

// ServeHTTP implements http.Handler
func (h *BoardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *BoardHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, err := fmt.Fprintf(w, "OK")
	if err != nil {
		return
	}
}

// handleBoard serves GET /board?group=<status|priority|user>&order=<priority|title>.
// Missing parameters fall back to the configured board defaults.
func (h *BoardHandler) handleBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	groupBy := h.config.Board.Grouping
	if raw := r.URL.Query().Get("group"); raw != "" {
		parsed, err := models.ParseGroupBy(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		groupBy = parsed
	}

	sortBy := h.config.Board.Ordering
	if raw := r.URL.Query().Get("order"); raw != "" {
		parsed, err := models.ParseSortBy(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		sortBy = parsed
	}

	if err := h.boardService.Load(r.Context()); err != nil {
		h.logger.Error("Failed to load board", zap.Error(err))
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: fetchErrorMessage})
		return
	}

	view, err := h.boardService.View(groupBy, sortBy)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrInvalidGroupBy) {
			status = http.StatusBadRequest
		}
		h.logger.Error("Failed to build board", zap.Error(err),
			zap.String("group", groupBy.String()), zap.String("order", sortBy.String()))
		h.writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	h.logger.Debug("Served board",
		zap.String("group", groupBy.String()),
		zap.String("order", sortBy.String()),
		zap.Int("columns", len(view.Columns)))
	h.writeJSON(w, http.StatusOK, view)
}

func (h *BoardHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
