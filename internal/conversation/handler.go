package conversation

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"pairchat/internal/common"

	"github.com/gorilla/mux"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/conversations", h.getOrCreate).Methods("POST")
	router.HandleFunc("/conversations", h.list).Methods("GET")
	router.HandleFunc("/conversations/{id}/messages", h.messages).Methods("GET")
}

type getOrCreateBody struct {
	OtherUserID string `json:"otherUserId"`
}

type conversationResponse struct {
	ID            string    `json:"id"`
	OtherUserID   string    `json:"otherUserId"`
	CreatedAt     time.Time `json:"createdAt"`
	LastMessageAt time.Time `json:"lastMessageAt"`
}

func (h *Handler) getOrCreate(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFrom(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("missing_identity", "not authenticated"))
		return
	}

	var body getOrCreateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Validation("bad_json", "malformed request body"))
		return
	}

	conv, err := h.service.GetOrCreate(r.Context(), actorID, body.OtherUserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, conversationResponse{
		ID:            conv.ID,
		OtherUserID:   conv.OtherMember(actorID),
		CreatedAt:     conv.CreatedAt,
		LastMessageAt: conv.LastMessageAt,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFrom(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("missing_identity", "not authenticated"))
		return
	}

	summaries, err := h.service.List(r.Context(), actorID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, summaries)
}

func (h *Handler) messages(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFrom(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("missing_identity", "not authenticated"))
		return
	}

	conversationID := mux.Vars(r)["id"]
	cursor := r.URL.Query().Get("cursor")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			common.WriteError(w, common.Validation("bad_limit", "limit must be an integer"))
			return
		}
		limit = n
	}

	page, err := h.service.Messages(r.Context(), conversationID, actorID, cursor, limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, page)
}
