package message

import (
	"encoding/json"
	"net/http"

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
	router.HandleFunc("/messages", h.send).Methods("POST")
	router.HandleFunc("/messages/{id}", h.edit).Methods("PATCH")
	router.HandleFunc("/messages/{id}/undo", h.undo).Methods("POST")
	router.HandleFunc("/messages/read", h.markRead).Methods("POST")
}

type sendBody struct {
	ConversationID  string `json:"conversationId"`
	Body            string `json:"body"`
	ClientMessageID string `json:"clientMessageId"`
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFrom(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("missing_identity", "not authenticated"))
		return
	}

	var body sendBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Validation("bad_json", "malformed request body"))
		return
	}

	payload, err := h.service.Send(r.Context(), body.ConversationID, actorID, body.Body, body.ClientMessageID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, payload)
}

type editBody struct {
	Body string `json:"body"`
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFrom(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("missing_identity", "not authenticated"))
		return
	}

	var body editBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Validation("bad_json", "malformed request body"))
		return
	}

	payload, err := h.service.Edit(r.Context(), mux.Vars(r)["id"], actorID, body.Body)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, payload)
}

func (h *Handler) undo(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFrom(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("missing_identity", "not authenticated"))
		return
	}

	payload, err := h.service.Undo(r.Context(), mux.Vars(r)["id"], actorID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, payload)
}

type markReadBody struct {
	ConversationID string `json:"conversationId"`
	UpToMessageID  string `json:"upToMessageId"`
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFrom(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("missing_identity", "not authenticated"))
		return
	}

	var body markReadBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Validation("bad_json", "malformed request body"))
		return
	}

	if err := h.service.MarkRead(r.Context(), body.ConversationID, actorID, body.UpToMessageID); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusNoContent, nil)
}
