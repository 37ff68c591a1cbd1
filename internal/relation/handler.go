package relation

import (
	"encoding/json"
	"net/http"

	"pairchat/internal/common"
	"pairchat/internal/dbmysql"

	"github.com/gorilla/mux"
)

// Handler exposes the relationship graph over HTTP. Actor identity always
// comes from the auth middleware, never from the request body.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/connections/request", h.request).Methods("POST")
	router.HandleFunc("/connections/respond", h.respond).Methods("POST")
	router.HandleFunc("/connections", h.list).Methods("GET")
}

type requestBody struct {
	RecipientID string `json:"recipientId"`
}

func (h *Handler) request(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFrom(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("missing_identity", "not authenticated"))
		return
	}

	var body requestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Validation("bad_json", "malformed request body"))
		return
	}

	rel, err := h.service.Request(r.Context(), actorID, body.RecipientID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, rel.Payload())
}

type respondBody struct {
	ConnectionID string `json:"connectionId"`
	Action       string `json:"action"`
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFrom(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("missing_identity", "not authenticated"))
		return
	}

	var body respondBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteError(w, common.Validation("bad_json", "malformed request body"))
		return
	}

	rel, err := h.service.Respond(r.Context(), body.ConnectionID, actorID, body.Action)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, rel.Payload())
}

type listResponse struct {
	Accepted        []common.RelationPayload `json:"accepted"`
	PendingIncoming []common.RelationPayload `json:"pendingIncoming"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFrom(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("missing_identity", "not authenticated"))
		return
	}

	accepted, pending, err := h.service.List(r.Context(), actorID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	resp := listResponse{
		Accepted:        toPayloads(accepted),
		PendingIncoming: toPayloads(pending),
	}
	common.WriteJSON(w, http.StatusOK, resp)
}

func toPayloads(rels []*dbmysql.Relationship) []common.RelationPayload {
	out := make([]common.RelationPayload, 0, len(rels))
	for _, rel := range rels {
		out = append(out, rel.Payload())
	}
	return out
}
