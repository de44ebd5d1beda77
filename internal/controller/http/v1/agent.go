package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type Agent interface {
	Reply(ctx context.Context, message string) (string, error)
}

type AgentHandler struct {
	agent Agent
}

func NewAgentHandler(agent Agent) *AgentHandler {
	return &AgentHandler{agent: agent}
}

type AgentRequest struct {
	Message string `json:"message"`
}

type AgentResponse struct {
	Reply string `json:"reply"`
}

func (h *AgentHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	reply, err := h.agent.Reply(r.Context(), req.Message)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, AgentResponse{Reply: reply})
}
