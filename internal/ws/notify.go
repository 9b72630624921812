package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"skill-swap/internal/domain/swap"
)

const (
	EventSwapRequestCreated = "swap_request_created"
	EventSwapRequestUpdated = "swap_request_updated"
)

type SwapRequestEvent struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifySwapRequest pushes a lifecycle event to the requester and provider
// of the given request. A nil default hub makes this a no-op, which keeps
// the usecases testable without a running hub.
func NotifySwapRequest(eventType string, req swap.Request) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := SwapRequestEvent{
		Type:      eventType,
		RequestID: req.ID.String(),
		Status:    string(req.Status),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Send(b, req.RequesterID, req.ProviderID)
}
