package ws

import (
	"encoding/json"
	"time"

	"gatorhire/internal/domain/application"
)

type ApplicationReceivedEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"applicationId"`
	JobID         string `json:"jobId"`
	JobTitle      string `json:"jobTitle,omitempty"`
	Timestamp     string `json:"timestamp"`
}

type ApplicationStatusChangedEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

// Notifier adapts the hub to the application usecase's notification port.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ApplicationReceived(a application.Application) {
	if n == nil || n.hub == nil {
		return
	}
	evt := ApplicationReceivedEvent{
		Type:          "application_received",
		ApplicationID: a.ID,
		JobID:         a.JobID,
		JobTitle:      a.JobTitle,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}

func (n *Notifier) ApplicationStatusChanged(applicationID, status string) {
	if n == nil || n.hub == nil {
		return
	}
	evt := ApplicationStatusChangedEvent{
		Type:          "application_status_changed",
		ApplicationID: applicationID,
		Status:        status,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
