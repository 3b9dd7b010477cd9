package dor

import (
	"context"
	"net/http"
	"time"
)

// Event is an entry in the object's event log.
type Event struct {
	EventType string         `json:"event_type"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp,omitzero"`
}

// Events covers the object's event log.
type Events struct {
	versionedService
}

// Create appends an event. Timestamp is assigned by the service.
func (e *Events) Create(ctx context.Context, eventType string, data map[string]any) error {
	if eventType == "" {
		return invalidArgument("event type is required")
	}

	req, err := jsonRequest(http.MethodPost, e.objectPath("events"), Event{EventType: eventType, Data: data})
	if err != nil {
		return err
	}
	_, err = e.expectSuccess(ctx, req)
	return err
}

// List returns the object's events, or nil when the object does not exist.
func (e *Events) List(ctx context.Context) ([]Event, error) {
	path := e.objectPath("events")
	resp, err := e.do(ctx, &request{method: http.MethodGet, path: path, accept: contentTypeJSON})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		e.absent(path)
		return nil, nil
	}
	if !resp.success() {
		return nil, e.errorFor(resp)
	}

	var events []Event
	if err := e.decodeJSON(resp, &events); err != nil {
		return nil, err
	}
	return events, nil
}
