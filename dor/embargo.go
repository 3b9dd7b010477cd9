package dor

import (
	"context"
	"net/http"
	"time"
)

// Embargo covers the object's embargo.
type Embargo struct {
	versionedService
}

// EmbargoUpdate moves the embargo release date.
type EmbargoUpdate struct {
	EmbargoDate    time.Time
	RequestingUser string
}

// Update changes the embargo release date.
func (e *Embargo) Update(ctx context.Context, params EmbargoUpdate) error {
	if params.EmbargoDate.IsZero() || params.RequestingUser == "" {
		return invalidArgument("embargo date and requesting user are required")
	}

	body := struct {
		EmbargoDate    string `json:"embargo_date"`
		RequestingUser string `json:"requesting_user"`
	}{
		EmbargoDate:    params.EmbargoDate.UTC().Format(time.RFC3339),
		RequestingUser: params.RequestingUser,
	}
	req, err := jsonRequest(http.MethodPatch, e.objectPath("embargo"), body)
	if err != nil {
		return err
	}
	req.accept = ""

	_, err = e.expectSuccess(ctx, req)
	return err
}
