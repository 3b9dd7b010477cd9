package dor

import (
	"context"
	"net/http"
	"net/url"
)

// Workspace manages the object's working directory on the service.
type Workspace struct {
	versionedService
}

// Create initializes the workspace, copying content from source.
func (w *Workspace) Create(ctx context.Context, source string) error {
	query := url.Values{}
	if source != "" {
		query.Set("source", source)
	}

	_, err := w.expectSuccess(ctx, &request{
		method: http.MethodPost,
		path:   w.objectPath("initialize_workspace"),
		query:  query,
	})
	return err
}

// Cleanup removes the workspace.
func (w *Workspace) Cleanup(ctx context.Context) error {
	_, err := w.expectSuccess(ctx, &request{
		method: http.MethodDelete,
		path:   w.objectPath("workspace"),
	})
	return err
}
