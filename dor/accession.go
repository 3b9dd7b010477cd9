package dor

import (
	"context"
	"net/http"
	"net/url"
)

// Accession starts accessioning for an object.
type Accession struct {
	versionedService
}

// AccessionOptions are sent as query parameters; empty fields are omitted.
type AccessionOptions struct {
	Workflow        string
	Significance    string
	Description     string
	OpeningUserName string
}

func (opts AccessionOptions) query() url.Values {
	query := url.Values{}
	for key, value := range map[string]string{
		"workflow":          opts.Workflow,
		"significance":      opts.Significance,
		"description":       opts.Description,
		"opening_user_name": opts.OpeningUserName,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}
	return query
}

// Start begins accessioning.
func (a *Accession) Start(ctx context.Context, opts AccessionOptions) error {
	_, err := a.expectSuccess(ctx, &request{
		method: http.MethodPost,
		path:   a.objectPath("accession"),
		query:  opts.query(),
	})
	return err
}
