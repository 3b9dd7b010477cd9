package dor

import (
	"context"
	"net/http"
	"time"
)

// ReleaseTag records a decision to release (or withhold) an object to a target.
type ReleaseTag struct {
	To      string    `json:"to"`
	Who     string    `json:"who"`
	What    string    `json:"what"`
	Release bool      `json:"release"`
	Date    time.Time `json:"date,omitzero"`
}

// ReleaseTags covers the object's release tags.
type ReleaseTags struct {
	versionedService
}

// Create adds a release tag.
func (r *ReleaseTags) Create(ctx context.Context, tag ReleaseTag) error {
	if tag.To == "" || tag.What == "" {
		return invalidArgument("release tag requires to and what")
	}

	req, err := jsonRequest(http.MethodPost, r.objectPath("release_tags"), tag)
	if err != nil {
		return err
	}
	_, err = r.expectSuccess(ctx, req)
	return err
}

// List returns the object's release tags.
func (r *ReleaseTags) List(ctx context.Context) ([]ReleaseTag, error) {
	resp, err := r.expectSuccess(ctx, &request{
		method: http.MethodGet,
		path:   r.objectPath("release_tags"),
		accept: contentTypeJSON,
	})
	if err != nil {
		return nil, err
	}

	var tags []ReleaseTag
	if err := r.decodeJSON(resp, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// AdministrativeTags covers the object's administrative tags,
// e.g. "Project : Google Books".
type AdministrativeTags struct {
	versionedService
}

type administrativeTagsBody struct {
	AdministrativeTags []string `json:"administrative_tags"`
}

// Create adds tags to the object.
func (a *AdministrativeTags) Create(ctx context.Context, tags []string) error {
	return a.write(ctx, http.MethodPost, tags)
}

// Replace sets the object's tags to exactly tags.
func (a *AdministrativeTags) Replace(ctx context.Context, tags []string) error {
	return a.write(ctx, http.MethodPut, tags)
}

func (a *AdministrativeTags) write(ctx context.Context, method string, tags []string) error {
	if len(tags) == 0 {
		return invalidArgument("at least one administrative tag is required")
	}

	req, err := jsonRequest(method, a.objectPath("administrative_tags"), administrativeTagsBody{AdministrativeTags: tags})
	if err != nil {
		return err
	}
	_, err = a.expectSuccess(ctx, req)
	return err
}

// List returns the object's tags.
func (a *AdministrativeTags) List(ctx context.Context) ([]string, error) {
	resp, err := a.expectSuccess(ctx, &request{
		method: http.MethodGet,
		path:   a.objectPath("administrative_tags"),
		accept: contentTypeJSON,
	})
	if err != nil {
		return nil, err
	}

	var tags []string
	if err := a.decodeJSON(resp, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Update renames the tag current to replacement.
func (a *AdministrativeTags) Update(ctx context.Context, current, replacement string) error {
	if current == "" || replacement == "" {
		return invalidArgument("current and replacement tags are required")
	}

	body := struct {
		AdministrativeTag string `json:"administrative_tag"`
	}{AdministrativeTag: replacement}
	req, err := jsonRequest(http.MethodPut, a.objectPath("administrative_tags", current), body)
	if err != nil {
		return err
	}
	_, err = a.expectSuccess(ctx, req)
	return err
}

// Destroy removes tag from the object.
func (a *AdministrativeTags) Destroy(ctx context.Context, tag string) error {
	if tag == "" {
		return invalidArgument("tag is required")
	}

	_, err := a.expectSuccess(ctx, &request{
		method: http.MethodDelete,
		path:   a.objectPath("administrative_tags", tag),
	})
	return err
}
