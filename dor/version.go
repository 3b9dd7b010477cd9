package dor

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ObjectVersion covers the object's version lifecycle.
type ObjectVersion struct {
	versionedService
}

// Version is one entry of the version inventory.
type Version struct {
	VersionID int    `json:"versionId"`
	Tag       string `json:"tag,omitempty"`
	Message   string `json:"message,omitempty"`
}

// OpenOptions describes a new version.
type OpenOptions struct {
	Description       string `json:"description"`
	Significance      string `json:"significance,omitempty"`
	OpeningUserName   string `json:"opening_user_name,omitempty"`
	AssumeAccessioned bool   `json:"assume_accessioned,omitempty"`
}

// CloseOptions describes how to close the current version.
type CloseOptions struct {
	Description    string `json:"description,omitempty"`
	Significance   string `json:"significance,omitempty"`
	UserName       string `json:"user_name,omitempty"`
	StartAccession *bool  `json:"start_accession,omitempty"`
}

// Current returns the object's current version number.
func (v *ObjectVersion) Current(ctx context.Context) (int, error) {
	resp, err := v.expectSuccess(ctx, &request{
		method: http.MethodGet,
		path:   v.objectPath("versions", "current"),
	})
	if err != nil {
		return 0, err
	}

	current, err := strconv.Atoi(strings.TrimSpace(string(resp.Body)))
	if err != nil {
		return 0, v.malformed(fmt.Sprintf("Unable to parse version from response: %s", resp.Body), resp, err)
	}
	return current, nil
}

// Open opens a new version and returns the updated Cocina model.
func (v *ObjectVersion) Open(ctx context.Context, opts OpenOptions) (Record, error) {
	if opts.Description == "" {
		return Record{}, invalidArgument("description is required to open a version")
	}

	req, err := jsonRequest(http.MethodPost, v.objectPath("versions"), opts)
	if err != nil {
		return Record{}, err
	}

	resp, err := v.expectSuccess(ctx, req)
	if err != nil {
		return Record{}, err
	}
	return v.decodeRecord(resp)
}

// Close closes the current version and returns the service's message.
func (v *ObjectVersion) Close(ctx context.Context, opts CloseOptions) (string, error) {
	req, err := jsonRequest(http.MethodPost, v.objectPath("versions", "current", "close"), opts)
	if err != nil {
		return "", err
	}
	req.accept = ""

	resp, err := v.expectSuccess(ctx, req)
	if err != nil {
		return "", err
	}
	return string(resp.Body), nil
}

// Openable reports whether a new version can be opened.
func (v *ObjectVersion) Openable(ctx context.Context) (bool, error) {
	resp, err := v.expectSuccess(ctx, &request{
		method: http.MethodGet,
		path:   v.objectPath("versions", "openable"),
	})
	if err != nil {
		return false, err
	}

	switch strings.TrimSpace(string(resp.Body)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, v.malformed(fmt.Sprintf("Unable to parse openable from response: %s", resp.Body), resp, nil)
	}
}

// Inventory lists every version of the object.
func (v *ObjectVersion) Inventory(ctx context.Context) ([]Version, error) {
	resp, err := v.expectSuccess(ctx, &request{
		method: http.MethodGet,
		path:   v.objectPath("versions"),
		accept: contentTypeJSON,
	})
	if err != nil {
		return nil, err
	}

	var body struct {
		Versions []Version `json:"versions"`
	}
	if err := v.decodeJSON(resp, &body); err != nil {
		return nil, err
	}
	return body.Versions, nil
}
