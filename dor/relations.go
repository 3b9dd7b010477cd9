package dor

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"
)

// Collections lists the collections an object belongs to.
type Collections struct {
	versionedService
}

// List returns the Cocina models of the collections.
func (c *Collections) List(ctx context.Context) ([]Record, error) {
	resp, err := c.expectSuccess(ctx, &request{
		method: http.MethodGet,
		path:   c.objectPath("collections"),
		accept: contentTypeJSON,
	})
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(resp.Body) || !gjson.ParseBytes(resp.Body).IsObject() {
		return nil, c.malformed("Unable to parse collections from response", resp, nil)
	}
	return recordsAt(resp.Body, "collections"), nil
}

// Member is an object that belongs to a collection.
type Member struct {
	ExternalIdentifier string `json:"externalIdentifier"`
	Type               string `json:"type"`
}

// Members lists the members of a collection object.
type Members struct {
	versionedService
}

// List returns the members of the collection.
func (m *Members) List(ctx context.Context) ([]Member, error) {
	resp, err := m.expectSuccess(ctx, &request{
		method: http.MethodGet,
		path:   m.objectPath("members"),
		accept: contentTypeJSON,
	})
	if err != nil {
		return nil, err
	}

	var body struct {
		Members []Member `json:"members"`
	}
	if err := m.decodeJSON(resp, &body); err != nil {
		return nil, err
	}
	return body.Members, nil
}
