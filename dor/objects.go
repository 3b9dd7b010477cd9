package dor

import (
	"context"
	"net/http"
	"net/url"
)

// Objects covers calls on the objects collection.
type Objects struct {
	versionedService
}

// NewObjects creates an Objects client.
func NewObjects(conn *Connection, version string) *Objects {
	return &Objects{versionedService: newVersionedService(conn, version, "")}
}

// Register creates a new object. params is encoded as JSON; the returned
// record includes the assigned externalIdentifier.
func (o *Objects) Register(ctx context.Context, params any) (Record, error) {
	req, err := jsonRequest(http.MethodPost, o.resolve("objects"), params)
	if err != nil {
		return Record{}, err
	}

	resp, err := o.expectSuccess(ctx, req)
	if err != nil {
		return Record{}, err
	}
	return o.decodeRecord(resp)
}

// FindBySourceID looks up an object by its source identifier, e.g. "sul:abc123".
func (o *Objects) FindBySourceID(ctx context.Context, sourceID string) (Record, error) {
	if sourceID == "" {
		return Record{}, invalidArgument("source id is required")
	}

	resp, err := o.expectSuccess(ctx, &request{
		method: http.MethodGet,
		path:   o.resolve("objects", "find"),
		query:  url.Values{"sourceId": {sourceID}},
		accept: contentTypeJSON,
	})
	if err != nil {
		return Record{}, err
	}
	return o.decodeRecord(resp)
}
