package dor

import (
	"context"
	"net/http"
	"net/url"
)

// Object covers calls scoped to a single repository object.
type Object struct {
	versionedService
}

// NewObject creates an Object client for objectID.
func NewObject(conn *Connection, version, objectID string) *Object {
	svc := newVersionedService(conn, version, objectID)
	svc.scoped = true
	return &Object{versionedService: svc}
}

// ObjectIdentifier returns the identifier this client is scoped to.
func (o *Object) ObjectIdentifier() string {
	return o.objectID
}

// Files returns the client for the object's workspace content files.
func (o *Object) Files() *Files {
	return &Files{versionedService: o.versionedService}
}

// Workspace returns the client for the object's workspace.
func (o *Object) Workspace() *Workspace {
	return &Workspace{versionedService: o.versionedService}
}

// Metadata returns the client for the object's metadata.
func (o *Object) Metadata() *Metadata {
	return &Metadata{versionedService: o.versionedService}
}

// SDR returns the client for the object's preservation data.
func (o *Object) SDR() *SDR {
	return &SDR{versionedService: o.versionedService}
}

// ReleaseTags returns the client for the object's release tags.
func (o *Object) ReleaseTags() *ReleaseTags {
	return &ReleaseTags{versionedService: o.versionedService}
}

// AdministrativeTags returns the client for the object's administrative tags.
func (o *Object) AdministrativeTags() *AdministrativeTags {
	return &AdministrativeTags{versionedService: o.versionedService}
}

// Collections returns the client for the collections the object belongs to.
func (o *Object) Collections() *Collections {
	return &Collections{versionedService: o.versionedService}
}

// Members returns the client for the members of a collection object.
func (o *Object) Members() *Members {
	return &Members{versionedService: o.versionedService}
}

// Version returns the client for the object's version history.
func (o *Object) Version() *ObjectVersion {
	return &ObjectVersion{versionedService: o.versionedService}
}

// Embargo returns the client for the object's embargo.
func (o *Object) Embargo() *Embargo {
	return &Embargo{versionedService: o.versionedService}
}

// Events returns the client for the object's event log.
func (o *Object) Events() *Events {
	return &Events{versionedService: o.versionedService}
}

// Accession returns the client that starts accessioning.
func (o *Object) Accession() *Accession {
	return &Accession{versionedService: o.versionedService}
}

// Find retrieves the object's Cocina model.
func (o *Object) Find(ctx context.Context) (Record, error) {
	resp, err := o.expectSuccess(ctx, &request{
		method: http.MethodGet,
		path:   o.objectPath(),
		accept: contentTypeJSON,
	})
	if err != nil {
		return Record{}, err
	}
	return o.decodeRecord(resp)
}

// Update replaces the object's Cocina model and returns the stored version.
func (o *Object) Update(ctx context.Context, params any) (Record, error) {
	req, err := jsonRequest(http.MethodPatch, o.objectPath(), params)
	if err != nil {
		return Record{}, err
	}

	resp, err := o.expectSuccess(ctx, req)
	if err != nil {
		return Record{}, err
	}
	return o.decodeRecord(resp)
}

// PublishOptions selects the workflow and lane for a publish job.
// Empty fields are not sent.
type PublishOptions struct {
	Workflow string
	LaneID   string
}

// JobOptions selects the lane for a background job. An empty LaneID is not sent.
type JobOptions struct {
	LaneID string
}

// Publish starts a publish job and returns the URL of the background job
// result from the Location header.
func (o *Object) Publish(ctx context.Context, opts PublishOptions) (string, error) {
	query := url.Values{}
	if opts.Workflow != "" {
		query.Set("workflow", opts.Workflow)
	}
	if opts.LaneID != "" {
		query.Set("lane-id", opts.LaneID)
	}
	return o.startJob(ctx, "publish", query)
}

// Preserve starts a preservation job and returns the background job result URL.
func (o *Object) Preserve(ctx context.Context, opts JobOptions) (string, error) {
	return o.startJob(ctx, "preserve", opts.query())
}

// Shelve starts a shelving job and returns the background job result URL.
func (o *Object) Shelve(ctx context.Context, opts JobOptions) (string, error) {
	return o.startJob(ctx, "shelve", opts.query())
}

func (opts JobOptions) query() url.Values {
	query := url.Values{}
	if opts.LaneID != "" {
		query.Set("lane-id", opts.LaneID)
	}
	return query
}

func (o *Object) startJob(ctx context.Context, action string, query url.Values) (string, error) {
	resp, err := o.expectSuccess(ctx, &request{
		method: http.MethodPost,
		path:   o.objectPath(action),
		query:  query,
	})
	if err != nil {
		return "", err
	}
	return resp.Header.Get("Location"), nil
}

// UpdateMarcRecord asks the service to update the object's MARC record.
func (o *Object) UpdateMarcRecord(ctx context.Context) error {
	return o.post(ctx, "update_marc_record")
}

// RefreshMetadata asks the service to refresh descriptive metadata from its source.
func (o *Object) RefreshMetadata(ctx context.Context) error {
	return o.post(ctx, "refresh_metadata")
}

// NotifyGoobi notifies Goobi that the object is ready.
func (o *Object) NotifyGoobi(ctx context.Context) error {
	return o.post(ctx, "notify_goobi")
}

func (o *Object) post(ctx context.Context, action string) error {
	_, err := o.expectSuccess(ctx, &request{
		method: http.MethodPost,
		path:   o.objectPath(action),
	})
	return err
}
