package dor

import (
	"context"
	"sync"
)

// Client is the root factory for resource clients. Construct one at startup
// with New and share it; it is safe for concurrent use, but Configure must
// not race with in-flight calls.
//
// A zero Client is valid: every operation fails with a configuration error
// until Configure is called.
type Client struct {
	mu      sync.Mutex
	cfg     Config
	conn    *Connection
	objects *Objects
}

// New creates a Client configured with cfg.
func New(cfg Config) *Client {
	c := &Client{}
	c.Configure(cfg)
	return c
}

// Configure replaces the configuration. The connection and memoized clients
// are rebuilt on next use.
func (c *Client) Configure(cfg Config) {
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
	c.conn = nil
	c.objects = nil
}

// connection lazily creates the shared connection. Callers hold c.mu.
func (c *Client) connection() *Connection {
	if c.conn == nil {
		c.conn = NewConnection(c.cfg)
	}
	return c.conn
}

func (c *Client) apiVersion() string {
	if c.cfg.APIVersion == "" {
		return DefaultAPIVersion
	}
	return c.cfg.APIVersion
}

// Connection returns the shared connection.
func (c *Client) Connection() *Connection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connection()
}

// Objects returns the client for the objects collection.
func (c *Client) Objects() *Objects {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.objects == nil {
		c.objects = NewObjects(c.connection(), c.apiVersion())
	}
	return c.objects
}

// Object returns a client scoped to objectID.
func (c *Client) Object(objectID string) *Object {
	c.mu.Lock()
	defer c.mu.Unlock()
	return NewObject(c.connection(), c.apiVersion(), objectID)
}

// Register delegates to Objects().Register.
func (c *Client) Register(ctx context.Context, params any) (Record, error) {
	return c.Objects().Register(ctx, params)
}

// RetrieveFile delegates to Object(objectID).Files().Retrieve.
func (c *Client) RetrieveFile(ctx context.Context, objectID, filename string) ([]byte, error) {
	return c.Object(objectID).Files().Retrieve(ctx, filename)
}

// ListFiles delegates to Object(objectID).Files().List.
func (c *Client) ListFiles(ctx context.Context, objectID string) ([]string, error) {
	return c.Object(objectID).Files().List(ctx)
}

// PreservedContent delegates to Object(objectID).Files().PreservedContent.
func (c *Client) PreservedContent(ctx context.Context, objectID, filename string, version int) ([]byte, error) {
	return c.Object(objectID).Files().PreservedContent(ctx, filename, version)
}

// InitializeWorkspace delegates to Object(objectID).Workspace().Create.
func (c *Client) InitializeWorkspace(ctx context.Context, objectID, source string) error {
	return c.Object(objectID).Workspace().Create(ctx, source)
}

// CreateReleaseTag delegates to Object(objectID).ReleaseTags().Create.
func (c *Client) CreateReleaseTag(ctx context.Context, objectID string, tag ReleaseTag) error {
	return c.Object(objectID).ReleaseTags().Create(ctx, tag)
}

// Publish delegates to Object(objectID).Publish.
func (c *Client) Publish(ctx context.Context, objectID string, opts PublishOptions) (string, error) {
	return c.Object(objectID).Publish(ctx, opts)
}

// NotifyGoobi delegates to Object(objectID).NotifyGoobi.
func (c *Client) NotifyGoobi(ctx context.Context, objectID string) error {
	return c.Object(objectID).NotifyGoobi(ctx)
}

// OpenNewVersion delegates to Object(objectID).Version().Open.
func (c *Client) OpenNewVersion(ctx context.Context, objectID string, opts OpenOptions) (Record, error) {
	return c.Object(objectID).Version().Open(ctx, opts)
}

// CloseVersion delegates to Object(objectID).Version().Close.
func (c *Client) CloseVersion(ctx context.Context, objectID string, opts CloseOptions) (string, error) {
	return c.Object(objectID).Version().Close(ctx, opts)
}
