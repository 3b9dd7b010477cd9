package dor

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Metadata covers the object's metadata datastreams.
type Metadata struct {
	versionedService
}

// DublinCore returns the Dublin Core XML, or nil when it does not exist.
func (m *Metadata) DublinCore(ctx context.Context) ([]byte, error) {
	return m.fetch(ctx, "dublin_core")
}

// Descriptive returns the descriptive metadata XML, or nil when it does not exist.
func (m *Metadata) Descriptive(ctx context.Context) ([]byte, error) {
	return m.fetch(ctx, "descriptive")
}

func (m *Metadata) fetch(ctx context.Context, name string) ([]byte, error) {
	path := m.objectPath("metadata", name)
	resp, err := m.do(ctx, &request{method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}

	switch {
	case resp.success():
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound:
		m.absent(path)
		return nil, nil
	default:
		return nil, m.errorFor(resp)
	}
}

// LegacyDatastream is one datastream in a legacy metadata update.
type LegacyDatastream struct {
	Updated time.Time
	Content string
}

// legacyTimeFormat matches the millisecond UTC timestamps the service expects.
const legacyTimeFormat = "2006-01-02T15:04:05.000Z"

// MarshalJSON formats Updated the way the service expects.
func (d LegacyDatastream) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Updated string `json:"updated"`
		Content string `json:"content"`
	}{
		Updated: d.Updated.UTC().Format(legacyTimeFormat),
		Content: d.Content,
	})
}

// LegacyMetadata holds the datastreams to update. Nil entries are not sent.
type LegacyMetadata struct {
	Administrative *LegacyDatastream `json:"administrative,omitempty"`
	Content        *LegacyDatastream `json:"content,omitempty"`
	Descriptive    *LegacyDatastream `json:"descriptive,omitempty"`
	Geo            *LegacyDatastream `json:"geo,omitempty"`
	Identity       *LegacyDatastream `json:"identity,omitempty"`
	Provenance     *LegacyDatastream `json:"provenance,omitempty"`
	Relationships  *LegacyDatastream `json:"relationships,omitempty"`
	Rights         *LegacyDatastream `json:"rights,omitempty"`
	Technical      *LegacyDatastream `json:"technical,omitempty"`
	Version        *LegacyDatastream `json:"version,omitempty"`
}

// LegacyUpdate writes datastreams in their legacy XML form.
func (m *Metadata) LegacyUpdate(ctx context.Context, params LegacyMetadata) error {
	req, err := jsonRequest(http.MethodPatch, m.objectPath("metadata", "legacy"), params)
	if err != nil {
		return err
	}
	req.accept = ""

	_, err = m.expectSuccess(ctx, req)
	return err
}
