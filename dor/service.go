package dor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// versionedService is embedded by every resource client. It holds no state
// beyond the connection, the API version and the optional object identifier.
type versionedService struct {
	conn     *Connection
	version  string
	objectID string
	// scoped is set for clients under objects/<id>, which need a non-empty id.
	scoped bool
}

func newVersionedService(conn *Connection, version, objectID string) versionedService {
	if version == "" {
		version = DefaultAPIVersion
	}
	return versionedService{conn: conn, version: version, objectID: objectID}
}

// resolve joins the version and the path-escaped segments.
func (s versionedService) resolve(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, s.version)
	for _, segment := range segments {
		parts = append(parts, url.PathEscape(segment))
	}
	return strings.Join(parts, "/")
}

// objectPath resolves a path under objects/<id>.
func (s versionedService) objectPath(segments ...string) string {
	return s.resolve(append([]string{"objects", s.objectID}, segments...)...)
}

func (s versionedService) do(ctx context.Context, r *request) (*response, error) {
	if s.scoped && strings.TrimSpace(s.objectID) == "" {
		return nil, invalidArgument("object identifier is required")
	}
	return s.conn.do(ctx, r)
}

// contentSegments splits a workspace filename into path segments. Empty, "."
// and ".." segments would address something other than the file.
func contentSegments(filename string) ([]string, error) {
	segments := strings.Split(filename, "/")
	for _, segment := range segments {
		switch segment {
		case "", ".", "..":
			return nil, invalidArgument("invalid filename: %q", filename)
		}
	}
	return segments, nil
}

// errorFor classifies a non-2xx response.
func (s versionedService) errorFor(resp *response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return s.responseError(KindNotFound, resp)
	case http.StatusConflict:
		return s.responseError(KindConflict, resp)
	default:
		return s.responseError(KindUnexpectedResponse, resp)
	}
}

// unexpectedResponse is used by endpoints that treat 404 like any other failure.
func (s versionedService) unexpectedResponse(resp *response) error {
	return s.responseError(KindUnexpectedResponse, resp)
}

func (s versionedService) responseError(kind Kind, resp *response) *Error {
	return &Error{
		Kind:             kind,
		Message:          FormatResponseError(resp.Reason, resp.StatusCode, string(resp.Body)),
		StatusCode:       resp.StatusCode,
		Body:             string(resp.Body),
		ObjectIdentifier: s.objectID,
	}
}

func (s versionedService) malformed(msg string, resp *response, cause error) *Error {
	return &Error{
		Kind:             KindMalformedResponse,
		Message:          msg,
		StatusCode:       resp.StatusCode,
		Body:             string(resp.Body),
		ObjectIdentifier: s.objectID,
		Err:              cause,
	}
}

// absent logs a 404 that the endpoint treats as a valid absence.
func (s versionedService) absent(path string) {
	s.conn.logger.Debug().
		Str("path", path).
		Str("object", s.objectID).
		Msg("resource not found, returning absence")
}

// jsonRequest builds a request whose body is payload encoded as JSON. The
// service is asked to answer in JSON too, otherwise it falls back to plain text.
func jsonRequest(method, path string, payload any) (*request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return &request{
		method:      method,
		path:        path,
		contentType: contentTypeJSON,
		accept:      contentTypeJSON,
		body:        body,
	}, nil
}

func (s versionedService) decodeRecord(resp *response) (Record, error) {
	rec, err := NewRecord(resp.Body)
	if err != nil {
		return Record{}, s.malformed("Unable to parse JSON object from response", resp, err)
	}
	return rec, nil
}

func (s versionedService) decodeJSON(resp *response, v any) error {
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return s.malformed("Unable to parse JSON from response", resp, err)
	}
	return nil
}

// expectSuccess performs r and returns the response, or the classified error.
func (s versionedService) expectSuccess(ctx context.Context, r *request) (*response, error) {
	resp, err := s.do(ctx, r)
	if err != nil {
		return nil, err
	}
	if !resp.success() {
		return nil, s.errorFor(resp)
	}
	return resp, nil
}
