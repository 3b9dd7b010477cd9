package dor

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
)

// Files covers the object's workspace content files.
type Files struct {
	versionedService
}

// Retrieve returns the contents of filename. It returns nil and no error
// when the file does not exist.
func (f *Files) Retrieve(ctx context.Context, filename string) ([]byte, error) {
	segments, err := contentSegments(filename)
	if err != nil {
		return nil, err
	}

	path := f.objectPath(append([]string{"contents"}, segments...)...)
	resp, err := f.do(ctx, &request{method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}

	switch {
	case resp.success():
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound:
		f.absent(path)
		return nil, nil
	default:
		return nil, f.errorFor(resp)
	}
}

// List returns the names of the files in the object's workspace, in the
// order the service reports them. A missing object yields an empty list.
func (f *Files) List(ctx context.Context) ([]string, error) {
	path := f.objectPath("contents")
	resp, err := f.do(ctx, &request{method: http.MethodGet, path: path, accept: contentTypeJSON})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		f.absent(path)
		return []string{}, nil
	}
	if !resp.success() {
		return nil, f.errorFor(resp)
	}
	if !gjson.ValidBytes(resp.Body) {
		return nil, f.malformed("Unable to parse file list from response", resp, nil)
	}

	names := []string{}
	for _, name := range gjson.GetBytes(resp.Body, "items.#.name").Array() {
		names = append(names, name.String())
	}
	return names, nil
}

// PreservedContent returns filename as stored in preservation for the given
// object version.
func (f *Files) PreservedContent(ctx context.Context, filename string, version int) ([]byte, error) {
	if filename == "" {
		return nil, invalidArgument("filename is required")
	}
	if version < 1 {
		return nil, invalidArgument("invalid version: %d", version)
	}

	resp, err := f.expectSuccess(ctx, &request{
		method: http.MethodGet,
		path:   f.objectPath("preserved_content"),
		query: url.Values{
			"file_name": {filename},
			"version":   {strconv.Itoa(version)},
		},
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
