package dor

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Subset selects which file attributes a content diff compares.
type Subset string

const (
	SubsetAll      Subset = "all"
	SubsetShelve   Subset = "shelve"
	SubsetPreserve Subset = "preserve"
	SubsetPublish  Subset = "publish"
)

// Valid reports whether s is one of the known subsets.
func (s Subset) Valid() bool {
	switch s {
	case SubsetAll, SubsetShelve, SubsetPreserve, SubsetPublish:
		return true
	}
	return false
}

// SDR covers calls about the preserved copy of an object.
type SDR struct {
	versionedService
}

func (s *SDR) sdrPath(segments ...string) string {
	return s.resolve(append([]string{"sdr", "objects", s.objectID}, segments...)...)
}

// CurrentVersion returns the latest preserved version number.
func (s *SDR) CurrentVersion(ctx context.Context) (int, error) {
	resp, err := s.do(ctx, &request{method: http.MethodGet, path: s.sdrPath("current_version")})
	if err != nil {
		return 0, err
	}
	if !resp.success() {
		return 0, s.unexpectedResponse(resp)
	}

	version, err := parseCurrentVersion(resp.Body)
	if err != nil {
		msg := fmt.Sprintf("Unable to parse XML from current_version API call: %s", resp.Body)
		return 0, s.malformed(msg, resp, err)
	}
	return version, nil
}

func parseCurrentVersion(body []byte) (int, error) {
	var doc struct {
		XMLName xml.Name
		Text    string `xml:",chardata"`
	}
	if err := xml.Unmarshal(body, &doc); err != nil {
		return 0, err
	}
	if doc.XMLName.Local != "currentVersion" {
		return 0, fmt.Errorf("unexpected root element %q", doc.XMLName.Local)
	}
	return strconv.Atoi(strings.TrimSpace(doc.Text))
}

// SignatureCatalog returns the object's signature catalog. An object that was
// never preserved yields an empty catalog with version 0.
func (s *SDR) SignatureCatalog(ctx context.Context) (*SignatureCatalog, error) {
	path := s.sdrPath("manifest", "signatureCatalog.xml")
	resp, err := s.do(ctx, &request{method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		s.absent(path)
		return emptySignatureCatalog(s.objectID), nil
	}
	if !resp.success() {
		return nil, s.unexpectedResponse(resp)
	}

	var catalog SignatureCatalog
	if err := xml.Unmarshal(resp.Body, &catalog); err != nil {
		return nil, s.malformed("Unable to parse signature catalog", resp, err)
	}
	return &catalog, nil
}

// ContentDiffOptions tunes a content diff. An empty Subset means SubsetAll;
// a zero Version compares against the latest preserved version.
type ContentDiffOptions struct {
	Subset  Subset
	Version int
}

// ContentDiff compares contentMetadata XML with the preserved inventory.
func (s *SDR) ContentDiff(ctx context.Context, currentContent string, opts ContentDiffOptions) (*FileInventoryDifference, error) {
	subset := opts.Subset
	if subset == "" {
		subset = SubsetAll
	}
	if !subset.Valid() {
		return nil, invalidArgument("Invalid subset value: %s", subset)
	}

	query := url.Values{"subset": {string(subset)}}
	if opts.Version != 0 {
		query.Set("version", strconv.Itoa(opts.Version))
	}

	resp, err := s.do(ctx, &request{
		method:      http.MethodPost,
		path:        s.sdrPath("cm-inv-diff"),
		query:       query,
		contentType: contentTypeXML,
		body:        []byte(currentContent),
	})
	if err != nil {
		return nil, err
	}
	if !resp.success() {
		return nil, s.unexpectedResponse(resp)
	}

	var diff FileInventoryDifference
	if err := xml.Unmarshal(resp.Body, &diff); err != nil {
		return nil, s.malformed("Unable to parse content diff", resp, err)
	}
	return &diff, nil
}

// Metadata returns a datastream from the latest preserved version, or nil
// when it does not exist.
func (s *SDR) Metadata(ctx context.Context, datastream string) ([]byte, error) {
	if datastream == "" {
		return nil, invalidArgument("datastream is required")
	}

	path := s.sdrPath("metadata", datastream+".xml")
	resp, err := s.do(ctx, &request{method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}

	switch {
	case resp.success():
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound:
		s.absent(path)
		return nil, nil
	default:
		return nil, s.unexpectedResponse(resp)
	}
}
