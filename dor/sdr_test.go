package dor

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSDRCurrentVersion(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected int
		kind     Kind
		message  string
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			body:     "<currentVersion>5</currentVersion>",
			expected: 5,
		},
		{
			name:     "surrounding whitespace",
			status:   http.StatusOK,
			body:     "<?xml version=\"1.0\"?>\n<currentVersion>\n  12\n</currentVersion>\n",
			expected: 12,
		},
		{
			name:    "wrong root element",
			status:  http.StatusOK,
			body:    "<version>5</version>",
			kind:    KindMalformedResponse,
			message: "Unable to parse XML from current_version API call: <version>5</version> for " + testDruid,
		},
		{
			name:    "non-numeric text",
			status:  http.StatusOK,
			body:    "<currentVersion>five</currentVersion>",
			kind:    KindMalformedResponse,
			message: "Unable to parse XML from current_version API call: <currentVersion>five</currentVersion> for " + testDruid,
		},
		{
			name:   "not xml",
			status: http.StatusOK,
			body:   "oops",
			kind:   KindMalformedResponse,
		},
		{
			name:    "not found is unexpected",
			status:  http.StatusNotFound,
			kind:    KindUnexpectedResponse,
			message: notFoundMessage(testDruid),
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    "broken",
			kind:    KindUnexpectedResponse,
			message: "Internal Server Error: 500 (broken) for " + testDruid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v1/sdr/objects/druid:bc123df4567/current_version", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			version, err := client.Object(testDruid).SDR().CurrentVersion(context.Background())
			if tt.kind == KindUnknown {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, version)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}

			var dorErr *Error
			require.ErrorAs(t, err, &dorErr)
			assert.Equal(t, tt.body, dorErr.Body)
		})
	}
}

const signatureCatalogXML = `<?xml version="1.0" encoding="UTF-8"?>
<signatureCatalog objectId="druid:bc123df4567" versionId="2" catalogDatetime="2019-03-26T20:51:47Z" fileCount="2" byteCount="42216" blockCount="43">
  <entry originalVersion="1" groupId="content" storagePath="intro-1.jpg">
    <fileSignature size="41981" md5="915c0305bf50c55143f1506295dc122c" sha1="60448956fbe069979fce6a6e55dba4ce1f915178" sha256="4943c6ffdea7e33b74fd7918de900de60e9073148302b0ad1bf5df0e6cec032a"/>
  </entry>
  <entry originalVersion="2" groupId="metadata" storagePath="contentMetadata.xml">
    <fileSignature size="235" md5="1d5e4ea1e2bcb3d8eb2a2c4b3eb71d6d" sha1="1a8e1b4f0ae3d4b0e8e2d3c1f5a6b7c8d9e0f1a2"/>
  </entry>
</signatureCatalog>`

func TestSDRSignatureCatalog(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/sdr/objects/druid:bc123df4567/manifest/signatureCatalog.xml", r.URL.Path)
			_, _ = w.Write([]byte(signatureCatalogXML))
		})

		catalog, err := client.Object(testDruid).SDR().SignatureCatalog(context.Background())
		require.NoError(t, err)

		expected := &SignatureCatalog{
			ObjectID:        testDruid,
			VersionID:       2,
			CatalogDatetime: "2019-03-26T20:51:47Z",
			FileCount:       2,
			ByteCount:       42216,
			BlockCount:      43,
			Entries: []SignatureCatalogEntry{
				{
					OriginalVersion: 1,
					GroupID:         "content",
					StoragePath:     "intro-1.jpg",
					Signature: FileSignature{
						Size:   41981,
						MD5:    "915c0305bf50c55143f1506295dc122c",
						SHA1:   "60448956fbe069979fce6a6e55dba4ce1f915178",
						SHA256: "4943c6ffdea7e33b74fd7918de900de60e9073148302b0ad1bf5df0e6cec032a",
					},
				},
				{
					OriginalVersion: 2,
					GroupID:         "metadata",
					StoragePath:     "contentMetadata.xml",
					Signature: FileSignature{
						Size: 235,
						MD5:  "1d5e4ea1e2bcb3d8eb2a2c4b3eb71d6d",
						SHA1: "1a8e1b4f0ae3d4b0e8e2d3c1f5a6b7c8d9e0f1a2",
					},
				},
			},
		}
		if diff := cmp.Diff(expected, catalog, cmpopts.IgnoreFields(SignatureCatalog{}, "XMLName")); diff != "" {
			t.Errorf("SignatureCatalog() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found returns an empty catalog", func(t *testing.T) {
		client := newTestClient(t, statusHandler(http.StatusNotFound, ""))

		catalog, err := client.Object(testDruid).SDR().SignatureCatalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testDruid, catalog.ObjectID)
		assert.Zero(t, catalog.VersionID)
		assert.True(t, catalog.Empty())
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, statusHandler(http.StatusInternalServerError, "broken"))

		_, err := client.Object(testDruid).SDR().SignatureCatalog(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Internal Server Error: 500 (broken) for "+testDruid, err.Error())
	})

	t.Run("malformed", func(t *testing.T) {
		client := newTestClient(t, statusHandler(http.StatusOK, "<inventory/>"))

		_, err := client.Object(testDruid).SDR().SignatureCatalog(context.Background())
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

const contentDiffXML = `<?xml version="1.0" encoding="UTF-8"?>
<fileInventoryDifference objectId="druid:bc123df4567" differenceCount="1" basis="v2-contentMetadata-all" other="new-contentMetadata-all" reportDatetime="2019-03-26T20:51:47Z">
  <fileGroupDifference groupId="content" differenceCount="1" identical="1" copyadded="0" copydeleted="0" renamed="0" modified="0" added="1" deleted="0">
    <subset change="identical" count="1">
      <file change="identical" basisPath="intro-1.jpg" otherPath="same">
        <fileSignature size="41981" md5="915c0305bf50c55143f1506295dc122c"/>
      </file>
    </subset>
    <subset change="added" count="1">
      <file change="added" basisPath="" otherPath="page-2.jpg">
        <fileSignature size="39850" md5="82fc107c88446a3119a51a8663d1e955"/>
      </file>
    </subset>
  </fileGroupDifference>
</fileInventoryDifference>`

func TestSDRContentDiff(t *testing.T) {
	const contentMetadata = `<contentMetadata objectId="druid:bc123df4567" type="image"/>`

	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/sdr/objects/druid:bc123df4567/cm-inv-diff", r.URL.Path)
			assert.Equal(t, "shelve", r.URL.Query().Get("subset"))
			assert.Equal(t, "2", r.URL.Query().Get("version"))
			assert.Equal(t, "application/xml", r.Header.Get("Content-Type"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, contentMetadata, string(body))

			_, _ = w.Write([]byte(contentDiffXML))
		})

		diff, err := client.Object(testDruid).SDR().ContentDiff(context.Background(), contentMetadata, ContentDiffOptions{Subset: SubsetShelve, Version: 2})
		require.NoError(t, err)
		assert.Equal(t, 1, diff.DifferenceCount)

		group := diff.Group("content")
		require.NotNil(t, group)
		assert.Equal(t, 1, group.Added)
		assert.Nil(t, diff.Group("metadata"))

		added := group.Subset("added")
		require.NotNil(t, added)
		want := []FileInstanceDifference{{
			Change:     "added",
			OtherPath:  "page-2.jpg",
			Signatures: []FileSignature{{Size: 39850, MD5: "82fc107c88446a3119a51a8663d1e955"}},
		}}
		if d := cmp.Diff(want, added.Files); d != "" {
			t.Errorf("added files mismatch (-want +got):\n%s", d)
		}
	})

	t.Run("defaults to all without version", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "all", r.URL.Query().Get("subset"))
			_, hasVersion := r.URL.Query()["version"]
			assert.False(t, hasVersion)
			_, _ = w.Write([]byte(contentDiffXML))
		})

		_, err := client.Object(testDruid).SDR().ContentDiff(context.Background(), contentMetadata, ContentDiffOptions{})
		require.NoError(t, err)
	})

	t.Run("invalid subset makes no request", func(t *testing.T) {
		var hits atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		})

		_, err := client.Object(testDruid).SDR().ContentDiff(context.Background(), contentMetadata, ContentDiffOptions{Subset: "bogus"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, "Invalid subset value: bogus", err.Error())
		assert.Zero(t, hits.Load())
	})

	t.Run("not found is unexpected", func(t *testing.T) {
		client := newTestClient(t, statusHandler(http.StatusNotFound, ""))

		_, err := client.Object(testDruid).SDR().ContentDiff(context.Background(), contentMetadata, ContentDiffOptions{})
		assert.Equal(t, KindUnexpectedResponse, KindOf(err))
	})
}

func TestSDRMetadata(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/sdr/objects/druid:bc123df4567/metadata/technicalMetadata.xml", r.URL.Path)
			_, _ = w.Write([]byte("<technicalMetadata/>"))
		})

		body, err := client.Object(testDruid).SDR().Metadata(context.Background(), "technicalMetadata")
		require.NoError(t, err)
		assert.Equal(t, "<technicalMetadata/>", string(body))
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, statusHandler(http.StatusNotFound, ""))

		body, err := client.Object(testDruid).SDR().Metadata(context.Background(), "technicalMetadata")
		require.NoError(t, err)
		assert.Nil(t, body)
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, statusHandler(http.StatusInternalServerError, "broken"))

		_, err := client.Object(testDruid).SDR().Metadata(context.Background(), "technicalMetadata")
		assert.Equal(t, KindUnexpectedResponse, KindOf(err))
	})
}

func TestSubsetValid(t *testing.T) {
	for _, s := range []Subset{SubsetAll, SubsetShelve, SubsetPreserve, SubsetPublish} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Subset("").Valid())
	assert.False(t, Subset("ALL").Valid())
}
