package dor

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectsRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/objects", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))

			var params map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
			assert.Equal(t, map[string]string{"title": "x"}, params)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"externalIdentifier":"druid:ab1","label":"x","version":1}`))
		})

		record, err := client.Objects().Register(context.Background(), map[string]string{"title": "x"})
		require.NoError(t, err)
		assert.Equal(t, "druid:ab1", record.ExternalIdentifier())
		assert.Equal(t, []string{"externalIdentifier", "label", "version"}, record.Keys())
		assert.Equal(t, int64(1), record.Get("version").Int())
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, statusHandler(http.StatusNotFound, ""))

		_, err := client.Objects().Register(context.Background(), map[string]string{"title": "x"})
		require.Error(t, err)
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.Equal(t, notFoundMessage(""), err.Error())
	})

	t.Run("unexpected response", func(t *testing.T) {
		client := newTestClient(t, statusHandler(http.StatusUnprocessableEntity, "invalid title"))

		_, err := client.Objects().Register(context.Background(), map[string]string{"title": "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpectedResponse)
		assert.Equal(t, "Unprocessable Entity: 422 (invalid title)", err.Error())

		var dorErr *Error
		require.ErrorAs(t, err, &dorErr)
		assert.Equal(t, http.StatusUnprocessableEntity, dorErr.StatusCode)
		assert.Equal(t, "invalid title", dorErr.Body)
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, statusHandler(http.StatusCreated, "druid:ab1"))

		_, err := client.Objects().Register(context.Background(), map[string]string{"title": "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestObjectsFindBySourceID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/objects/find", r.URL.Path)
		assert.Equal(t, "sul:abc123", r.URL.Query().Get("sourceId"))
		_, _ = w.Write([]byte(`{"externalIdentifier":"druid:ab1"}`))
	})

	record, err := client.Objects().FindBySourceID(context.Background(), "sul:abc123")
	require.NoError(t, err)
	assert.Equal(t, "druid:ab1", record.ExternalIdentifier())

	_, err = client.Objects().FindBySourceID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
