package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	path string
	body map[string]interface{}
}

func newStubServer(t *testing.T, status int, responseBody string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		requests = append(requests, recordedRequest{path: r.URL.Path, body: body})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func newTestClient(server *httptest.Server) *Client {
	return New(Config{
		Token:   "123:abc",
		ChatID:  "-1001",
		BaseURL: server.URL,
	})
}

func TestSendSuccess(t *testing.T) {
	server, requests := newStubServer(t, http.StatusOK, `{"ok":true,"result":{"message_id":1}}`)

	err := newTestClient(server).Send(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, *requests, 1)

	sent := (*requests)[0]
	require.Equal(t, "/bot123:abc/sendMessage", sent.path)
	require.Equal(t, "-1001", sent.body["chat_id"])
	require.Equal(t, "hello", sent.body["text"])
	require.Equal(t, true, sent.body["disable_web_page_preview"])
}

func TestSendProviderFailure(t *testing.T) {
	server, _ := newStubServer(t, http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)

	err := newTestClient(server).Send(context.Background(), "hello")
	require.EqualError(t, err, "telegram: Bad Request: chat not found")
}

func TestSendUnparseableBody(t *testing.T) {
	server, _ := newStubServer(t, http.StatusBadGateway, `<html>upstream error</html>`)

	err := newTestClient(server).Send(context.Background(), "hello")
	require.EqualError(t, err, "telegram: sendMessage returned status 502")
}

func TestSendProviderFailureWithoutDescription(t *testing.T) {
	server, _ := newStubServer(t, http.StatusInternalServerError, `{"ok":false}`)

	err := newTestClient(server).Send(context.Background(), "hello")
	require.EqualError(t, err, "telegram: sendMessage returned status 500")
}

func TestSendTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	err := newTestClient(server).Send(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "telegram: send message")
}

func TestSendHonoursContext(t *testing.T) {
	server, _ := newStubServer(t, http.StatusOK, `{"ok":true}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestClient(server).Send(ctx, "hello")
	require.Error(t, err)
}
