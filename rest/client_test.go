package rest_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/echoquill"
	"github.com/fwojciec/echoquill/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dragonRequest() echoquill.GenerationRequest {
	return echoquill.GenerationRequest{
		Theme:  "dragon",
		Genre:  echoquill.GenreFantasy,
		Tone:   echoquill.ToneDramatic,
		Length: echoquill.LengthShort,
	}
}

func TestClient_Generate_Success(t *testing.T) {
	t.Parallel()

	var gotBody, gotContentType, gotRequestID, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get(rest.RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"story":"Once..."}`)
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL)
	story, err := client.Generate(context.Background(), dragonRequest())

	require.NoError(t, err)
	assert.Equal(t, "Once...", story)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, `{"theme":"dragon","genre":"Fantasy","tone":"Dramatic","length":"Short"}`, gotBody)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_Generate_StoryIsNotTransformed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"story":"  padded\nstory  \n"}`)
	}))
	defer srv.Close()

	story, err := rest.NewClient(srv.URL).Generate(context.Background(), dragonRequest())

	require.NoError(t, err)
	assert.Equal(t, "  padded\nstory  \n", story)
}

func TestClient_Generate_EmptyStory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"story":""}`)
	}))
	defer srv.Close()

	story, err := rest.NewClient(srv.URL).Generate(context.Background(), dragonRequest())

	require.NoError(t, err)
	assert.Empty(t, story)
}

func TestClient_Generate_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{"detail string", http.StatusInternalServerError, `{"detail":"D"}`, "D"},
		{"bad request detail", http.StatusBadRequest, `{"detail":"Missing 'theme' field"}`, "Missing 'theme' field"},
		{"no detail field", http.StatusInternalServerError, `{"error":"x"}`, ""},
		{"detail list", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","theme"],"msg":"field required"}]}`, ""},
		{"non json body", http.StatusBadGateway, `<html>bad gateway</html>`, ""},
		{"empty body", http.StatusServiceUnavailable, ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := rest.NewClient(srv.URL).Generate(context.Background(), dragonRequest())

			var serr *echoquill.ServiceError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.status, serr.StatusCode)
			assert.Equal(t, tt.wantDetail, serr.Detail)
			assert.NotEmpty(t, echoquill.UserMessage(err))
		})
	}
}

func TestClient_Generate_MalformedSuccessBody(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`not json`, `{"response":"wrong key"}`, `{"story":null}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		}))

		_, err := rest.NewClient(srv.URL).Generate(context.Background(), dragonRequest())
		srv.Close()

		var terr *echoquill.TransportError
		require.ErrorAs(t, err, &terr, "body %q", body)
		assert.Equal(t, "decode", terr.Op)
		assert.Equal(t, echoquill.MsgConnectionFailed, echoquill.UserMessage(err))
	}
}

func TestClient_Generate_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := rest.NewClient(url).Generate(context.Background(), dragonRequest())

	var terr *echoquill.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "send", terr.Op)
}

func TestClient_Generate_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := rest.NewClient(srv.URL, rest.WithTimeout(50*time.Millisecond)).
		Generate(context.Background(), dragonRequest())

	var terr *echoquill.TransportError
	require.ErrorAs(t, err, &terr)
}

func TestClient_Generate_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"story":"late"}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rest.NewClient(srv.URL).Generate(ctx, dragonRequest())

	var terr *echoquill.TransportError
	require.ErrorAs(t, err, &terr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_WithHTTPClient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"story":"custom"}`)
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL, rest.WithHTTPClient(srv.Client()))
	story, err := client.Generate(context.Background(), dragonRequest())

	require.NoError(t, err)
	assert.Equal(t, "custom", story)
}

func TestClient_WithTimeout_DoesNotModifySharedClient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = io.WriteString(w, `{"story":"late"}`)
	}))
	defer srv.Close()

	shared := srv.Client()
	shared.Timeout = time.Hour

	client := rest.NewClient(srv.URL, rest.WithHTTPClient(shared), rest.WithTimeout(20*time.Millisecond))
	_, err := client.Generate(context.Background(), dragonRequest())

	var transportErr *echoquill.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, time.Hour, shared.Timeout)
}

func TestClient_WithHTTPClient_IgnoresNil(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"story":"fallback"}`)
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL, rest.WithHTTPClient(nil))
	story, err := client.Generate(context.Background(), dragonRequest())

	require.NoError(t, err)
	assert.Equal(t, "fallback", story)
}
