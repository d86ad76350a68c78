package social

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestPostThread(t *testing.T) {
	var calls []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		calls = append(calls, r.URL.Path+"|"+r.Form.Get("text")+"|"+r.Form.Get("reply_to_id")+"|"+r.Form.Get("creation_id"))

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/threads_publish"):
			json.NewEncoder(w).Encode(map[string]string{"id": "post-" + r.Form.Get("creation_id")})
		default:
			json.NewEncoder(w).Encode(map[string]string{"id": "container-1"})
		}
	}))
	defer srv.Close()

	client := NewThreadsClient("test-token", "user-1")
	client.httpClient = srv.Client()
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	postID, err := client.PostThread("main post", "comment post")

	assert.Equal(t, nil, err)
	assert.Equal(t, "post-container-1", postID)

	// container, publish, comment container, comment publish
	assert.Equal(t, 4, len(calls))
	assert.Equal(t, "/user-1/threads|main post||", calls[0])
	assert.Equal(t, "/user-1/threads_publish|||container-1", calls[1])
	assert.Equal(t, "/user-1/threads|comment post|post-container-1|", calls[2])
}

func TestPostThreadNoComment(t *testing.T) {
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "x"})
	}))
	defer srv.Close()

	client := NewThreadsClient("test-token", "user-1")
	client.httpClient = srv.Client()
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.PostThread("main post", "")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, calls)
}

func TestPostThreadAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Invalid OAuth access token"},
		})
	}))
	defer srv.Close()

	client := NewThreadsClient("bad-token", "user-1")
	client.httpClient = srv.Client()
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.PostThread("main post", "comment")
	assert.NotEqual(t, nil, err)
}

func TestPostThreadCommentFailureKeepsPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		w.Header().Set("Content-Type", "application/json")

		if r.Form.Get("reply_to_id") != "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{"message": "reply window closed"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "ok-1"})
	}))
	defer srv.Close()

	client := NewThreadsClient("test-token", "user-1")
	client.httpClient = srv.Client()
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	postID, err := client.PostThread("main post", "comment")

	assert.Equal(t, nil, err)
	assert.Equal(t, "ok-1", postID)
}

func TestPostThreadCommentPublishFailureKeepsPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Form.Get("reply_to_id") != "":
			json.NewEncoder(w).Encode(map[string]string{"id": "comment-container"})
		case r.Form.Get("creation_id") == "comment-container":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{"message": "publish failed"},
			})
		case r.Form.Get("creation_id") != "":
			json.NewEncoder(w).Encode(map[string]string{"id": "post-1"})
		default:
			json.NewEncoder(w).Encode(map[string]string{"id": "main-container"})
		}
	}))
	defer srv.Close()

	client := NewThreadsClient("test-token", "user-1")
	client.httpClient = srv.Client()
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	postID, err := client.PostThread("main post", "comment")

	assert.Equal(t, nil, err)
	assert.Equal(t, "post-1", postID)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	target, err := url.Parse(rt.base)
	if err != nil {
		return nil, err
	}
	req.URL.Scheme = target.Scheme
	req.URL.Host = target.Host
	return rt.inner.RoundTrip(req)
}
