package social

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const threadsBaseURL = "https://graph.threads.net/v1.0"

// ThreadsClient posts briefs via the Threads Graph API. Posting is a
// two-step flow: create a media container, then publish it. The comment is
// a second container replying to the published post.
type ThreadsClient struct {
	accessToken string
	userID      string
	httpClient  *http.Client
}

func NewThreadsClient(accessToken, userID string) *ThreadsClient {
	return &ThreadsClient{
		accessToken: accessToken,
		userID:      userID,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// PostThread publishes the main text and, when commentText is non-empty, a
// reply underneath it. Returns the published post ID. A failed comment does
// not fail the call once the main post is live.
func (c *ThreadsClient) PostThread(mainText, commentText string) (string, error) {
	creationID, err := c.createContainer(mainText, "")
	if err != nil {
		return "", fmt.Errorf("threads create container: %w", err)
	}

	postID, err := c.publish(creationID)
	if err != nil {
		return "", fmt.Errorf("threads publish: %w", err)
	}

	if commentText != "" {
		commentID, err := c.createContainer(commentText, postID)
		if err != nil {
			slog.Warn("threads comment container failed", "error", err, "post_id", postID)
			return postID, nil
		}
		if _, err := c.publish(commentID); err != nil {
			slog.Warn("threads comment publish failed", "error", err, "post_id", postID)
		}
	}

	return postID, nil
}

func (c *ThreadsClient) createContainer(text, replyToID string) (string, error) {
	form := url.Values{}
	form.Set("access_token", c.accessToken)
	form.Set("media_type", "TEXT")
	form.Set("text", text)
	if replyToID != "" {
		form.Set("reply_to_id", replyToID)
	}

	endpoint := fmt.Sprintf("%s/%s/threads", threadsBaseURL, c.userID)
	return c.postForm(endpoint, form)
}

func (c *ThreadsClient) publish(creationID string) (string, error) {
	form := url.Values{}
	form.Set("access_token", c.accessToken)
	form.Set("creation_id", creationID)

	endpoint := fmt.Sprintf("%s/%s/threads_publish", threadsBaseURL, c.userID)
	return c.postForm(endpoint, form)
}

func (c *ThreadsClient) postForm(endpoint string, form url.Values) (string, error) {
	resp, err := c.httpClient.Post(endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed struct {
		ID    string `json:"id"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, parsed.Error.Message)
	}

	if parsed.ID == "" {
		return "", fmt.Errorf("no id in response")
	}

	return parsed.ID, nil
}
