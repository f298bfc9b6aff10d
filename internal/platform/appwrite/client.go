// The appwrite package implements platform against the Appwrite REST API.
package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/aoradev/aora-go/internal/assets"
	"github.com/aoradev/aora-go/internal/config"
	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform"
)

const responseFormat = "1.6.0"

// Client issues requests against one Appwrite project. It holds no per-call
// state beyond the fallback-cookie session secret, so a single instance is
// safely shared across concurrent calls.
type Client struct {
	endpoint *url.URL
	project  string
	platform string
	client   *http.Client

	sessionMutex sync.Mutex
	session      string
}

var _ platform.Platform = (*Client)(nil)

func New(cfg config.Configuration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		endpoint: cfg.Endpoint,
		project:  cfg.ProjectID,
		platform: cfg.Platform,
		client:   httpClient,
	}
}

func (c *Client) url(segments ...string) *url.URL {
	return c.endpoint.JoinPath(segments...)
}

// call sends a JSON request and decodes the response into out, if non-nil.
func (c *Client) call(ctx context.Context, method string, u *url.URL, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// upload sends a multipart request carrying the asset's content plus the
// given form fields.
func (c *Client) upload(ctx context.Context, u *url.URL, fields map[string]string, asset domain.FileAsset, out any) error {
	content, err := assets.Open(asset.URI)
	if err != nil {
		return err
	}
	defer content.Close()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := form.WriteField(k, v); err != nil {
			return err
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, asset.Name))
	header.Set("Content-Type", asset.MimeType)
	part, err := form.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err = io.Copy(part, content); err != nil {
		return err
	}
	if err = form.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("X-Appwrite-Project", c.project)
	req.Header.Set("X-Appwrite-Response-Format", responseFormat)
	req.Header.Set("Origin", c.platform)
	if session := c.currentSession(); session != "" {
		req.Header.Set("X-Fallback-Cookies", session)
	}

	res, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", req.URL.String()).Msg("request failed")
		return err
	}
	defer res.Body.Close()

	// Clients without a cookie store get the session secret through this
	// header; replaying it keeps the session ambient.
	if fc := res.Header.Get("X-Fallback-Cookies"); fc != "" {
		c.setSession(fc)
	}

	content, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode >= http.StatusBadRequest {
		return decodeError(res.StatusCode, content)
	}

	if out == nil || len(content) == 0 {
		return nil
	}
	if err = json.Unmarshal(content, out); err != nil {
		log.Error().Err(err).Msg("response body unmarshaling error")
	}
	return err
}

func (c *Client) currentSession() string {
	c.sessionMutex.Lock()
	defer c.sessionMutex.Unlock()
	return c.session
}

func (c *Client) setSession(session string) {
	c.sessionMutex.Lock()
	defer c.sessionMutex.Unlock()
	c.session = session
}
