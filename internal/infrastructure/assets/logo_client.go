package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

const (
	DefaultPlaceholderURL = "https://placehold.co"
	logoSize              = "150x150"
	maxLogoBytes          = 2 << 20
)

// LogoClient downloads placeholder logos and stores them under the media
// root.
type LogoClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	media      MediaWriter
}

func NewLogoClient(baseURL string, timeout time.Duration, media MediaWriter) (*LogoClient, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultPlaceholderURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &LogoClient{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		media:      media,
	}, nil
}

// URL builds <base>/150x150/<bg>/<fg>/png?text=<initials>.
func (c *LogoClient) URL(plan domain.LogoPlan) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.Join([]string{logoSize, plan.Background, plan.Foreground, "png"}, "/")
	u.RawQuery = url.Values{"text": {plan.Text}}.Encode()
	return u.String()
}

// FetchLogo downloads the image for plan and writes it to plan.Path. The
// file is only created once a PNG body has been received.
func (c *LogoClient) FetchLogo(ctx context.Context, plan domain.LogoPlan) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(plan), nil)
	if err != nil {
		return fmt.Errorf("logo request: %w", err)
	}
	req.Header.Set("Accept", "image/png")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("logo download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return fmt.Errorf("logo read: %w", err)
	}
	if mt := mimetype.Detect(body); !mt.Is("image/png") {
		return fmt.Errorf("%w: got %s", ErrUnexpectedContent, mt.String())
	}

	return writeMedia(ctx, c.media, plan.Path, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(body))
		return err
	})
}
