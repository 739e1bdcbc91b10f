package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/sunside/internal/domain/imagesearch"
)

const defaultBaseURL = "https://api.unsplash.com"

// Client searches photos on Unsplash.
type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
}

// NewClient builds an API client. An empty access key yields a client whose searches
// fail with imagesearch.ErrMissingCredentials.
func NewClient(baseURL, accessKey string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(base, "/"),
		accessKey: strings.TrimSpace(accessKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchPhotos runs a single landscape-oriented search.
func (c *Client) SearchPhotos(ctx context.Context, query string, perPage int) ([]imagesearch.Image, error) {
	if c.accessKey == "" {
		return nil, imagesearch.ErrMissingCredentials
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")
	params.Set("order_by", "relevant")
	endpoint := c.baseURL + "/search/photos?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build unsplash request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("unsplash request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode unsplash response: %w", err)
	}
	return normalizeResults(raw.Results), nil
}

type searchResponse struct {
	Total   int     `json:"total"`
	Results []photo `json:"results"`
}

type photo struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Small   string `json:"small"`
		Regular string `json:"regular"`
	} `json:"urls"`
	User struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
}

func normalizeResults(results []photo) []imagesearch.Image {
	images := make([]imagesearch.Image, 0, len(results))
	for _, p := range results {
		if p.ID == "" || (p.URLs.Regular == "" && p.URLs.Small == "") {
			continue
		}
		description := p.AltDescription
		if strings.TrimSpace(description) == "" {
			description = p.Description
		}
		images = append(images, imagesearch.Image{
			ID:          p.ID,
			Description: strings.TrimSpace(description),
			URLs: imagesearch.URLs{
				Small:   p.URLs.Small,
				Regular: p.URLs.Regular,
			},
			Attribution: imagesearch.Attribution{
				Name:       p.User.Name,
				ProfileURL: p.User.Links.HTML,
			},
		})
	}
	return images
}

var _ imagesearch.Client = (*Client)(nil)
