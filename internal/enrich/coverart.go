package enrich

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// coverArtSizeHint is the image size requested from the search endpoint.
const coverArtSizeHint = "large"

// CoverArtClient resolves a game title to cover art in two HTTP steps:
// a search request that returns an image URL, then a download of the
// image bytes to a local file. Either step failing fails the whole
// attempt and leaves no partial state on disk.
type CoverArtClient struct {
	searchURL string
	imagesDir string
	client    *http.Client
}

// NewCoverArtClient creates a client against the given search endpoint,
// writing downloaded images under imagesDir.
func NewCoverArtClient(searchURL, imagesDir string, timeout time.Duration) *CoverArtClient {
	return &CoverArtClient{
		searchURL: searchURL,
		imagesDir: imagesDir,
		client:    &http.Client{Timeout: timeout},
	}
}

// Fetch downloads cover art for the title and returns the local path it
// was written to.
func (c *CoverArtClient) Fetch(title string) (string, error) {
	imageURL, err := c.search(title)
	if err != nil {
		return "", err
	}
	return c.download(imageURL, title)
}

// search asks the lookup endpoint for an image URL. The response body is
// the URL itself, possibly wrapped in quotes, brackets or whitespace.
func (c *CoverArtClient) search(title string) (string, error) {
	query := fmt.Sprintf("%s?q=%s&size=%s", c.searchURL, url.QueryEscape(title), coverArtSizeHint)

	resp, err := c.client.Get(query)
	if err != nil {
		return "", fmt.Errorf("cover art search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cover art search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read search response: %w", err)
	}

	imageURL := strings.Trim(string(body), "\"'[] \t\r\n")
	if imageURL == "" {
		return "", fmt.Errorf("cover art search returned no image URL")
	}
	return imageURL, nil
}

// download fetches the image bytes and writes them to the images
// directory under the sanitized title.
func (c *CoverArtClient) download(imageURL, title string) (string, error) {
	resp, err := c.client.Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("cover art download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cover art download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image bytes: %w", err)
	}

	if err := os.MkdirAll(c.imagesDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}

	path := filepath.Join(c.imagesDir, SanitizeTitle(title)+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write cover art: %w", err)
	}
	return path, nil
}

// SanitizeTitle converts a game title to a filesystem-friendly base name
// by replacing spaces with underscores.
func SanitizeTitle(title string) string {
	return strings.ReplaceAll(title, " ", "_")
}
