package content

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

const (
	fallbackTitle   = "Untitled"
	fallbackContent = "No content available"
)

// Readable is the reduced form of a fetched page: boilerplate stripped,
// main text isolated.
type Readable struct {
	Title    string
	Content  string
	SiteName string
}

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Run parses raw HTML and isolates the primary article content. pageURL is
// used for resolving relative references and deriving the site name.
func (e *Extractor) Run(data []byte, pageURL string) (*Readable, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("HTML data is empty")
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(data), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("no readable content found: %w", err)
	}

	readable := &Readable{
		Title:    article.Title,
		Content:  strings.TrimSpace(article.TextContent),
		SiteName: parsedURL.Hostname(),
	}
	if readable.Title == "" {
		readable.Title = fallbackTitle
	}
	if readable.Content == "" {
		readable.Content = fallbackContent
	}

	slog.Debug("Content extracted successfully",
		"title", readable.Title,
		"site_name", readable.SiteName,
		"content_length", len(readable.Content))

	return readable, nil
}
