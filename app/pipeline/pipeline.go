package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avelichko/linksense/app/classifier"
	"github.com/avelichko/linksense/app/content"
	"github.com/avelichko/linksense/app/database"
)

type FetcherInterface interface {
	Run(ctx context.Context, url string) ([]byte, error)
}

type ExtractorInterface interface {
	Run(data []byte, pageURL string) (*content.Readable, error)
}

type ClassifierInterface interface {
	Run(ctx context.Context, text, userID, intent string) (*classifier.Result, error)
}

var _ FetcherInterface = (*content.Fetcher)(nil)
var _ ExtractorInterface = (*content.Extractor)(nil)
var _ ClassifierInterface = (*classifier.Classifier)(nil)

// Result is the success payload of a full pipeline run.
type Result struct {
	LinkID         string
	URL            string
	Title          string
	Intent         string
	Classification string
	Suggestions    []string
	SiteName       string
}

// Pipeline runs the classify-and-save flow for one request: fetch the page,
// extract readable text, classify it against the user's categories, persist
// the link. Stages execute strictly in sequence and the first failure is
// terminal; each failure is tagged with its stage kind.
type Pipeline struct {
	fetcher      FetcherInterface
	extractor    ExtractorInterface
	classifier   ClassifierInterface
	categoryRepo database.CategoryRepository
	linkRepo     database.LinkRepository
}

func NewPipeline(fetcher FetcherInterface, extractor ExtractorInterface,
	classifier ClassifierInterface, categoryRepo database.CategoryRepository,
	linkRepo database.LinkRepository) *Pipeline {
	return &Pipeline{
		fetcher:      fetcher,
		extractor:    extractor,
		classifier:   classifier,
		categoryRepo: categoryRepo,
		linkRepo:     linkRepo,
	}
}

func (p *Pipeline) Run(ctx context.Context, userID, pageURL, intent string) (*Result, error) {
	data, err := p.fetcher.Run(ctx, pageURL)
	if err != nil {
		return nil, &Error{Kind: KindFetch, Err: err}
	}

	readable, err := p.extractor.Run(data, pageURL)
	if err != nil {
		return nil, &Error{Kind: KindExtraction, Err: err}
	}

	classification, err := p.classifier.Run(ctx, readable.Content, userID, intent)
	if err != nil {
		return nil, &Error{Kind: KindClassification, Err: err}
	}

	linkID, err := p.saveLink(userID, pageURL, readable, classification.Label)
	if err != nil {
		return nil, &Error{Kind: KindDatabase, Err: err}
	}

	slog.Info("Link saved",
		"link_id", linkID,
		"user_id", userID,
		"site_name", readable.SiteName,
		"classification", classification.Label)

	return &Result{
		LinkID:         linkID,
		URL:            pageURL,
		Title:          readable.Title,
		Intent:         intent,
		Classification: classification.Label,
		Suggestions:    classification.Suggestions,
		SiteName:       readable.SiteName,
	}, nil
}

// saveLink resolves the classifier's label to the user's category and inserts
// the link. A label with no matching category is a failure, never an
// auto-create.
func (p *Pipeline) saveLink(userID, pageURL string, readable *content.Readable, label string) (string, error) {
	category, err := p.categoryRepo.GetByNameAndUser(label, userID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve category: %w", err)
	}
	if category == nil {
		return "", fmt.Errorf("category '%s' not found for user '%s'", label, userID)
	}

	linkID, err := p.linkRepo.SaveLink(database.Link{
		URL:        pageURL,
		Title:      readable.Title,
		SiteName:   readable.SiteName,
		UserID:     userID,
		CategoryID: category.ID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to save link: %w", err)
	}

	return linkID, nil
}
