package api

import (
	"context"

	"github.com/avelichko/linksense/app/analytics"
	"github.com/avelichko/linksense/app/auth"
	"github.com/avelichko/linksense/app/pipeline"
	"github.com/avelichko/linksense/app/subscription"
)

type PipelineInterface interface {
	Run(ctx context.Context, userID, pageURL, intent string) (*pipeline.Result, error)
}

type OracleInterface interface {
	IsSubscribed(userID string) (bool, error)
	IssueToken(userID string) (string, error)
}

type AnalyticsInterface interface {
	TrackLinkSaved(userID string)
	TrackClassificationFailure(userID, pageURL string)
}

var _ PipelineInterface = (*pipeline.Pipeline)(nil)
var _ OracleInterface = (*subscription.Oracle)(nil)
var _ AnalyticsInterface = (*analytics.Client)(nil)

type Handler struct {
	pipeline  PipelineInterface
	oracle    OracleInterface
	analytics AnalyticsInterface
	verifier  *auth.Verifier
}

type ClassifyRequest struct {
	URL    string `json:"url" binding:"required,url"`
	Intent string `json:"intent"`
}

type ClassifyData struct {
	URL            string   `json:"url"`
	Title          string   `json:"title"`
	Intent         string   `json:"intent,omitempty"`
	Classification string   `json:"classification"`
	Suggestions    []string `json:"suggestions"`
	SiteName       string   `json:"siteName"`
}

type ClassifyResponse struct {
	Success bool          `json:"success"`
	Data    *ClassifyData `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
}
