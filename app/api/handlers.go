package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/avelichko/linksense/app/auth"
	"github.com/avelichko/linksense/app/pipeline"
)

func NewHandler(p PipelineInterface, oracle OracleInterface,
	analytics AnalyticsInterface, verifier *auth.Verifier) *Handler {
	return &Handler{
		pipeline:  p,
		oracle:    oracle,
		analytics: analytics,
		verifier:  verifier,
	}
}

// GetTestRoute answers 401 when a verified identity IS present and greets
// anonymous callers. The inversion looks wrong but is documented product
// behaviour; do not flip it without a product decision.
func (h *Handler) GetTestRoute(c *gin.Context) {
	if _, err := h.verifier.UserIDFromRequest(c.Request); err == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "You are not authorized to access this resource.",
		})
		return
	}

	c.String(http.StatusOK, "Hello from LinkSense!")
}

func (h *Handler) PostSubscriptionCheck(c *gin.Context) {
	userID := auth.UserID(c)

	isSubscribed, err := h.oracle.IsSubscribed(userID)
	if err != nil {
		slog.Error("Subscription check failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isSubscribed": isSubscribed})
}

func (h *Handler) GetSubscriptionToken(c *gin.Context) {
	userID := auth.UserID(c)

	token, err := h.oracle.IssueToken(userID)
	if err != nil {
		slog.Error("Subscription token issue failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue subscription token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) PostClassify(c *gin.Context) {
	userID := auth.UserID(c)

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ClassifyResponse{
			Success: false,
			Error:   "Request body must contain a valid url",
		})
		return
	}

	if !isAbsoluteURL(req.URL) {
		c.JSON(http.StatusBadRequest, ClassifyResponse{
			Success: false,
			Error:   "url must be absolute",
		})
		return
	}

	result, err := h.pipeline.Run(c.Request.Context(), userID, req.URL, req.Intent)
	if err != nil {
		kind := pipeline.KindOf(err)
		slog.Error("Classification pipeline failed",
			"user_id", userID,
			"url", req.URL,
			"stage", kind.String(),
			"error", err)

		if kind == pipeline.KindClassification {
			h.analytics.TrackClassificationFailure(userID, req.URL)
		}

		c.JSON(kind.HTTPStatus(), ClassifyResponse{
			Success: false,
			Error:   kind.Message(),
		})
		return
	}

	h.analytics.TrackLinkSaved(userID)

	c.JSON(http.StatusOK, ClassifyResponse{
		Success: true,
		Data: &ClassifyData{
			URL:            result.URL,
			Title:          result.Title,
			Intent:         result.Intent,
			Classification: result.Classification,
			Suggestions:    result.Suggestions,
			SiteName:       result.SiteName,
		},
	})
}

func isAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.IsAbs() && parsed.Host != ""
}
