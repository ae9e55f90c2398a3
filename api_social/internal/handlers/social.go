package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stratagix/api_social/internal/accounts"
	"stratagix/pkg/auth"
	"stratagix/pkg/content"
	"stratagix/pkg/logging"
	"stratagix/pkg/middleware"
)

const lookupTimeout = 10 * time.Second

type SocialHandler struct {
	store   AccountStore
	source  InsightSource
	logger  logging.Logger
	metrics *SocialMetrics
}

func NewSocialHandler(store AccountStore, source InsightSource, logger logging.Logger, metrics *SocialMetrics) *SocialHandler {
	return &SocialHandler{
		store:   store,
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts both endpoints under the function path and at the root,
// behind the session check.
func (h *SocialHandler) Register(r gin.IRouter, sessions auth.SessionResolver) {
	requireSession := auth.SessionMiddleware(sessions)
	for _, prefix := range []string{"/functions/v1", ""} {
		g := r.Group(prefix, requireSession)
		g.GET("/get-instagram-data", h.Instagram)
		g.GET("/get-linkedin-data", h.LinkedIn)
	}
}

func (h *SocialHandler) Instagram(c *gin.Context) {
	h.serve(c, content.PlatformInstagram, "Instagram account not found", func(ctx context.Context, acct accounts.Account) (any, error) {
		return h.source.Instagram(ctx, acct)
	})
}

func (h *SocialHandler) LinkedIn(c *gin.Context) {
	h.serve(c, content.PlatformLinkedIn, "LinkedIn account not found", func(ctx context.Context, acct accounts.Account) (any, error) {
		return h.source.LinkedIn(ctx, acct)
	})
}

func (h *SocialHandler) serve(c *gin.Context, platform content.Platform, notFound string, fetch func(context.Context, accounts.Account) (any, error)) {
	label := string(platform)
	session, ok := auth.SessionFromContext(c)
	if !ok || session.UserID == "" {
		h.metrics.Inc(label, "unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), lookupTimeout)
	defer cancel()

	acct, err := h.store.FindAccount(ctx, session.UserID, platform)
	if errors.Is(err, accounts.ErrAccountNotFound) {
		h.metrics.Inc(label, "not_found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	if err != nil {
		h.fail(c, label, "account lookup failed", err)
		return
	}

	data, err := fetch(ctx, acct)
	if err != nil {
		h.fail(c, label, "insight fetch failed", err)
		return
	}

	h.metrics.Inc(label, "ok")
	c.JSON(http.StatusOK, data)
}

func (h *SocialHandler) fail(c *gin.Context, platform, msg string, err error) {
	h.metrics.Inc(platform, "error")
	middleware.RequestLogger(c, h.logger).WithFields(logging.Fields{
		"platform": platform,
		"error":    err.Error(),
	}).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
