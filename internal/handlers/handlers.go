// SPDX-License-Identifier: MIT
// Package handlers serves the site's pages, images and contact form.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/harishsolar/solarsite/internal/auth"
	"github.com/harishsolar/solarsite/internal/components"
	"github.com/harishsolar/solarsite/internal/email"
	"github.com/harishsolar/solarsite/internal/inquiries"
	"github.com/harishsolar/solarsite/internal/media"
	"github.com/harishsolar/solarsite/internal/middleware"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

// Handlers holds what the public routes need
type Handlers struct {
	Site      *components.Site
	Images    *media.Resolver
	Inquiries *inquiries.Store
	Logger    *zap.Logger

	// Mailer sends inquiry notifications to NotifyTo. Either being empty
	// disables notifications.
	Mailer   email.Sender
	NotifyTo string

	// Auth enables the admin inbox when set
	Auth          *auth.Authenticator
	SecureCookies bool

	now func() time.Time
}

// New returns handlers for site. The site's Images must be images so cards
// pick up generated thumbnails.
func New(site *components.Site, images *media.Resolver, store *inquiries.Store, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		inquiries.RegisterValidators(v)
	}
	return &Handlers{
		Site:      site,
		Images:    images,
		Inquiries: store,
		Logger:    logger,
		now:       time.Now,
	}
}

// Register mounts the public routes on r
func (h *Handlers) Register(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/products/:id", h.Product)
	r.POST("/contact", h.SubmitContact)
	r.GET("/images/*filepath", h.ServeImage)
	r.HEAD("/images/*filepath", h.ServeImage)
	r.GET("/healthz", h.Healthz)
	if h.Auth != nil {
		h.registerAdmin(r)
	}
	r.NoRoute(h.NotFound)
}

// site returns the site with the theme resolved for this request
func (h *Handlers) site(c *gin.Context) *components.Site {
	s := *h.Site
	s.Theme = middleware.GetTheme(c)
	return &s
}

func (h *Handlers) render(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		h.Logger.Error("failed to render page",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
}

// Healthz reports the process is serving
func (h *Handlers) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
