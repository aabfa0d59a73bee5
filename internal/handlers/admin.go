// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harishsolar/solarsite/internal/auth"
	"github.com/harishsolar/solarsite/internal/components"
	"github.com/harishsolar/solarsite/internal/inquiries"
	"github.com/harishsolar/solarsite/internal/middleware"
	"go.uber.org/zap"
)

// adminPageSize is how many inquiries the inbox shows
const adminPageSize = 100

func (h *Handlers) registerAdmin(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(func(c *gin.Context) {
		c.Header("X-Robots-Tag", "noindex, nofollow")
		c.Header("Cache-Control", "no-store")
		c.Next()
	})
	{
		admin.GET("", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/admin/inquiries")
		})
		admin.GET("/login", h.AdminLoginForm)
		admin.POST("/login", h.AdminLogin)
		admin.POST("/logout", h.AdminLogout)

		protected := admin.Group("", auth.RequireAdmin(h.Auth))
		protected.GET("/inquiries", h.AdminInquiries)
		protected.POST("/inquiries/:id/delete", h.AdminDeleteInquiry)
	}
}

func (h *Handlers) renderLogin(c *gin.Context, status int, username, errMsg string) {
	h.render(c, status, components.AdminLoginPage(components.AdminLoginProps{
		Site:      h.site(c),
		CSRFField: middleware.CSRFFormField,
		CSRFToken: middleware.GetCSRFToken(c),
		Username:  username,
		Error:     errMsg,
	}))
}

// AdminLoginForm shows the sign-in form, or the inbox for a live session
func (h *Handlers) AdminLoginForm(c *gin.Context) {
	if token, err := c.Cookie(auth.CookieName); err == nil {
		if _, err := h.Auth.ValidateToken(token); err == nil {
			c.Redirect(http.StatusFound, "/admin/inquiries")
			return
		}
	}
	h.renderLogin(c, http.StatusOK, "", "")
}

// AdminLogin checks the credential and starts a session
func (h *Handlers) AdminLogin(c *gin.Context) {
	username := c.PostForm("username")

	token, err := h.Auth.Login(username, c.PostForm("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.Logger.Warn("admin login failed", zap.String("username", username), zap.String("ip", c.ClientIP()))
			h.renderLogin(c, http.StatusUnauthorized, username, "Invalid username or password")
			return
		}
		h.Logger.Error("failed to issue admin session", zap.Error(err))
		h.renderLogin(c, http.StatusInternalServerError, username, "Sign in failed. Please try again.")
		return
	}

	h.Logger.Info("admin signed in", zap.String("username", username), zap.String("ip", c.ClientIP()))
	auth.SetSession(c, h.Auth, token, h.SecureCookies)
	c.Redirect(http.StatusSeeOther, "/admin/inquiries")
}

// AdminLogout ends the session
func (h *Handlers) AdminLogout(c *gin.Context) {
	auth.ClearSession(c, h.SecureCookies)
	c.Redirect(http.StatusSeeOther, auth.LoginPath)
}

// AdminInquiries lists stored inquiries, newest first
func (h *Handlers) AdminInquiries(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.Inquiries.List(ctx, adminPageSize)
	if err != nil {
		h.Logger.Error("failed to list inquiries", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load inquiries")
		return
	}
	total, err := h.Inquiries.Count(ctx)
	if err != nil {
		total = int64(len(list))
	}

	h.render(c, http.StatusOK, components.AdminInquiriesPage(components.AdminInquiriesProps{
		Site:      h.site(c),
		CSRFField: middleware.CSRFFormField,
		CSRFToken: middleware.GetCSRFToken(c),
		Admin:     auth.AdminName(c),
		Inquiries: list,
		Total:     total,
	}))
}

// AdminDeleteInquiry removes an inquiry
func (h *Handlers) AdminDeleteInquiry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid inquiry ID")
		return
	}

	if err := h.Inquiries.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, inquiries.ErrNotFound) {
			c.String(http.StatusNotFound, "Inquiry not found")
			return
		}
		h.Logger.Error("failed to delete inquiry", zap.Uint64("id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to delete inquiry")
		return
	}

	h.Logger.Info("inquiry deleted", zap.Uint64("id", id), zap.String("admin", auth.AdminName(c)))
	c.Redirect(http.StatusSeeOther, "/admin/inquiries")
}
