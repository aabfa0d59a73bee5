// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harishsolar/solarsite/internal/media"
)

// ServeImage serves a file from the static image directory, or redirects to
// a placeholder when it does not exist
func (h *Handlers) ServeImage(c *gin.Context) {
	ref := "/images" + c.Param("filepath")

	path, ok := h.Images.Path(ref)
	if !ok || !h.Images.Exists(ref) {
		c.Redirect(http.StatusFound, media.DetailPlaceholder)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.File(path)
}
