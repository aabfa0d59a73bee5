// SPDX-License-Identifier: MIT
package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harishsolar/solarsite/internal/components"
	"github.com/harishsolar/solarsite/internal/middleware"
	"github.com/harishsolar/solarsite/internal/view"
	"go.uber.org/zap"
)

// navLink finds the navigation link for section
func navLink(section string) (view.NavLink, bool) {
	for _, link := range view.NavLinks {
		if link.Section == section {
			return link, true
		}
	}
	return view.NavLink{}, false
}

// scrollOffset reads ?y=, the offset a page reload should keep
func scrollOffset(c *gin.Context) float64 {
	y, err := strconv.ParseFloat(c.Query("y"), 64)
	if err != nil || y < 0 || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0
	}
	return y
}

// navbar is the navbar state for the request: scrolled past the threshold
// at offset y, and with the mobile menu open for ?menu=open
func navbar(c *gin.Context, y float64) view.Navbar {
	var n view.Navbar
	n.OnScroll(y)
	if c.Query("menu") == "open" {
		n.ToggleMenu()
	}
	return n
}

// Home renders the list view. ?section= scrolls to a section once rendered,
// ?product= prefills the inquiry form and ?sent=1 confirms a submission.
func (h *Handlers) Home(c *gin.Context) {
	site := h.site(c)
	app := view.NewApp(site.Catalog)

	nav := navbar(c, 0)
	if link, ok := navLink(c.Query("section")); ok {
		nav.Activate(link, app)
	}

	form := h.newForm(c)
	if id := c.Query("product"); id != "" {
		if p, ok := site.Catalog.Product(id); ok {
			form.Product = p.ID
			form.Message = "I'm interested in the " + p.Name + "."
		}
	}
	form.Sent = c.Query("sent") == "1"

	h.render(c, http.StatusOK, components.HomePage(components.HomeProps{
		Site:   site,
		App:    app,
		Navbar: nav,
		Form:   form,
		Now:    h.now(),
	}))
}

// Product renders the detail view. ?view=back shows the rear image when the
// product has one and ?y= reopens the page at that scroll offset.
func (h *Handlers) Product(c *gin.Context) {
	site := h.site(c)
	app := view.NewApp(site.Catalog)

	p, ok := site.Catalog.Product(c.Param("id"))
	if !ok {
		h.NotFound(c)
		return
	}
	app.SelectProduct(p)

	detail := view.NewDetail(app.Selected)
	detail.SetFace(view.ParseFace(c.Query("view")))

	ref := detail.CurrentImage("")
	if _, local := h.Images.Path(ref); local && !h.Images.Exists(ref) {
		h.Logger.Warn("product image missing",
			zap.String("product", p.ID),
			zap.String("image", ref))
		detail.ImageFailed()
	}

	y := scrollOffset(c)
	h.render(c, http.StatusOK, components.ProductPage(components.ProductProps{
		Site:    site,
		Detail:  detail,
		Navbar:  navbar(c, y),
		ScrollY: y,
		Now:     h.now(),
	}))
}

// NotFound renders the 404 page
func (h *Handlers) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, components.NotFoundPage(h.site(c), h.now()))
}

// newForm returns an empty inquiry form carrying the request's CSRF token
func (h *Handlers) newForm(c *gin.Context) components.ContactForm {
	return components.ContactForm{
		CSRFField: middleware.CSRFFormField,
		CSRFToken: middleware.GetCSRFToken(c),
	}
}
