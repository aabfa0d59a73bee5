// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harishsolar/solarsite/internal/components"
	"github.com/harishsolar/solarsite/internal/email"
	"github.com/harishsolar/solarsite/internal/inquiries"
	"github.com/harishsolar/solarsite/internal/view"
	"go.uber.org/zap"
)

// SubmitContact stores an inquiry and notifies the site owner. Invalid input
// re-renders the form with messages; success redirects back to the form.
func (h *Handlers) SubmitContact(c *gin.Context) {
	site := h.site(c)

	var sub inquiries.Submission
	err := c.ShouldBind(&sub)
	if err == nil {
		// Sanitizing can empty a field, so validate again
		sub.Normalize()
		err = sub.Validate()
	}

	errs := inquiries.FieldErrors(err)
	if errs == nil && sub.Product != "" {
		if _, ok := site.Catalog.Product(sub.Product); !ok {
			errs = map[string]string{"product": "Unknown product"}
		}
	}
	if errs != nil {
		// The product field is hidden, so its error is shown on the form
		if msg, ok := errs["product"]; ok && errs["form"] == "" {
			errs["form"] = msg
		}
		h.renderContact(c, http.StatusUnprocessableEntity, sub, func(f *components.ContactForm) {
			f.Errors = errs
		})
		return
	}

	inq, err := h.Inquiries.Create(c.Request.Context(), sub, c.ClientIP())
	if err != nil {
		h.Logger.Error("failed to store inquiry", zap.Error(err))
		h.renderContact(c, http.StatusInternalServerError, sub, func(f *components.ContactForm) {
			f.Failed = true
		})
		return
	}

	h.Logger.Info("inquiry received",
		zap.Uint("id", inq.ID),
		zap.String("product", inq.ProductID),
		zap.String("ip", inq.IP))

	if h.Mailer != nil && h.NotifyTo != "" {
		productName := ""
		if p, ok := site.Catalog.Product(inq.ProductID); ok {
			productName = p.Name
		}

		if err := email.SendInquiryNotification(h.Mailer, h.NotifyTo, site.Name, inq, productName); err != nil {
			// The inquiry is stored; the owner can still find it with the CLI
			h.Logger.Error("failed to send inquiry notification", zap.Uint("id", inq.ID), zap.Error(err))
		} else if err := h.Inquiries.MarkNotified(c.Request.Context(), inq.ID); err != nil {
			h.Logger.Warn("failed to mark inquiry notified", zap.Uint("id", inq.ID), zap.Error(err))
		}
	}

	c.Redirect(http.StatusSeeOther, "/?sent=1#contact")
}

// renderContact re-renders the list view scrolled to the form holding sub
func (h *Handlers) renderContact(c *gin.Context, status int, sub inquiries.Submission, apply func(*components.ContactForm)) {
	site := h.site(c)
	app := view.NewApp(site.Catalog)
	nav := navbar(c, 0)
	if link, ok := navLink("contact"); ok {
		nav.Activate(link, app)
	}

	form := h.newForm(c)
	form.Name = sub.Name
	form.Phone = sub.Phone
	form.Message = sub.Message
	form.Product = sub.Product
	apply(&form)

	h.render(c, status, components.HomePage(components.HomeProps{
		Site:   site,
		App:    app,
		Navbar: nav,
		Form:   form,
		Now:    h.now(),
	}))
}
