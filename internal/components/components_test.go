// SPDX-License-Identifier: MIT
package components

import (
	"html"
	"strings"
	"testing"
	"time"

	"github.com/harishsolar/solarsite/internal/catalog"
	"github.com/harishsolar/solarsite/internal/media"
	"github.com/harishsolar/solarsite/internal/themes"
	"github.com/harishsolar/solarsite/internal/view"
	g "maragu.dev/gomponents"
)

var testNow = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

func testSite(theme string) *Site {
	return &Site{
		Name:    "Harish Solar Systems",
		Theme:   themes.Resolve(theme, ""),
		Catalog: catalog.Default(),
	}
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return b.String()
}

func homeHTML(t *testing.T, site *Site, app *view.App, form ContactForm) string {
	t.Helper()
	if app == nil {
		app = view.NewApp(site.Catalog)
	}
	return render(t, HomePage(HomeProps{Site: site, App: app, Form: form, Now: testNow}))
}

func TestHomePageRendersCatalogInOrder(t *testing.T) {
	site := testSite(themes.Dark)
	html := homeHTML(t, site, nil, ContactForm{})

	if got := strings.Count(html, `data-product="`); got != 5 {
		t.Fatalf("expected 5 product cards, got %d", got)
	}

	last := -1
	for _, p := range site.Catalog.Products {
		idx := strings.Index(html, `data-product="`+p.ID+`"`)
		if idx < 0 {
			t.Fatalf("card for %s not rendered", p.ID)
		}
		if idx < last {
			t.Errorf("card %s rendered out of order", p.ID)
		}
		last = idx
		if !strings.Contains(html, `href="/products/`+p.ID+`"`) {
			t.Errorf("card %s does not link to its detail page", p.ID)
		}
	}
}

func TestCardShowsOnlyFirstThreeSpecs(t *testing.T) {
	site := testSite(themes.Dark)
	p := &catalog.Product{
		ID: "x", Name: "X", Image: "/images/x.png",
		Specs: []string{"one", "two", "three", "four"},
	}
	html := render(t, ProductCard(site, view.Card{Product: p}))

	for _, s := range []string{"<li>one</li>", "<li>two</li>", "<li>three</li>"} {
		if !strings.Contains(html, s) {
			t.Errorf("expected %s in card", s)
		}
	}
	if strings.Contains(html, "four") {
		t.Error("fourth spec should not be shown on the card")
	}
}

func TestCardRearImage(t *testing.T) {
	site := testSite(themes.Dark)

	withBack := &site.Catalog.Products[0]
	html := render(t, ProductCard(site, view.Card{Product: withBack}))
	if !strings.Contains(html, "has-back") || !strings.Contains(html, `src="`+withBack.BackImage+`"`) {
		t.Error("card with rear image should render the crossfade target")
	}

	front := &catalog.Product{ID: "solo", Name: "Solo", Image: "/images/solo.png"}
	html = render(t, ProductCard(site, view.Card{Product: front, Hovered: true}))
	if strings.Contains(html, "has-back") || strings.Contains(html, "img-back") {
		t.Error("card without rear image must stay on the front image")
	}
}

func TestCardImageFallsBackToPlaceholder(t *testing.T) {
	site := testSite(themes.Dark)
	html := render(t, ProductCard(site, view.Card{Product: &site.Catalog.Products[0]}))

	if !strings.Contains(html, media.CardPlaceholder) {
		t.Error("card image should fall back to the placeholder on error")
	}
}

type stubImages map[string]string

func (s stubImages) Card(ref string) string {
	if v, ok := s[ref]; ok {
		return v
	}
	return ref
}

func TestCardUsesThumbnail(t *testing.T) {
	site := testSite(themes.Dark)
	site.Images = stubImages{"/images/hs-60.png": "/images/thumbs/hs-60.png"}

	html := render(t, ProductCard(site, view.Card{Product: &site.Catalog.Products[0]}))
	if !strings.Contains(html, `src="/images/thumbs/hs-60.png"`) {
		t.Error("card should use the thumbnail when available")
	}
}

func TestThirdProductHeadingMatchesName(t *testing.T) {
	site := testSite(themes.Dark)
	cards := view.Cards(site.Catalog)
	third := cards[2].Product

	html := render(t, ProductPage(ProductProps{Site: site, Detail: view.NewDetail(third), Now: testNow}))
	if !strings.Contains(html, "<h1>"+third.Name+"</h1>") {
		t.Errorf("expected heading %q", third.Name)
	}
	if !strings.Contains(html, "Model HS-120") {
		t.Error("expected model badge")
	}
	for _, d := range third.Details {
		if !strings.Contains(html, "<td>"+d.Feature+"</td><td>"+d.Value+"</td>") {
			t.Errorf("missing spec row %s", d.Feature)
		}
	}
}

func TestBackToggleDisabledWithoutRearImage(t *testing.T) {
	site := testSite(themes.Dark)
	p := &catalog.Product{ID: "solo", Name: "Solo", Image: "/images/solo.png"}

	html := render(t, ProductDetail(site, view.NewDetail(p)))
	if !strings.Contains(html, "disabled") {
		t.Error("back toggle should be disabled")
	}
	if strings.Contains(html, "?view=back") {
		t.Error("back toggle should not link anywhere")
	}

	d := view.NewDetail(&site.Catalog.Products[0])
	d.SetFace(view.Back)
	html = render(t, ProductDetail(site, d))
	if !strings.Contains(html, `href="/products/hs-60?view=back"`) {
		t.Error("back toggle should link to the rear view")
	}
	if !strings.Contains(html, `src="/images/hs-60-back.png"`) {
		t.Error("rear face should show the rear image")
	}
}

func TestDetailLoadingState(t *testing.T) {
	site := testSite(themes.Dark)
	d := view.NewDetail(&site.Catalog.Products[0])

	html := render(t, ProductDetail(site, d))
	if !strings.Contains(html, `data-loading="true"`) {
		t.Error("new detail view should start loading")
	}

	d.ImageFailed()
	html = render(t, ProductDetail(site, d))
	if !strings.Contains(html, `data-loading="false"`) || !strings.Contains(html, `src="`+media.DetailPlaceholder+`"`) {
		t.Error("failed image should render the placeholder without the skeleton")
	}
}

func TestDissolveOnlyInDarkTheme(t *testing.T) {
	for _, tt := range []struct {
		theme string
		want  bool
	}{
		{themes.Dark, true},
		{themes.Light, false},
	} {
		site := testSite(tt.theme)
		html := render(t, ProductPage(ProductProps{Site: site, Detail: view.NewDetail(&site.Catalog.Products[0]), Now: testNow}))
		if got := strings.Contains(html, "@keyframes dissolve-dissolve"); got != tt.want {
			t.Errorf("%s: dissolve keyframes present = %v, want %v", tt.theme, got, tt.want)
		}
	}
}

func TestNavLinksDependOnPage(t *testing.T) {
	site := testSite(themes.Dark)

	home := homeHTML(t, site, nil, ContactForm{})
	if !strings.Contains(home, `href="#contact"`) {
		t.Error("home page links should be in-page anchors")
	}

	detail := render(t, ProductPage(ProductProps{Site: site, Detail: view.NewDetail(&site.Catalog.Products[0]), Now: testNow}))
	if !strings.Contains(detail, `href="/#contact"`) || !strings.Contains(detail, `href="/#products"`) {
		t.Error("detail page links should return to the list view")
	}
}

func TestApplicationsOnlyInLightTheme(t *testing.T) {
	dark := homeHTML(t, testSite(themes.Dark), nil, ContactForm{})
	if strings.Contains(dark, `id="applications"`) || strings.Contains(dark, `href="#applications"`) {
		t.Error("dark site should not render applications")
	}

	light := homeHTML(t, testSite(themes.Light), nil, ContactForm{})
	if !strings.Contains(light, `id="applications"`) || !strings.Contains(light, "Streets &amp; Highways") {
		t.Error("light site should render applications")
	}
}

func TestPendingScrollScript(t *testing.T) {
	site := testSite(themes.Dark)
	app := view.NewApp(site.Catalog)
	app.NavigateHome("#contact")

	html := homeHTML(t, site, app, ContactForm{})
	if !strings.Contains(html, `document.getElementById("contact")`) {
		t.Error("expected scroll to pending section")
	}

	html = homeHTML(t, site, nil, ContactForm{})
	if strings.Contains(html, "scrollIntoView") {
		t.Error("no scroll script expected without a pending section")
	}
}

func TestContactForm(t *testing.T) {
	site := testSite(themes.Dark)

	html := homeHTML(t, site, nil, ContactForm{
		CSRFField: "csrf_token",
		CSRFToken: "tok123",
		Name:      "Asha",
		Product:   "hs-90",
		Errors:    map[string]string{"phone": "Please enter a valid phone number"},
	})
	for _, want := range []string{
		`name="csrf_token" value="tok123"`,
		`name="product" value="hs-90"`,
		`value="Asha"`,
		"Please enter a valid phone number",
		`href="tel:+91 8094000802"`,
		`href="mailto:solarsystems0751@gmail.com"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %s in contact section", want)
		}
	}

	html = homeHTML(t, site, nil, ContactForm{Sent: true})
	if !strings.Contains(html, "Thank you!") {
		t.Error("expected confirmation after submission")
	}
}

func TestLayoutCarriesThemeAndScripts(t *testing.T) {
	site := testSite(themes.Light)
	html := homeHTML(t, site, nil, ContactForm{})

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
	if !strings.Contains(html, `data-theme="light"`) || !strings.Contains(html, site.Theme.Colors.Background) {
		t.Error("theme not applied")
	}
	if !strings.Contains(html, "var threshold = 50") {
		t.Error("navbar script should carry the scroll threshold")
	}
	if !strings.Contains(html, `"#product-"`) {
		t.Error("deep link script missing")
	}
	if !strings.Contains(html, "HARISH SOLAR SYSTEMS © 2026") {
		t.Error("footer copyright missing")
	}
}

func TestNotFoundPage(t *testing.T) {
	html := render(t, NotFoundPage(testSite(themes.Dark), testNow))
	if !strings.Contains(html, "404") || !strings.Contains(html, `href="/#products"`) {
		t.Error("not found page should link back to the catalog")
	}
}

func TestPageSection(t *testing.T) {
	html := render(t, PageSection(SectionProps{ID: "about", Title: "About Us", Alt: true}, g.Text("body")))

	for _, want := range []string{`id="about"`, `class="section section-alt"`, "About Us", "body", "underline-bar"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in section, got %s", want, html)
		}
	}
	if strings.Contains(html, "muted") {
		t.Error("expected no subtitle element without a subtitle")
	}

	bare := render(t, PageSection(SectionProps{ID: "plain"}, g.Text("x")))
	if strings.Contains(bare, "section-head") {
		t.Error("expected no heading block without title or subtitle")
	}
}

func TestDetailImageHandlersFollowState(t *testing.T) {
	site := testSite(themes.Dark)
	out := html.UnescapeString(render(t, ProductDetail(site, view.NewDetail(&site.Catalog.Products[0]))))

	wantLoad := `onload="this.parentNode.setAttribute('data-loading','false');this.parentNode.setAttribute('data-failed','false');"`
	if !strings.Contains(out, wantLoad) {
		t.Errorf("expected load handler to clear loading, got %s", out)
	}
	wantError := "this.onerror=null;this.parentNode.setAttribute('data-loading','false');this.parentNode.setAttribute('data-failed','true');this.src='" + media.DetailPlaceholder + "'"
	if !strings.Contains(out, wantError) {
		t.Error("expected error handler to switch to the placeholder")
	}
	if !strings.Contains(out, "data-keep-scroll") {
		t.Error("face links should keep the scroll offset")
	}
}

func TestDeepLinkScriptTable(t *testing.T) {
	site := testSite(themes.Dark)
	out := homeHTML(t, site, nil, ContactForm{})

	for _, p := range site.Catalog.Products {
		if !strings.Contains(out, `"#product-`+p.ID+`":"/products/`+p.ID+`"`) {
			t.Errorf("deep link table missing %s", p.ID)
		}
	}
	if !strings.Contains(out, `unknown = "/"`) {
		t.Error("unknown deep links should return to the list")
	}
}

func TestNavbarMenuToggle(t *testing.T) {
	site := testSite(themes.Dark)

	closed := render(t, Navbar(site, view.Navbar{}, true))
	if !strings.Contains(closed, `data-open="false"`) || !strings.Contains(closed, `href="?menu=open"`) {
		t.Errorf("closed menu should link to opening it, got %s", closed)
	}

	open := render(t, Navbar(site, view.Navbar{MenuOpen: true, Scrolled: true}, true))
	if !strings.Contains(open, `data-open="true"`) || !strings.Contains(open, `data-scrolled="true"`) {
		t.Error("navbar should render the given state")
	}
	if strings.Contains(open, `href="?menu=open"`) {
		t.Error("open menu toggle should close it")
	}
}

func TestProductPageRestoresScroll(t *testing.T) {
	site := testSite(themes.Dark)
	out := render(t, ProductPage(ProductProps{
		Site:    site,
		Detail:  view.NewDetail(&site.Catalog.Products[0]),
		ScrollY: 320,
		Now:     testNow,
	}))
	if !strings.Contains(out, "window.scrollTo(0, 320)") {
		t.Error("expected page to reopen at the kept offset")
	}
}
