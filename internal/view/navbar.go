// SPDX-License-Identifier: MIT
package view

// ScrollThreshold is the offset past which the navbar switches to its solid style
const ScrollThreshold = 50

// NavLink is an entry in the site navigation
type NavLink struct {
	Name    string
	Section string
}

// NavLinks are the site sections in display order
var NavLinks = []NavLink{
	{Name: "Home", Section: "home"},
	{Name: "About", Section: "about"},
	{Name: "Products", Section: "products"},
	{Name: "Technology", Section: "technology"},
	{Name: "Applications", Section: "applications"},
	{Name: "Contact", Section: "contact"},
}

// Navbar is the navigation bar state
type Navbar struct {
	Scrolled bool
	MenuOpen bool
}

// OnScroll updates the scrolled flag for offset y
func (n *Navbar) OnScroll(y float64) {
	n.Scrolled = y > ScrollThreshold
}

// ToggleMenu opens or closes the mobile menu
func (n *Navbar) ToggleMenu() {
	n.MenuOpen = !n.MenuOpen
}

// Activate follows a navigation link: the mobile menu closes and app returns
// to the list view scrolled to the link's section
func (n *Navbar) Activate(link NavLink, app *App) {
	n.MenuOpen = false
	app.NavigateHome(link.Section)
}
