// SPDX-License-Identifier: MIT
package components

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/harishsolar/solarsite/internal/view"
)

// revealScript marks .reveal elements visible the first time they enter the viewport
const revealScript = `(function(){
  var els = document.querySelectorAll(".reveal");
  if (!("IntersectionObserver" in window)) {
    els.forEach(function(el) { el.classList.add("is-visible"); });
    return;
  }
  var io = new IntersectionObserver(function(entries) {
    entries.forEach(function(entry) {
      if (entry.isIntersecting) {
        entry.target.classList.add("is-visible");
        io.unobserve(entry.target);
      }
    });
  }, { threshold: 0.1 });
  els.forEach(function(el) { io.observe(el); });
})();`

// navbarScript toggles the navbar's scrolled style past threshold and drives
// the mobile menu
func navbarScript(threshold int) string {
	return fmt.Sprintf(`(function(){
  var nav = document.getElementById("navbar");
  if (!nav) return;
  var threshold = %d;
  function onScroll() {
    nav.setAttribute("data-scrolled", window.scrollY > threshold ? "true" : "false");
  }
  window.addEventListener("scroll", onScroll, { passive: true });
  onScroll();
  var toggle = nav.querySelector(".nav-toggle");
  function setOpen(open) {
    nav.setAttribute("data-open", open ? "true" : "false");
    if (toggle) toggle.setAttribute("aria-expanded", open ? "true" : "false");
  }
  if (toggle) toggle.addEventListener("click", function(e) {
    e.preventDefault();
    setOpen(nav.getAttribute("data-open") !== "true");
  });
  nav.querySelectorAll("a:not(.nav-toggle)").forEach(function(a) {
    a.addEventListener("click", function() { setOpen(false); });
  });
})();`, threshold)
}

// deepLinkScript applies history navigations onto "#product-<id>" fragments.
// links holds the page each known deep link shows; anything else carrying
// the prefix goes to unknown.
func deepLinkScript(links map[string]string, unknown string) string {
	table, _ := json.Marshal(links)
	return fmt.Sprintf(`(function(){
  var prefix = %s, links = %s, unknown = %s;
  function follow() {
    var h = window.location.hash;
    if (h.indexOf(prefix) !== 0) return;
    var target = Object.prototype.hasOwnProperty.call(links, h) ? links[h] : unknown;
    if (target === window.location.pathname) {
      history.replaceState(null, "", target);
      return;
    }
    window.location.replace(target);
  }
  window.addEventListener("hashchange", follow);
  window.addEventListener("popstate", follow);
  follow();
})();`, strconv.Quote(view.ProductHashPrefix), table, strconv.Quote(unknown))
}

// keepScrollScript carries the scroll offset through links marked
// data-keep-scroll so the next page opens where this one was
const keepScrollScript = `(function(){
  document.querySelectorAll("a[data-keep-scroll]").forEach(function(a) {
    a.addEventListener("click", function() {
      var url = new URL(a.href, window.location.href);
      url.searchParams.set("y", String(Math.round(window.scrollY)));
      a.href = url.toString();
    });
  });
})();`

// scrollToScript scrolls smoothly to a section once the page has rendered
func scrollToScript(section string) string {
	return fmt.Sprintf(`(function(){
  function go() {
    var el = document.getElementById(%s);
    if (el) el.scrollIntoView({ behavior: "smooth" });
  }
  if (document.readyState === "loading") document.addEventListener("DOMContentLoaded", go);
  else go();
})();`, strconv.Quote(section))
}

// scrollRestoreScript opens a product page at offset y, the top by default
func scrollRestoreScript(y float64) string {
	return fmt.Sprintf(`if (!window.location.hash) window.scrollTo(0, %s);`, strconv.FormatFloat(y, 'f', 0, 64))
}
