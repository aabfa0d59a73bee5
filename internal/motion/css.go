// SPDX-License-Identifier: MIT
package motion

import (
	"fmt"
	"strings"
)

// Filter renders the CSS filter value for p
func (p Params) Filter() string {
	return fmt.Sprintf("blur(%spx) saturate(%s)", num(p.Blur), num(p.Saturation))
}

// Style renders an inline style for p
func (p Params) Style() string {
	return fmt.Sprintf("filter: %s; opacity: %s; transform: scale(%s);", p.Filter(), num(p.Opacity), num(p.Scale))
}

// Keyframes samples the transform into a scroll-driven CSS animation applied
// to elements with the given class. steps is the number of intervals sampled.
func (r Range) Keyframes(class string, steps int) string {
	if steps < 1 {
		steps = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s-dissolve {\n", class)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fmt.Fprintf(&b, "  %s%% { %s }\n", num(t*100), At(t).Style())
	}
	b.WriteString("}\n")

	fmt.Fprintf(&b, `@supports (animation-timeline: scroll()) {
  .%[1]s {
    animation: %[1]s-dissolve linear both;
    animation-timeline: scroll(root block);
    animation-range: %[2]spx %[3]spx;
  }
}
`, class, num(r.Start), num(r.End))

	return b.String()
}

// Script returns a requestAnimationFrame fallback for browsers without
// scroll-driven animations. It re-evaluates the same linear mapping.
func (r Range) Script(class string) string {
	return fmt.Sprintf(`(function(){
  if (window.CSS && CSS.supports && CSS.supports("animation-timeline: scroll()")) return;
  var els = document.querySelectorAll(".%s");
  if (!els.length) return;
  var s = %s, e = %s, from = [%s, %s, %s, %s], to = [%s, %s, %s, %s], pending = false;
  function lerp(a, b, t) { return a + (b - a) * t; }
  function apply() {
    pending = false;
    var y = window.scrollY, t = y <= s ? 0 : (y >= e ? 1 : (y - s) / (e - s));
    var v = from.map(function(f, i) { return lerp(f, to[i], t); });
    els.forEach(function(el) {
      el.style.filter = "blur(" + v[0] + "px) saturate(" + v[3] + ")";
      el.style.opacity = v[1];
      el.style.transform = "scale(" + v[2] + ")";
    });
  }
  window.addEventListener("scroll", function() {
    if (!pending) { pending = true; window.requestAnimationFrame(apply); }
  }, { passive: true });
  apply();
})();`, class, num(r.Start), num(r.End),
		num(From.Blur), num(From.Opacity), num(From.Scale), num(From.Saturation),
		num(To.Blur), num(To.Opacity), num(To.Scale), num(To.Saturation))
}

// num formats a float without trailing zeros
func num(f float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.4f", f), "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
