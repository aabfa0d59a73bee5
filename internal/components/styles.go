// SPDX-License-Identifier: MIT
package components

// SiteCSS lays out the site. Colors come from the theme's custom properties.
const SiteCSS = `
* { box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  margin: 0;
  font-family: "Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  line-height: 1.5;
  overflow-x: hidden;
}

img { max-width: 100%; }

.container {
  max-width: 1280px;
  margin: 0 auto;
  padding: 0 24px;
}

.accent { color: var(--color-primary); }

.eyebrow {
  font-size: 10px;
  font-weight: 900;
  text-transform: uppercase;
  letter-spacing: 0.2em;
  color: var(--color-text-muted);
}

.icon { display: inline-block; width: 1em; height: 1em; }

/* Reveal on view */
.reveal {
  opacity: 0;
  transform: translateY(20px);
  transition: opacity 0.6s ease, transform 0.6s ease;
}
.reveal.is-visible { opacity: 1; transform: none; }
.reveal.delay-1 { transition-delay: 0.1s; }
.reveal.delay-2 { transition-delay: 0.2s; }
.reveal.delay-3 { transition-delay: 0.3s; }
.reveal.delay-4 { transition-delay: 0.4s; }
.underline-bar.reveal { transform: scaleX(0); transition-duration: 0.8s; transition-delay: 0.4s; }
.underline-bar.reveal.is-visible { transform: scaleX(1); }

@media (prefers-reduced-motion: reduce) {
  .reveal, .underline-bar.reveal { opacity: 1; transform: none; transition: none; }
  html { scroll-behavior: auto; }
}

/* Navbar */
#navbar {
  position: fixed;
  top: 0; left: 0; right: 0;
  z-index: 50;
  padding: 16px 0;
  transition: background-color 0.3s, padding 0.3s, box-shadow 0.3s;
}
#navbar[data-scrolled="true"] {
  background: var(--color-nav-scrolled);
  backdrop-filter: blur(12px);
  -webkit-backdrop-filter: blur(12px);
  border-bottom: 1px solid var(--color-border);
  padding: 8px 0;
  box-shadow: 0 20px 40px rgba(0, 0, 0, 0.25);
}
.nav-inner { display: flex; justify-content: space-between; align-items: center; }
.nav-links { display: none; align-items: center; gap: 40px; }
.nav-links a {
  font-size: 10px;
  font-weight: 900;
  text-transform: uppercase;
  letter-spacing: 0.2em;
  color: var(--color-text-muted);
  transition: color 0.2s;
}
.nav-links a:hover { color: var(--color-primary); }
.nav-links a.nav-cta {
  padding: 12px 32px;
  border-radius: 999px;
  background: var(--color-primary);
  color: var(--color-primary-contrast);
}
.nav-toggle {
  display: inline-flex;
  background: var(--color-surface);
  color: var(--color-text);
  border: 1px solid var(--color-border);
  border-radius: 16px;
  padding: 12px;
  font-size: 24px;
  line-height: 0;
  cursor: pointer;
}
.nav-toggle .icon-close { display: none; }
#navbar[data-open="true"] .nav-toggle .icon-open { display: none; }
#navbar[data-open="true"] .nav-toggle .icon-close { display: inline-block; }
.nav-menu { display: none; padding: 32px 24px; flex-direction: column; gap: 24px; }
#navbar[data-open="true"] .nav-menu {
  display: flex;
  background: var(--color-nav-scrolled);
  backdrop-filter: blur(12px);
}
.nav-menu a {
  font-size: 20px;
  font-weight: 900;
  text-transform: uppercase;
  letter-spacing: 0.1em;
  color: var(--color-text-muted);
}
@media (min-width: 768px) {
  .nav-links { display: flex; }
  .nav-toggle, #navbar[data-open="true"] .nav-menu { display: none; }
}

/* Logo */
.logo { display: inline-flex; align-items: center; }
.logo-img { height: 56px; width: auto; object-fit: contain; }
.logo-mark { display: none; align-items: center; gap: 8px; }
.logo.logo-failed .logo-img { display: none; }
.logo.logo-failed .logo-mark { display: inline-flex; }
.logo-badge {
  background: var(--color-primary);
  color: var(--color-primary-contrast);
  font-weight: 900;
  font-size: 20px;
  padding: 6px 10px;
  border-radius: 12px;
}
.logo-text { font-size: 24px; font-weight: 900; letter-spacing: -0.05em; }
@media (min-width: 768px) { .logo-img { height: 80px; } }

/* Sections */
.section { padding: 96px 0; overflow: hidden; scroll-margin-top: 80px; background: var(--color-bg); }
.section-alt { background: var(--color-bg-alt); }
.section-head { text-align: center; margin-bottom: 64px; }
.section-head h2 { font-size: clamp(1.9rem, 4vw, 3rem); font-weight: 700; letter-spacing: -0.02em; margin: 0 0 16px; }
.section-head p { font-size: 1.15rem; max-width: 640px; margin: 0 auto; }
.underline-bar { height: 4px; width: 80px; margin: 24px auto 0; border-radius: 999px; background: var(--color-primary); }

.grid { display: grid; grid-template-columns: 1fr; gap: 32px; }
@media (min-width: 768px) { .grid-2, .grid-3 { grid-template-columns: repeat(2, 1fr); } }
@media (min-width: 1024px) { .grid-3 { grid-template-columns: repeat(3, 1fr); } .grid-lg-2 { grid-template-columns: repeat(2, 1fr); } }

/* Hero */
.hero { position: relative; min-height: 95vh; display: flex; align-items: center; padding: 160px 0 96px; overflow: hidden; scroll-margin-top: 80px; }
.hero-glow { position: absolute; border-radius: 50%; filter: blur(120px); pointer-events: none; }
.hero-glow.one { top: -300px; right: -300px; width: 600px; height: 600px; background: color-mix(in srgb, var(--color-primary) 12%, transparent); }
.hero-glow.two { bottom: -250px; left: -250px; width: 500px; height: 500px; background: color-mix(in srgb, var(--color-secondary) 12%, transparent); }
.hero-grid { display: grid; grid-template-columns: 1fr; gap: 64px; align-items: center; position: relative; z-index: 1; }
@media (min-width: 1024px) { .hero-grid { grid-template-columns: 1fr 1fr; } }
.pill {
  display: inline-flex; align-items: center; gap: 8px;
  padding: 8px 16px; border-radius: 999px; margin-bottom: 32px;
  border: 1px solid color-mix(in srgb, var(--color-primary) 40%, transparent);
  background: color-mix(in srgb, var(--color-primary) 12%, transparent);
  font-size: 12px; font-weight: 700; text-transform: uppercase; letter-spacing: 0.15em;
}
.pulse-dot { width: 8px; height: 8px; border-radius: 50%; background: var(--color-primary); animation: pulse 2s infinite; }
@keyframes pulse { 50% { opacity: 0.4; } }
.hero h1 { font-size: clamp(3rem, 8vw, 6rem); font-weight: 900; line-height: 1.1; letter-spacing: -0.03em; margin: 0 0 32px; }
.gradient-text {
  background: linear-gradient(90deg, var(--color-primary), var(--color-secondary));
  -webkit-background-clip: text; background-clip: text; color: transparent;
}
.hero-lead { font-size: clamp(1.1rem, 2vw, 1.5rem); max-width: 36rem; margin: 0 0 48px; }
.hero-actions { display: flex; flex-wrap: wrap; gap: 20px; }
.hero-media { display: flex; justify-content: center; }
.hero-frame {
  position: relative; width: 100%; max-width: 28rem; aspect-ratio: 1;
  padding: 48px; border-radius: 4rem;
  display: flex; align-items: center; justify-content: center;
  animation: float 6s ease-in-out infinite;
}
.hero-frame img { width: 100%; height: 100%; object-fit: contain; }
.hero-badge {
  position: absolute; right: -32px; bottom: -32px;
  padding: 24px; border-radius: 2.5rem;
  background: #0f172a; color: #fff;
}
.hero-badge strong { display: block; font-size: 1.9rem; font-weight: 900; color: var(--color-primary); }
@keyframes float { 50% { transform: translateY(-20px); } }

/* About */
.stats { display: grid; grid-template-columns: repeat(2, 1fr); gap: 24px; margin-top: 48px; }
@media (min-width: 768px) { .stats { grid-template-columns: repeat(4, 1fr); } }
.stat { padding: 32px; text-align: center; border-radius: 2rem; }
.stat strong { display: block; font-size: 2.4rem; font-weight: 900; color: var(--color-primary); }
.about-copy { max-width: 760px; margin: 0 auto; text-align: center; font-size: 1.15rem; }

/* Product card */
.card-link { display: block; height: 100%; }
.product-card {
  position: relative; height: 100%;
  display: flex; flex-direction: column;
  padding: 32px; border-radius: 2.5rem;
  cursor: pointer; overflow: hidden;
  transition: border-color 0.3s, box-shadow 0.3s;
}
.product-card:hover { border-color: color-mix(in srgb, var(--color-primary) 40%, transparent); box-shadow: 0 20px 40px rgba(0, 0, 0, 0.2); }
.card-media { position: relative; aspect-ratio: 1; margin-bottom: 32px; display: flex; align-items: center; justify-content: center; }
.card-media img {
  position: absolute; inset: 0; width: 100%; height: 100%;
  object-fit: contain; transition: opacity 0.5s ease, transform 0.5s ease;
}
.card-media .img-back { opacity: 0; }
.product-card:hover .card-media.has-back .img-front,
.product-card:focus-within .card-media.has-back .img-front { opacity: 0; }
.product-card:hover .card-media.has-back .img-back,
.product-card:focus-within .card-media.has-back .img-back { opacity: 1; }
.product-card:hover .card-media img { transform: scale(1.05); }
.card-title { display: flex; justify-content: space-between; align-items: flex-start; gap: 16px; }
.card-title h3 { font-size: 1.5rem; font-weight: 700; line-height: 1.2; margin: 0; transition: color 0.2s; }
.product-card:hover .card-title h3 { color: var(--color-primary); }
.card-arrow { padding: 8px; border-radius: 12px; color: var(--color-primary); background: color-mix(in srgb, var(--color-primary) 12%, transparent); }
.spec-list { list-style: none; padding: 0; margin: 16px 0 0; }
.spec-list li { display: flex; align-items: center; gap: 8px; margin-bottom: 8px; font-size: 12px; font-weight: 700; text-transform: uppercase; letter-spacing: 0.08em; color: var(--color-text-muted); }
.spec-list li::before { content: ""; width: 4px; height: 4px; border-radius: 50%; background: var(--color-primary); }
.card-tag {
  position: absolute; top: 24px; left: 24px; z-index: 2;
  display: flex; align-items: center; gap: 6px;
  padding: 4px 12px; border-radius: 999px;
  border: 1px solid var(--color-border);
  background: color-mix(in srgb, var(--color-bg) 60%, transparent);
  backdrop-filter: blur(8px);
}
.card-tag .icon { color: var(--color-success); }

/* Features and applications */
.feature { padding: 40px; border-radius: 2.5rem; transition: border-color 0.3s, transform 0.3s; }
.feature:hover { border-color: var(--color-primary); transform: translateY(-4px); }
.feature-icon {
  width: 64px; height: 64px; margin-bottom: 24px;
  display: flex; align-items: center; justify-content: center;
  border-radius: 16px; font-size: 28px; color: var(--color-primary);
  background: color-mix(in srgb, var(--color-primary) 10%, transparent);
}
.feature h4 { font-size: 1.25rem; font-weight: 700; margin: 0 0 12px; }
.feature p { font-size: 0.9rem; margin: 0; }
.applications { display: grid; grid-template-columns: repeat(2, 1fr); gap: 24px; }
@media (min-width: 1024px) { .applications { grid-template-columns: repeat(5, 1fr); } }
.application { padding: 32px 16px; text-align: center; border-radius: 2rem; }
.application .feature-icon { margin: 0 auto 16px; }
.application h4 { font-size: 0.95rem; margin: 0; }

/* Contact */
.contact-card { padding: 40px; border-radius: 3rem; }
.contact-card h3 { font-size: 1.9rem; font-weight: 900; margin: 0 0 40px; }
.contact-row { display: flex; align-items: center; gap: 24px; margin-bottom: 32px; }
.contact-row .feature-icon { margin: 0; flex-shrink: 0; }
.contact-row a, .contact-row .value { font-size: 1.25rem; font-weight: 700; word-break: break-all; }
.contact-row a:hover { color: var(--color-primary); }
.inquiry-form { display: flex; flex-direction: column; gap: 24px; }
.field { display: flex; flex-direction: column; gap: 8px; }
.field label { margin-left: 16px; }
.field input, .field textarea { padding: 20px 24px; border-radius: 16px; font: inherit; }
.field textarea { resize: none; }
.field-error { margin-left: 16px; font-size: 0.85rem; }
.notice { padding: 16px 24px; border-radius: 16px; font-weight: 700; }
.notice.success { background: color-mix(in srgb, var(--color-success) 15%, transparent); }
.notice.error { background: color-mix(in srgb, var(--color-error) 15%, transparent); }
.btn-block { width: 100%; padding: 24px; border-radius: 2rem; }

/* Footer */
.site-footer { padding: 96px 0; border-top: 1px solid var(--color-border); background: var(--color-bg); }
.footer-inner { display: flex; flex-direction: column; align-items: center; }
.footer-inner .logo { margin-bottom: 48px; opacity: 0.4; filter: grayscale(1); }
.footer-links { display: flex; flex-wrap: wrap; justify-content: center; gap: 48px; margin-bottom: 64px; }
.footer-links a:hover { color: var(--color-primary); }
.copyright { font-size: 9px; font-weight: 900; text-transform: uppercase; letter-spacing: 0.4em; text-align: center; max-width: 32rem; line-height: 2; color: var(--color-text-muted); opacity: 0.6; }

/* Product page */
.product-page { min-height: 100vh; padding: 128px 0 80px; }
.back-link { display: inline-flex; align-items: center; gap: 12px; margin-bottom: 48px; font-size: 12px; font-weight: 900; text-transform: uppercase; letter-spacing: 0.15em; color: var(--color-text-muted); }
.back-link:hover { color: var(--color-primary); }
.back-link .circle { width: 40px; height: 40px; border-radius: 50%; display: flex; align-items: center; justify-content: center; border: 1px solid var(--color-border); }
.detail-grid { display: grid; grid-template-columns: 1fr; gap: 64px; align-items: start; }
@media (min-width: 1024px) { .detail-grid { grid-template-columns: 1fr 1fr; gap: 96px; } }
.detail-media { position: sticky; top: 96px; z-index: 0; }
@media (min-width: 768px) { .detail-media { top: 160px; } }
.detail-frame {
  position: relative; aspect-ratio: 1; padding: 48px; border-radius: 4rem;
  display: flex; align-items: center; justify-content: center; overflow: hidden;
}
.detail-frame img { position: relative; z-index: 1; width: 100%; height: 100%; object-fit: contain; transition: opacity 0.3s; }
.detail-frame .skeleton {
  position: absolute; inset: 48px; border-radius: 3rem; display: none;
  background: linear-gradient(90deg, var(--color-surface), var(--color-border), var(--color-surface));
  background-size: 200% 100%; animation: shimmer 1.2s linear infinite;
}
.detail-frame[data-loading="true"] .skeleton { display: block; }
.detail-frame[data-loading="true"] img { opacity: 0; }
@keyframes shimmer { to { background-position: -200% 0; } }
.face-toggle { display: grid; grid-template-columns: repeat(2, 1fr); gap: 16px; margin-top: 32px; }
.face-toggle .btn { padding: 14px; font-size: 10px; border-radius: 16px; }
.face-toggle .btn[aria-current="true"] { background: var(--color-primary); color: var(--color-primary-contrast); }
.detail-body { position: relative; z-index: 1; display: flex; flex-direction: column; gap: 48px; }
@media (max-width: 1023px) {
  .detail-body { padding-top: 25vh; margin-top: -20vh; }
  .detail-body::before {
    content: ""; position: absolute; inset: 0; z-index: -1; border-radius: 3rem 3rem 0 0; pointer-events: none;
    background: linear-gradient(to top, var(--color-bg) 70%, transparent);
  }
}
.badge-row { display: flex; align-items: center; gap: 12px; margin-bottom: 16px; }
.grade {
  padding: 4px 12px; border-radius: 999px; font-size: 10px; font-weight: 900; text-transform: uppercase;
  background: var(--color-primary); color: var(--color-primary-contrast);
}
.detail-body h1 { font-size: clamp(2.25rem, 5vw, 3.75rem); font-weight: 900; line-height: 1.15; margin: 0 0 24px; }
.detail-body .lead { font-size: 1.25rem; font-weight: 300; margin: 0; }
.highlight { display: flex; align-items: flex-start; gap: 16px; padding: 24px; border-radius: 1.5rem; }
.highlight .feature-icon { width: 48px; height: 48px; margin: 0; font-size: 22px; }
.highlight strong { font-size: 1.1rem; }
.spec-table-wrap { border-radius: 1.5rem; overflow: hidden; }
.spec-table { width: 100%; border-collapse: collapse; text-align: left; }
.spec-table td { padding: 20px 32px; font-size: 0.9rem; border-top: 1px solid var(--color-border); }
.spec-table tr:first-child td { border-top: none; }
.spec-table td:first-child { color: var(--color-text-muted); }
.spec-table td:last-child { font-weight: 700; }
.detail-body h3 { display: flex; align-items: center; gap: 12px; font-size: 1.25rem; margin: 0 0 24px; }
.detail-body h3 .icon { color: var(--color-primary); }
.cta-row { display: flex; flex-wrap: wrap; gap: 16px; }
.cta-row .btn { flex: 1; }
.trust { display: flex; justify-content: space-between; flex-wrap: wrap; gap: 16px; padding: 32px 0; border-top: 1px solid var(--color-border); border-bottom: 1px solid var(--color-border); }
.trust span { display: inline-flex; align-items: center; gap: 8px; }
.trust .icon { color: var(--color-success); }

/* Not found */
.not-found { min-height: 80vh; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; padding: 160px 24px 96px; }
.not-found h1 { font-size: 72px; font-weight: 900; margin: 0; color: var(--color-primary); }
`
