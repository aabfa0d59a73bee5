// SPDX-License-Identifier: MIT
package themes

import "fmt"

// GenerateCSS generates CSS with color variables from colors struct
func GenerateCSS(colors *Colors) string {
	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-primary-contrast: %s;
  --color-secondary: %s;
  --color-bg: %s;
  --color-bg-alt: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
  --color-nav-scrolled: %s;
  --color-success: %s;
  --color-error: %s;
}

/* Base element styles */
body {
  background-color: var(--color-bg);
  color: var(--color-text);
  transition: background-color 0.2s, color 0.2s;
}

::selection {
  background: var(--color-primary);
  color: var(--color-primary-contrast);
}

a {
  color: inherit;
  text-decoration: none;
}

/* Button styles */
.btn {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  gap: 8px;
  background-color: var(--color-primary);
  color: var(--color-primary-contrast);
  border: none;
  padding: 18px 36px;
  border-radius: 16px;
  font-weight: 900;
  text-transform: uppercase;
  letter-spacing: 0.1em;
  font-size: 0.85rem;
  cursor: pointer;
  transition: opacity 0.2s, transform 0.2s;
}

.btn:hover {
  opacity: 0.9;
}

.btn-ghost {
  background-color: var(--color-surface);
  color: var(--color-text);
  border: 1px solid var(--color-border);
}

.btn[disabled], .btn[aria-disabled="true"] {
  opacity: 0.35;
  cursor: not-allowed;
}

/* Card/surface styles */
.surface {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: 40px;
}

/* Input styles */
input, textarea {
  width: 100%%;
  border: 1px solid var(--color-border);
  background-color: var(--color-bg-alt);
  color: var(--color-text);
  padding: 18px 22px;
  border-radius: 16px;
  font: inherit;
}

input:focus, textarea:focus {
  outline: none;
  border-color: var(--color-primary);
}

/* Muted text */
.muted {
  color: var(--color-text-muted);
}

/* Status colors */
.success { color: var(--color-success); }
.error { color: var(--color-error); }
`, colors.Primary, colors.PrimaryContrast, colors.Secondary, colors.Background,
		colors.BackgroundAlt, colors.Surface, colors.Text, colors.TextMuted,
		colors.Border, colors.NavScrolled, colors.Success, colors.Error)
}
