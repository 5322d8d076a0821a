package tui

import (
	"strings"
	"time"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/pkg/motion"
)

// renderCard draws a presentational card at the given outer width.
// minHeight, when positive, stretches the card to at least that many
// rows including its border.
func renderCard(card *page.Card, width, minHeight int, focused bool, elapsed time.Duration) string {
	inner := maxInt(width-4, 1)

	var lines []string
	lines = append(lines, cardHeading(card, focused, elapsed))
	lines = append(lines, cardRuleStyle.Render(rule(inner)))

	for i, b := range card.Blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, renderBlock(b, inner, elapsed))
	}

	style := cardStyle
	if focused {
		style = cardFocusedStyle
	}
	style = style.Width(width - 2)
	if minHeight > 2 {
		style = style.Height(minHeight - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// cardHeading renders the icon slot and the title. A nil icon omits
// the slot entirely.
func cardHeading(card *page.Card, focused bool, elapsed time.Duration) string {
	title := glitchTitle(strings.ToUpper(card.Title), focused, elapsed)
	if card.Icon == nil {
		return title
	}
	return cardTitleStyle.Render(card.Icon.Symbol()) + " " + title
}

// glitchTitle renders a card title. On the focused card, offset copies
// of the title bleed out on either side in the secondary and primary
// colours while the pulse is bright.
func glitchTitle(title string, focused bool, elapsed time.Duration) string {
	base := cardTitleStyle.Render(title)
	runes := []rune(title)
	if !focused || len(runes) == 0 || !motion.PulseBright(elapsed) {
		return base
	}
	left := glitchSecondaryStyle.Render(string(runes[0]))
	right := glitchPrimaryStyle.Render(string(runes[len(runes)-1]))
	return left + base + right
}

// renderBanner draws the warning strip.
func renderBanner(b *page.Banner, width int) string {
	inner := maxInt(width-4, 1)

	heading := bannerTitleStyle.Render(strings.ToUpper(b.Title))
	if b.Icon != nil {
		heading = bannerTitleStyle.Render(b.Icon.Symbol()) + " " + heading
	}

	lines := []string{heading}
	for _, l := range wrapText(b.Text, inner) {
		lines = append(lines, bannerTextStyle.Render(l))
	}

	return bannerStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}
