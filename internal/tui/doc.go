// Package tui implements the Zenith-Nexus terminal dashboard.
//
// It renders the page tree from package page with Charmbracelet's
// BubbleTea, Lipgloss and Bubbles libraries.
//
// Component architecture:
//
//	model.go    — root model, tick clock, Init/Update/View
//	layout.go   — static Render, three-column and stacked layouts
//	theme.go    — centralized color + style definitions
//	header.go   — title chrome and status footer
//	card.go     — presentational card, glitch title, banner
//	blocks.go   — card content: fields, gauges, log, bullets
//	diagram.go  — structural diagram rasteriser
//	hexnode.go  — hexagonal label node
//	canvas.go   — styled cell grid used by the diagram
//	helpers.go  — wrapping, truncation, etc.
package tui
