package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ScreenState contains everything drawn around the widget
type ScreenState struct {
	Title         string
	Surface       *Surface
	Focused       bool
	SearchBuffer  string
	Status        string
	StatusIsError bool
	HelpLine      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Header renders the title block drawn above the widget
func (r *Renderer) Header(title string) string {
	return r.styles.Title.Render(title)
}

// WidgetTop is the screen line of the widget's label area
func (r *Renderer) WidgetTop(title string) int {
	return lipgloss.Height(r.Header(title))
}

// WidgetLeft is the screen column the widget starts at
func (r *Renderer) WidgetLeft() int {
	return r.styles.Main.GetPaddingLeft()
}

// Render produces the complete view. The main style adds no vertical
// padding, so the widget starts right below the header.
func (r *Renderer) Render(state ScreenState) string {
	content := &strings.Builder{}

	content.WriteString(r.Header(state.Title))
	content.WriteString("\n")
	content.WriteString(state.Surface.Render(r.styles, state.Focused))
	content.WriteString("\n\n")

	switch {
	case state.Status != "" && state.StatusIsError:
		content.WriteString(r.styles.StatusError.Render(state.Status))
	case state.SearchBuffer != "":
		content.WriteString(r.styles.Search.Render(fmt.Sprintf("search: %s", state.SearchBuffer)))
	case state.Status != "":
		content.WriteString(r.styles.Status.Render(state.Status))
	}
	content.WriteString("\n")

	if state.HelpLine != "" {
		content.WriteString(r.styles.Help.Render(state.HelpLine))
	}

	return r.styles.Main.Render(content.String())
}
