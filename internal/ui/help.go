package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"selectgrip/internal/ui/input/modes"
)

// renderHelpContent renders the full help page shown in the pager
func renderHelpContent(title string, keys modes.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	section := func(name string, bindings ...key.Binding) {
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	help.WriteString(titleStyle.Render(title + " help"))
	help.WriteString("\n")

	section("While focused", keys.Toggle, keys.Up, keys.Down, keys.Close, keys.Focus)
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("a-z, 0-9"), descStyle.Render("Jump to the first option starting with what you type")))

	section("While not focused", keys.Focus, keys.Submit, keys.Quit)

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("value"), descStyle.Render("Open/close the list")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("option"), descStyle.Render("Choose it and close the list")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("elsewhere"), descStyle.Render("Leave the widget")))

	section("Other", keys.Help, keys.ForceQuit)

	return help.String()
}

// pagerCommand shows content in the ov pager. It satisfies tea.ExecCommand
// so bubbletea releases and restores the terminal around it.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Don't write the page back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov drives the terminal itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// showHelpInPager returns a command that shows help using the ov pager
func showHelpInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
