package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"evmdis/internal/analysis"
	"evmdis/internal/disasm"
	"evmdis/internal/evmdis/styles"
	"evmdis/internal/opcodes"
)

type viewMode int

const (
	viewListing viewMode = iota
	viewSummary
	viewDetails
	viewConstants
	numViews
)

type instItem struct {
	inst       disasm.Inst
	filterTerm string // Pre-computed filter value
}

func (i instItem) Title() string       { return i.inst.String() }
func (i instItem) Description() string { return "" }
func (i instItem) FilterValue() string { return i.filterTerm }

// controlFlow lists mnemonics that end or redirect execution.
var controlFlow = map[string]bool{
	"STOP": true, "JUMP": true, "JUMPI": true, "JUMPDEST": true, "RETURN": true,
	"REVERT": true, "INVALID": true, "SUICIDE": true,
}

// Custom item delegate for the instruction list
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(instItem)
	if !ok {
		return
	}

	indicator := " "
	offsetStyle := styles.OffsetStyle
	if index == m.Index() {
		indicator = ">"
		offsetStyle = styles.SelectedStyle
	}

	mnemonicStyle := styles.MnemonicStyle
	switch {
	case i.inst.Internal:
		mnemonicStyle = styles.InternalStyle
	case controlFlow[i.inst.Mnemonic]:
		mnemonicStyle = styles.ControlStyle
	}

	str := fmt.Sprintf(" %s  %s  %s",
		indicator,
		offsetStyle.Render(fmt.Sprintf("0x%04x", i.inst.Offset)),
		mnemonicStyle.Render(fmt.Sprintf("%-10s", i.inst.Mnemonic)))
	if i.inst.HasArg() {
		str += " " + styles.ImmStyle.Render("0x"+i.inst.ArgHex)
	}

	fmt.Fprint(w, str)
}

type model struct {
	listing  list.Model
	summary  viewport.Model
	details  viewport.Model
	consts   viewport.Model
	mode     viewMode
	stream   disasm.Stream
	overview analysis.Summary
	wrap     int
	width    int
	height   int
}

func newModel(stream disasm.Stream, s analysis.Summary, wrap int) model {
	items := make([]list.Item, 0, len(stream))
	for _, inst := range stream {
		items = append(items, instItem{
			inst:       inst,
			filterTerm: fmt.Sprintf("%04x %s %s", inst.Offset, inst.Mnemonic, inst.ArgHex),
		})
	}

	listing := list.New(items, itemDelegate{}, 80, 24)
	listing.SetShowStatusBar(false)
	listing.SetFilteringEnabled(true)
	listing.Title = fmt.Sprintf("Instructions (%d total)", len(stream))
	listing.Styles.Title = styles.HeaderStyle.MarginLeft(2)
	listing.SetShowHelp(true)

	sum := viewport.New()
	sum.SetWidth(80)
	sum.SetHeight(24)

	det := viewport.New()
	det.SetWidth(80)
	det.SetHeight(24)

	cst := viewport.New()
	cst.SetWidth(80)
	cst.SetHeight(24)
	cst.SetContent(constantsTable(analysis.PushConstants(stream)))

	m := model{
		listing:  listing,
		summary:  sum,
		details:  det,
		consts:   cst,
		mode:     viewListing,
		stream:   stream,
		overview: s,
		wrap:     wrap,
		width:    80,
		height:   24,
	}
	m.updateSummary()
	if len(stream) > 0 {
		m.details.SetContent(instDetails(stream[0]))
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width != m.width || msg.Height != m.height {
			m.width = msg.Width
			m.height = msg.Height
			m.listing.SetWidth(msg.Width)
			m.listing.SetHeight(msg.Height - 2)
			m.summary.SetWidth(msg.Width)
			m.summary.SetHeight(msg.Height - 2)
			m.details.SetWidth(msg.Width)
			m.details.SetHeight(msg.Height - 2)
			m.consts.SetWidth(msg.Width)
			m.consts.SetHeight(msg.Height - 2)
			m.updateSummary()
		}

	case tea.KeyMsg:
		// While filtering, the list owns every key except quit.
		if m.mode == viewListing && m.listing.FilterState() == list.Filtering {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "l":
			m.mode = viewListing
			return m, nil
		case "s":
			m.mode = viewSummary
			return m, nil
		case "c":
			m.mode = viewConstants
			return m, nil
		case "enter":
			if m.mode == viewListing {
				if item, ok := m.listing.SelectedItem().(instItem); ok {
					m.details.SetContent(instDetails(item.inst))
					m.details.GotoTop()
					m.mode = viewDetails
				}
			}
			return m, nil
		case "esc":
			if m.mode == viewDetails {
				m.mode = viewListing
				return m, nil
			}
		case "tab":
			m.mode = (m.mode + 1) % numViews
			return m, nil
		case "shift+tab":
			m.mode = (m.mode + numViews - 1) % numViews
			return m, nil
		}
	}

	switch m.mode {
	case viewSummary:
		m.summary, cmd = m.summary.Update(msg)
	case viewDetails:
		m.details, cmd = m.details.Update(msg)
	case viewConstants:
		m.consts, cmd = m.consts.Update(msg)
	default:
		m.listing, cmd = m.listing.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	var content, menu string
	switch m.mode {
	case viewSummary:
		content = m.summary.View()
		menu = " L: listing • C: constants • Tab: cycle • Q: quit "
	case viewConstants:
		content = m.consts.View()
		menu = " L: listing • S: summary • Tab: cycle • Q: quit "
	case viewDetails:
		content = m.details.View()
		menu = " Esc: back • L: listing • S: summary • Q: quit "
	default:
		content = m.listing.View()
		menu = " Enter: details • /: filter • S: summary • C: constants • Q: quit "
	}

	return content + "\n" + styles.MenuStyle.Width(m.width).Render(menu)
}

func (m *model) updateSummary() {
	width := m.wrap
	if width <= 0 || width > m.width {
		width = m.width
	}
	rendered := styles.RenderMarkdown(m.overview.Markdown(), width-2)
	m.summary.SetContent(strings.TrimSuffix(rendered, "\n"))
}

// instDetails describes one instruction for the details pane.
func instDetails(inst disasm.Inst) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)

	var b strings.Builder
	row := func(k, v string) {
		fmt.Fprintf(&b, "%s%s\n", label.Render(k), v)
	}

	row("offset", fmt.Sprintf("0x%04x (%d)", inst.Offset, inst.Offset))
	row("opcode", fmt.Sprintf("0x%02x", inst.Op))
	row("mnemonic", inst.Mnemonic)
	if op, ok := opcodes.Lookup(inst.Op); ok {
		row("stack", fmt.Sprintf("%d in, %d out", op.StackIn, op.StackOut))
	}
	if inst.Internal {
		row("note", "interpreter-internal opcode")
	}
	if inst.HasArg() {
		row("immediate", "0x"+inst.ArgHex)
		if v := inst.Value(); v != nil {
			row("decimal", v.Dec())
		}
		if inst.Truncated() {
			row("truncated", fmt.Sprintf("%d of %d bytes", len(inst.ArgHex)/2, inst.Immediate))
		}
	}
	return b.String()
}

func constantsTable(consts []analysis.Constant) string {
	if len(consts) == 0 {
		return styles.HeaderStyle.Render("No PUSH constants")
	}

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("PUSH constants (%d)", len(consts))))
	b.WriteString("\n\n")
	for _, c := range consts {
		fmt.Fprintf(&b, "%s  %-7s %s  %s\n",
			styles.OffsetStyle.Render(fmt.Sprintf("0x%04x", c.Offset)),
			c.Mnemonic,
			styles.ImmStyle.Render(c.Hex),
			c.Decimal())
	}
	return b.String()
}
