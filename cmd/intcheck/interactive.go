package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/int-runtime/oracle"
	"github.com/wippyai/int-runtime/wide"
	"github.com/wippyai/int-runtime/word"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type opKind int

const (
	opS64 opKind = iota
	opU64
	opS128
	opU128
)

type opInfo struct {
	name string
	desc string
	kind opKind
}

var ops = []opInfo{
	{"divmod.s64", "signed 64-bit quotient and remainder", opS64},
	{"divmod.u64", "unsigned 64-bit quotient and remainder", opU64},
	{"divmod.s128", "signed 128-bit quotient and remainder", opS128},
	{"divmod.u128", "unsigned 128-bit quotient and remainder", opU128},
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err       error
	orc       *oracle.Oracle
	result    string
	refResult string
	inputs    []textinput.Model
	selected  int
	focusIdx  int
	state     modelState
}

type oracleMsg struct {
	err error
	orc *oracle.Oracle
}

type evalMsg struct {
	err       error
	result    string
	refResult string
}

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{state: stateSelectOp}
}

func (m *interactiveModel) Init() tea.Cmd {
	return func() tea.Msg {
		orc, err := oracle.New(context.Background())
		return oracleMsg{orc: orc, err: err}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateInputArgs && msg.String() == "q" {
				break // let "q" through to the inputs
			}
			if m.orc != nil {
				m.orc.Close(context.Background())
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.evaluate

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.refResult = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.refResult = ""
				m.err = nil
			}
		}

	case oracleMsg:
		// A missing oracle only disables the reference column.
		if msg.err == nil {
			m.orc = msg.orc
		}

	case evalMsg:
		m.result = msg.result
		m.refResult = msg.refResult
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	m.inputs = make([]textinput.Model, 2)
	for i, name := range []string{"dividend", "divisor"} {
		ti := textinput.New()
		ti.Placeholder = "decimal or 0x hex"
		ti.Prompt = name + ": "
		ti.Width = 44
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) evaluate() tea.Msg {
	op := ops[m.selected]
	a, b := m.inputs[0].Value(), m.inputs[1].Value()

	switch op.kind {
	case opS64:
		av, err := strconv.ParseInt(a, 0, 64)
		if err != nil {
			return evalMsg{err: fmt.Errorf("dividend: %w", err)}
		}
		bv, err := strconv.ParseInt(b, 0, 64)
		if err != nil {
			return evalMsg{err: fmt.Errorf("divisor: %w", err)}
		}
		if bv == 0 {
			return evalMsg{err: fmt.Errorf("divisor is zero")}
		}
		q, r := word.DivMod(av, bv)
		msg := evalMsg{result: fmt.Sprintf("q = %d, r = %d", q, r)}
		if m.orc != nil {
			msg.refResult = m.reference64s(av, bv)
		}
		return msg

	case opU64:
		nv, err := strconv.ParseUint(a, 0, 64)
		if err != nil {
			return evalMsg{err: fmt.Errorf("dividend: %w", err)}
		}
		dv, err := strconv.ParseUint(b, 0, 64)
		if err != nil {
			return evalMsg{err: fmt.Errorf("divisor: %w", err)}
		}
		if dv == 0 {
			return evalMsg{err: fmt.Errorf("divisor is zero")}
		}
		q, r := word.UdivMod(nv, dv)
		msg := evalMsg{result: fmt.Sprintf("q = %d, r = %d", q, r)}
		if m.orc != nil {
			msg.refResult = m.reference64u(nv, dv)
		}
		return msg

	case opS128:
		av, err := wide.ParseInt128(a)
		if err != nil {
			return evalMsg{err: fmt.Errorf("dividend: %w", err)}
		}
		bv, err := wide.ParseInt128(b)
		if err != nil {
			return evalMsg{err: fmt.Errorf("divisor: %w", err)}
		}
		if bv.IsZero() {
			return evalMsg{err: fmt.Errorf("divisor is zero")}
		}
		q, r := av.DivMod(bv)
		return evalMsg{result: fmt.Sprintf("q = %s (%s)\nr = %s (%s)", q, q.Hex(), r, r.Hex())}

	case opU128:
		nv, err := wide.ParseUint128(a)
		if err != nil {
			return evalMsg{err: fmt.Errorf("dividend: %w", err)}
		}
		dv, err := wide.ParseUint128(b)
		if err != nil {
			return evalMsg{err: fmt.Errorf("divisor: %w", err)}
		}
		if dv.IsZero() {
			return evalMsg{err: fmt.Errorf("divisor is zero")}
		}
		q, r := nv.DivMod(dv)
		return evalMsg{result: fmt.Sprintf("q = %s (%s)\nr = %s (%s)", q, q.Hex(), r, r.Hex())}
	}

	return evalMsg{err: fmt.Errorf("unknown operation")}
}

func (m *interactiveModel) reference64s(a, b int64) string {
	ctx := context.Background()
	q, err := m.orc.DivS(ctx, a, b)
	if err != nil {
		return "reference: " + err.Error()
	}
	r, err := m.orc.RemS(ctx, a, b)
	if err != nil {
		return "reference: " + err.Error()
	}
	return fmt.Sprintf("reference: q = %d, r = %d", q, r)
}

func (m *interactiveModel) reference64u(n, d uint64) string {
	ctx := context.Background()
	q, err := m.orc.DivU(ctx, n, d)
	if err != nil {
		return "reference: " + err.Error()
	}
	r, err := m.orc.RemU(ctx, n, d)
	if err != nil {
		return "reference: " + err.Error()
	}
	return fmt.Sprintf("reference: q = %d, r = %d", q, r)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("int-runtime"))
	b.WriteString(" division primitives\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range ops {
			line := opStyle.Render(op.name) + "  " + op.desc
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + op.name + "  " + op.desc))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputArgs:
		b.WriteString(fmt.Sprintf("Operands for %s\n\n", opStyle.Render(ops[m.selected].name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter compute • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(ops[m.selected].name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
			if m.refResult != "" {
				b.WriteString("\n")
				b.WriteString(helpStyle.Render(m.refResult))
			}
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
