package main

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"onqsim/vm"
)

// focus tracks which of the two panels this TUI needs has input focus:
// the demo picker or the run-output viewer.
type focus int

const (
	focusMenu focus = iota
	focusOutput
)

// runOutcome is the result of assembling and running one demo program.
type runOutcome struct {
	demoName     string
	instructions int
	registers    map[string]uint64
	err          error
}

// Model is the onqsim TUI's bubbletea state.
type Model struct {
	cursor int
	focus  focus
	width  int
	height int

	lastRun *runOutcome
	logger  zerolog.Logger
}

func initialModel(logger zerolog.Logger) Model {
	return Model{focus: focusMenu, logger: logger}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusMenu:
			switch key {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(demos)-1 {
					m.cursor++
				}
			case "enter", " ":
				outcome := m.runDemo(demos[m.cursor])
				m.lastRun = &outcome
				m.focus = focusOutput
			}

		case focusOutput:
			switch key {
			case "q":
				return m, tea.Quit
			case "esc", "backspace", "enter":
				m.focus = focusMenu
			}
		}
	}
	return m, nil
}

// runDemo assembles and runs a single demo program, capturing its final
// classical registers (or the error it raised) without unwinding the TUI.
func (m Model) runDemo(d demo) runOutcome {
	out := runOutcome{demoName: d.Name}

	program, err := vm.Assemble(d.Source)
	if err != nil {
		out.err = err
		return out
	}
	out.instructions = program.Len()

	machine := vm.New(vm.WithLogger(m.logger))
	if err := machine.Run(program); err != nil {
		out.err = err
		return out
	}
	out.registers = machine.GetClassicalMemory()
	return out
}

// sortedRegisterNames returns a run's register names in a stable order for
// display.
func sortedRegisterNames(registers map[string]uint64) []string {
	names := make([]string, 0, len(registers))
	for name := range registers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
