// Command onqsim is an interactive picker over the built-in ONQ-VM demo
// programs (vm/asm.go's textual assembly), running each through vm.Vm and
// reporting its final classical registers or the error it raised. The TUI
// is a simple menu-and-output layout built with bubbletea.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func main() {
	logFile, err := os.OpenFile("onqsim.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "onqsim: could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := zerolog.New(logFile).With().Timestamp().Logger()

	program := tea.NewProgram(initialModel(logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "onqsim: %v\n", err)
		os.Exit(1)
	}
}
