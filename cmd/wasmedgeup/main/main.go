package main

import (
	"fmt"
	"os"

	"github.com/Arshdeep54/wasmedgeup/cmd/wasmedgeup"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

func main() {
	rootCmd := wasmedgeup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
