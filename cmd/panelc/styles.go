package main

import "github.com/charmbracelet/lipgloss"

// Terminal styling for panelc's diagnostic output, matching
// adest-aes-scripts's lipgloss-styled bubbletea models: bold
// semantic colors rather than raw ANSI codes.
var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
)
