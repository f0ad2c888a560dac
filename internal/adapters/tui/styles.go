package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/curve/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	axisStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	focusedPromptStyle = lipgloss.NewStyle().
				Foreground(style.Iris).
				Bold(true)

	blurredPromptStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Red).
			Padding(0, 1)
)
