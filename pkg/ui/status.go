package ui

import (
	"github.com/pterm/pterm"
)

// Status of a rendered template
type Status string

const (
	StatusWritten Status = "written"
	StatusPlanned Status = "would write"
	StatusFailed  Status = "failed"
)

// statusWidth fits the longest status label
const statusWidth = 11

// StatusStyle returns the pterm style for a status badge
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusWritten:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusPlanned:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
