// Package ui provides colourised console output for the server and CLI.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASCII ART BANNER
// ══════════════════════════════════════════════════════════════════════════════

var bannerLines = []string{
	" ██████╗ ██████╗ ██████╗ ███████╗    ██████╗ ███████╗██████╗ ",
	"██╔════╝██╔═══██╗██╔══██╗██╔════╝    ██╔══██╗██╔════╝██╔══██╗",
	"██║     ██║   ██║██║  ██║█████╗█████╗██████╔╝█████╗  ██║  ██║",
	"██║     ██║   ██║██║  ██║██╔══╝╚════╝██╔══██╗██╔══╝  ██║  ██║",
	"╚██████╗╚██████╔╝██████╔╝███████╗    ██║  ██║███████╗██████╔╝",
	" ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝    ╚═╝  ╚═╝╚══════╝╚═════╝ ",
}

// PrintBanner displays the startup banner.
func PrintBanner() {
	fmt.Fprintln(out)

	red := color.New(color.FgRed, color.Bold)
	hiRed := color.New(color.FgHiRed, color.Bold)
	dim := color.New(color.FgHiBlack)

	for i, line := range bannerLines {
		if i%2 == 0 {
			red.Fprintln(out, "  "+line)
		} else {
			hiRed.Fprintln(out, "  "+line)
		}
	}

	dim.Fprintln(out, "  Disaster management assistant · English & Hinglish")
	fmt.Fprintln(out)
}
