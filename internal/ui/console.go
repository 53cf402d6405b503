// Package ui provides colourised console output for the server and CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	successBadge = color.New(color.BgGreen, color.FgBlack, color.Bold)
	warningBadge = color.New(color.FgYellow, color.Bold)
	errorBadge   = color.New(color.BgRed, color.FgWhite, color.Bold)
	infoBadge    = color.New(color.FgCyan, color.Bold)

	successText = color.New(color.FgGreen, color.Bold)
	warningText = color.New(color.FgYellow)
	errorText   = color.New(color.FgRed)
	mutedText   = color.New(color.FgHiBlack)
	accentText  = color.New(color.FgMagenta, color.Bold)
	neonBlue    = color.New(color.FgHiCyan, color.Bold)

	methodPOST = color.New(color.BgHiMagenta, color.FgBlack, color.Bold)
	methodGET  = color.New(color.BgHiCyan, color.FgBlack, color.Bold)
)

// out is the console writer; swapped in tests.
var out io.Writer = color.Output

// ══════════════════════════════════════════════════════════════════════════════
// SERVER
// ══════════════════════════════════════════════════════════════════════════════

// PrintStartupInfo prints the listen address, profile and provider chain.
func PrintStartupInfo(addr, profile string, providers []string) {
	infoBadge.Fprint(out, "[CODE-RED]")
	fmt.Fprint(out, " Server starting on ")
	neonBlue.Fprintf(out, "http://%s\n", addr)

	infoBadge.Fprint(out, "[CODE-RED]")
	fmt.Fprint(out, " Profile: ")
	accentText.Fprint(out, profile)
	fmt.Fprint(out, " | Providers: ")
	if len(providers) == 1 {
		warningText.Fprintf(out, "%s (no API key configured)\n", providers[0])
	} else {
		successText.Fprintln(out, strings.Join(providers, " → "))
	}

	fmt.Fprintln(out)
	printEndpoints()
}

// printEndpoints prints the available API endpoints.
func printEndpoints() {
	mutedText.Fprintln(out, "  ┌──────────────────────────────────────────────────┐")
	mutedText.Fprint(out, "  │ ")
	methodPOST.Fprint(out, " POST ")
	fmt.Fprint(out, " /api/message ")
	mutedText.Fprint(out, "  Ask the assistant         ")
	mutedText.Fprintln(out, " │")

	mutedText.Fprint(out, "  │ ")
	methodGET.Fprint(out, " GET  ")
	fmt.Fprint(out, " /            ")
	mutedText.Fprint(out, "  Health check (text)       ")
	mutedText.Fprintln(out, " │")

	mutedText.Fprint(out, "  │ ")
	methodGET.Fprint(out, " GET  ")
	fmt.Fprint(out, " /health      ")
	mutedText.Fprint(out, "  Readiness (JSON)          ")
	mutedText.Fprintln(out, " │")
	mutedText.Fprintln(out, "  └──────────────────────────────────────────────────┘")
	fmt.Fprintln(out)
}

// PrintShutdown prints a styled shutdown message.
func PrintShutdown() {
	fmt.Fprintln(out)
	warningBadge.Fprint(out, "[SHUTDOWN]")
	warningText.Fprintln(out, " Graceful shutdown initiated...")
}

// PrintGoodbye prints a styled goodbye message.
func PrintGoodbye() {
	successBadge.Fprint(out, " OK ")
	fmt.Fprint(out, " ")
	successText.Fprintln(out, "Server stopped.")
}

// ══════════════════════════════════════════════════════════════════════════════
// CLIENT
// ══════════════════════════════════════════════════════════════════════════════

// PrintReply prints an assistant reply. Replies that carry an upstream
// error message are highlighted as warnings.
func PrintReply(reply string) {
	if strings.HasPrefix(reply, "Error:") {
		warningBadge.Fprint(out, "[ASSISTANT]")
		fmt.Fprint(out, " ")
		warningText.Fprintln(out, reply)
		return
	}
	successBadge.Fprint(out, " ASSISTANT ")
	fmt.Fprint(out, " ")
	fmt.Fprintln(out, reply)
}

// PrintError prints a client-side failure.
func PrintError(err error) {
	errorBadge.Fprint(out, " ERROR ")
	fmt.Fprint(out, " ")
	errorText.Fprintln(out, err.Error())
}

// PrintHealth prints the result of a health check.
func PrintHealth(baseURL string, healthy bool) {
	if healthy {
		successBadge.Fprint(out, " UP ")
		fmt.Fprint(out, " ")
		successText.Fprintln(out, baseURL)
		return
	}
	errorBadge.Fprint(out, " DOWN ")
	fmt.Fprint(out, " ")
	errorText.Fprintln(out, baseURL)
}
