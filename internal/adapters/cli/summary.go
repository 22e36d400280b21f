package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/calvers/audiorip/internal/adapters/cli/tui"
	"github.com/calvers/audiorip/internal/domain"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true)
	failureStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// printSummary renders the final report block after all jobs complete.
func printSummary(s domain.Summary, dryRun bool) {
	fmt.Println()
	fmt.Println(summaryTitleStyle.Render("Conversion summary"))
	fmt.Printf("   ✅ Successful: %d\n", s.Succeeded)
	fmt.Printf("   ❌ Failed: %d\n", s.Failed)
	fmt.Printf("   ⏱  Total time: %s\n", tui.FormatDuration(s.Total))

	if s.Succeeded > 0 {
		fmt.Printf("   Avg time per file: %s\n", tui.FormatDuration(s.Avg))
		fmt.Printf("   Fastest: %s (%s)\n", s.FastestName, tui.FormatDuration(s.Fastest))
		fmt.Printf("   Slowest: %s (%s)\n", s.SlowestName, tui.FormatDuration(s.Slowest))
	}

	if dryRun {
		fmt.Println("\n🧪 Dry run complete - no files were modified")
	}

	if s.Failed > 0 {
		fmt.Println("\nFailed conversions:")
		for _, f := range s.Failures {
			fmt.Println(failureStyle.Render(fmt.Sprintf("  ✗ %s: %s", f.Source, f.ErrMsg)))
		}
	}
}
