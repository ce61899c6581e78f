package main

import (
	"github.com/andrewsipe/FontCore/internal/advisory"
	"github.com/andrewsipe/FontCore/internal/console"
)

// printAdvisorySummary prints per-context advisory counts collected over a
// batch run. Silent when nothing was recorded.
func printAdvisorySummary(out *console.Styler, tracker *advisory.Tracker) {
	if tracker.Len() == 0 {
		return
	}
	out.Println()
	out.Header("Advisories")
	counts := tracker.Summary()
	for _, ctx := range tracker.Contexts() {
		out.Warning("%d %s", counts[ctx], ctx)
	}
}
