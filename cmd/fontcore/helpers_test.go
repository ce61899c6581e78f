package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andrewsipe/FontCore/internal/advisory"
	"github.com/andrewsipe/FontCore/internal/console"
)

func TestPrintAdvisorySummary(t *testing.T) {
	tracker := &advisory.Tracker{}
	tracker.Add(
		advisory.Newf(advisory.Sanitization, "a.ttf", "removed 1 code point"),
		advisory.Newf(advisory.Sanitization, "b.ttf", "removed 2 code points"),
		advisory.Newf(advisory.Policy, "b.ttf", "name truncated"),
	)

	var buf bytes.Buffer
	printAdvisorySummary(console.NewPlain(&buf), tracker)

	out := buf.String()
	for _, want := range []string{"Advisories", "2 sanitization", "1 policy"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintAdvisorySummaryEmptyIsSilent(t *testing.T) {
	var buf bytes.Buffer
	printAdvisorySummary(console.NewPlain(&buf), &advisory.Tracker{})
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
