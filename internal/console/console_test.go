package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlainStylerEmitsNoANSI(t *testing.T) {
	var buf bytes.Buffer
	s := NewPlain(&buf)

	s.Header("Families")
	s.Success("derived %d names", 3)
	s.Warning("1 advisory")
	s.Error("bad input")
	s.Field("family", "Roboto")
	s.Bullet(1, "Roboto-Bold.ttf")

	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Errorf("plain styler emitted ANSI codes:\n%q", out)
	}
	for _, want := range []string{"Families", "derived 3 names", "1 advisory", "bad input", "family: Roboto", "- Roboto-Bold.ttf"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewOnBufferDisablesColor(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.Success("ok")
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("buffer output should be plain, got %q", buf.String())
	}
}

func TestColoredStyler(t *testing.T) {
	s := &Styler{colored: true}
	got := s.style(ansiGreen, "ok")
	if !strings.HasPrefix(got, ansiGreen) || !strings.HasSuffix(got, ansiReset) {
		t.Errorf("style() = %q, want wrapped in codes", got)
	}

	if p := s.Path("x.ttf"); !strings.Contains(p, "x.ttf") {
		t.Errorf("Path() = %q", p)
	}
}
