package scenes

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		msg   string
		width int
		want  []string
	}{
		{"短文本", "file missing", 20, []string{"file missing"}},
		{"按空格折行", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"无空格强制折断", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"保留换行", "one\ntwo", 10, []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.msg, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.msg, tt.width, got, tt.want)
			}
		})
	}
}

func TestNewErrorScene(t *testing.T) {
	s := NewErrorScene(errors.New("failed to read slot config: open data/slot.yaml: no such file"))
	lines := s.Lines()
	if len(lines) < 3 {
		t.Fatalf("expected header and message, got %q", lines)
	}
	if !strings.Contains(strings.Join(lines, " "), "data/slot.yaml") {
		t.Errorf("error message not shown: %q", lines)
	}

	if got := NewErrorScene(nil).Lines(); got[len(got)-1] != "unknown error" {
		t.Errorf("nil error lines = %q", got)
	}
}
