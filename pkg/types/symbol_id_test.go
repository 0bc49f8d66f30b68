package types

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseSymbolID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SymbolID
		wantErr bool
	}{
		{"百搭小写", "wild", SymbolWild, false},
		{"百搭原样", "Wild", SymbolWild, false},
		{"普通符号", "a", SymbolA, false},
		{"带空格", " C ", SymbolC, false},
		{"未知符号", "cherry", SymbolUnknown, true},
		{"空字符串", "", SymbolUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSymbolID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSymbolID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSymbolID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSymbolIDZeroValueIsUnknown(t *testing.T) {
	var s SymbolID
	if s != SymbolUnknown {
		t.Errorf("zero value should be SymbolUnknown, got %v", s)
	}
	if s.IsKnown() {
		t.Error("SymbolUnknown should not be known")
	}
	if s.IsWild() {
		t.Error("SymbolUnknown should not be wild")
	}
}

func TestSymbolIDYAML(t *testing.T) {
	var doc struct {
		Symbols []SymbolID `yaml:"symbols"`
	}
	if err := yaml.Unmarshal([]byte("symbols: [wild, a, B]\n"), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	want := []SymbolID{SymbolWild, SymbolA, SymbolB}
	if len(doc.Symbols) != len(want) {
		t.Fatalf("got %d symbols, want %d", len(doc.Symbols), len(want))
	}
	for i := range want {
		if doc.Symbols[i] != want[i] {
			t.Errorf("symbols[%d] = %v, want %v", i, doc.Symbols[i], want[i])
		}
	}

	if err := yaml.Unmarshal([]byte("symbols: [seven]\n"), &doc); err == nil {
		t.Error("expected error for unknown symbol name")
	}
}
