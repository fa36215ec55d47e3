package scratch

import "testing"

func TestBufferFloat(t *testing.T) {
	tests := map[string]struct {
		format string
		v      float64
		want   string
	}{
		"fixed two":       {format: "%.2f", v: 3.14159, want: "3.14"},
		"fixed zero":      {format: "%.0f", v: 2.7, want: "3"},
		"general three":   {format: "%.3g", v: 1.23456, want: "1.23"},
		"general integer": {format: "%.3g", v: 42, want: "42"},
		"general large":   {format: "%.3g", v: 1234567, want: "1.23e+06"},
		"with text":       {format: "v=%.1f%%", v: 0.26, want: "v=0.3%"},
		"no verb":         {format: "plain", v: 1, want: "plain"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := New(64)
			if got := b.Float(tt.format, tt.v); got != tt.want {
				t.Errorf("Float(%q, %v) = %q, want %q", tt.format, tt.v, got, tt.want)
			}
		})
	}
}

func TestBufferSprintf(t *testing.T) {
	b := New(64)
	got := b.Sprintf("%s at %d,%d (%.1f)", "win", 10, -3, float32(0.5))
	if got != "win at 10,-3 (0.5)" {
		t.Errorf("Sprintf = %q", got)
	}
	if got := b.Sprintf("%d", 1, 2); got != "1" {
		t.Errorf("extra args: %q", got)
	}
	if got := b.Sprintf("%d and %d", 7); got != "7 and " {
		t.Errorf("missing args: %q", got)
	}
}

func TestBufferViewsSurviveAppends(t *testing.T) {
	b := New(4)
	first := b.Sprintf("%s", "abcd")
	second := b.Sprintf("%s", "efghijkl")
	if first != "abcd" || second != "efghijkl" {
		t.Fatalf("views = %q %q", first, second)
	}
	if b.Len() != 12 {
		t.Errorf("Len = %d, want 12", b.Len())
	}
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len after Reset = %d", b.Len())
	}
}

func TestBuilderChain(t *testing.T) {
	b := New(16)
	b.S("x=").I(-4).C(' ').R('é').Pad(2, '.').F64(1.5, 1)
	if got := b.String(); got != "x=-4 é..1.5" {
		t.Errorf("chain = %q", got)
	}
}

func TestBufferHex(t *testing.T) {
	tests := map[string]struct {
		v      uint64
		digits int
		want   string
	}{
		"zero":      {0, 2, "00"},
		"padded":    {0xa, 2, "0A"},
		"byte":      {0xff, 2, "FF"},
		"no pad":    {0x1234, 0, "1234"},
		"overflows": {0x123, 2, "123"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := New(16)
			if got := b.Hex(tt.v, tt.digits).String(); got != tt.want {
				t.Errorf("Hex(%#x, %d) = %q, want %q", tt.v, tt.digits, got, tt.want)
			}
		})
	}
}
