// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "testing"

func mustParse(t *testing.T, s string) *Int {
	t.Helper()
	n, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return n
}

func TestDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "42", "-42", "123456789012345678901234567890"}
	for _, c := range cases {
		n := mustParse(t, c)
		if got := n.ToDecimal(); got != c {
			t.Errorf("ToDecimal(FromString(%q)) = %q, want %q", c, got, c)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, dec := range []int64{0, 1, -1, 255, -255, 256, -256, 65535, -65536} {
		n := mustParse(t, int64ToDecimal(dec))
		hex := n.ToHex()
		back, err := FromString(hex)
		if err != nil {
			t.Fatalf("FromString(%q): %v", hex, err)
		}
		if back.ToDecimal() != n.ToDecimal() {
			t.Errorf("hex round trip for %d: got %s via %q", dec, back.ToDecimal(), hex)
		}
	}
}

func TestHexSpecificValues(t *testing.T) {
	tests := []struct {
		dec  int64
		want string
	}{
		{-1, "0xf"},
		{255, "0x0ff"},
		{0, "0x0"},
	}
	for _, tt := range tests {
		n := mustParse(t, int64ToDecimal(tt.dec))
		if got := n.ToHex(); got != tt.want {
			t.Errorf("ToHex(%d) = %q, want %q", tt.dec, got, tt.want)
		}
	}
}

func TestBinSpecificValues(t *testing.T) {
	tests := []struct {
		dec  int64
		want string
	}{
		{-2, "0b10"},
		{2, "0b010"},
		{-1, "0b1"},
		{0, "0b0"},
	}
	for _, tt := range tests {
		n := mustParse(t, int64ToDecimal(tt.dec))
		if got := n.ToBin(); got != tt.want {
			t.Errorf("ToBin(%d) = %q, want %q", tt.dec, got, tt.want)
		}
	}
}

func TestBinRoundTrip(t *testing.T) {
	for _, dec := range []int64{0, 1, -1, 2, -2, 255, -255, 1024, -1024} {
		n := mustParse(t, int64ToDecimal(dec))
		bin := n.ToBin()
		back, err := FromString(bin)
		if err != nil {
			t.Fatalf("FromString(%q): %v", bin, err)
		}
		if back.ToDecimal() != n.ToDecimal() {
			t.Errorf("bin round trip for %d: got %s via %q", dec, back.ToDecimal(), bin)
		}
	}
}

func TestFromStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "abc", "12x", "0xg", "0b2", "--1"} {
		if _, err := FromString(s); err == nil {
			t.Errorf("FromString(%q) succeeded, want error", s)
		}
	}
}

func int64ToDecimal(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var digits []byte
	for v > 0 {
		digits = append(digits, byte(v%10)+'0')
		v /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	s := string(digits)
	if neg {
		s = "-" + s
	}
	return s
}
