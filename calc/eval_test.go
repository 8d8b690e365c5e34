// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"errors"
	"testing"

	"github.com/dsundin/bigcalc/bigint"
)

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1+2", "3"},
		{"2+3*4", "14"},
		{"(2+3)*4", "20"},
		{"2^10", "1024"},
		{"2^100", "1267650600228229401496703205376"},
		{"100!/99!", "100"},
		{"-5%3", "-2"},
		{"5%-3", "2"},
		{"-5%-3", "-2"},
		{"0xFF+1", "0"},  // 0xFF is -1 in 8-bit two's complement
		{"0b1000", "-8"}, // 0b1000 is -8 in 4-bit two's complement
		{"-3", "-3"},
		{"-(-3)", "3"},
		{"5!", "120"},
		{"2^3^2", "512"}, // right-associative: 2^(3^2) = 2^9
		{"10-2-3", "5"},  // left-associative: (10-2)-3
		{"3 + 4 * 2", "11"},
		{"(1+2)*(3+4)", "21"},
		{"3--2", "5"},
		{"3 - -2", "5"},
	}
	for _, tt := range tests {
		got, printed, err := Eval(tt.expr)
		if err != nil {
			t.Errorf("Eval(%q) error: %v (alreadyPrinted=%v)", tt.expr, err, printed)
			continue
		}
		if got.ToDecimal() != tt.want {
			t.Errorf("Eval(%q) = %s, want %s", tt.expr, got.ToDecimal(), tt.want)
		}
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	_, printed, err := Eval("5/0")
	if err == nil {
		t.Fatal("Eval(5/0) succeeded, want error")
	}
	if !printed {
		t.Error("division by zero should report errorAlreadyPrinted")
	}
	if !errors.Is(err, bigint.ErrDivisionByZero) {
		t.Errorf("err = %v, want ErrDivisionByZero", err)
	}
}

func TestEvalNegativeFactorial(t *testing.T) {
	_, printed, err := Eval("(-3)!")
	if err == nil {
		t.Fatal("Eval((-3)!) succeeded, want error")
	}
	if !printed {
		t.Error("negative factorial should report errorAlreadyPrinted")
	}
	if !errors.Is(err, bigint.ErrNegativeFactorial) {
		t.Errorf("err = %v, want ErrNegativeFactorial", err)
	}
}

func TestEvalSyntaxErrors(t *testing.T) {
	exprs := []string{
		"", "(", ")", "1+", "+1*", "1 2", "1++1", "()", "1/", "--1", "- -1", "1 + * 2", "(1+2",
	}
	for _, e := range exprs {
		if _, printed, err := Eval(e); err == nil {
			t.Errorf("Eval(%q) succeeded, want syntax error", e)
		} else if printed {
			t.Errorf("Eval(%q) reported errorAlreadyPrinted for a plain syntax error", e)
		}
	}
}

func TestEvalUnaryPlusAfterParen(t *testing.T) {
	if got, _, err := Eval("(+5)"); err != nil || got.ToDecimal() != "5" {
		t.Errorf("Eval((+5)) = %v, %v, want 5", got, err)
	}
}

func TestEvalFactorialTooLarge(t *testing.T) {
	// A factorial operand that doesn't fit in one limb is a syntax
	// error, not a negative-factorial diagnostic.
	_, printed, err := Eval("(2^100)!")
	if err == nil {
		t.Fatal("Eval((2^100)!) succeeded, want error")
	}
	if printed {
		t.Error("factorial-too-large should not claim errorAlreadyPrinted")
	}
}
