// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"errors"

	"github.com/dsundin/bigcalc/bigint"
)

// operandStack is an owning stack of *bigint.Int. release drops every
// remaining value; it is deferred at every entry point to Eval so a
// syntax error or a division-by-zero midway through evaluation never
// leaks the operands already pushed (spec.md §9's ownership
// discipline, modeled in Go as "don't keep slices of intermediate
// results around" rather than the C original's manual bi_destroy).
type operandStack struct {
	vals []*bigint.Int
}

func (s *operandStack) push(v *bigint.Int) {
	s.vals = append(s.vals, v)
}

func (s *operandStack) pop() (*bigint.Int, bool) {
	if len(s.vals) == 0 {
		return nil, false
	}
	v := s.vals[len(s.vals)-1]
	s.vals = s.vals[:len(s.vals)-1]
	return v, true
}

func (s *operandStack) release() {
	s.vals = nil
}

// Eval validates and evaluates an infix expression, returning the
// result. Eval itself prints nothing. The second return value reports
// whether the error carries its own user-facing diagnostic:
// DivisionByZero and NegativeFactorial do, and the shell prints their
// message; every other failure is a plain error the shell renders as
// "Syntax error!".
func Eval(expr string) (result *bigint.Int, errorAlreadyPrinted bool, err error) {
	if err := Validate(expr); err != nil {
		return nil, false, err
	}

	operands := &operandStack{}
	defer operands.release()
	var operators []op

	canBeSign := true
	i := 0
	n := len(expr)

	applyTop := func() error {
		if len(operators) == 0 {
			return ErrSyntax
		}
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		return applyOperator(operands, top)
	}

	for i < n {
		c := expr[i]

		if isSpace(c) {
			i++
			continue
		}

		if isDigit(c) {
			start := i
			for i < n && (isHexDigit(expr[i]) || expr[i] == 'x' || expr[i] == 'X' || expr[i] == 'b' || expr[i] == 'B') {
				i++
			}
			v, perr := bigint.FromString(expr[start:i])
			if perr != nil {
				return nil, false, ErrSyntax
			}
			operands.push(v)
			canBeSign = false
			continue
		}

		switch c {
		case '(':
			operators = append(operators, opLParen)
			canBeSign = true
			i++
			continue
		case ')':
			for len(operators) > 0 && operators[len(operators)-1] != opLParen {
				if err := applyTop(); err != nil {
					return handleApplyErr(err)
				}
			}
			if len(operators) == 0 {
				return nil, false, ErrSyntax
			}
			operators = operators[:len(operators)-1] // discard '('
			canBeSign = false
			i++
			continue
		}

		if isOperatorByte(c) {
			cur := op(c)
			if canBeSign {
				switch c {
				case '-':
					cur = opNeg
				case '+':
					i++
					continue
				default:
					return nil, false, ErrSyntax
				}
			}

			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top == opLParen {
					break
				}
				if precedence(top) < precedence(cur) {
					break
				}
				if precedence(top) == precedence(cur) && cur == opPow {
					break // '^' is right-associative: don't drain equal-precedence '^'
				}
				if cur == opNeg {
					break // unary minus never drains: it's right-associative and unique per position
				}
				if err := applyTop(); err != nil {
					return handleApplyErr(err)
				}
			}
			operators = append(operators, cur)
			if cur == opFact {
				canBeSign = false
			} else {
				canBeSign = true
			}
			i++
			continue
		}

		return nil, false, ErrSyntax
	}

	for len(operators) > 0 {
		if err := applyTop(); err != nil {
			return handleApplyErr(err)
		}
	}

	v, ok := operands.pop()
	if !ok {
		return nil, false, ErrSyntax
	}
	return v, false, nil
}

// handleApplyErr classifies an error from applyOperator into the
// eval_expression return shape (spec.md §6).
func handleApplyErr(err error) (*bigint.Int, bool, error) {
	if errors.Is(err, bigint.ErrDivisionByZero) || errors.Is(err, bigint.ErrNegativeFactorial) {
		return nil, true, err
	}
	return nil, false, ErrSyntax
}

// applyOperator pops the operand(s) an operator needs and pushes the
// result. Grounded on apply_operation in original_source/parser.c.
func applyOperator(operands *operandStack, o op) error {
	right, ok := operands.pop()
	if !ok {
		return ErrSyntax
	}

	switch o {
	case opFact:
		if right.Sign < 0 {
			return bigint.ErrNegativeFactorial
		}
		if len(right.Limbs) > 1 {
			return bigint.ErrFactorialTooLarge
		}
		operands.push(bigint.Fact(right.Limbs[0]))
		return nil
	case opNeg:
		operands.push(bigint.Neg(right))
		return nil
	}

	left, ok := operands.pop()
	if !ok {
		return ErrSyntax
	}

	if (o == opDiv || o == opMod) && right.Sign == 0 {
		return bigint.ErrDivisionByZero
	}

	var result *bigint.Int
	var err error
	switch o {
	case opAdd:
		result = bigint.Add(left, right)
	case opSub:
		result = bigint.Sub(left, right)
	case opMul:
		result = bigint.Mul(left, right)
	case opDiv:
		result, err = bigint.Div(left, right)
	case opMod:
		result, err = bigint.Mod(left, right)
	case opPow:
		result = bigint.Pow(left, right)
	default:
		return ErrSyntax
	}
	if err != nil {
		return err
	}
	operands.push(result)
	return nil
}
