// SPDX-License-Identifier: MIT
package calculator

import (
	"fmt"
	"math"
)

type (
	// operator tokens held by the operator stack.
	//
	// Order matters: the stubs sort below the real operators.
	operator uint8

	associativity uint8

	// opInfo holds the static characteristics of an operator.
	opInfo struct {
		symbol        byte
		precedence    int
		associativity associativity
		apply         func(left, right float64) (float64, Status)
	}
)

const (
	opSentinel operator = iota
	opOpenParen
	opEnd
	opAdd
	opSubtract
	opMultiply
	opDivide
	opPower
	opCount
)

const (
	rightToLeft associativity = iota
	leftToRight
)

// Precedence tiers.
const (
	precSentinel = iota
	precParen
	precAdditive
	precMultiplicative
	precPower
)

var (
	operatorInfo = [opCount]opInfo{
		opSentinel:  {symbol: '#', precedence: precSentinel},
		opOpenParen: {symbol: '(', precedence: precParen},
		opEnd:       {symbol: '$', precedence: precSentinel},
		opAdd:       {symbol: '+', precedence: precAdditive, associativity: leftToRight, apply: add},
		opSubtract:  {symbol: '-', precedence: precAdditive, associativity: leftToRight, apply: subtract},
		opMultiply:  {symbol: '*', precedence: precMultiplicative, associativity: leftToRight, apply: multiply},
		opDivide:    {symbol: '/', precedence: precMultiplicative, associativity: leftToRight, apply: divide},
		opPower:     {symbol: '^', precedence: precPower, associativity: rightToLeft, apply: power},
	}

	byteOperators = [256]operator{
		'+': opAdd,
		'-': opSubtract,
		'*': opMultiply,
		'/': opDivide,
		'^': opPower,
		'(': opOpenParen,
		0:   opEnd,
	}
)

// String is the `fmt.Stringer` interface implementation for operator.
func (o operator) String() string {
	if o >= opCount {
		return fmt.Sprintf("operator(%d)", uint8(o))
	}

	return string(operatorInfo[o].symbol)
}

// binary reports whether the operator can be applied to two operands.
func (o operator) binary() bool { return o < opCount && operatorInfo[o].apply != nil }

// shouldReduce reports whether top has to be applied before incoming is pushed.
//
// Left associative operators reduce at equal precedence, right associative ones defer.
func shouldReduce(incoming, top operator) bool {
	if !top.binary() {
		return false
	}
	topInfo, incomingInfo := operatorInfo[top], operatorInfo[incoming]

	if topInfo.precedence == incomingInfo.precedence {
		return topInfo.associativity == leftToRight
	}

	return topInfo.precedence > incomingInfo.precedence
}

func add(left, right float64) (float64, Status) { return left + right, ProperInput }

func subtract(left, right float64) (float64, Status) { return left - right, ProperInput }

func multiply(left, right float64) (float64, Status) { return left * right, ProperInput }

func divide(left, right float64) (float64, Status) {
	if right == 0 {
		return 0, IllegalAlgebraicAction
	}

	return left / right, ProperInput
}

// power follows math.Pow, NaN results included, except for a zero base with a negative
// exponent.
func power(left, right float64) (float64, Status) {
	if left == 0 && right < 0 {
		return 0, IllegalAlgebraicAction
	}

	return math.Pow(left, right), ProperInput
}
