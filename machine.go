// SPDX-License-Identifier: MIT
package calculator

import (
	"errors"
	"fmt"

	"gitlab.com/fisherprime/calculator/lexer"
	"gitlab.com/fisherprime/calculator/types"
)

type (
	state uint8

	// action identifies the routine run on a transition.
	action uint8

	transition struct {
		action action
		next   state
	}

	// evaluation holds the per call state of the machine.
	evaluation struct {
		lexer     *lexer.Lexer
		operands  *types.Stack[float64]
		operators *types.Stack[operator]

		// depth counts the open parentheses awaiting a match.
		depth int

		// pos & cause describe the first failure.
		pos   int
		cause error
	}
)

const (
	readingOperand state = iota
	readingOperator
	finished
	failed

	// activeStates is the number of states with outgoing transitions.
	activeStates = 2
)

const (
	actFail action = iota
	actSkip
	actPushNumber
	actOpenParen
	actApplyOperator
	actCloseParen
	actFinish
)

// Machine errors, reported as the cause of a failing Status.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnexpectedEnd       = errors.New("unexpected end of input")
	ErrUnmatchedOpenParen  = errors.New("unmatched '('")
	ErrUnmatchedCloseParen = errors.New("unmatched ')'")
	ErrDomain              = errors.New("outside the operator's domain")
	ErrCorruptStack        = errors.New("corrupt evaluation stack")
)

// transitions is indexed by the current state & the byte under the cursor.
var transitions = buildTransitions()

func buildTransitions() (table [activeStates][256]transition) {
	for index := range table[readingOperand] {
		b := byte(index)

		table[readingOperand][b] = transition{actFail, failed}
		table[readingOperator][b] = transition{actFail, failed}

		if lexer.IsWhitespace(b) {
			table[readingOperand][b] = transition{actSkip, readingOperand}
			table[readingOperator][b] = transition{actSkip, readingOperator}
			continue
		}

		if lexer.IsNumberStart(b) {
			table[readingOperand][b] = transition{actPushNumber, readingOperator}
		}
		if lexer.IsOperator(b) {
			table[readingOperator][b] = transition{actApplyOperator, readingOperand}
		}
	}

	table[readingOperand]['('] = transition{actOpenParen, readingOperand}
	table[readingOperator][')'] = transition{actCloseParen, readingOperator}
	table[readingOperator][lexer.EndMarker] = transition{actFinish, finished}

	return
}

// String is the `fmt.Stringer` interface implementation for state.
func (s state) String() string {
	switch s {
	case readingOperand:
		return "reading operand"
	case readingOperator:
		return "reading operator"
	case finished:
		return "finished"
	default:
		return "failed"
	}
}

// run drives the machine to a terminal state.
//
// The stacks must be empty; the sentinel is pushed here.
func (e *evaluation) run(trace func(state, byte)) (value float64, status Status) {
	if status = e.pushOperator(opSentinel); status != ProperInput {
		return
	}

	for current := readingOperand; current == readingOperand || current == readingOperator; {
		b := e.lexer.Peek()
		if trace != nil {
			trace(current, b)
		}

		t := transitions[current][b]
		if status = e.dispatch(t.action, b); status == ProperInput {
			current = t.next
			continue
		}
		current = failed
	}

	if status != ProperInput {
		return
	}

	if e.operands.Size() != 1 {
		status = e.fail(IllegalInput, fmt.Errorf("%w: %d operands left", ErrCorruptStack, e.operands.Size()))
		return
	}
	value, _ = e.operands.Peek()

	return
}

func (e *evaluation) dispatch(act action, b byte) Status {
	switch act {
	case actSkip:
		e.lexer.Skip()
		return ProperInput
	case actPushNumber:
		return e.pushNumber()
	case actOpenParen:
		return e.openParen()
	case actApplyOperator:
		return e.applyOperator(byteOperators[b])
	case actCloseParen:
		return e.closeParen()
	case actFinish:
		return e.finish()
	default:
		if b == lexer.EndMarker {
			return e.fail(IllegalInput, ErrUnexpectedEnd)
		}
		return e.fail(IllegalInput, fmt.Errorf("%w %q", ErrUnexpectedCharacter, b))
	}
}

// fail records the first failure's position & cause.
func (e *evaluation) fail(status Status, cause error) Status {
	if e.cause == nil {
		e.pos, e.cause = e.lexer.Pos(), cause
	}

	return status
}

func (e *evaluation) pushNumber() Status {
	value, err := e.lexer.ScanNumber()
	if err != nil {
		return e.fail(IllegalInput, err)
	}

	return e.pushOperand(value)
}

func (e *evaluation) openParen() Status {
	if status := e.pushOperator(opOpenParen); status != ProperInput {
		return status
	}
	e.depth++
	e.lexer.Skip()

	return ProperInput
}

// applyOperator reduces the operators binding at least as tightly as incoming, then pushes it.
func (e *evaluation) applyOperator(incoming operator) Status {
	for {
		top, err := e.operators.Peek()
		if err != nil {
			return e.stackFailure(err)
		}
		if !shouldReduce(incoming, top) {
			break
		}

		if status := e.reduce(); status != ProperInput {
			return status
		}
	}

	if status := e.pushOperator(incoming); status != ProperInput {
		return status
	}
	e.lexer.Skip()

	return ProperInput
}

func (e *evaluation) closeParen() Status {
	if e.depth == 0 {
		return e.fail(IllegalInput, ErrUnmatchedCloseParen)
	}

	if status := e.reduceUntil(opOpenParen); status != ProperInput {
		return status
	}
	if _, err := e.operators.Pop(); err != nil {
		return e.stackFailure(err)
	}
	e.depth--
	e.lexer.Skip()

	return ProperInput
}

func (e *evaluation) finish() Status {
	if e.depth != 0 {
		return e.fail(IllegalInput, fmt.Errorf("%w: %d left open", ErrUnmatchedOpenParen, e.depth))
	}

	return e.reduceUntil(opSentinel)
}

// reduceUntil reduces until stop is on top of the operator stack.
func (e *evaluation) reduceUntil(stop operator) Status {
	for {
		top, err := e.operators.Peek()
		if err != nil {
			return e.stackFailure(err)
		}
		if top == stop {
			return ProperInput
		}

		if status := e.reduce(); status != ProperInput {
			return status
		}
	}
}

// reduce applies the top operator to the two topmost operands, pushing the result.
func (e *evaluation) reduce() Status {
	right, err := e.operands.Pop()
	if err != nil {
		return e.stackFailure(err)
	}
	left, err := e.operands.Pop()
	if err != nil {
		return e.stackFailure(err)
	}
	op, err := e.operators.Pop()
	if err != nil {
		return e.stackFailure(err)
	}

	if !op.binary() {
		return e.fail(IllegalInput, fmt.Errorf("%w: %v is not a binary operator", ErrCorruptStack, op))
	}

	result, status := operatorInfo[op].apply(left, right)
	if status != ProperInput {
		return e.fail(status, fmt.Errorf("%w: %g %v %g", ErrDomain, left, op, right))
	}

	return e.pushOperand(result)
}

func (e *evaluation) pushOperand(value float64) Status {
	if err := e.operands.Push(value); err != nil {
		return e.stackFailure(fmt.Errorf("operand stack: %w", err))
	}

	return ProperInput
}

func (e *evaluation) pushOperator(op operator) Status {
	if err := e.operators.Push(op); err != nil {
		return e.stackFailure(fmt.Errorf("operator stack: %w", err))
	}

	return ProperInput
}

// stackFailure maps a stack error to a Status; exhausted capacity is a MemoryError.
func (e *evaluation) stackFailure(err error) Status {
	if errors.Is(err, types.ErrFull) {
		return e.fail(MemoryError, err)
	}

	return e.fail(IllegalInput, fmt.Errorf("%w: %v", ErrCorruptStack, err))
}
