// SPDX-License-Identifier: MIT
package calculator

// REF: https://en.wikipedia.org/wiki/Shunting_yard_algorithm

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/calculator/lexer"
	"gitlab.com/fisherprime/calculator/types"
)

type (
	// Calculator evaluates arithmetic expressions.
	//
	// A Calculator holds no per evaluation state & is safe for concurrent use.
	Calculator struct {
		cfg *Config
	}

	// Option defines the Calculator functional option type.
	Option func(*Calculator)
)

var defCalculator = New()

// Evaluate computes an expression using the package's default Calculator.
//
// The value is 0 unless the Status is ProperInput.
func Evaluate(text string) (float64, Status) { return defCalculator.Evaluate(text) }

// New instantiates a Calculator.
func New(options ...Option) *Calculator {
	c := &Calculator{cfg: DefConfig()}

	for _, opt := range options {
		opt(c)
	}
	c.cfg.Validate()

	return c
}

// WithConfig configures the Calculator with a copy of cfg.
func WithConfig(cfg *Config) Option {
	return func(c *Calculator) {
		copied := *cfg
		c.cfg = &copied
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Calculator) { c.cfg.Logger = logger }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Calculator) { c.cfg.Debug = debug } }

// WithCapacity configures the capacity of both evaluation stacks.
func WithCapacity(capacity int) Option {
	return func(c *Calculator) {
		c.cfg.OperandCapacity = capacity
		c.cfg.OperatorCapacity = capacity
	}
}

// WithOperandCapacity configures the operand stack capacity.
func WithOperandCapacity(capacity int) Option {
	return func(c *Calculator) { c.cfg.OperandCapacity = capacity }
}

// WithOperatorCapacity configures the operator stack capacity.
func WithOperatorCapacity(capacity int) Option {
	return func(c *Calculator) { c.cfg.OperatorCapacity = capacity }
}

// WithWorkers configures the EvaluateAll pool size.
func WithWorkers(workers int) Option { return func(c *Calculator) { c.cfg.Workers = workers } }

// Config retrieves the Calculator's Config.
func (c *Calculator) Config() *Config { return c.cfg }

// Evaluate computes an expression.
//
// The value is 0 unless the Status is ProperInput.
func (c *Calculator) Evaluate(text string) (value float64, status Status) {
	value, status, _ = c.evaluate(text)
	return
}

// Calculate computes an expression, reporting failures as errors.
//
// The error wraps the failing Status' sentinel error; see StatusOf.
func (c *Calculator) Calculate(text string) (value float64, err error) {
	value, _, err = c.evaluate(text)
	return
}

func (c *Calculator) evaluate(text string) (value float64, status Status, err error) {
	defer func() {
		if status != ProperInput {
			value = 0
		}
	}()

	operands, err := types.NewStack[float64](c.cfg.OperandCapacity)
	if err != nil {
		status, err = MemoryError, fmt.Errorf("%w: operand stack: %w", ErrMemory, err)
		return
	}
	defer operands.Destroy()

	operators, err := types.NewStack[operator](c.cfg.OperatorCapacity)
	if err != nil {
		status, err = MemoryError, fmt.Errorf("%w: operator stack: %w", ErrMemory, err)
		return
	}
	defer operators.Destroy()

	e := &evaluation{
		lexer:     lexer.New(text),
		operands:  operands,
		operators: operators,
	}

	var trace func(state, byte)
	if c.cfg.Debug {
		// Debug operation makes this operation noisy.
		trace = func(s state, b byte) {
			c.cfg.Logger.Debugf("calculator: %s at %d: %q", s, e.lexer.Pos(), b)
		}
	}

	if value, status = e.run(trace); status != ProperInput {
		err = fmt.Errorf("%w at offset %d: %w", status.Err(), e.pos, e.cause)

		// Skip expensive operation if not debug.
		if c.cfg.Debug {
			c.cfg.Logger.Debugf("failed evaluation of %q: %v\noperands: %s\noperators: %s",
				text, err, spew.Sprint(operands.Values()), spew.Sprint(operators.Values()))
		}
	}

	return
}
