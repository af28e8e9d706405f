// SPDX-License-Identifier: MIT
package calculator

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Calculator's operations.
	Config struct {
		// Logger for Calculator messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// OperandCapacity & OperatorCapacity bound the per evaluation stacks.
		OperandCapacity  int
		OperatorCapacity int

		// Workers is the EvaluateAll pool size.
		Workers int
	}
)

const (
	// DefaultCapacity exceeds any realistic expression depth.
	DefaultCapacity = 1024
)

// DefConfig obtains the package's default Config.
func DefConfig() *Config {
	return &Config{
		Logger:           logrus.New(),
		OperandCapacity:  DefaultCapacity,
		OperatorCapacity: DefaultCapacity,
		Workers:          runtime.GOMAXPROCS(0),
	}
}

// Validate populates missing Config entries with defaults.
//
// Negative capacities are kept; they surface as a MemoryError.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.OperandCapacity == 0 {
		c.OperandCapacity = DefaultCapacity
	}
	if c.OperatorCapacity == 0 {
		c.OperatorCapacity = DefaultCapacity
	}
	if c.Workers < 1 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}
