package commands

import (
	"errors"
	"time"

	"chefbook/internal/pkg/guard"
)

var (
	ErrExpireOverdueOrdersCommandIsNotConstructed = errors.New(
		"ExpireOverdueOrdersCommand must be created via NewExpireOverdueOrdersCommand constructor",
	)
	ErrSweepTimeIsRequired = errors.New("sweep time is required")
)

// ExpireOverdueOrdersCommand triggers one pass of the expiry sweep. The sweep
// is the safety net behind customer-declared expiry: it catches pending orders
// whose window lapsed while the customer was offline.
type ExpireOverdueOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireOverdueOrdersCommand creates a sweep command for the given instant.
func NewExpireOverdueOrdersCommand(now time.Time) (ExpireOverdueOrdersCommand, error) {
	cmd := ExpireOverdueOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNow(now); err != nil {
		return ExpireOverdueOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOverdueOrdersCommandIsNotConstructed)
}

// Now returns the instant the sweep evaluates deadlines against.
func (c ExpireOverdueOrdersCommand) Now() time.Time {
	return c.now
}

func (c *ExpireOverdueOrdersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return ErrSweepTimeIsRequired
	}

	c.now = now
	return nil
}
