// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/bdabianco/marcolo-metrics/pkg/debts"
)

// FindInstrument finds a debt instrument by name in a portfolio.
// Returns a pointer to the instrument if found, nil otherwise.
func FindInstrument(portfolio debts.Portfolio, name string) *debts.Instrument {
	for i := range portfolio.Instruments {
		if portfolio.Instruments[i].Name == name {
			return &portfolio.Instruments[i]
		}
	}
	return nil
}
