// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/fin-tools/depositmax/internal/allocator"
)

// FindAccount finds an account by name in the accounts slice.
// Returns a pointer to the account if found, nil otherwise.
func FindAccount(accounts []allocator.Account, name string) *allocator.Account {
	for i := range accounts {
		if accounts[i].Name == name {
			return &accounts[i]
		}
	}
	return nil
}
