package ratedata

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fin-tools/depositmax/internal/allocator"
)

type scheduleDocument struct {
	Accounts []allocator.Account `yaml:"accounts"`
}

// LoadYAML parses a schedule document of the form:
//
//	accounts:
//	  - name: Bonus Plus
//	    requiresSalaryCredit: true
//	    otherRequirements:
//	      - minimum card spend $500
//	    tiers:
//	      - rate: 0.0388
//	        capacity: 100000
//
// Unlike the CSV sheet, YAML rates are decimal fractions. Duplicate names
// follow the CSV rule: the later entry replaces the earlier one.
func (l *Loader) LoadYAML(r io.Reader) ([]allocator.Account, []string, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc scheduleDocument
	if err := decoder.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode rate yaml: %w", err)
	}

	var accounts []allocator.Account
	var warnings []string
	index := make(map[string]int)

	for i, account := range doc.Accounts {
		if account.Name == "" {
			warnings = append(warnings, fmt.Sprintf("account %d: missing name, entry skipped", i+1))
			continue
		}
		if len(account.Tiers) == 0 {
			warnings = append(warnings, fmt.Sprintf("account %d (%s): no tiers", i+1, account.Name))
		}

		if existing, ok := index[account.Name]; ok {
			warnings = append(warnings, fmt.Sprintf("account %d: duplicate name %s replaces the earlier entry", i+1, account.Name))
			accounts[existing] = account
		} else {
			index[account.Name] = len(accounts)
			accounts = append(accounts, account)
		}
	}

	l.logger.Debug("parsed rate yaml",
		zap.String("op", "ratedata.LoadYAML"),
		zap.Int("accounts", len(accounts)),
		zap.Int("warnings", len(warnings)),
	)

	return accounts, warnings, nil
}
