package ratedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fin-tools/depositmax/internal/allocator"
	"github.com/fin-tools/depositmax/pkg/constants"
)

// The rate sheet layout: one row per bank, up to six rate/amount column
// pairs. Rates are percent units ("3.88%" or "3.88"), amounts are dollars.
const (
	columnBank         = "bank"
	columnCreditSalary = "credit_salary"
	columnOthers       = "others"
	columnRemarks      = "remarks"
)

var oneHundred = decimal.NewFromInt(100)

// LoadCSV parses a rate sheet. Rows keep their first-appearance order; a
// duplicate bank name replaces the earlier row. A tier is read only when both
// its rate and amount cells are present, and a blank pair does not end the
// row's tier list.
func (l *Loader) LoadCSV(r io.Reader) ([]allocator.Account, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read rate csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("rate csv has no header row")
	}

	header := make(map[string]int)
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := header[columnBank]; !ok {
		return nil, nil, fmt.Errorf("rate csv is missing the %q column", columnBank)
	}

	var accounts []allocator.Account
	var warnings []string
	index := make(map[string]int)

	for i, record := range records[1:] {
		rowNum := i + 2 // 1-based, after the header

		name := cell(record, header, columnBank)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("row %d: missing bank name, row skipped", rowNum))
			continue
		}

		account := allocator.Account{
			Name:                 name,
			RequiresSalaryCredit: strings.EqualFold(cell(record, header, columnCreditSalary), "y"),
		}
		if others := cell(record, header, columnOthers); others != "" {
			account.OtherRequirements = append(account.OtherRequirements, others)
		}
		if remarks := cell(record, header, columnRemarks); remarks != "" {
			account.OtherRequirements = append(account.OtherRequirements, remarks)
		}

		for tier := 1; tier <= constants.MaxTiersPerAccount; tier++ {
			rateRaw := cell(record, header, fmt.Sprintf("interest_rate_%d", tier))
			amountRaw := cell(record, header, fmt.Sprintf("amount_%d", tier))
			if rateRaw == "" && amountRaw == "" {
				continue
			}
			if rateRaw == "" || amountRaw == "" {
				warnings = append(warnings, fmt.Sprintf("row %d (%s): tier %d has only one of rate and amount, tier skipped", rowNum, name, tier))
				continue
			}

			rate, err := parsePercent(rateRaw)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("row %d (%s): unreadable rate %q, tier skipped", rowNum, name, rateRaw))
				continue
			}
			capacity, err := parseAmount(amountRaw)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("row %d (%s): unreadable amount %q, tier skipped", rowNum, name, amountRaw))
				continue
			}

			account.Tiers = append(account.Tiers, allocator.Tier{Rate: rate, Capacity: capacity})
		}

		if len(account.Tiers) == 0 {
			warnings = append(warnings, fmt.Sprintf("row %d (%s): no usable tiers", rowNum, name))
		}

		if existing, ok := index[name]; ok {
			warnings = append(warnings, fmt.Sprintf("row %d: duplicate bank %s replaces the earlier entry", rowNum, name))
			accounts[existing] = account
		} else {
			index[name] = len(accounts)
			accounts = append(accounts, account)
		}
	}

	l.logger.Debug("parsed rate csv",
		zap.String("op", "ratedata.LoadCSV"),
		zap.Int("accounts", len(accounts)),
		zap.Int("warnings", len(warnings)),
	)

	return accounts, warnings, nil
}

func cell(record []string, header map[string]int, name string) string {
	column, ok := header[name]
	if !ok || column >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[column])
}

// parsePercent reads a rate expressed in percent units and returns the
// decimal fraction (e.g. "3.88%" -> 0.0388).
func parsePercent(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), "%", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, err
	}
	fraction, _ := value.Div(oneHundred).Float64()
	return fraction, nil
}

// parseAmount reads a currency value, tolerating dollar signs and thousands
// separators.
func parseAmount(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, err
	}
	amount, _ := value.Float64()
	return amount, nil
}
