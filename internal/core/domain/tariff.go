package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var hsCodePattern = regexp.MustCompile(`^\d{4}(\.\d{2}(\.\d{2,4})?)?$`)

// IsValidHSCode reports whether code is dotted HS digits: a 4-digit heading,
// optionally followed by a 2-digit subheading and a 2-4 digit national line,
// e.g. "8517", "8517.13" or "8517.13.0000".
func IsValidHSCode(code string) bool {
	return hsCodePattern.MatchString(code)
}

// TariffEntry is one row of the HS code table. HSCode is not unique: several
// rows may share a code.
type TariffEntry struct {
	EntryID  string `json:"entryID"`
	ItemName string `json:"itemName"`
	HSCode   string `json:"hsCode"`   // dotted digits, e.g. "8517.13.0000"
	BaseRate string `json:"baseRate"` // percentage string, e.g. "13%"
	Note     string `json:"note"`
}

// DutyRatePct parses BaseRate into a percentage value ("13%" -> 13).
func (t TariffEntry) DutyRatePct() (decimal.Decimal, error) {
	return ParsePercent(t.BaseRate)
}

// ParsePercent parses strings such as "13%", "2.5 %" or "0".
func ParsePercent(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty percentage %q", s)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return d, nil
}

// DefaultTariffEntries returns the rows the HS code table starts with.
// EntryIDs are left empty for the repository to assign.
func DefaultTariffEntries() []TariffEntry {
	return []TariffEntry{
		{ItemName: "전기전자제품", HSCode: "8517.13.0000", BaseRate: "0%", Note: "-"},
		{ItemName: "의류(면)", HSCode: "6109.10.0000", BaseRate: "13%", Note: "FTA 적용시 0%"},
		{ItemName: "원두커피", HSCode: "0901.11.0000", BaseRate: "2%", Note: "검역대상"},
		{ItemName: "정밀기계", HSCode: "8479.89.0000", BaseRate: "0%", Note: "밀봉포장"},
	}
}
