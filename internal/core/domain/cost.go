package domain

import "github.com/shopspring/decimal"

var vatRate = decimal.RequireFromString("0.1")

// VATRate returns the fixed value-added tax rate applied on CIF + duty.
func VATRate() decimal.Decimal {
	return vatRate
}

var hundred = decimal.NewFromInt(100)

// InvoiceInput holds the invoice-level figures of one import shipment.
// Foreign-currency amounts are converted with ExchangeRate; Insurance and
// HandlingFee are already in local currency.
type InvoiceInput struct {
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // local units per one foreign unit
	InvoiceValue decimal.Decimal `json:"invoiceValue"` // foreign currency
	ShippingIntl decimal.Decimal `json:"shippingIntl"` // foreign currency
	DutyRatePct  decimal.Decimal `json:"dutyRatePct"`  // percent, e.g. 8 for 8%
	Insurance    decimal.Decimal `json:"insurance"`    // local currency
	HandlingFee  decimal.Decimal `json:"handlingFee"`  // local currency
}

// CostBreakdown is the landed-cost result in local currency.
type CostBreakdown struct {
	CIFValue   decimal.Decimal `json:"cifValue"`
	DutyAmount decimal.Decimal `json:"dutyAmount"`
	VATAmount  decimal.Decimal `json:"vatAmount"`
	TotalCost  decimal.Decimal `json:"totalCost"`
}

// RateSource records where the exchange rate of an estimate came from.
type RateSource string

const (
	RateSourceOverride RateSource = "override" // supplied with the request
	RateSourceTable    RateSource = "table"    // looked up in the exchange rate table
	RateSourceDefault  RateSource = "default"  // currency not in the table
)

// CostEstimate is a breakdown together with the inputs it was computed from.
type CostEstimate struct {
	Input      InvoiceInput  `json:"input"`
	RateSource RateSource    `json:"rateSource"`
	HSCode     string        `json:"hsCode,omitempty"` // set when the duty rate came from the tariff table
	Breakdown  CostBreakdown `json:"breakdown"`
}

// CalculateCost computes the landed cost of a shipment:
//
//	cif   = (invoice + shipping) * rate + insurance
//	duty  = cif * dutyRate / 100
//	vat   = (cif + duty) * VATRate()
//	total = cif + duty + vat + handling
//
// It never fails. Negative inputs are not rejected and simply propagate.
func CalculateCost(in InvoiceInput) CostBreakdown {
	cif := in.InvoiceValue.Add(in.ShippingIntl).Mul(in.ExchangeRate).Add(in.Insurance)
	duty := cif.Mul(in.DutyRatePct.Div(hundred))
	vat := cif.Add(duty).Mul(vatRate)
	total := cif.Add(duty).Add(vat).Add(in.HandlingFee)

	return CostBreakdown{
		CIFValue:   cif,
		DutyAmount: duty,
		VATAmount:  vat,
		TotalCost:  total,
	}
}
