package domain

// ShippingDocument is one line of the shipping-document checklist.
type ShippingDocument struct {
	DocumentID string `json:"documentID"`
	Label      string `json:"label"`
	Checked    bool   `json:"checked"`
}

// Checklist is the ordered set of documents to prepare for a shipment.
type Checklist struct {
	Documents []ShippingDocument `json:"documents"`
}

// Complete reports whether every document has been checked off.
// An empty checklist is never complete.
func (c Checklist) Complete() bool {
	if len(c.Documents) == 0 {
		return false
	}
	for _, d := range c.Documents {
		if !d.Checked {
			return false
		}
	}
	return true
}

// DefaultShippingDocuments returns the standard import document set, unchecked.
func DefaultShippingDocuments() []ShippingDocument {
	return []ShippingDocument{
		{DocumentID: "invoice", Label: "Invoice (상업송장)"},
		{DocumentID: "packing-list", Label: "Packing List (포장명세서)"},
		{DocumentID: "bill-of-lading", Label: "B/L (선하증권)"},
		{DocumentID: "certificate-of-origin", Label: "C/O (원산지증명서)"},
		{DocumentID: "insurance-policy", Label: "보험증권"},
	}
}
