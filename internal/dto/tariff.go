package dto

import "github.com/SscSPs/tradeops_hub/internal/core/domain"

// TariffEntryRequest is one row submitted by the HS code table editor.
// EntryID is optional; rows sent back with their ID keep it across saves.
type TariffEntryRequest struct {
	EntryID  string `json:"entryID,omitempty"`
	ItemName string `json:"itemName" binding:"required"`
	HSCode   string `json:"hsCode" binding:"required,hscode"`
	BaseRate string `json:"baseRate" binding:"required,percent"`
	Note     string `json:"note"`
}

// ReplaceTariffsRequest replaces the whole HS code table. An empty list clears it.
type ReplaceTariffsRequest struct {
	Entries []TariffEntryRequest `json:"entries" binding:"dive"`
}

// ToTariffEntries converts the request rows to domain entries. Rows without
// an entryID get one assigned when stored.
func (r ReplaceTariffsRequest) ToTariffEntries() []domain.TariffEntry {
	entries := make([]domain.TariffEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = domain.TariffEntry{
			EntryID:  e.EntryID,
			ItemName: e.ItemName,
			HSCode:   e.HSCode,
			BaseRate: e.BaseRate,
			Note:     e.Note,
		}
	}
	return entries
}

// TariffEntryResponse defines the data returned for a tariff row.
type TariffEntryResponse struct {
	EntryID  string `json:"entryID"`
	ItemName string `json:"itemName"`
	HSCode   string `json:"hsCode"`
	BaseRate string `json:"baseRate"`
	Note     string `json:"note"`
}

// ListTariffsResponse wraps the table rows.
type ListTariffsResponse struct {
	Entries []TariffEntryResponse `json:"entries"`
	Count   int                   `json:"count"`
}

// ToListTariffsResponse converts domain entries to the list response
func ToListTariffsResponse(entries []domain.TariffEntry) ListTariffsResponse {
	res := make([]TariffEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = TariffEntryResponse{
			EntryID:  e.EntryID,
			ItemName: e.ItemName,
			HSCode:   e.HSCode,
			BaseRate: e.BaseRate,
			Note:     e.Note,
		}
	}
	return ListTariffsResponse{Entries: res, Count: len(res)}
}
