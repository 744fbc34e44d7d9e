package check_touchup

import (
	checkTouchup "github.com/AM-Studio-19/am-booking/internal/usecase/check_touchup"
)

// TouchupRecordResponse HTTP модель результата по одной категории
type TouchupRecordResponse struct {
	Category      string `json:"category"`
	LastVisitDate string `json:"lastVisitDate"` // "2026-03-15"
	ElapsedMonths int    `json:"elapsedMonths"`
	MatchedPrice  *int64 `json:"matchedPrice,omitempty"`
	WindowLabel   string `json:"windowLabel"` // например "半年內" или "重新施作"
}

// CheckTouchupResponse HTTP response model
type CheckTouchupResponse struct {
	CustomerName string                  `json:"customerName"`
	Records      []TouchupRecordResponse `json:"records"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkTouchup.Response) *CheckTouchupResponse {
	records := make([]TouchupRecordResponse, len(resp.Records))
	for i, record := range resp.Records {
		records[i] = TouchupRecordResponse{
			Category:      record.Category,
			LastVisitDate: record.LastVisitDate,
			ElapsedMonths: record.ElapsedMonths,
			MatchedPrice:  record.MatchedPrice,
			WindowLabel:   record.WindowLabel,
		}
	}

	return &CheckTouchupResponse{
		CustomerName: resp.CustomerName,
		Records:      records,
	}
}
