package report_payment

// ReportPaymentRequest HTTP request model
// Код группы приходит в пути запроса
type ReportPaymentRequest struct {
	Last5 string `json:"last5"` // Последние 5 цифр счёта перевода
}
