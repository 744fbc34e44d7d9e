package check_touchup

import (
	"github.com/AM-Studio-19/am-booking/internal/domain"
)

// Request модель запроса проверки цены коррекции
type Request struct {
	Query    string  // Имя или телефон клиента
	Category *string // Конкретная категория (опционально, иначе все отслеживаемые)
}

// Response модель ответа с подобранными ценами коррекции по категориям
type Response struct {
	CustomerName string          // Имя клиента из последнего визита
	Records      []TouchupRecord // По одной записи на категорию с историей
}

// TouchupRecord результат подбора цены коррекции для одной категории
type TouchupRecord struct {
	Category      string // Категория процедуры
	LastVisitDate string // Дата последнего визита (YYYY-MM-DD)
	ElapsedMonths int    // Сколько месяцев прошло с последнего визита
	MatchedPrice  *int64 // Цена коррекции, nil если в каталоге нет подходящей записи
	WindowLabel   string // Название временного окна ("3個月內" ... "重新施作")
}

func toTouchupRecord(resolved *domain.ResolvedTouchup) TouchupRecord {
	return TouchupRecord{
		Category:      resolved.Category,
		LastVisitDate: resolved.LastVisitDate.Format(domain.DateFormat),
		ElapsedMonths: resolved.ElapsedMonths,
		MatchedPrice:  resolved.MatchedPrice,
		WindowLabel:   resolved.WindowLabel,
	}
}
