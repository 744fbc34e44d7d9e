package create_booking

import (
	"time"

	"github.com/AM-Studio-19/am-booking/pkg/types"
)

// Guest гость в составе группового бронирования
type Guest struct {
	Name       string  // Имя гостя
	Phone      string  // Телефон (у сопровождающих гостей может быть пустым)
	ServiceIDs []int64 // Выбранные услуги из каталога
	DiscountID *int64  // Применяемая скидка (опционально)
}

// Request модель запроса на создание группового бронирования
type Request struct {
	LocationID string           // ID локации студии
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время начала (например, "11:00")
	Guests     []Guest          // Гости (1..MaxGuestsPerBooking)
	Notes      *string          // Заметки клиента (опционально)
	LineUserID *string          // LINE user id для уведомления (опционально)
}

// GuestBooking созданное бронирование одного гостя
type GuestBooking struct {
	ID          int64            // ID записи
	GuestIndex  int              // Порядковый номер гостя в группе
	GuestName   string           // Имя гостя
	ServiceName string           // Название услуг (снимок на момент записи)
	TotalPrice  int64            // Итоговая цена гостя
	Deposit     int64            // Депозит гостя
	StartTime   types.TimeString // Время начала
}

// Response модель ответа с созданной группой бронирований
type Response struct {
	Code         string         // Публичный код группы
	LocationID   string         // ID локации
	LocationName string         // Название локации
	Date         time.Time      // Дата записи
	StartTime    types.TimeString
	Status       string         // Статус созданных записей
	TotalPrice   int64          // Суммарная цена группы
	TotalDeposit int64          // Суммарный депозит группы
	Bookings     []GuestBooking // Записи по гостям
}
