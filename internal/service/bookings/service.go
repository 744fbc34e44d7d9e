package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	bookingRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/booking"
	"github.com/AM-Studio-19/am-booking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по внутреннему ID
// Используется админкой студии
func (s *Service) GetByID(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", bookingID)

	booking, err := s.getBooking(ctx, "GetByID", bookingID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// GetByCode получает группу бронирований по публичному коду
// Код знает только клиент, поэтому дополнительных проверок доступа нет
func (s *Service) GetByCode(ctx context.Context, code string) (*models.BookingGroupResponse, error) {
	s.logger.Info("GetByCode: fetching bookings code=%s", code)

	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: code must not be empty", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByCode: bookings code=%s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCode: successfully fetched %d bookings for code=%s", len(bookings), code)
	return models.FromDomainBookingGroup(bookings), nil
}

// Search ищет бронирования клиента по телефону или имени
// Результат отсортирован от новых к старым
func (s *Service) Search(ctx context.Context, query string) (*models.BookingListResponse, error) {
	s.logger.Info("Search: searching bookings by query=%s", query)

	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query must not be empty", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.SearchByCustomer(ctx, strings.TrimSpace(query))
	if err != nil {
		s.logger.Error("Search: repository error for query=%s: %v", query, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d bookings for query=%s", len(bookings), query)
	return models.FromDomainBookingList(bookings), nil
}

// GetWithFilter получает бронирования с гибкой фильтрацией
// Используется админкой студии
//
// Примеры использования:
// - Все активные бронирования: GetWithFilter(ctx, &GetBookingsRequest{})
// - Бронирования локации на дату: указать LocationID и Date
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetWithFilter(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "GetWithFilter: fetching bookings"
	if req.LocationID != nil {
		logMsg += fmt.Sprintf(", location=%s", *req.LocationID)
	}
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetWithFilter: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}
	if filter.Limit == 0 {
		filter.Limit = domain.DefaultBookingsLimit
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetWithFilter: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWithFilter - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWithFilter: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования и/или статус оплаты
// Доступно только админке студии
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d, status=%v, paymentStatus=%v",
		bookingID, req.Status, req.PaymentStatus)

	if req.Status == nil && req.PaymentStatus == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if _, err := s.getBooking(ctx, "UpdateStatus", bookingID); err != nil {
		return err
	}

	if req.Status != nil {
		newStatus, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", *req.Status, bookingID)
			return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	if req.PaymentStatus != nil {
		newStatus, err := models.ToDomainPaymentStatus(*req.PaymentStatus)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid paymentStatus=%s for booking id=%d", *req.PaymentStatus, bookingID)
			return fmt.Errorf("%w: invalid payment status", ErrInvalidStatus)
		}

		if err := s.bookingRepo.UpdatePaymentStatus(ctx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d", bookingID)
	return nil
}

// Cancel отменяет бронирование
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long (max %d)",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// ReportPayment фиксирует сообщение клиента о переводе депозита
// Последние 5 цифр счёта сохраняются у всей группы, статус оплаты
// переходит в reported; верификацию выполняет студия вручную
func (s *Service) ReportPayment(ctx context.Context, req *models.ReportPaymentRequest) (*models.BookingGroupResponse, error) {
	s.logger.Info("ReportPayment: reporting payment for code=%s", req.Code)

	if strings.TrimSpace(req.Code) == "" {
		return nil, fmt.Errorf("%w: code must not be empty", ErrInvalidInput)
	}
	if err := validateLast5(req.Last5); err != nil {
		s.logger.Warn("ReportPayment: invalid last5 for code=%s", req.Code)
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ReportPayment: bookings code=%s not found", req.Code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ReportPayment: repository error for code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: ReportPayment - repository error: %v", ErrInternal, err)
	}

	// Сообщить об оплате можно, пока хотя бы одна запись группы ждёт депозит
	canReport := false
	for _, booking := range bookings {
		if booking.CanReportPayment() {
			canReport = true
			break
		}
	}
	if !canReport {
		s.logger.Warn("ReportPayment: no unpaid bookings in group code=%s", req.Code)
		return nil, ErrCannotReportPayment
	}

	if err := s.bookingRepo.ReportPaymentByCode(ctx, req.Code, req.Last5, s.timeProvider.Now()); err != nil {
		s.logger.Error("ReportPayment: repository error for code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: ReportPayment - repository error: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.GetByCode(ctx, req.Code)
	if err != nil {
		s.logger.Error("ReportPayment: failed to re-read group code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: ReportPayment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReportPayment: successfully reported payment for code=%s", req.Code)
	return models.FromDomainBookingGroup(updated), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func validateLast5(last5 string) error {
	if len(last5) != domain.PaymentLast5Length {
		return fmt.Errorf("%w: last5 must be exactly %d digits", ErrInvalidInput, domain.PaymentLast5Length)
	}
	for _, r := range last5 {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%w: last5 must contain digits only", ErrInvalidInput)
		}
	}
	return nil
}
