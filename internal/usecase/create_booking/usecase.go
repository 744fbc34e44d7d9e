package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	catalogRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/catalog"
	discountRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/discount"
	settingsRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/settings"
)

// UseCase use case создания группового бронирования
// Записи всех гостей создаются атомарно в сериализуемой транзакции
type UseCase struct {
	bookingRepo     BookingRepository
	catalogRepo     CatalogRepository
	discountRepo    DiscountRepository
	settingsRepo    SettingsRepository
	lineClient      LineClient // nil, если интеграция отключена
	txManager       TransactionManager
	locations       []domain.Location
	depositPerGuest int64
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	discountRepo DiscountRepository,
	settingsRepo SettingsRepository,
	lineClient LineClient,
	txManager TransactionManager,
	locations []domain.Location,
	depositPerGuest int64,
	logger Logger,
) *UseCase {
	if depositPerGuest <= 0 {
		depositPerGuest = domain.DefaultDepositPerGuest
	}

	return &UseCase{
		bookingRepo:     bookingRepo,
		catalogRepo:     catalogRepo,
		discountRepo:    discountRepo,
		settingsRepo:    settingsRepo,
		lineClient:      lineClient,
		txManager:       txManager,
		locations:       locations,
		depositPerGuest: depositPerGuest,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: location=%s, date=%s, time=%s, guests=%d",
		req.LocationID, req.Date.Format(domain.DateFormat), req.StartTime, len(req.Guests))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем локацию
	location, err := validateLocationExists(uc.locations, req.LocationID)
	if err != nil {
		uc.logger.Warn("CreateBooking: location id=%s not found", req.LocationID)
		return nil, err
	}

	// 3. Проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем дату и слот против настроек локации
	settings, err := uc.settingsRepo.GetByLocation(ctx, req.LocationID)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("CreateBooking: failed to get settings for location=%s: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if settings == nil {
		settings = &domain.LocationSettings{
			LocationID: req.LocationID,
			TimeSlots:  domain.DefaultTimeSlots,
		}
		uc.logger.Info("CreateBooking: no settings for location=%s, using defaults", req.LocationID)
	}

	if err := validateSlot(settings, req); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 5. Создаем записи всех гостей атомарно
	code := uuid.NewString()
	created := make([]*domain.Booking, 0, len(req.Guests))

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for i, guest := range req.Guests {
			booking, err := uc.buildGuestBooking(txCtx, req, location, code, i, guest)
			if err != nil {
				return err
			}

			saved, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to create booking for guest %d: %v", i+1, err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}
			created = append(created, saved)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created %d bookings, code=%s", len(created), code)

	resp := buildResponse(code, location, req, created)

	// 6. Best-effort уведомление в LINE - сбой доставки не ломает бронирование
	if uc.lineClient != nil && req.LineUserID != nil {
		text := fmt.Sprintf("預約已送出！\n%s %s %s\n共 %d 位，訂金 $%d",
			resp.LocationName, req.Date.Format(domain.DateFormat), req.StartTime,
			len(created), resp.TotalDeposit)
		_ = uc.lineClient.PushMessageWithGracefulDegradation(ctx, *req.LineUserID, text)
	}

	return resp, nil
}

// buildGuestBooking собирает доменную модель бронирования одного гостя
// Название услуг, цена и длительность денормализуются на момент записи
func (uc *UseCase) buildGuestBooking(
	ctx context.Context,
	req *Request,
	location *domain.Location,
	code string,
	guestIndex int,
	guest Guest,
) (*domain.Booking, error) {
	var (
		serviceNames []string
		totalPrice   int64
		duration     int
	)

	for _, serviceID := range guest.ServiceIDs {
		service, err := uc.catalogRepo.GetByID(ctx, serviceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%d not found", serviceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", serviceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.Active {
			uc.logger.Warn("CreateBooking: service id=%d is inactive", serviceID)
			return nil, ErrServiceInactive
		}

		serviceNames = append(serviceNames, service.Name)
		totalPrice += service.Price
		duration += service.DurationMinutes
	}

	if guest.DiscountID != nil {
		discount, err := uc.discountRepo.GetByID(ctx, *guest.DiscountID)
		if err != nil {
			if errors.Is(err, discountRepo.ErrDiscountNotFound) {
				uc.logger.Warn("CreateBooking: discount id=%d not found", *guest.DiscountID)
				return nil, ErrDiscountNotFound
			}
			uc.logger.Error("CreateBooking: failed to get discount id=%d: %v", *guest.DiscountID, err)
			return nil, fmt.Errorf("%w: failed to get discount: %v", ErrInternal, err)
		}
		if !discount.Active {
			return nil, ErrDiscountNotFound
		}

		totalPrice -= discount.Amount
		if totalPrice < 0 {
			totalPrice = 0
		}
	}

	// Телефон сопровождающего гостя наследуется от первого - по нему
	// ищется вся группа
	phone := guest.Phone
	if phone == "" {
		phone = req.Guests[0].Phone
	}

	return &domain.Booking{
		Code:            code,
		LocationID:      location.ID,
		LocationName:    location.Name,
		CustomerName:    guest.Name,
		CustomerPhone:   phone,
		ServiceName:     strings.Join(serviceNames, " + "),
		DurationMinutes: duration,
		Date:            req.Date,
		StartTime:       req.StartTime,
		GuestIndex:      guestIndex,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentUnpaid,
		TotalPrice:      totalPrice,
		Deposit:         uc.depositPerGuest,
		Notes:           req.Notes,
	}, nil
}

func buildResponse(code string, location *domain.Location, req *Request, created []*domain.Booking) *Response {
	resp := &Response{
		Code:         code,
		LocationID:   location.ID,
		LocationName: location.Name,
		Date:         req.Date,
		StartTime:    req.StartTime,
		Status:       string(domain.StatusPending),
		Bookings:     make([]GuestBooking, len(created)),
	}

	for i, b := range created {
		resp.TotalPrice += b.TotalPrice
		resp.TotalDeposit += b.Deposit
		resp.Bookings[i] = GuestBooking{
			ID:          b.ID,
			GuestIndex:  b.GuestIndex,
			GuestName:   b.CustomerName,
			ServiceName: b.ServiceName,
			TotalPrice:  b.TotalPrice,
			Deposit:     b.Deposit,
			StartTime:   b.StartTime,
		}
	}

	return resp
}
