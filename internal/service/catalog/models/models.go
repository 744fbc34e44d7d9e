package models

import (
	"time"

	"github.com/AM-Studio-19/am-booking/internal/domain"
)

// Request модели

// ServicePayload данные услуги при создании/обновлении
type ServicePayload struct {
	Name            string  `json:"name"`
	Price           int64   `json:"price"`
	Category        string  `json:"category"`
	Type            string  `json:"type"` // "首次" или "補色"
	Session         *string `json:"session,omitempty"`
	TimeRange       *string `json:"timeRange,omitempty"`
	IsDarkLip       bool    `json:"isDarkLip,omitempty"`
	SortOrder       int     `json:"sortOrder,omitempty"`
	Active          *bool   `json:"active,omitempty"` // nil = true при создании
	DurationMinutes int     `json:"durationMinutes,omitempty"`
}

// DiscountPayload данные скидки при создании/обновлении
type DiscountPayload struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	Active *bool  `json:"active,omitempty"`
}

// TemplatePayload данные шаблона сообщения при создании/обновлении
type TemplatePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ToDomainService конвертирует payload в domain модель
func (p *ServicePayload) ToDomainService(id int64) *domain.Service {
	active := true
	if p.Active != nil {
		active = *p.Active
	}

	return &domain.Service{
		ID:              id,
		Name:            p.Name,
		Price:           p.Price,
		Category:        p.Category,
		Type:            domain.ServiceType(p.Type),
		Session:         p.Session,
		TimeRange:       p.TimeRange,
		IsDarkLip:       p.IsDarkLip,
		SortOrder:       p.SortOrder,
		Active:          active,
		DurationMinutes: p.DurationMinutes,
	}
}

// ToDomainDiscount конвертирует payload в domain модель
func (p *DiscountPayload) ToDomainDiscount(id int64) *domain.Discount {
	active := true
	if p.Active != nil {
		active = *p.Active
	}

	return &domain.Discount{
		ID:     id,
		Name:   p.Name,
		Amount: p.Amount,
		Active: active,
	}
}

// ToDomainTemplate конвертирует payload в domain модель
func (p *TemplatePayload) ToDomainTemplate(id int64) *domain.Template {
	return &domain.Template{
		ID:      id,
		Title:   p.Title,
		Content: p.Content,
	}
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           int64   `json:"price"`
	Category        string  `json:"category"`
	Type            string  `json:"type"`
	Session         *string `json:"session,omitempty"`
	TimeRange       *string `json:"timeRange,omitempty"`
	IsDarkLip       bool    `json:"isDarkLip"`
	SortOrder       int     `json:"sortOrder"`
	Active          bool    `json:"active"`
	DurationMinutes int     `json:"durationMinutes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DiscountResponse ответ с данными скидки
type DiscountResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	Active bool   `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TemplateResponse ответ с данными шаблона сообщения
type TemplateResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CatalogResponse совокупный каталог студии
type CatalogResponse struct {
	Services  []ServiceResponse  `json:"services"`
	Discounts []DiscountResponse `json:"discounts"`
	Templates []TemplateResponse `json:"templates"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		Category:        s.Category,
		Type:            string(s.Type),
		Session:         s.Session,
		TimeRange:       s.TimeRange,
		IsDarkLip:       s.IsDarkLip,
		SortOrder:       s.SortOrder,
		Active:          s.Active,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		if resp := FromDomainService(s); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// FromDomainDiscount конвертирует domain модель в DTO
func FromDomainDiscount(d *domain.Discount) *DiscountResponse {
	if d == nil {
		return nil
	}

	return &DiscountResponse{
		ID:        d.ID,
		Name:      d.Name,
		Amount:    d.Amount,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// FromDomainDiscountList конвертирует список domain моделей в DTO
func FromDomainDiscountList(discounts []*domain.Discount) []DiscountResponse {
	result := make([]DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		if resp := FromDomainDiscount(d); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// FromDomainTemplate конвертирует domain модель в DTO
func FromDomainTemplate(t *domain.Template) *TemplateResponse {
	if t == nil {
		return nil
	}

	return &TemplateResponse{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromDomainTemplateList конвертирует список domain моделей в DTO
func FromDomainTemplateList(templates []*domain.Template) []TemplateResponse {
	result := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		if resp := FromDomainTemplate(t); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
