package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	serviceRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/catalog"
	templateRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/template"
	"github.com/AM-Studio-19/am-booking/internal/service/catalog/models"
	"github.com/AM-Studio-19/am-booking/pkg/ptr"
)

type mockServiceRepo struct {
	items         []*domain.Service
	gotOnlyActive bool
	updated       *domain.Service
	deletedID     int64
	notFound      bool
}

func (m *mockServiceRepo) List(_ context.Context, onlyActive bool) ([]*domain.Service, error) {
	m.gotOnlyActive = onlyActive
	return m.items, nil
}

func (m *mockServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	for _, s := range m.items {
		if s.ID == id {
			return s, nil
		}
	}
	if m.updated != nil && m.updated.ID == id {
		return m.updated, nil
	}
	return nil, serviceRepo.ErrServiceNotFound
}

func (m *mockServiceRepo) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	created := *service
	created.ID = 101
	return &created, nil
}

func (m *mockServiceRepo) Update(_ context.Context, service *domain.Service) error {
	if m.notFound {
		return serviceRepo.ErrServiceNotFound
	}
	m.updated = service
	return nil
}

func (m *mockServiceRepo) Delete(_ context.Context, id int64) error {
	if m.notFound {
		return serviceRepo.ErrServiceNotFound
	}
	m.deletedID = id
	return nil
}

type mockDiscountRepo struct {
	items []*domain.Discount
}

func (m *mockDiscountRepo) List(_ context.Context, _ bool) ([]*domain.Discount, error) {
	return m.items, nil
}

func (m *mockDiscountRepo) GetByID(_ context.Context, id int64) (*domain.Discount, error) {
	for _, d := range m.items {
		if d.ID == id {
			return d, nil
		}
	}
	return &domain.Discount{ID: id}, nil
}

func (m *mockDiscountRepo) Create(_ context.Context, discount *domain.Discount) (*domain.Discount, error) {
	created := *discount
	created.ID = 201
	return &created, nil
}

func (m *mockDiscountRepo) Update(_ context.Context, _ *domain.Discount) error {
	return nil
}

func (m *mockDiscountRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

type mockTemplateRepo struct {
	items    []*domain.Template
	notFound bool
}

func (m *mockTemplateRepo) List(_ context.Context) ([]*domain.Template, error) {
	return m.items, nil
}

func (m *mockTemplateRepo) Create(_ context.Context, template *domain.Template) (*domain.Template, error) {
	created := *template
	created.ID = 301
	return &created, nil
}

func (m *mockTemplateRepo) Update(_ context.Context, _ *domain.Template) error {
	if m.notFound {
		return templateRepo.ErrTemplateNotFound
	}
	return nil
}

func (m *mockTemplateRepo) Delete(_ context.Context, _ int64) error {
	if m.notFound {
		return templateRepo.ErrTemplateNotFound
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(services *mockServiceRepo, discounts *mockDiscountRepo, templates *mockTemplateRepo) *Service {
	return NewService(services, discounts, templates, noopLogger{})
}

func validServicePayload() *models.ServicePayload {
	return &models.ServicePayload{
		Name:            "頂級霧眉 (首次)",
		Price:           8800,
		Category:        "霧眉",
		Type:            string(domain.ServiceTypeFirstTime),
		DurationMinutes: 120,
	}
}

func TestGetCatalog(t *testing.T) {
	services := &mockServiceRepo{items: []*domain.Service{
		{ID: 1, Name: "頂級霧眉 (首次)", Category: "霧眉", Active: true},
	}}
	discounts := &mockDiscountRepo{items: []*domain.Discount{
		{ID: 5, Name: "閨蜜同行優惠", Amount: 500, Active: true},
	}}
	templates := &mockTemplateRepo{items: []*domain.Template{
		{ID: 9, Title: "預約提醒", Content: "您好，提醒您明天的預約"},
	}}

	svc := newTestService(services, discounts, templates)

	t.Run("customer view filters inactive", func(t *testing.T) {
		resp, err := svc.GetCatalog(context.Background(), false)
		require.NoError(t, err)

		assert.True(t, services.gotOnlyActive)
		require.Len(t, resp.Services, 1)
		require.Len(t, resp.Discounts, 1)
		require.Len(t, resp.Templates, 1)
	})

	t.Run("admin view includes inactive", func(t *testing.T) {
		_, err := svc.GetCatalog(context.Background(), true)
		require.NoError(t, err)
		assert.False(t, services.gotOnlyActive)
	})
}

func TestCreateService(t *testing.T) {
	t.Run("creates and returns with id", func(t *testing.T) {
		svc := newTestService(&mockServiceRepo{}, &mockDiscountRepo{}, &mockTemplateRepo{})

		resp, err := svc.CreateService(context.Background(), validServicePayload())
		require.NoError(t, err)
		assert.Equal(t, int64(101), resp.ID)
		assert.True(t, resp.Active, "active defaults to true")
	})

	t.Run("validation", func(t *testing.T) {
		svc := newTestService(&mockServiceRepo{}, &mockDiscountRepo{}, &mockTemplateRepo{})

		tests := []struct {
			name   string
			mutate func(*models.ServicePayload)
		}{
			{"empty name", func(p *models.ServicePayload) { p.Name = "  " }},
			{"negative price", func(p *models.ServicePayload) { p.Price = -1 }},
			{"empty category", func(p *models.ServicePayload) { p.Category = "" }},
			{"unknown type", func(p *models.ServicePayload) { p.Type = "промо" }},
			{"touch-up without time range", func(p *models.ServicePayload) {
				p.Type = string(domain.ServiceTypeTouchup)
				p.TimeRange = nil
			}},
			{"negative duration", func(p *models.ServicePayload) { p.DurationMinutes = -30 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				payload := validServicePayload()
				tt.mutate(payload)

				_, err := svc.CreateService(context.Background(), payload)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("touch-up with time range passes", func(t *testing.T) {
		svc := newTestService(&mockServiceRepo{}, &mockDiscountRepo{}, &mockTemplateRepo{})

		payload := validServicePayload()
		payload.Type = string(domain.ServiceTypeTouchup)
		payload.TimeRange = ptr.Ptr("3個月內")

		resp, err := svc.CreateService(context.Background(), payload)
		require.NoError(t, err)
		require.NotNil(t, resp.TimeRange)
		assert.Equal(t, "3個月內", *resp.TimeRange)
	})
}

func TestUpdateService(t *testing.T) {
	t.Run("re-reads after update", func(t *testing.T) {
		repo := &mockServiceRepo{}
		svc := newTestService(repo, &mockDiscountRepo{}, &mockTemplateRepo{})

		payload := validServicePayload()
		payload.Price = 9200

		resp, err := svc.UpdateService(context.Background(), 1, payload)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, int64(9200), resp.Price)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &mockServiceRepo{notFound: true}
		svc := newTestService(repo, &mockDiscountRepo{}, &mockTemplateRepo{})

		_, err := svc.UpdateService(context.Background(), 404, validServicePayload())
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestDeleteService(t *testing.T) {
	t.Run("deletes by id", func(t *testing.T) {
		repo := &mockServiceRepo{}
		svc := newTestService(repo, &mockDiscountRepo{}, &mockTemplateRepo{})

		require.NoError(t, svc.DeleteService(context.Background(), 7))
		assert.Equal(t, int64(7), repo.deletedID)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &mockServiceRepo{notFound: true}
		svc := newTestService(repo, &mockDiscountRepo{}, &mockTemplateRepo{})

		assert.ErrorIs(t, svc.DeleteService(context.Background(), 404), ErrItemNotFound)
	})
}

func TestDiscounts(t *testing.T) {
	svc := newTestService(&mockServiceRepo{}, &mockDiscountRepo{}, &mockTemplateRepo{})

	t.Run("create", func(t *testing.T) {
		resp, err := svc.CreateDiscount(context.Background(), &models.DiscountPayload{
			Name:   "閨蜜同行優惠",
			Amount: 500,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(201), resp.ID)
		assert.True(t, resp.Active)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateDiscount(context.Background(), &models.DiscountPayload{Name: "", Amount: 500})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.CreateDiscount(context.Background(), &models.DiscountPayload{Name: "優惠", Amount: -1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestTemplates(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		svc := newTestService(&mockServiceRepo{}, &mockDiscountRepo{}, &mockTemplateRepo{})

		resp, err := svc.CreateTemplate(context.Background(), &models.TemplatePayload{
			Title:   "預約提醒",
			Content: "您好，提醒您明天的預約",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(301), resp.ID)
	})

	t.Run("validation", func(t *testing.T) {
		svc := newTestService(&mockServiceRepo{}, &mockDiscountRepo{}, &mockTemplateRepo{})

		_, err := svc.CreateTemplate(context.Background(), &models.TemplatePayload{Title: "", Content: "內容"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.CreateTemplate(context.Background(), &models.TemplatePayload{Title: "標題", Content: " "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("update responds with the submitted payload", func(t *testing.T) {
		svc := newTestService(&mockServiceRepo{}, &mockDiscountRepo{}, &mockTemplateRepo{})

		resp, err := svc.UpdateTemplate(context.Background(), 9, &models.TemplatePayload{
			Title:   "改期通知",
			Content: "您的預約已改期",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.ID)
		assert.Equal(t, "改期通知", resp.Title)
	})

	t.Run("update unknown id", func(t *testing.T) {
		svc := newTestService(&mockServiceRepo{}, &mockDiscountRepo{}, &mockTemplateRepo{notFound: true})

		_, err := svc.UpdateTemplate(context.Background(), 404, &models.TemplatePayload{
			Title:   "標題",
			Content: "內容",
		})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}
