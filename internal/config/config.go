package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/BurntSushi/toml"

	"github.com/AM-Studio-19/am-booking/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Line     LineConfig     `toml:"line"`
	Studio   StudioConfig   `toml:"studio"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к базе данных
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL возвращает строку подключения в URL-формате (для migrate)
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LineConfig настройки интеграции с LINE Messaging API
type LineConfig struct {
	Enabled      bool   `toml:"enabled"`
	APIURL       string `toml:"api_url"`
	ChannelToken string `toml:"channel_token"`
	Timeout      int    `toml:"timeout"`
}

// StudioConfig бизнес-настройки студии
type StudioConfig struct {
	AdminPIN        string          `toml:"admin_pin"`
	DepositPerGuest int64           `toml:"deposit_per_guest"`
	Bank            BankConfig      `toml:"bank"`
	Categories      []string        `toml:"categories"`
	Locations       []Location      `toml:"locations"`
	TouchupWindows  []TouchupWindow `toml:"touchup_windows"`
}

// BankConfig реквизиты для перевода депозита
type BankConfig struct {
	Code     string `toml:"code"`
	BankName string `toml:"bank_name"`
	Account  string `toml:"account"`
}

// Location локация студии
type Location struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// TouchupWindow временное окно для подбора цены коррекции
type TouchupWindow struct {
	MaxMonths int    `toml:"max_months"`
	Label     string `toml:"label"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "am-booking"
	}
	if cfg.Studio.DepositPerGuest == 0 {
		cfg.Studio.DepositPerGuest = domain.DefaultDepositPerGuest
	}
	if len(cfg.Studio.Categories) == 0 {
		cfg.Studio.Categories = domain.DefaultTouchupCategories
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return errors.New("database host and dbname are required")
	}
	if cfg.Studio.AdminPIN == "" {
		return errors.New("studio.admin_pin is required")
	}
	if len(cfg.Studio.Locations) == 0 {
		return errors.New("at least one studio location is required")
	}
	for i, w := range cfg.Studio.TouchupWindows {
		if w.MaxMonths <= 0 || w.Label == "" {
			return fmt.Errorf("touchup_windows[%d]: max_months must be positive and label non-empty", i)
		}
		if i > 0 && w.MaxMonths <= cfg.Studio.TouchupWindows[i-1].MaxMonths {
			return fmt.Errorf("touchup_windows[%d]: max_months must be strictly increasing", i)
		}
	}
	return nil
}

// TouchupWindowTable возвращает таблицу окон коррекции для движка
// Если таблица не задана в конфиге - используется стандартное расписание студии
func (c *StudioConfig) TouchupWindowTable() []domain.TouchupWindow {
	if len(c.TouchupWindows) == 0 {
		return domain.DefaultTouchupWindows
	}

	windows := make([]domain.TouchupWindow, len(c.TouchupWindows))
	for i, w := range c.TouchupWindows {
		windows[i] = domain.TouchupWindow{MaxMonths: w.MaxMonths, Label: w.Label}
	}
	return windows
}

// DomainLocations возвращает локации студии в domain-представлении
func (c *StudioConfig) DomainLocations() []domain.Location {
	locations := make([]domain.Location, len(c.Locations))
	for i, l := range c.Locations {
		locations[i] = domain.Location{ID: l.ID, Name: l.Name}
	}
	return locations
}
