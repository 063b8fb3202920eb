// Spotlight Control
// Copyright (C) 2025 spotlightctl authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package app

import (
	"context"
	"fmt"
)

// Глобальные переменные для быстрого доступа к переводу и log
var (
	Log LoggerImpl
	T_  func(string) string
)

// Инициализируем функции переводов и логирования автоматически при импорте модуля для тестов
func init() {
	if T_ == nil {
		T_ = func(s string) string { return s }
	}
	if Log == nil {
		Log = &testLogger{}
	}
}

// testLogger простая реализация LoggerImpl для тестов
type testLogger struct{}

func (l *testLogger) Debug(...interface{})          {}
func (l *testLogger) Debugf(string, ...interface{}) {}
func (l *testLogger) Info(...interface{})           {}
func (l *testLogger) Error(...interface{})          {}

// LoggerImpl интерфейс для логирования
type LoggerImpl interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Error(args ...interface{})
}

// Translator интерфейс для переводов
type Translator interface {
	T_(messageID string) string
}

type contextKey string

const AppConfigKey contextKey = "appConfig"

// GetAppConfig достать конфиг приложения из контекста
func GetAppConfig(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(AppConfigKey).(*Config); ok {
		return cfg
	}
	panic("AppConfig not found in context")
}

// Config централизованный конфиг приложения
type Config struct {
	ConfigManager Manager
	DBusManager   DBusManager
}

// NewAppConfig создает новое приложение
func NewAppConfig(configManager Manager, dbusManager DBusManager) *Config {
	return &Config{
		ConfigManager: configManager,
		DBusManager:   dbusManager,
	}
}

// InitializeAppDefault инициализация приложения с параметрами сборки
func InitializeAppDefault() (*Config, error) {
	return InitializeApp(GetBuildInfo())
}

// InitializeApp инициализирует полное приложение с конфигурацией
func InitializeApp(buildInfo BuildInfo) (*Config, error) {
	configManager, err := NewConfigManager(buildInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	config := configManager.GetConfig()
	Log = NewLogger(config.DevMode, config.LogStderr)

	translator := NewTranslator(config.PathLocales)
	T_ = translator.T_

	return NewAppConfig(configManager, NewDBusManager()), nil
}
