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
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Manager управляет конфигурацией приложения
type Manager interface {
	GetConfig() *Configuration
}

// BuildInfo параметры, переданные при сборке через -ldflags
type BuildInfo struct {
	Environment string
	PathLocales string
	Version     string
}

// Переменные для переопределения значений при сборке
var (
	BuildEnvironment string
	BuildPathLocales string
	BuildVersion     string
)

// GetBuildInfo собирает параметры сборки
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Environment: BuildEnvironment,
		PathLocales: BuildPathLocales,
		Version:     BuildVersion,
	}
}

// Константы форматов вывода
const (
	FormatText = "text" // CLI текстовый вывод
	FormatJSON = "json" // CLI JSON вывод
)

// Configuration основная конфигурация приложения
type Configuration struct {
	Environment string        `yaml:"environment" env:"SPOTLIGHT_ENV" env-default:"prod"`
	PathLocales string        `yaml:"pathLocales" env:"SPOTLIGHT_LOCALES" env-default:"/usr/share/locale"`
	Format      string        `yaml:"format" env:"SPOTLIGHT_FORMAT" env-default:"text"`
	CallTimeout time.Duration `yaml:"callTimeout" env:"SPOTLIGHT_CALL_TIMEOUT" env-default:"25s"`
	// EagerResolve по умолчанию true, значение задается в newConfigManager
	EagerResolve    bool `yaml:"eagerResolve" env:"SPOTLIGHT_EAGER_RESOLVE"`
	VerifyInterface bool `yaml:"verifyInterface" env:"SPOTLIGHT_VERIFY_INTERFACE"`
	LogStderr       bool `yaml:"logStderr" env:"SPOTLIGHT_LOG_STDERR"`

	Version    string `yaml:"-"`
	ConfigPath string `yaml:"-"`
	DevMode    bool   `yaml:"-"`
}

// configManagerImpl реализация Manager
type configManagerImpl struct {
	config *Configuration
}

// NewConfigManager создает новый менеджер конфигурации
func NewConfigManager(buildInfo BuildInfo) (Manager, error) {
	return newConfigManager(buildInfo, defaultConfigPaths())
}

func newConfigManager(buildInfo BuildInfo, paths []string) (Manager, error) {
	cm := &configManagerImpl{
		config: &Configuration{EagerResolve: true},
	}

	if err := cm.loadConfiguration(buildInfo, paths); err != nil {
		return nil, err
	}

	return cm, nil
}

// loadConfiguration загружает конфигурацию из файла и окружения,
// параметры сборки применяются последними и имеют приоритет
func (cm *configManagerImpl) loadConfiguration(buildInfo BuildInfo, paths []string) error {
	if err := cm.loadConfigFile(paths); err != nil {
		return err
	}

	cm.applyBuildInfo(buildInfo)

	if err := cm.validate(); err != nil {
		return err
	}

	cm.config.DevMode = cm.config.Environment != "prod"

	return nil
}

// applyBuildInfo применяет параметры времени сборки
func (cm *configManagerImpl) applyBuildInfo(buildInfo BuildInfo) {
	if buildInfo.Environment != "" {
		cm.config.Environment = buildInfo.Environment
	}
	if buildInfo.PathLocales != "" {
		cm.config.PathLocales = buildInfo.PathLocales
	}
	cm.config.Version = buildInfo.Version
	if cm.config.Version == "" {
		cm.config.Version = "dev"
	}
}

// loadConfigFile читает первый найденный YAML файл, переменные окружения читаются в любом случае
func (cm *configManagerImpl) loadConfigFile(paths []string) error {
	for _, path := range paths {
		if !fileExists(path) {
			continue
		}

		if err := cleanenv.ReadConfig(path, cm.config); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		cm.config.ConfigPath = path

		return nil
	}

	if err := cleanenv.ReadEnv(cm.config); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	return nil
}

func (cm *configManagerImpl) validate() error {
	switch cm.config.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", cm.config.Format)
	}

	if cm.config.CallTimeout <= 0 {
		return fmt.Errorf("callTimeout must be positive, got %s", cm.config.CallTimeout)
	}

	return nil
}

// GetConfig возвращает конфигурацию
func (cm *configManagerImpl) GetConfig() *Configuration {
	return cm.config
}

// defaultConfigPaths порядок поиска файла конфигурации, только абсолютные пути
func defaultConfigPaths() []string {
	var paths []string

	if dir, err := os.UserConfigDir(); err == nil && filepath.IsAbs(dir) {
		paths = append(paths, filepath.Join(dir, "spotlightctl", "config.yml"))
	}

	return append(paths, "/etc/spotlightctl/config.yml")
}

// fileExists проверяет существование файла
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
