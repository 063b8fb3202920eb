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
	"os"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

const textDomain = "spotlightctl"

// translatorImpl реализация Translator, каталоги загружаются лениво
type translatorImpl struct {
	localesPath string
	once        sync.Once
}

// NewTranslator создает новый переводчик
func NewTranslator(localesPath string) Translator {
	return &translatorImpl{
		localesPath: localesPath,
	}
}

func (t *translatorImpl) initLocales() {
	t.once.Do(func() {
		if _, err := os.Stat(t.localesPath); os.IsNotExist(err) {
			Log.Debug("Translations folder not found at path: " + t.localesPath)
		}

		gotext.Configure(t.localesPath, GetSystemLocale().String(), textDomain)
	})
}

// T_ возвращает переведенную строку
func (t *translatorImpl) T_(messageID string) string {
	t.initLocales()
	return gotext.Get(messageID)
}

// GetSystemLocale возвращает базовый язык системы в виде language.Tag.
func GetSystemLocale() language.Tag {
	var localeStr string
	if v := os.Getenv("LC_ALL"); v != "" {
		localeStr = stripAfterDot(v)
	} else if v := os.Getenv("LC_MESSAGES"); v != "" {
		localeStr = stripAfterDot(v)
	} else {
		localeStr = stripAfterDot(os.Getenv("LANG"))
	}

	// BCP 47 использует "-" вместо "_"
	localeStr = strings.Replace(localeStr, "_", "-", 1)
	tag, err := language.Parse(localeStr)
	if err != nil {
		return language.English
	}

	base, _ := tag.Base()
	return language.Make(base.String())
}

func stripAfterDot(localeStr string) string {
	if idx := strings.Index(localeStr, "."); idx != -1 {
		return localeStr[:idx]
	}
	return localeStr
}
