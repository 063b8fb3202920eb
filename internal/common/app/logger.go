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
	"io"
	"os"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/sirupsen/logrus"
)

// loggerImpl реализация Logger интерфейса
type loggerImpl struct {
	*logrus.Logger
}

// NewLogger создает новый logger. Сам logrus пишет в никуда,
// вывод идёт только через hooks.
func NewLogger(devMode bool, logStderr bool) LoggerImpl {
	log := logrus.New()

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   false,
		DisableQuote:  true,
	})
	log.SetOutput(io.Discard)

	if journal.Enabled() {
		log.AddHook(&JournalHook{})
	}

	log.AddHook(&StderrHook{out: os.Stderr, enableAll: logStderr})

	if devMode {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	return &loggerImpl{Logger: log}
}

// JournalHook для записи в systemd journal
type JournalHook struct{}

func (hook *JournalHook) Fire(entry *logrus.Entry) error {
	priority := journalPriority(entry.Level)

	vars := map[string]string{
		"PRIORITY":          fmt.Sprintf("%d", priority),
		"SYSLOG_IDENTIFIER": "spotlightctl",
	}
	for k, v := range entry.Data {
		vars["SPOTLIGHT_"+journalField(k)] = fmt.Sprint(v)
	}

	return journal.Send(entry.Message, priority, vars)
}

func (hook *JournalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func journalPriority(level logrus.Level) journal.Priority {
	switch level {
	case logrus.PanicLevel:
		return journal.PriEmerg
	case logrus.FatalLevel:
		return journal.PriCrit
	case logrus.ErrorLevel:
		return journal.PriErr
	case logrus.WarnLevel:
		return journal.PriWarning
	case logrus.DebugLevel, logrus.TraceLevel:
		return journal.PriDebug
	default:
		return journal.PriInfo
	}
}

// journalField приводит ключ к виду, допустимому для поля journal: [A-Z0-9_]
func journalField(key string) string {
	out := make([]rune, 0, len(key))
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, r-'a'+'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// StderrHook для вывода логов в stderr
type StderrHook struct {
	out       io.Writer
	enableAll bool
}

func (hook *StderrHook) Fire(entry *logrus.Entry) error {
	// Без флага пропускаем только Fatal/Panic
	if !hook.enableAll && entry.Level != logrus.FatalLevel && entry.Level != logrus.PanicLevel {
		return nil
	}

	line, err := entry.String()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(hook.out, line)
	return err
}

func (hook *StderrHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
