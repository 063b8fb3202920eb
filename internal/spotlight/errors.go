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

package spotlight

import (
	"context"
	"errors"
	"fmt"

	"spotlight/internal/common/app"

	"github.com/godbus/dbus/v5"
)

// Классы ошибок, проверяются через errors.Is
var (
	ErrConnection     = errors.New("session bus is not reachable")
	ErrResolution     = errors.New("remote object cannot be resolved")
	ErrRemoteCall     = errors.New("remote call failed")
	ErrAlreadyInvoked = errors.New("switch_mode has already been invoked by this client")
)

// Reason уточняет причину ошибки разрешения или вызова
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonServiceUnknown
	ReasonInterfaceUnknown
	ReasonMethodUnknown
	ReasonTimeout
	ReasonCanceled
	ReasonRemote
)

func (r Reason) String() string {
	switch r {
	case ReasonServiceUnknown:
		return "service-unknown"
	case ReasonInterfaceUnknown:
		return "interface-unknown"
	case ReasonMethodUnknown:
		return "method-unknown"
	case ReasonTimeout:
		return "timeout"
	case ReasonCanceled:
		return "canceled"
	case ReasonRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Имена ошибок, которые возвращает dbus-daemon и библиотеки на стороне сервиса
var dbusErrorReasons = map[string]Reason{
	"org.freedesktop.DBus.Error.ServiceUnknown":   ReasonServiceUnknown,
	"org.freedesktop.DBus.Error.NameHasNoOwner":   ReasonServiceUnknown,
	"org.freedesktop.DBus.Error.UnknownObject":    ReasonInterfaceUnknown,
	"org.freedesktop.DBus.Error.UnknownInterface": ReasonInterfaceUnknown,
	"org.freedesktop.DBus.Error.UnknownMethod":    ReasonMethodUnknown,
	"org.freedesktop.DBus.Error.NoReply":          ReasonTimeout,
	"org.freedesktop.DBus.Error.Timeout":          ReasonTimeout,
	"org.freedesktop.DBus.Error.TimedOut":         ReasonTimeout,
}

// ConnectionError шина сессии недоступна
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf(app.T_("cannot connect to the session bus: %v"), e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// ResolutionError объект не найден при проверке до вызова
type ResolutionError struct {
	Service string
	Path    dbus.ObjectPath
	Reason  Reason
	Err     error
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf(app.T_("cannot resolve %s at %s (%s)"), e.Service, e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }

func (e *ResolutionError) Is(target error) bool { return target == ErrResolution }

// RemoteCallError вызов дошел до шины, но завершился ошибкой
type RemoteCallError struct {
	Method   string
	Reason   Reason
	DBusName string
	Err      error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf(app.T_("call to %s failed (%s): %v"), e.Method, e.Reason, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

func (e *RemoteCallError) Is(target error) bool { return target == ErrRemoteCall }

// newRemoteCallError классифицирует ошибку, пришедшую из godbus
func newRemoteCallError(method string, err error) *RemoteCallError {
	reason, name := classify(err)
	return &RemoteCallError{
		Method:   method,
		Reason:   reason,
		DBusName: name,
		Err:      err,
	}
}

// classify возвращает причину и имя DBus-ошибки, если оно есть
func classify(err error) (Reason, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout, ""
	case errors.Is(err, context.Canceled):
		return ReasonCanceled, ""
	}

	name := dbusErrorName(err)
	if name == "" {
		return ReasonUnknown, ""
	}
	if reason, ok := dbusErrorReasons[name]; ok {
		return reason, name
	}

	return ReasonRemote, name
}

// godbus отдает ошибки и значением, и указателем
func dbusErrorName(err error) string {
	var value dbus.Error
	if errors.As(err, &value) {
		return value.Name
	}

	var ptr *dbus.Error
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Name
	}

	return ""
}
