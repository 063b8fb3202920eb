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

import "github.com/godbus/dbus/v5"

// Адрес объекта, который экспортирует расширение GNOME Shell
const (
	ServiceName   = "org.gnome.shell.extensions.spotlight"
	ObjectPath    = dbus.ObjectPath("/org/gnome/shell/extensions/spotlight")
	InterfaceName = "org.gnome.shell.extensions.spotlight"

	MethodSwitchMode = "switch_mode"
)

// Методы самой шины и стандартных интерфейсов
const (
	busNameHasOwner  = "org.freedesktop.DBus.NameHasOwner"
	methodIntrospect = "org.freedesktop.DBus.Introspectable.Introspect"
)
