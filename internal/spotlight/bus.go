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

// Bus транспорт, через который клиент достает объекты. В тестах подменяется.
type Bus interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	BusObject() dbus.BusObject
}

// DialFunc открывает соединение с шиной
type DialFunc func() (Bus, error)

// connBus адаптирует *dbus.Conn к Bus
type connBus struct {
	conn *dbus.Conn
}

// WrapConn оборачивает готовое соединение godbus
func WrapConn(conn *dbus.Conn) Bus {
	return &connBus{conn: conn}
}

func (b *connBus) Object(dest string, path dbus.ObjectPath) dbus.BusObject {
	return b.conn.Object(dest, path)
}

func (b *connBus) BusObject() dbus.BusObject {
	return b.conn.BusObject()
}
