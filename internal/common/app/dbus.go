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
	"sync"

	"github.com/godbus/dbus/v5"
)

// DBusManager управляет соединением с DBus
type DBusManager interface {
	GetConnection() *dbus.Conn
	ConnectSessionBus() error
	Close() error
}

// dbusManagerImpl реализация DBusManager
type dbusManagerImpl struct {
	mu      sync.Mutex
	conn    *dbus.Conn
	connect func(opts ...dbus.ConnOption) (*dbus.Conn, error)
}

// NewDBusManager создает новый менеджер DBus
func NewDBusManager() DBusManager {
	return &dbusManagerImpl{connect: dbus.ConnectSessionBus}
}

// GetConnection возвращает текущее соединение
func (dm *dbusManagerImpl) GetConnection() *dbus.Conn {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	return dm.conn
}

// ConnectSessionBus подключается к пользовательской шине DBus.
// Имя на шине не запрашивается, клиент только вызывает методы.
func (dm *dbusManagerImpl) ConnectSessionBus() error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if dm.conn != nil {
		return nil
	}

	conn, err := dm.connect()
	if err != nil {
		return fmt.Errorf(T_("failed to connect to session bus: %w"), err)
	}

	dm.conn = conn
	Log.Debug("DBus connection established")

	return nil
}

// Close закрывает соединение с DBus, может вызываться из обработчика сигналов
func (dm *dbusManagerImpl) Close() error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if dm.conn == nil {
		return nil
	}

	err := dm.conn.Close()
	dm.conn = nil
	if err != nil {
		return fmt.Errorf(T_("failed to close DBus connection: %w"), err)
	}
	Log.Debug("DBus connection closed")

	return nil
}
