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

	"github.com/godbus/dbus/v5"
)

// Схема, которую экспортирует расширение
const extensionXML = `
<node>
    <interface name="org.gnome.shell.extensions.spotlight">
        <method name="switch_mode"/>
    </interface>
</node>
`

// recordedCall один запрос, отправленный через fakeBus
type recordedCall struct {
	Dest   string
	Path   dbus.ObjectPath
	Method string
	Flags  dbus.Flags
	Args   []interface{}
}

// fakeBus шина в памяти, отвечает по имени метода
type fakeBus struct {
	calls   []recordedCall
	objects int
	replies map[string]*dbus.Call
	// block заставляет вызов switch_mode ждать отмены контекста
	block bool
}

func newFakeBus() *fakeBus {
	return &fakeBus{
		replies: map[string]*dbus.Call{
			busNameHasOwner:  {Body: []interface{}{true}},
			methodIntrospect: {Body: []interface{}{extensionXML}},
		},
	}
}

func (b *fakeBus) reply(method string, call *dbus.Call) *fakeBus {
	b.replies[method] = call
	return b
}

func (b *fakeBus) fail(method string, name string) *fakeBus {
	return b.reply(method, &dbus.Call{Err: dbus.Error{Name: name, Body: []interface{}{"fake: " + name}}})
}

func (b *fakeBus) Object(dest string, path dbus.ObjectPath) dbus.BusObject {
	b.objects++
	return &fakeObject{bus: b, dest: dest, path: path}
}

func (b *fakeBus) BusObject() dbus.BusObject {
	return &fakeObject{bus: b, dest: "org.freedesktop.DBus", path: "/org/freedesktop/DBus"}
}

// callsTo возвращает запросы к указанному методу
func (b *fakeBus) callsTo(method string) []recordedCall {
	var out []recordedCall
	for _, c := range b.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// fakeObject реализует только то, что использует клиент, остальное паникует
type fakeObject struct {
	dbus.BusObject
	bus  *fakeBus
	dest string
	path dbus.ObjectPath
}

func (o *fakeObject) CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	o.bus.calls = append(o.bus.calls, recordedCall{
		Dest:   o.dest,
		Path:   o.path,
		Method: method,
		Flags:  flags,
		Args:   args,
	})

	if o.bus.block && method == switchModeMember {
		<-ctx.Done()
		return &dbus.Call{Err: ctx.Err()}
	}

	if reply, ok := o.bus.replies[method]; ok {
		return reply
	}
	return &dbus.Call{}
}

func (o *fakeObject) Destination() string { return o.dest }

func (o *fakeObject) Path() dbus.ObjectPath { return o.path }

const switchModeMember = InterfaceName + "." + MethodSwitchMode
