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
	"time"

	"spotlight/internal/common/app"

	"github.com/godbus/dbus/v5"
)

// DefaultTimeout совпадает с таймаутом ответа libdbus по умолчанию
const DefaultTimeout = 25 * time.Second

// State состояние клиента: Disconnected -> Connected -> Invoked
type State int

const (
	StateDisconnected State = iota
	StateConnected
	StateInvoked
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateInvoked:
		return "invoked"
	default:
		return "disconnected"
	}
}

// Options параметры клиента
type Options struct {
	// Timeout ограничивает каждый запрос к шине, 0 означает DefaultTimeout
	Timeout time.Duration
	// EagerResolve спрашивает у шины, занято ли имя сервиса, до вызова метода
	EagerResolve bool
	// VerifyInterface проверяет через Introspect, что объект реализует интерфейс и метод
	VerifyInterface bool
}

// DefaultOptions параметры по умолчанию
func DefaultOptions() Options {
	return Options{
		Timeout:      DefaultTimeout,
		EagerResolve: true,
	}
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// ModeSwitcher удаленный интерфейс расширения
type ModeSwitcher interface {
	SwitchMode(ctx context.Context) error
}

// Client выполняет один вызов switch_mode через переданную шину
type Client struct {
	bus   Bus
	opts  Options
	state State
}

// Dial открывает соединение и возвращает клиент в состоянии Connected
func Dial(dial DialFunc, opts Options) (*Client, error) {
	bus, err := dial()
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	if bus == nil {
		return nil, &ConnectionError{Err: errors.New(app.T_("no bus connection returned"))}
	}

	return NewClient(bus, opts), nil
}

// NewClient создает клиент поверх уже открытой шины
func NewClient(bus Bus, opts Options) *Client {
	return &Client{
		bus:   bus,
		opts:  opts.withDefaults(),
		state: StateConnected,
	}
}

// State текущее состояние клиента
func (c *Client) State() State {
	return c.state
}

// Resolve получает прокси объекта расширения. Без EagerResolve и VerifyInterface
// шина не опрашивается, отсутствие сервиса проявится при вызове.
func (c *Client) Resolve(ctx context.Context) (*Remote, error) {
	if c.bus == nil {
		return nil, &ConnectionError{Err: errors.New(app.T_("client has no bus connection"))}
	}

	if c.opts.EagerResolve {
		if err := c.checkOwner(ctx); err != nil {
			return nil, err
		}
	}

	obj := c.bus.Object(ServiceName, ObjectPath)

	if c.opts.VerifyInterface {
		if err := c.verify(ctx, obj); err != nil {
			return nil, err
		}
	}

	app.Log.Debugf("Resolved %s at %s", ServiceName, ObjectPath)

	return &Remote{obj: obj, timeout: c.opts.Timeout}, nil
}

// SwitchMode разрешает объект, привязывает интерфейс и вызывает switch_mode.
// Клиент переходит в Invoked до первого запроса, повторных попыток нет.
func (c *Client) SwitchMode(ctx context.Context) error {
	switch c.state {
	case StateInvoked:
		return ErrAlreadyInvoked
	case StateDisconnected:
		return &ConnectionError{Err: errors.New(app.T_("client is not connected"))}
	}
	c.state = StateInvoked

	remote, err := c.Resolve(ctx)
	if err != nil {
		return err
	}

	return remote.Interface(InterfaceName).SwitchMode(ctx)
}

func (c *Client) checkOwner(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	var hasOwner bool
	err := c.bus.BusObject().CallWithContext(ctx, busNameHasOwner, 0, ServiceName).Store(&hasOwner)
	if err != nil {
		reason, _ := classify(err)
		return &ResolutionError{Service: ServiceName, Path: ObjectPath, Reason: reason, Err: err}
	}
	if !hasOwner {
		return &ResolutionError{Service: ServiceName, Path: ObjectPath, Reason: ReasonServiceUnknown}
	}

	return nil
}

func (c *Client) verify(ctx context.Context, obj dbus.BusObject) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	node, err := introspectObject(ctx, obj)
	if err != nil {
		reason, _ := classify(err)
		return &ResolutionError{Service: ServiceName, Path: ObjectPath, Reason: reason, Err: err}
	}

	if reason := missingMember(node, InterfaceName, MethodSwitchMode); reason != ReasonUnknown {
		return &ResolutionError{Service: ServiceName, Path: ObjectPath, Reason: reason}
	}

	return nil
}

// Remote прокси удаленного объекта
type Remote struct {
	obj     dbus.BusObject
	timeout time.Duration
}

// Destination и Path адрес, по которому был разрешен объект
func (r *Remote) Destination() string { return r.obj.Destination() }

func (r *Remote) Path() dbus.ObjectPath { return r.obj.Path() }

// Interface привязывает имя интерфейса к объекту, запросов к шине нет
func (r *Remote) Interface(name string) *Interface {
	return &Interface{remote: r, name: name}
}

// Interface методы одного интерфейса удаленного объекта
type Interface struct {
	remote *Remote
	name   string
}

var _ ModeSwitcher = (*Interface)(nil)

// Name имя привязанного интерфейса
func (i *Interface) Name() string {
	return i.name
}

// SwitchMode вызывает switch_mode без аргументов, тело ответа не читается
func (i *Interface) SwitchMode(ctx context.Context) error {
	return i.call(ctx, MethodSwitchMode)
}

func (i *Interface) call(ctx context.Context, method string) error {
	member := i.name + "." + method

	ctx, cancel := context.WithTimeout(ctx, i.remote.timeout)
	defer cancel()

	app.Log.Debugf("Calling %s on %s", member, i.remote.obj.Path())

	if call := i.remote.obj.CallWithContext(ctx, member, 0); call.Err != nil {
		return newRemoteCallError(member, call.Err)
	}

	return nil
}
