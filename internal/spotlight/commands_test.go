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
	"testing"

	"spotlight/internal/common/app"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	bus := newFakeBus()

	resp, err := Run(context.Background(), func() (Bus, error) { return bus, nil }, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.Error)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, ServiceName, data["service"])
	assert.Equal(t, MethodSwitchMode, data["method"])
	assert.Len(t, bus.callsTo(switchModeMember), 1)
}

// TestRunNoBus шина недоступна: ни одного обращения к объектам
func TestRunNoBus(t *testing.T) {
	resp, err := Run(context.Background(), func() (Bus, error) {
		return nil, errors.New("dbus: couldn't determine address of session bus")
	}, DefaultOptions())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrConnection)
}

func TestErrorData(t *testing.T) {
	t.Run("Connection", func(t *testing.T) {
		data := ErrorData(&ConnectionError{Err: errors.New("no bus")})
		assert.Equal(t, "connection", data["kind"])
		assert.Contains(t, data["message"], "no bus")
		assert.NotContains(t, data, "reason")
	})

	t.Run("Resolution", func(t *testing.T) {
		data := ErrorData(&ResolutionError{Service: ServiceName, Path: ObjectPath, Reason: ReasonServiceUnknown})
		assert.Equal(t, "resolution", data["kind"])
		assert.Equal(t, "service-unknown", data["reason"])
		assert.Equal(t, "/org/gnome/shell/extensions/spotlight", data["path"])
	})

	t.Run("Remote call", func(t *testing.T) {
		data := ErrorData(newRemoteCallError(switchModeMember, dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownMethod"}))
		assert.Equal(t, "remote-call", data["kind"])
		assert.Equal(t, "method-unknown", data["reason"])
		assert.Equal(t, "org.freedesktop.DBus.Error.UnknownMethod", data["dbusError"])
	})

	t.Run("Other", func(t *testing.T) {
		data := ErrorData(errors.New("unexpected arguments: foo"))
		assert.Equal(t, map[string]interface{}{"message": "unexpected arguments: foo"}, data)
	})
}

func TestOptionsFromConfig(t *testing.T) {
	t.Run("Pass through", func(t *testing.T) {
		opts := OptionsFromConfig(&app.Configuration{
			CallTimeout:     DefaultTimeout / 5,
			EagerResolve:    true,
			VerifyInterface: true,
		})

		assert.Equal(t, DefaultTimeout/5, opts.Timeout)
		assert.True(t, opts.EagerResolve)
		assert.True(t, opts.VerifyInterface)
	})

	t.Run("Eager resolve disabled by environment", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("SPOTLIGHT_EAGER_RESOLVE", "false")

		cm, err := app.NewConfigManager(app.BuildInfo{})
		require.NoError(t, err)

		opts := OptionsFromConfig(cm.GetConfig())
		assert.False(t, opts.EagerResolve)
		assert.False(t, opts.VerifyInterface)
		assert.Equal(t, DefaultTimeout, opts.Timeout)
	})

	t.Run("Defaults match client defaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cm, err := app.NewConfigManager(app.BuildInfo{})
		require.NoError(t, err)
		assert.Equal(t, DefaultOptions(), OptionsFromConfig(cm.GetConfig()))
	})
}
