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
	"strings"

	"spotlight/internal/common/app"
	"spotlight/internal/common/reply"

	"github.com/urfave/cli/v3"
)

// OptionsFromConfig переносит настройки приложения в параметры клиента
func OptionsFromConfig(cfg *app.Configuration) Options {
	return Options{
		Timeout:         cfg.CallTimeout,
		EagerResolve:    cfg.EagerResolve,
		VerifyInterface: cfg.VerifyInterface,
	}
}

// SessionDialer открывает шину сессии через DBusManager приложения
func SessionDialer(manager app.DBusManager) DialFunc {
	return func() (Bus, error) {
		if err := manager.ConnectSessionBus(); err != nil {
			return nil, err
		}
		return WrapConn(manager.GetConnection()), nil
	}
}

// Action корневая команда: один вызов switch_mode
func Action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		msg := fmt.Sprintf(app.T_("unexpected arguments: %s"), strings.Join(cmd.Args().Slice(), " "))
		return reply.CliResponse(ctx, newErrorResponse(errors.New(msg)))
	}

	appConfig := app.GetAppConfig(ctx)
	resp, err := Run(ctx, SessionDialer(appConfig.DBusManager), OptionsFromConfig(appConfig.ConfigManager.GetConfig()))
	if err != nil {
		return reply.CliResponse(ctx, newErrorResponse(err))
	}

	return reply.CliResponse(ctx, *resp)
}

// Run выполняет connect -> resolve -> invoke и возвращает ответ для вывода
func Run(ctx context.Context, dial DialFunc, opts Options) (*reply.APIResponse, error) {
	client, err := Dial(dial, opts)
	if err != nil {
		return nil, err
	}

	if err = client.SwitchMode(ctx); err != nil {
		return nil, err
	}

	app.Log.Info("switch_mode delivered to " + ServiceName)

	return &reply.APIResponse{
		Data: map[string]interface{}{
			"message": app.T_("Spotlight mode switched"),
			"service": ServiceName,
			"method":  MethodSwitchMode,
		},
	}, nil
}

// newErrorResponse создаёт ответ с ошибкой и подробностями для DBus-ошибок
func newErrorResponse(err error) reply.APIResponse {
	app.Log.Error(err.Error())

	return reply.APIResponse{
		Data:  ErrorData(err),
		Error: true,
	}
}

// ErrorData раскладывает ошибку на поля ответа
func ErrorData(err error) map[string]interface{} {
	data := map[string]interface{}{
		"message": err.Error(),
	}

	var (
		connErr *ConnectionError
		resErr  *ResolutionError
		callErr *RemoteCallError
	)
	switch {
	case errors.As(err, &connErr):
		data["kind"] = "connection"
	case errors.As(err, &resErr):
		data["kind"] = "resolution"
		data["reason"] = resErr.Reason.String()
		data["service"] = resErr.Service
		data["path"] = string(resErr.Path)
	case errors.As(err, &callErr):
		data["kind"] = "remote-call"
		data["reason"] = callErr.Reason.String()
		data["method"] = callErr.Method
		if callErr.DBusName != "" {
			data["dbusError"] = callErr.DBusName
		}
	}

	return data
}
