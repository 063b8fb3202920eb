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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spotlight/internal/common/app"
	"spotlight/internal/common/reply"
	"spotlight/internal/spotlight"

	"github.com/urfave/cli/v3"
)

var (
	ctx, globalCancel = context.WithCancel(context.Background())
	appConfig         *app.Config
)

func main() {
	var errInitial error
	appConfig, errInitial = app.InitializeAppDefault()
	if errInitial != nil {
		cliError(errInitial)
		os.Exit(1)
	}

	app.Log.Debug("Starting spotlightctl…")

	setupSignalHandling()
	ctx = context.WithValue(ctx, app.AppConfigKey, appConfig)

	rootCommand := &cli.Command{
		Name:            "spotlightctl",
		Usage:           app.T_("Switch the pointer mode of the GNOME Shell spotlight extension"),
		Version:         appConfig.ConfigManager.GetConfig().Version,
		HideHelpCommand: true,
		Action:          spotlight.Action,
	}

	err := rootCommand.Run(ctx, os.Args)
	cleanup()
	if err != nil {
		os.Exit(1)
	}
}

// setupSignalHandling прерывает текущий вызов и завершает процесс по сигналу
func setupSignalHandling() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigs
		app.Log.Info(fmt.Sprintf(app.T_("Received signal %s. Stopping application…"), sig))

		cleanup()
		os.Exit(signalExitCode(sig))
	}()
}

// signalExitCode код завершения по соглашению shell: 128 + номер сигнала
func signalExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}

func cliError(err error) {
	if err == nil {
		return
	}

	// ошибка уже выведена, CliResponse возвращает её только ради exit code
	_ = reply.CliResponse(ctx, reply.APIResponse{
		Data: map[string]interface{}{
			"message": err.Error(),
		},
		Error: true,
	})
}

func cleanup() {
	defer globalCancel()

	if appConfig == nil || appConfig.DBusManager == nil {
		return
	}

	app.Log.Debug(app.T_("Terminating the application. Releasing resources…"))
	if err := appConfig.DBusManager.Close(); err != nil {
		app.Log.Error(err)
	}
}
