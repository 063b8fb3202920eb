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

package reply

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode"

	"spotlight/internal/common/app"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"golang.org/x/term"
)

// APIResponse описывает итоговую структуру ответа.
type APIResponse struct {
	Data  interface{} `json:"data"`
	Error bool        `json:"error"`
}

var (
	enumeratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2aa1b3")).
			MarginRight(1)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#171717", Dark: "#c4c8c6"})

	errorRootStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successRootStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// IsTTY пользователь запустил приложение в интерактивной консоли
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CliResponse выводит ответ в формате из конфигурации. Ошибки в текстовом
// формате идут в stderr, успешный ответ печатается только в терминал.
func CliResponse(ctx context.Context, resp APIResponse) error {
	format := app.FormatText
	if cfg, ok := ctx.Value(app.AppConfigKey).(*app.Config); ok && cfg.ConfigManager != nil {
		format = cfg.ConfigManager.GetConfig().Format
	}

	var out io.Writer = os.Stdout
	switch {
	case format == app.FormatJSON:
	case resp.Error:
		out = os.Stderr
	case !IsTTY():
		return nil
	}

	if err := Render(out, format, resp); err != nil {
		return err
	}

	// пустая ошибка, чтобы вызвать exit code 1
	if resp.Error {
		return errors.New("")
	}

	return nil
}

// Render пишет ответ в w в указанном формате
func Render(w io.Writer, format string, resp APIResponse) error {
	if format == app.FormatJSON {
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	switch data := resp.Data.(type) {
	case map[string]interface{}:
		_, err := fmt.Fprintln(w, buildTree(data, resp.Error).String())
		return err
	case string:
		_, err := fmt.Fprintln(w, data)
		return err
	default:
		_, err := fmt.Fprintf(w, "%v\n", data)
		return err
	}
}

// buildTree message становится корнем, остальные ключи идут по алфавиту
func buildTree(data map[string]interface{}, isError bool) *tree.Tree {
	root := "spotlight"
	if msg, ok := data["message"].(string); ok && msg != "" {
		root = capitalize(msg)
	}

	rootStyle := successRootStyle
	if isError {
		rootStyle = errorRootStyle
	}

	t := tree.New().Root(root)

	keys := make([]string, 0, len(data))
	for k := range data {
		if k != "message" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		t.Child(fmt.Sprintf("%s: %v", TranslateKey(k), data[k]))
	}

	return t.Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle).
		RootStyle(rootStyle).
		ItemStyle(itemStyle)
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) > 0 && unicode.IsLower(runes[0]) {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
