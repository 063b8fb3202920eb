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

import "spotlight/internal/common/app"

// TranslateKey возвращает подпись для ключа ответа
func TranslateKey(key string) string {
	switch key {
	case "service":
		return app.T_("Service")
	case "path":
		return app.T_("Object Path")
	case "interface":
		return app.T_("Interface")
	case "method":
		return app.T_("Method")
	case "kind":
		return app.T_("Error Kind")
	case "reason":
		return app.T_("Reason")
	case "dbusError":
		return app.T_("D-Bus Error")
	default:
		return key
	}
}
