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
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

// introspectObject то же, что introspect.Call, но с контекстом
func introspectObject(ctx context.Context, obj dbus.BusObject) (*introspect.Node, error) {
	var data string
	if err := obj.CallWithContext(ctx, methodIntrospect, 0).Store(&data); err != nil {
		return nil, err
	}

	var node introspect.Node
	if err := xml.NewDecoder(strings.NewReader(data)).Decode(&node); err != nil {
		return nil, fmt.Errorf("invalid introspection data: %w", err)
	}

	return &node, nil
}

// missingMember возвращает ReasonUnknown, если метод без входных аргументов объявлен
func missingMember(node *introspect.Node, iface string, method string) Reason {
	for _, i := range node.Interfaces {
		if i.Name != iface {
			continue
		}

		for _, m := range i.Methods {
			if m.Name == method && !hasInArgs(m) {
				return ReasonUnknown
			}
		}
		return ReasonMethodUnknown
	}

	return ReasonInterfaceUnknown
}

func hasInArgs(m introspect.Method) bool {
	for _, arg := range m.Args {
		// direction по умолчанию "in"
		if arg.Direction == "" || arg.Direction == "in" {
			return true
		}
	}
	return false
}
