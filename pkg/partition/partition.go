// Create Files Cameras
// Copyright (c) 2026 The Create Files Cameras Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Create Files Cameras.
//
// Create Files Cameras is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Create Files Cameras is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Create Files Cameras.  If not, see <http://www.gnu.org/licenses/>.

// Package partition splits the camera inventory into one file per
// production unit and shop.
package partition

import (
	"sort"
	"strings"
)

// UnsetShop is the shop value the inventory uses when a camera is attached
// to a production unit directly.
const UnsetShop = "Участки(Ур-нь цеха не задан)"

// Record is one camera row of the inventory.
type Record struct {
	CameraName string
	Production string
	Shop       string
}

var illegalName = strings.NewReplacer(
	"<", "", ">", "", ":", "", `"`, "",
	"/", "", `\`, "", "|", "", "?", "", "*", "",
)

// SanitizeKey removes characters Windows does not allow in file names.
func SanitizeKey(s string) string {
	return illegalName.Replace(s)
}

// EffectiveShop substitutes the production unit for the unset-shop marker.
func EffectiveShop(r Record, unsetShop string) string {
	if r.Shop == unsetShop {
		return r.Production
	}
	return r.Shop
}

// GroupKey is the sanitized "<production>_<shop>" a record is filed under.
func GroupKey(r Record, unsetShop string) string {
	return SanitizeKey(r.Production + "_" + EffectiveShop(r, unsetShop))
}

// Group is every camera filed under one key, in input order.
type Group struct {
	Key     string
	Cameras []string
}

// Partition groups records by key. Groups come out largest first; equal
// sizes keep the order in which the key first appeared.
func Partition(records []Record, unsetShop string) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, r := range records {
		key := GroupKey(r, unsetShop)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Cameras = append(groups[i].Cameras, r.CameraName)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return len(groups[a].Cameras) > len(groups[b].Cameras)
	})
	return groups
}
