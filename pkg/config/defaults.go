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

package config

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Partition: Partition{
		Sheet:            "Список камер",
		OutputDir:        "КамерыЛСРпоПроизводствам",
		Format:           "xlsx",
		CameraColumn:     "Имя камеры",
		ProductionColumn: "Производство",
		ShopColumn:       "Цех",
		UnsetShop:        "Участки(Ур-нь цеха не задан)",
	},
	Catalog: Catalog{
		FFmpegPath:      "ffmpeg",
		FrameOffset:     "00:00:03",
		OutputName:      "results.xlsx",
		SheetName:       "Камеры",
		ValidationSheet: "Validation",
		TableName:       "ТаблицаКамер",
		TableStyle:      "TableStyleMedium15",
		Extensions:      []string{".mkv", ".mp4", ".avi"},
		MaxWidth:        480,
		MaxHeight:       270,
		RenameFolders:   true,
	},
	Coverage: Coverage{
		FolderPattern: "^[A-Za-z]",
		Output:        "СпискоКамер.xlsx",
		Column:        "folder",
		MasterOutput:  "ВсеКамерыИзКоторыхМожноВзятьСкрины.xlsx",
		MasterColumn:  "CamName",
		Extensions:    []string{".avi", ".mkv", ".mp4"},
	},
}
