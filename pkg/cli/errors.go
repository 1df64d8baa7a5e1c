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

package cli

// Messages shown to the user.
const (
	TitleError = "Ошибка"
	TitleDone  = "Готово"

	TitleVideos     = "Выберите папку с видеофайлами"
	TitleCameraList = "Выберите Excel файл со списком камер"
	TitleInventory  = "Выберите Excel файл с камерами"
	PromptFolder    = "Введите путь к папке: "

	MsgNoFFmpeg        = "Не удалось запустить ffmpeg! Укажите путь флагом -ffmpeg или в настройках."
	MsgNoFolder        = "Папка не выбрана!"
	MsgNotDirectory    = "Указанная папка не существует или не является папкой!"
	MsgNoCameraList    = "Файл со списком камер не выбран!"
	MsgEmptyCameraList = "Список камер пуст или не удалось загрузить!"
	MsgNoVideos        = "Видеофайлы не найдены в указанной папке!"
	MsgNoMatching      = "Не найдено подходящих камер для обработки!"
	MsgNoInventory     = "Файл с камерами не выбран!"
	MsgMissingColumn   = "В файле нет нужного столбца!"
	MsgCatalogFailed   = "Не удалось создать Excel-файл!"
	MsgPartitionFailed = "Не удалось разделить список камер!"
	MsgCoverageFailed  = "Не удалось составить список камер!"
)

// Failure is a run error with the message the user sees.
type Failure struct {
	Err error
	Msg string
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Msg
	}
	return f.Msg + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func fail(msg string, err error) error {
	return &Failure{Msg: msg, Err: err}
}
