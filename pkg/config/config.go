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

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "CAMTOOLS_CFG"
	CfgFile       = "camtools.toml"
	AppDir        = "camtools"
	LogFile       = "camtools.log"
)

var ErrSchemaMismatch = errors.New("schema version mismatch")

type Values struct {
	LogDir       string    `toml:"log_dir,omitempty"`
	Coverage     Coverage  `toml:"coverage"`
	Partition    Partition `toml:"partition"`
	Catalog      Catalog   `toml:"catalog"`
	ConfigSchema int       `toml:"config_schema"`
	DebugLogging bool      `toml:"debug_logging"`
}

// Partition configures the spreadsheet partitioner.
type Partition struct {
	Source           string `toml:"source,omitempty"`
	Sheet            string `toml:"sheet,omitempty"`
	OutputDir        string `toml:"output_dir" validate:"required"`
	Format           string `toml:"format" validate:"oneof=xlsx csv"`
	CameraColumn     string `toml:"camera_column" validate:"required"`
	ProductionColumn string `toml:"production_column" validate:"required"`
	ShopColumn       string `toml:"shop_column" validate:"required"`
	UnsetShop        string `toml:"unset_shop" validate:"required"`
}

// Catalog configures the thumbnail catalog builder.
type Catalog struct {
	FFmpegPath      string   `toml:"ffmpeg_path" validate:"required"`
	FrameOffset     string   `toml:"frame_offset" validate:"required,timecode"`
	OutputName      string   `toml:"output_name" validate:"required"`
	SheetName       string   `toml:"sheet_name" validate:"required,max=31"`
	ValidationSheet string   `toml:"validation_sheet" validate:"required,max=31,nefield=SheetName"`
	TableName       string   `toml:"table_name" validate:"required"`
	TableStyle      string   `toml:"table_style" validate:"required"`
	Extensions      []string `toml:"extensions" validate:"min=1,dive,startswith=."`
	MaxWidth        int      `toml:"max_width" validate:"gt=0"`
	MaxHeight       int      `toml:"max_height" validate:"gt=0"`
	RenameFolders   bool     `toml:"rename_folders"`
	KeepFrames      bool     `toml:"keep_frames"`
}

// Coverage configures the camera coverage scanner.
type Coverage struct {
	FolderPattern string   `toml:"folder_pattern" validate:"required,regex"`
	Output        string   `toml:"output" validate:"required"`
	Column        string   `toml:"column" validate:"required"`
	MasterOutput  string   `toml:"master_output" validate:"required"`
	MasterColumn  string   `toml:"master_column" validate:"required"`
	Roots         []string `toml:"roots,omitempty"`
	Extensions    []string `toml:"extensions" validate:"min=1,dive,startswith=."`
	Sources       []string `toml:"sources,omitempty"`
}

// clone copies slice fields so decoding into the result never writes
// through to a shared defaults value.
func (v Values) clone() Values {
	v.Catalog.Extensions = slices.Clone(v.Catalog.Extensions)
	v.Coverage.Roots = slices.Clone(v.Coverage.Roots)
	v.Coverage.Extensions = slices.Clone(v.Coverage.Extensions)
	v.Coverage.Sources = slices.Clone(v.Coverage.Sources)
	return v
}

type Instance struct {
	fs       afero.Fs
	cfgPath  string
	vals     Values
	defaults Values
}

// ResolvePath picks the config file location: an explicit path wins, then
// the CAMTOOLS_CFG environment variable, then the user config directory.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if env := os.Getenv(CfgEnv); env != "" {
		log.Debug().Msgf("env config path: %s", env)
		return env
	}

	return filepath.Join(xdg.ConfigHome, AppDir, CfgFile)
}

// NewConfig loads the config file at cfgPath over the given defaults. A
// missing file is not an error: the defaults are used as they are.
func NewConfig(fs afero.Fs, cfgPath string, defaults Values) (*Instance, error) {
	cfg := Instance{
		fs:       fs,
		cfgPath:  cfgPath,
		vals:     defaults.clone(),
		defaults: defaults.clone(),
	}

	exists, err := afero.Exists(fs, cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if !exists {
		log.Info().Msgf("no config file at %s, using defaults", cfgPath)
	} else if err := cfg.Load(); err != nil {
		return nil, err
	}

	if err := Validate(&cfg.vals); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Defaults first so keys missing from the file keep their values.
	newVals := c.defaults.clone()
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	c.vals = newVals
	return nil
}

// Save writes the current values to disk, creating the parent directory.
func (c *Instance) Save() error {
	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := c.fs.MkdirAll(filepath.Dir(c.cfgPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.vals.DebugLogging = enabled
}

// LogDir returns the directory the rotating log file is written to.
func (c *Instance) LogDir() string {
	if c.vals.LogDir != "" {
		return c.vals.LogDir
	}
	return filepath.Join(xdg.StateHome, AppDir)
}

func (c *Instance) Partition() Partition {
	return c.vals.Partition
}

func (c *Instance) Catalog() Catalog {
	return c.vals.Catalog
}

func (c *Instance) Coverage() Coverage {
	return c.vals.Coverage
}

// AppVersion is set at build time with -ldflags.
var AppVersion = "DEVELOPMENT"
