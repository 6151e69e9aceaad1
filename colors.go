// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

const (
	Green = "\033[32m"
	Reset = "\033[0m"
)

// DashboardColors holds the termui colors of the inspect dashboard.
type DashboardColors struct {
	Bar       ui.Color
	BarLabel  ui.Color
	BarNumber ui.Color
	Border    ui.Color
	Title     ui.Color
	Text      ui.Color
	Healthy   ui.Color
	Broken    ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColors *DashboardColors
	detectedMode  TerminalMode
)

// detectTerminalMode guesses the terminal background from the environment.
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "15", "7", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func lightDashboardColors() *DashboardColors {
	return &DashboardColors{
		Bar:       ui.Color(4),
		BarLabel:  ui.ColorBlack,
		BarNumber: ui.ColorWhite,
		Border:    ui.Color(8),
		Title:     ui.Color(4),
		Text:      ui.ColorBlack,
		Healthy:   ui.Color(2),
		Broken:    ui.ColorRed,
	}
}

func darkDashboardColors() *DashboardColors {
	return &DashboardColors{
		Bar:       ui.Color(6),
		BarLabel:  ui.ColorWhite,
		BarNumber: ui.ColorBlack,
		Border:    ui.Color(240),
		Title:     ui.Color(14),
		Text:      ui.ColorWhite,
		Healthy:   ui.Color(10),
		Broken:    ui.Color(9),
	}
}

// InitializeColors detects the terminal mode and picks matching colors.
func InitializeColors() {
	detectedMode = detectTerminalMode()

	if detectedMode == TerminalModeLight {
		currentColors = lightDashboardColors()
	} else {
		currentColors = darkDashboardColors()
	}
}

func GetDashboardColors() *DashboardColors {
	if currentColors == nil {
		InitializeColors()
	}
	return currentColors
}

// GetANSIColors returns escape codes for plain terminal output, darker on
// light backgrounds and brighter on dark ones.
func GetANSIColors() (success, info, warning, error, reset string) {
	if currentColors == nil {
		InitializeColors()
	}

	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = Reset
	return
}
