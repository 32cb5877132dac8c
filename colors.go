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

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colours shared by the renderer and the shell.
type Palette struct {
	Key       lipgloss.Color
	Root      lipgloss.Color
	Height    lipgloss.Color
	Border    lipgloss.Color
	Focus     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	TextMuted lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentPalette *Palette
	detectedMode   TerminalMode

	// ANSI escapes for plain stdout output. Empty when colour is off.
	Green, Info, Warning, Error, Reset string
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func lightPalette() *Palette {
	return &Palette{
		Key:       lipgloss.Color("4"),
		Root:      lipgloss.Color("5"),
		Height:    lipgloss.Color("240"),
		Border:    lipgloss.Color("8"),
		Focus:     lipgloss.Color("4"),
		Success:   lipgloss.Color("2"),
		Error:     lipgloss.Color("1"),
		TextMuted: lipgloss.Color("240"),
	}
}

func darkPalette() *Palette {
	return &Palette{
		Key:       lipgloss.Color("39"),
		Root:      lipgloss.Color("205"),
		Height:    lipgloss.Color("243"),
		Border:    lipgloss.Color("240"),
		Focus:     lipgloss.Color("62"),
		Success:   lipgloss.Color("46"),
		Error:     lipgloss.Color("196"),
		TextMuted: lipgloss.Color("245"),
	}
}

// InitializeColors detects the terminal mode, picks a palette and sets the
// ANSI escapes. NO_COLOR or enabled=false leaves the escapes empty.
func InitializeColors(enabled bool) {
	detectedMode = detectTerminalMode()

	if detectedMode == TerminalModeLight {
		currentPalette = lightPalette()
	} else {
		currentPalette = darkPalette()
	}

	if !enabled || os.Getenv("NO_COLOR") != "" {
		Green, Info, Warning, Error, Reset = "", "", "", "", ""
		return
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

func GetPalette() *Palette {
	if currentPalette == nil {
		InitializeColors(true)
	}
	return currentPalette
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}
