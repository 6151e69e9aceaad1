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
	"fmt"
	"strconv"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// depthBars converts per-depth counts into bar chart data and labels.
func depthBars(stats TreeStats) ([]float64, []string) {
	data := make([]float64, len(stats.PerDepth))
	labels := make([]string, len(stats.PerDepth))
	for depth, count := range stats.PerDepth {
		data[depth] = float64(count)
		labels[depth] = strconv.Itoa(depth)
	}
	return data, labels
}

func summaryText(name string, stats TreeStats, checkErr error) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Source:  %s\n", name)
	fmt.Fprintf(&sb, "Values:  %d\n", stats.Len)
	fmt.Fprintf(&sb, "Height:  %d (AVL bound %d)\n", stats.Height, stats.Bound)
	if stats.Len > 0 {
		full := 0
		for depth, count := range stats.PerDepth {
			if count == 1<<depth {
				full++
			}
		}
		fmt.Fprintf(&sb, "Full levels: %d of %d\n", full, stats.Height)
	}
	if checkErr != nil {
		fmt.Fprintf(&sb, "Check:   [FAILED %v](fg:red)\n", checkErr)
	} else {
		sb.WriteString("Check:   [ok](fg:green)\n")
	}
	return sb.String()
}

// runInspect shows a dashboard of the tree shape until q, esc or ctrl+c.
func runInspect(name string, stats TreeStats, checkErr error) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	colors := GetDashboardColors()

	summary := widgets.NewParagraph()
	summary.Title = " Tree "
	summary.Text = summaryText(name, stats, checkErr)
	summary.TitleStyle = ui.NewStyle(colors.Title)
	summary.BorderStyle = ui.NewStyle(colors.Healthy)
	if checkErr != nil {
		summary.BorderStyle = ui.NewStyle(colors.Broken)
	}
	summary.TextStyle = ui.NewStyle(colors.Text)

	chart := widgets.NewBarChart()
	chart.Title = " Nodes per depth "
	chart.Data, chart.Labels = depthBars(stats)
	chart.BarWidth = 5
	chart.BarColors = []ui.Color{colors.Bar}
	chart.LabelStyles = []ui.Style{ui.NewStyle(colors.BarLabel)}
	chart.NumStyles = []ui.Style{ui.NewStyle(colors.BarNumber)}
	chart.TitleStyle = ui.NewStyle(colors.Title)
	chart.BorderStyle = ui.NewStyle(colors.Border)

	keys := widgets.NewParagraph()
	keys.Title = " Keys "
	keys.Text = "[q](fg:green), [<esc>](fg:green) or [<ctrl> + c](fg:green) -> quit"
	keys.BorderStyle = ui.NewStyle(colors.Border)

	grid := ui.NewGrid()
	termWidth, termHeight := ui.TerminalDimensions()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.3,
			ui.NewCol(1.0, summary),
		),
		ui.NewRow(0.6,
			ui.NewCol(1.0, chart),
		),
		ui.NewRow(0.1,
			ui.NewCol(1.0, keys),
		),
	)
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<Escape>", "<C-c>":
			return nil
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
			}
			ui.Clear()
			ui.Render(grid)
		}
	}
	return nil
}
