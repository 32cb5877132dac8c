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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlkit/avl"
	"github.com/patrickmn/go-cache"
)

const (
	emptyTreeDrawing = "(empty tree)"
	drawIndent       = "    "
)

// Renderer draws a workspace's tree sideways: larger keys on top, one node
// per line, indented by depth. Drawings are cached by tree signature.
type Renderer struct {
	cache *cache.Cache
	color bool

	keyStyle    lipgloss.Style
	rootStyle   lipgloss.Style
	heightStyle lipgloss.Style
}

func NewRenderer(config RenderConfig) *Renderer {
	palette := GetPalette()
	return &Renderer{
		cache:       NewRenderCache(config.CacheTTL),
		color:       config.Color,
		keyStyle:    lipgloss.NewStyle().Foreground(palette.Key),
		rootStyle:   lipgloss.NewStyle().Foreground(palette.Root).Bold(true),
		heightStyle: lipgloss.NewStyle().Foreground(palette.Height),
	}
}

func (r *Renderer) Render(ws *Workspace) string {
	sig := ws.Signature()
	if drawing, ok := GetRendering(r.cache, sig); ok {
		return drawing
	}

	drawing := drawTree(ws.Outline(), r.label)
	CacheRendering(r.cache, sig, drawing)
	return drawing
}

func (r *Renderer) label(p avl.Placement[string]) string {
	if !r.color {
		return plainLabel(p)
	}
	key := r.keyStyle.Render(p.Key)
	if p.Depth == 0 {
		key = r.rootStyle.Render(p.Key)
	}
	return key + " " + r.heightStyle.Render(fmt.Sprintf("[%d]", p.Height))
}

func plainLabel(p avl.Placement[string]) string {
	return fmt.Sprintf("%s [%d]", p.Key, p.Height)
}

// drawTree expects placements in ascending key order, as avl.Tree.Outline
// returns them.
func drawTree(placements []avl.Placement[string], label func(avl.Placement[string]) string) string {
	if len(placements) == 0 {
		return emptyTreeDrawing
	}

	lines := make([]string, 0, len(placements))
	for i := len(placements) - 1; i >= 0; i-- {
		p := placements[i]
		lines = append(lines, strings.Repeat(drawIndent, p.Depth)+label(p))
	}
	return strings.Join(lines, "\n")
}
