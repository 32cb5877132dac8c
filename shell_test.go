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
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(numeric bool) ShellModel {
	return NewShellModel(newTestWorkspace(numeric), plainRenderer())
}

func TestShellExecute(t *testing.T) {
	m := newTestShell(true)

	tests := []struct {
		line    string
		want    string
		wantErr bool
	}{
		{"insert 5 3 8 1 4 7 9", "inserted 7 of 7", false},
		{"insert 5", "inserted 0 of 1", false},
		{"contains 4", "4 is present", false},
		{"has 6", "6 is absent", false},
		{"depth 4", "depth of 4: 2", false},
		{"depth 6", "6 not found", false},
		{"height", "tree height: 2", false},
		{"height 8", "height of 8: 1", false},
		{"min", "min: 1", false},
		{"max", "max: 9", false},
		{"delete 5 42", "deleted 1 of 2", false},
		{"check", "all invariants hold", false},
		{"order level", "showing level-order traversal", false},
		{"order sideways", "", true},
		{"insert", "", true},
		{"depth", "", true},
		{"frobnicate", "", true},
		{`insert "unterminated`, "", true},
	}

	for _, tc := range tests {
		out, err := m.execute(tc.line)
		if tc.wantErr {
			assert.Error(t, err, tc.line)
			continue
		}
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, out, tc.line)
	}

	assert.Equal(t, OrderLevel, m.order)
	assert.Equal(t, []string{"1", "3", "4", "7", "8", "9"}, m.ws.InOrder())
}

func TestShellExecuteReportsBadKeys(t *testing.T) {
	m := newTestShell(true)

	out, err := m.execute("insert 1 two 3")
	assert.Equal(t, "inserted 2 of 3", out)
	assert.ErrorIs(t, err, ErrBadKey)
}

func TestShellQuotedKeys(t *testing.T) {
	m := newTestShell(false)

	_, err := m.execute(`insert "hello world" plain`)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world", "plain"}, m.ws.InOrder())
}

func TestShellMinOnEmptyTree(t *testing.T) {
	m := newTestShell(false)

	out, err := m.execute("min")
	require.NoError(t, err)
	assert.Equal(t, "tree is empty", out)
}

func TestShellEnterRunsCommand(t *testing.T) {
	m := newTestShell(true)
	m.input.SetValue("insert 2 1 3")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(ShellModel)

	assert.Equal(t, []string{"1", "2", "3"}, m.ws.InOrder())
	assert.Empty(t, m.input.Value())
	require.Len(t, m.log, 1)
	assert.Equal(t, "inserted 3 of 3", m.log[0].text)
	assert.Contains(t, m.renderer.Render(m.ws), "2 [1]")
}

func TestShellLogIsBounded(t *testing.T) {
	m := newTestShell(true)
	for i := 0; i < shellLogSize+3; i++ {
		m.run("min")
	}
	assert.Len(t, m.log, shellLogSize)
}

func TestShellQuit(t *testing.T) {
	m := newTestShell(false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m.input.SetValue("quit")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestShellViewAfterResize(t *testing.T) {
	m := newTestShell(true)
	assert.Equal(t, "Initializing...", m.View())

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = model.(ShellModel)

	view := m.View()
	assert.Contains(t, view, "avlkit shell")
	assert.Contains(t, view, "in-order:")
	assert.Contains(t, view, "(empty tree)")
}

func TestShellToggleHelp(t *testing.T) {
	m := newTestShell(false)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, model.(ShellModel).showHelp)
}
