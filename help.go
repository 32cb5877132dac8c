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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// shellHelpMarkdown is shown in the shell's help pane (F1).
const shellHelpMarkdown = `# Shell commands

| Command | Effect |
|---|---|
| ` + "`insert K...`" + ` | add keys, duplicates are ignored |
| ` + "`delete K...`" + ` | remove keys, missing keys are ignored |
| ` + "`contains K`" + ` | membership test |
| ` + "`depth K`" + ` | edges from the root to K |
| ` + "`height [K]`" + ` | height of the tree, or of the subtree at K |
| ` + "`min`" + `, ` + "`max`" + ` | smallest and largest key |
| ` + "`order in|pre|post|level`" + ` | traversal shown under the tree |
| ` + "`stats`" + ` | size, height and rotation counts |
| ` + "`check`" + ` | verify ordering, balance and heights |
| ` + "`clear`" + ` | drop every key |
| ` + "`quit`" + ` | leave the shell |

Keys: **Enter** runs a command, **Ctrl+Y** copies the in-order listing,
**F1** toggles this pane, **Esc** quits.
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlkit %s**

Build, inspect and play with a height-balanced (AVL) binary search tree from the terminal.
Every insert and delete rebalances the tree with single or double rotations so its height stays O(log n).

Built with Go %s

# 1. Commands
* **build** [keys...] --file F --delete K --order in|pre|post|level: build a tree and print a traversal with its height and size
* **show** [keys...]: draw the tree sideways, largest keys on top, with each subtree height in brackets
* **query** contains|depth|height|min|max [key] --keys K --file F: answer a single question about a tree
* **check** [keys...] --rounds N: insert, delete at random and verify the AVL invariants after every step
* **shell**: interactive session that redraws the tree after every command
* **settings**: show the configuration, creating it on first use

# 2. Keys
* Keys are strings ordered lexically unless **--numeric** is given or **keys.numeric** is set in the config
* Numeric keys are 64-bit integers; "007" and "7" are the same key
* Inserting a key twice is a no-op, and so is deleting a missing key

# 3. Configuration
* ~/%s (YAML): keys.numeric, filter.bloom_bits, filter.bloom_hashes, render.color, render.cache_ttl, loader.progress_threshold

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), configFileName)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
