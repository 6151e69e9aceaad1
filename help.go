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

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **ordset %s**

Sorted, de-duplicated views of line-oriented data, backed by an AVL ordered set.
Every command reads the named files, or stdin when none are given.

Built with Go %s

# 1. Commands
* **sort** prints the distinct lines in ascending order (*--numeric*, *--reverse*)
* **uniq** prints the distinct lines in the order they first appear
* **tree** draws the balanced tree built from the input
* **stats** reports size, height and nodes per depth (*--verify* checks every invariant)
* **inspect** opens a terminal dashboard of the tree shape
* **shell** starts an interactive shell over a live set
* **settings** shows or creates the configuration file

# 2. Configuration
Settings live in ~/.ordset.yaml. Run *ordset settings* to create it with defaults.

# 3. Notes
* Numeric mode orders numbers by value and places other lines after them
* The *copy* shell command needs 'xclip' or 'xsel' on Linux

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
