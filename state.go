// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package postbody

import "golang.org/x/net/html/atom"

// treeState is the mutable state of a single render.
//
// While a line is being scanned, the open elements from the root to cursor
// are exactly the true flags among quote, spoiler, bold, and italic,
// nested in that order.
// code does not open an element.
type treeState struct {
	cursor    *Node
	ancestors []*Node

	quote   bool
	spoiler bool
	bold    bool
	italic  bool
	code    bool

	successiveNewlines int
}

// reset points the cursor at root and clears all flags.
func (s *treeState) reset(root *Node) {
	*s = treeState{
		cursor:    root,
		ancestors: s.ancestors[:0],
	}
}

// append adds n as the last child of the cursor.
// If descend is true, n becomes the new cursor.
func (s *treeState) append(n *Node, descend bool) {
	s.cursor.Children = append(s.cursor.Children, n)
	if descend {
		s.ancestors = append(s.ancestors, s.cursor)
		s.cursor = n
	}
}

// open appends an empty element with the given tag and descends into it.
func (s *treeState) open(tag atom.Atom) {
	s.append(&Node{Tag: tag}, true)
}

// ascend closes the innermost open element.
func (s *treeState) ascend() {
	if len(s.ancestors) == 0 {
		panic("postbody: ascend with empty ancestor stack")
	}
	s.cursor = s.ancestors[len(s.ancestors)-1]
	s.ancestors[len(s.ancestors)-1] = nil
	s.ancestors = s.ancestors[:len(s.ancestors)-1]
}
