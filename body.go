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

// Package postbody converts the plain-text body of a forum post
// into a tree of HTML-like nodes.
//
// The markup dialect is deliberately small:
//
//   - A line starting with > is a quote.
//   - **text** is a spoiler.
//   - __text__ is bold.
//   - ~~text~~ is italic.
//   - ``text`` is code, handed to a syntax highlighter.
//   - >>123 links to post 123 while the post is still being edited.
//
// Spoiler, bold, italic, and code spans may continue across lines.
// Unmatched delimiters are never an error.
package postbody

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// A BodyRenderer converts post bodies into node trees.
// The zero value renders closed posts with the default collaborators.
// A BodyRenderer is safe to use from multiple goroutines
// as long as its fields are not modified
// and its functions are safe for concurrent use.
type BodyRenderer struct {
	// If Editing is true, the post is still open
	// and >>ID references are rendered as temporary links.
	Editing bool
	// Highlight converts the contents of a code span into a subtree.
	// If Highlight is nil, [PlainCode] is used.
	// A nil return value appends nothing.
	Highlight func(code string) *Node
	// IsMine reports whether the post with the given ID
	// was written by the current user.
	// If IsMine is nil, no post is considered the user's.
	IsMine func(id uint64) bool
	// Label returns the user-facing string for the given key.
	// The only key currently used is "you".
	// If Label is nil, the key itself is used.
	Label func(key string) string
}

// RenderBody renders body using a [BodyRenderer]
// with default collaborators.
func RenderBody(body string, editing bool) *Node {
	return (&BodyRenderer{Editing: editing}).Render(body)
}

// Render converts body into a tree rooted at a blockquote element.
// Lines are separated by '\n'.
// An empty body produces a root with no children.
func (r *BodyRenderer) Render(body string) *Node {
	root := &Node{Tag: atom.Blockquote}
	if body == "" {
		return root
	}
	state := &bodyState{BodyRenderer: r}
	state.reset(root)
	if r.Editing {
		state.leaf = state.tempLinks
	} else {
		state.leaf = state.fragment
	}

	for i, line := range strings.Split(body, "\n") {
		state.quote = false

		// Runs of empty lines collapse to a single visible break.
		if i > 0 && state.successiveNewlines < 2 {
			state.append(&Node{Tag: atom.Br}, false)
		}
		if line == "" {
			state.successiveNewlines++
			continue
		}
		state.successiveNewlines = 0

		if line[0] == '>' {
			state.quote = true
			state.open(atom.Em)
		}
		if state.spoiler {
			state.open(atom.Del)
		}
		if state.bold {
			state.open(atom.B)
		}
		if state.italic {
			state.open(atom.I)
		}

		state.scanCode(line)

		// Formatting may continue on the next line,
		// but elements never span a line break.
		if state.italic {
			state.ascend()
		}
		if state.bold {
			state.ascend()
		}
		if state.spoiler {
			state.ascend()
		}
		if state.quote {
			state.ascend()
		}
	}
	return root
}

// bodyState is the state of a single [*BodyRenderer.Render] call.
type bodyState struct {
	*BodyRenderer
	treeState

	// leaf receives text fragments that contain no delimiters.
	leaf func(frag string)
	buf  strings.Builder
}

func (s *bodyState) highlight(code string) *Node {
	if s.Highlight == nil {
		return PlainCode(code)
	}
	return s.Highlight(code)
}

func (s *bodyState) isMine(id uint64) bool {
	return s.IsMine != nil && s.IsMine(id)
}

func (s *bodyState) label(key string) string {
	if s.Label == nil {
		return key
	}
	return s.Label(key)
}

// fragment emits a fragment of a closed post verbatim.
func (s *bodyState) fragment(frag string) {
	if frag != "" {
		s.append(textNode(frag), false)
	}
}

// PlainCode returns a code element containing the given text unchanged.
// It is the default highlighter for [BodyRenderer].
func PlainCode(code string) *Node {
	return &Node{Tag: atom.Code, Text: code}
}

// IDSet is a set of post IDs.
// Its Contains method is suitable for use as [BodyRenderer.IsMine].
type IDSet map[uint64]struct{}

// NewIDSet returns a set containing the given IDs.
func NewIDSet(ids ...uint64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add adds id to the set.
func (s IDSet) Add(id uint64) {
	s[id] = struct{}{}
}

// Contains reports whether id is in the set.
// Calling Contains on a nil set returns false.
func (s IDSet) Contains(id uint64) bool {
	_, ok := s[id]
	return ok
}
