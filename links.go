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

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const tempLinkClass = "post-link temp"

func isPunctuation(b byte) bool {
	switch b {
	case '!', '"', '\'', '(', ')', ',', '-', '.', ':', ';', '?', '[', ']':
		return true
	default:
		return false
	}
}

// splitPunctuation splits off one byte of leading and trailing punctuation.
// lead and trail are zero if there is no punctuation on that edge.
// Words shorter than two bytes are never split.
func splitPunctuation(word string) (lead byte, core string, trail byte) {
	core = word
	if len(core) < 2 {
		return 0, core, 0
	}
	if isPunctuation(core[0]) {
		lead = core[0]
		core = core[1:]
	}
	if len(core) < 2 {
		return lead, core, 0
	}
	if last := core[len(core)-1]; isPunctuation(last) {
		trail = last
		core = core[:len(core)-1]
	}
	return lead, core, trail
}

// words splits frag on spaces and calls fn with each word
// stripped of its edge punctuation.
// fn either writes the word into s.buf or flushes s.buf and emits nodes.
// Any text left in s.buf at the end is emitted as a single text node.
func (s *bodyState) words(frag string, fn func(word string)) {
	s.buf.Reset()
	first := true
	splitDelimited(frag, " ", func(word string) {
		if !first {
			s.buf.WriteByte(' ')
		}
		first = false

		lead, core, trail := splitPunctuation(word)
		if lead != 0 {
			s.buf.WriteByte(lead)
		}
		fn(core)
		if trail != 0 {
			s.buf.WriteByte(trail)
		}
	}, func() {})
	s.flush()
}

// flush emits any buffered text as a text node.
func (s *bodyState) flush() {
	if s.buf.Len() > 0 {
		s.append(textNode(s.buf.String()), false)
		s.buf.Reset()
	}
}

// tempLinks emits a fragment of a post that is still being edited,
// converting >>ID references into temporary links.
func (s *bodyState) tempLinks(frag string) {
	s.words(frag, func(word string) {
		if len(word) > 0 && word[0] == '>' {
			if extra, id, ok := ParsePostLink(word); ok {
				for i := 0; i < extra; i++ {
					s.buf.WriteByte('>')
				}
				s.flush()
				s.append(s.tempLink(id), false)
				return
			}
		}
		s.buf.WriteString(word)
	})
}

func (s *bodyState) tempLink(id uint64) *Node {
	idStr := strconv.FormatUint(id, 10)
	text := ">>" + idStr
	if s.isMine(id) {
		text += " " + s.label("you")
	}
	return &Node{
		Tag: atom.A,
		Attr: []html.Attribute{
			{Key: "class", Val: tempLinkClass},
			{Key: "data-id", Val: idStr},
			{Key: "href", Val: "#p" + idStr},
		},
		Text: text,
	}
}

// ParsePostLink parses a reference to another post of the form >>ID.
// extra is the number of '>' characters beyond the first two,
// which are displayed literally before the link.
// ok is false if word is not a reference
// or if the ID does not fit in a uint64.
func ParsePostLink(word string) (extra int, id uint64, ok bool) {
	n := 0
	for n < len(word) && word[n] == '>' {
		n++
	}
	if n < 2 {
		return 0, 0, false
	}
	digits := word[n:]
	if digits == "" {
		return 0, 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, 0, false
		}
	}
	id, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return n - 2, id, true
}

// PostLinks returns the IDs of the posts referenced by temporary links
// in the tree rooted at root, in document order and without duplicates.
func PostLinks(root *Node) []uint64 {
	var ids []uint64
	seen := make(map[uint64]struct{})
	Walk(root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			n := c.Node()
			if n.Tag != atom.A {
				return true
			}
			if class, _ := n.AttrValue("class"); class != tempLinkClass {
				return false
			}
			idStr, _ := n.AttrValue("data-id")
			id, err := strconv.ParseUint(idStr, 10, 64)
			if err != nil {
				return false
			}
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
			return false
		},
	})
	return ids
}
