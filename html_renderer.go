// Copyright 2023 Ross Light
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
	"fmt"
	"io"

	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	// "&#39;" is shorter than "&apos;" and apos was not in HTML until HTML5.
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// An HTMLRenderer converts rendered post bodies into HTML.
// Text and attribute values are always escaped,
// so the output only contains elements present in the tree.
type HTMLRenderer struct {
	// If OmitRoot is true, the root element's tags are not written,
	// only its contents.
	OmitRoot bool
}

// RenderHTML writes the tree rooted at root to the given writer as HTML
// using the default options for [HTMLRenderer].
func RenderHTML(w io.Writer, root *Node) error {
	return new(HTMLRenderer).Render(w, root)
}

// Render writes the tree rooted at root to the given writer as HTML.
func (r *HTMLRenderer) Render(w io.Writer, root *Node) error {
	if _, err := w.Write(r.AppendNode(nil, root)); err != nil {
		return fmt.Errorf("render post body to html: %w", err)
	}
	return nil
}

// AppendNode appends the HTML of the tree rooted at root to dst
// and returns the resulting byte slice.
func (r *HTMLRenderer) AppendNode(dst []byte, root *Node) []byte {
	state := &renderState{dst: dst}
	if r.OmitRoot && root != nil {
		state.children(root)
	} else {
		state.node(root)
	}
	return state.dst
}

type renderState struct {
	dst     []byte
	scratch []byte
}

func (r *renderState) node(n *Node) {
	if n == nil {
		return
	}
	r.dst = append(r.dst, '<')
	r.dst = append(r.dst, n.Tag.String()...)
	for _, a := range n.Attr {
		r.dst = append(r.dst, ' ')
		r.dst = append(r.dst, a.Key...)
		r.dst = append(r.dst, `="`...)
		r.escape(a.Val)
		r.dst = append(r.dst, '"')
	}
	r.dst = append(r.dst, '>')
	if isVoid(n.Tag) {
		return
	}
	r.children(n)
	r.dst = append(r.dst, "</"...)
	r.dst = append(r.dst, n.Tag.String()...)
	r.dst = append(r.dst, '>')
}

func (r *renderState) children(n *Node) {
	r.escape(n.Text)
	for _, c := range n.Children {
		r.node(c)
	}
}

func (r *renderState) escape(s string) {
	if s == "" {
		return
	}
	r.scratch = append(r.scratch[:0], s...)
	r.dst = append(r.dst, htmlEscaper.Replace(r.scratch)...)
}

func isVoid(tag atom.Atom) bool {
	switch tag {
	case atom.Br, atom.Hr, atom.Img, atom.Wbr:
		return true
	default:
		return false
	}
}
