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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestWalk(t *testing.T) {
	tree := root(span("a"), elem(atom.Del, span("b"), elem(atom.B, span("c"))), br())
	var got []string
	Walk(tree, &WalkOptions{
		Pre: func(c *Cursor) bool {
			got = append(got, "pre "+c.Node().Tag.String()+" "+c.Node().Text)
			return c.Node().Tag != atom.B
		},
		Post: func(c *Cursor) bool {
			got = append(got, "post "+c.Node().Tag.String())
			return true
		},
	})
	want := []string{
		"pre blockquote ",
		"pre span a",
		"post span",
		"pre del ",
		"pre span b",
		"post span",
		"pre b ",
		"post del",
		"pre br ",
		"post br",
		"post blockquote",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visit order (-want +got):\n%s", diff)
	}
}

func TestWalkStop(t *testing.T) {
	tree := root(span("a"), span("b"), span("c"))
	var got []string
	Walk(tree, &WalkOptions{
		Post: func(c *Cursor) bool {
			got = append(got, c.Node().Text)
			return c.Node().Text != "b"
		},
	})
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("visited (-want +got):\n%s", diff)
	}
}

func TestWalkDepth(t *testing.T) {
	tree := root(elem(atom.Em, elem(atom.Del, span("x"))))
	depths := make(map[string]int)
	Walk(tree, &WalkOptions{
		Pre: func(c *Cursor) bool {
			depths[c.Node().Tag.String()] = c.Depth()
			if c.Depth() == 0 && c.Parent() != nil {
				t.Errorf("root has parent %v", c.Parent().Tag)
			}
			return true
		},
	})
	want := map[string]int{"blockquote": 0, "em": 1, "del": 2, "span": 3}
	if diff := cmp.Diff(want, depths); diff != "" {
		t.Errorf("depths (-want +got):\n%s", diff)
	}
}

func TestTextContent(t *testing.T) {
	tree := RenderBody("a **b\n>c** ``d``", true)
	if got, want := tree.TextContent(), "a b>c d"; got != want {
		t.Errorf("TextContent() = %q; want %q", got, want)
	}
}

func TestAttrValue(t *testing.T) {
	n := link(9, ">>9")
	if got, ok := n.AttrValue("data-id"); got != "9" || !ok {
		t.Errorf("AttrValue(%q) = %q, %t; want %q, true", "data-id", got, ok, "9")
	}
	if got, ok := n.AttrValue("title"); got != "" || ok {
		t.Errorf("AttrValue(%q) = %q, %t; want \"\", false", "title", got, ok)
	}
	var nilNode *Node
	if _, ok := nilNode.AttrValue("class"); ok {
		t.Error("nil node has class attribute")
	}
}

func TestHTMLNode(t *testing.T) {
	tree := root(span("a<b"), br(), link(1, ">>1"))
	buf := new(bytes.Buffer)
	if err := html.Render(buf, tree.HTMLNode()); err != nil {
		t.Fatal(err)
	}
	want := `<blockquote><span>a&lt;b</span><br/><a class="post-link temp" data-id="1" href="#p1">&gt;&gt;1</a></blockquote>`
	if got := buf.String(); got != want {
		t.Errorf("html.Render(tree.HTMLNode()) = %q; want %q", got, want)
	}
}
