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
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is an element in a rendered post body.
// A node carries either text or children,
// depending on how it was appended.
type Node struct {
	Tag      atom.Atom
	Attr     []html.Attribute
	Text     string
	Children []*Node
}

// AttrValue returns the value of the attribute with the given key.
func (n *Node) AttrValue(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TextContent returns the concatenated text of n and its descendants
// in document order.
func (n *Node) TextContent() string {
	sb := new(strings.Builder)
	Walk(n, &WalkOptions{
		Pre: func(c *Cursor) bool {
			sb.WriteString(c.Node().Text)
			return true
		},
	})
	return sb.String()
}

// HTMLNode converts the tree rooted at n
// into a freshly allocated [html.Node] tree.
// Text is stored in text node children.
func (n *Node) HTMLNode() *html.Node {
	if n == nil {
		return nil
	}
	h := &html.Node{
		Type:     html.ElementNode,
		DataAtom: n.Tag,
		Data:     n.Tag.String(),
	}
	if len(n.Attr) > 0 {
		h.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	if n.Text != "" {
		h.AppendChild(&html.Node{
			Type: html.TextNode,
			Data: n.Text,
		})
	}
	for _, c := range n.Children {
		h.AppendChild(c.HTMLNode())
	}
	return h
}

func textNode(s string) *Node {
	return &Node{Tag: atom.Span, Text: s}
}
