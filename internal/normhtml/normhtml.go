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

// Package normhtml provides a function for normalizing HTML
// so that rendered post bodies can be compared
// regardless of the serializer that produced them.
// Unlike general-purpose HTML normalizers, whitespace is significant.
package normhtml

import (
	"bytes"
	"sort"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// NormalizeHTML strips serialization differences from HTML:
// attribute order and case, character references,
// self-closing syntax, and end tags of void elements.
func NormalizeHTML(b []byte) []byte {
	type htmlAttribute struct {
		key   string
		value string
	}

	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			output = append(output, htmlEscaper.Replace(bytes.Clone(tok.Text()))...)
		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			if isVoid(tagBytes) {
				continue
			}
			output = append(output, "</"...)
			output = append(output, tagBytes...)
			output = append(output, ">"...)
		case html.StartTagToken, html.SelfClosingTagToken:
			tagBytes, hasAttr := tok.TagName()
			output = append(output, "<"...)
			output = append(output, tagBytes...)
			if hasAttr {
				var attrs []htmlAttribute
				for {
					k, v, more := tok.TagAttr()
					attrs = append(attrs, htmlAttribute{string(k), string(v)})
					if !more {
						break
					}
				}
				sort.Slice(attrs, func(i, j int) bool {
					return attrs[i].key < attrs[j].key
				})
				for _, attr := range attrs {
					output = append(output, " "...)
					output = append(output, attr.key...)
					output = append(output, `="`...)
					output = append(output, htmlEscaper.Replace([]byte(attr.value))...)
					output = append(output, `"`...)
				}
			}
			output = append(output, ">"...)
			if tt == html.SelfClosingTagToken && !isVoid(tagBytes) {
				output = append(output, "</"...)
				output = append(output, tagBytes...)
				output = append(output, ">"...)
			}
		case html.CommentToken:
			output = append(output, tok.Raw()...)
		}
	}
}

func isVoid(tag []byte) bool {
	switch atom.Lookup(tag) {
	case atom.Br, atom.Hr, atom.Img, atom.Wbr, atom.Input, atom.Meta, atom.Link:
		return true
	default:
		return false
	}
}
