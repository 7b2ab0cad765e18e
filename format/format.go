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

// Package format writes rendered post bodies back out as markup.
package format

import (
	"io"
	"strings"

	"golang.org/x/net/html/atom"
	"zombiezen.com/go/postbody"
)

const (
	codeDelim    = "``"
	spoilerDelim = "**"
	boldDelim    = "__"
	italicDelim  = "~~"
)

// Format writes the tree rooted at root as post body markup.
// Rendering the output with the default highlighter
// reproduces trees created by [postbody.BodyRenderer]
// in most cases.
// Formatting spans stay open across line breaks,
// just as they do when the markup is rendered.
func Format(w io.Writer, root *postbody.Node) error {
	f := &formatter{
		w:         &errWriter{w: w},
		lineStart: true,
	}
	postbody.Walk(root, &postbody.WalkOptions{
		Pre: func(c *postbody.Cursor) bool {
			if c.Parent() == nil {
				// Root.
				return true
			}
			return f.pre(c.Node())
		},
		Post: func(c *postbody.Cursor) bool {
			if c.Parent() != nil {
				f.post(c.Node())
			}
			return true
		},
	})
	f.setFlags(flags{})
	f.write("")
	return f.w.err
}

type flags struct {
	spoiler bool
	bold    bool
	italic  bool
}

type formatter struct {
	w *errWriter

	// depth counts the open elements of each kind above the current node.
	depth struct {
		spoiler int
		bold    int
		italic  int
	}
	// written is the set of spans open in the output so far.
	written flags
	// breaks is the number of line breaks not yet written.
	// They are delayed so that spans that do not continue
	// can be closed on the line they started on.
	breaks int
	// quote is the number of open quoted lines above the current node.
	quote int
	// lineStart is true until something is written on the current line.
	lineStart bool
	// held is a text span of '>' characters that has not been written yet.
	held string
}

func (f *formatter) pre(n *postbody.Node) bool {
	switch n.Tag {
	case atom.Br:
		f.breaks++
		return false
	case atom.Em:
		// Quoted lines keep their leading '>' in their text.
		f.quote++
		return true
	case atom.Del:
		f.depth.spoiler++
		return true
	case atom.B:
		f.depth.bold++
		return true
	case atom.I:
		f.depth.italic++
		return true
	}

	f.setFlags(flags{
		spoiler: f.depth.spoiler > 0,
		bold:    f.depth.bold > 0,
		italic:  f.depth.italic > 0,
	})
	switch {
	case n.Tag == atom.A:
		if id, ok := n.AttrValue("data-id"); ok {
			f.write(">>" + id)
		} else {
			f.write(n.TextContent())
		}
	case n.Tag == atom.Code:
		// Rendering moves leading '>' out of code,
		// so held markers go back inside the delimiters.
		held := f.held
		f.held = ""
		f.write(codeDelim + held + n.TextContent() + codeDelim)
	case isQuoteMarkers(n) && !(f.lineStart && f.quote > 0):
		// Written bare at the start of a line, the markers would start a quote.
		f.held = n.Text
	default:
		f.write(n.TextContent())
	}
	return false
}

func (f *formatter) post(n *postbody.Node) {
	switch n.Tag {
	case atom.Em:
		f.quote--
	case atom.Del:
		f.depth.spoiler--
	case atom.B:
		f.depth.bold--
	case atom.I:
		f.depth.italic--
	}
}

// setFlags writes the delimiters needed to change the open spans to want
// along with any pending line breaks.
// Spans are closed innermost first and opened outermost first.
func (f *formatter) setFlags(want flags) {
	if f.written.italic && !want.italic {
		f.write(italicDelim)
	}
	if f.written.bold && !want.bold {
		f.write(boldDelim)
	}
	if f.written.spoiler && !want.spoiler {
		f.write(spoilerDelim)
	}
	if f.breaks > 0 {
		f.write(strings.Repeat("\n", f.breaks))
		f.breaks = 0
		f.lineStart = true
	}
	if !f.written.spoiler && want.spoiler {
		f.write(spoilerDelim)
	}
	if !f.written.bold && want.bold {
		f.write(boldDelim)
	}
	if !f.written.italic && want.italic {
		f.write(italicDelim)
	}
	f.written = want
}

// write writes s after any held quote markers.
// Markers not followed by code are wrapped in empty code
// so they stay plain text.
func (f *formatter) write(s string) {
	if f.held != "" {
		s = codeDelim + f.held + codeDelim + s
		f.held = ""
	}
	if s == "" {
		return
	}
	f.w.WriteString(s)
	f.lineStart = false
}

// isQuoteMarkers reports whether n is a text span of only '>' characters.
func isQuoteMarkers(n *postbody.Node) bool {
	return n.Tag == atom.Span && n.Text != "" && strings.Trim(n.Text, ">") == ""
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}

// String formats the tree rooted at root into a string.
func String(root *postbody.Node) string {
	sb := new(strings.Builder)
	Format(sb, root)
	return sb.String()
}
