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

	"golang.org/x/net/html/atom"
)

// Delimiters, from the outermost scanner to the innermost.
const (
	codeDelim    = "``"
	spoilerDelim = "**"
	boldDelim    = "__"
	italicDelim  = "~~"
)

// splitDelimited calls fill with each piece of frag between occurrences of sep
// and calls match after each occurrence.
// fill is always called once more than match.
func splitDelimited(frag, sep string, fill func(string), match func()) {
	for {
		i := strings.Index(frag, sep)
		if i < 0 {
			fill(frag)
			return
		}
		fill(frag[:i])
		frag = frag[i+len(sep):]
		match()
	}
}

func (s *bodyState) scanCode(frag string) {
	splitDelimited(frag, codeDelim, func(frag string) {
		if s.code {
			s.codeFragment(frag)
		} else {
			s.scanSpoilers(frag)
		}
	}, func() {
		s.code = !s.code
	})
}

// codeFragment passes text inside a code span to the highlighter.
// Leading quote markers are kept out of the highlighter's input
// and emitted as literal text.
func (s *bodyState) codeFragment(frag string) {
	n := 0
	for n < len(frag) && frag[n] == '>' {
		n++
	}
	if n > 0 {
		s.append(textNode(frag[:n]), false)
		frag = frag[n:]
	}
	if frag == "" {
		return
	}
	if h := s.highlight(frag); h != nil {
		s.append(h, false)
	}
}

func (s *bodyState) scanSpoilers(frag string) {
	splitDelimited(frag, spoilerDelim, s.scanBolds, s.toggleSpoiler)
}

func (s *bodyState) toggleSpoiler() {
	if s.italic {
		s.ascend()
	}
	if s.bold {
		s.ascend()
	}

	if s.spoiler {
		s.ascend()
	} else {
		s.open(atom.Del)
	}

	if s.bold {
		s.open(atom.B)
	}
	if s.italic {
		s.open(atom.I)
	}
	s.spoiler = !s.spoiler
}

func (s *bodyState) scanBolds(frag string) {
	splitDelimited(frag, boldDelim, s.scanItalics, s.toggleBold)
}

func (s *bodyState) toggleBold() {
	if s.italic {
		s.ascend()
	}

	if s.bold {
		s.ascend()
	} else {
		s.open(atom.B)
	}

	if s.italic {
		s.open(atom.I)
	}
	s.bold = !s.bold
}

func (s *bodyState) scanItalics(frag string) {
	splitDelimited(frag, italicDelim, s.leaf, s.toggleItalic)
}

func (s *bodyState) toggleItalic() {
	if s.italic {
		s.ascend()
	} else {
		s.open(atom.I)
	}
	s.italic = !s.italic
}
