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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParsePostLink(t *testing.T) {
	tests := []struct {
		word      string
		wantExtra int
		wantID    uint64
		wantOK    bool
	}{
		{">>1", 0, 1, true},
		{">>123", 0, 123, true},
		{">>>45", 1, 45, true},
		{">>>>>6", 3, 6, true},
		{">>0", 0, 0, true},
		{">>18446744073709551615", 0, 18446744073709551615, true},
		{">>18446744073709551616", 0, 0, false},
		{"", 0, 0, false},
		{">1", 0, 0, false},
		{">>", 0, 0, false},
		{">>>", 0, 0, false},
		{">>1a", 0, 0, false},
		{">>-1", 0, 0, false},
		{">> 1", 0, 0, false},
		{"1>>1", 0, 0, false},
	}
	for _, test := range tests {
		extra, id, ok := ParsePostLink(test.word)
		if extra != test.wantExtra || id != test.wantID || ok != test.wantOK {
			t.Errorf("ParsePostLink(%q) = %d, %d, %t; want %d, %d, %t",
				test.word, extra, id, ok, test.wantExtra, test.wantID, test.wantOK)
		}
	}
}

func TestSplitPunctuation(t *testing.T) {
	tests := []struct {
		word      string
		wantLead  byte
		wantCore  string
		wantTrail byte
	}{
		{"", 0, "", 0},
		{",", 0, ",", 0},
		{"a", 0, "a", 0},
		{"word,", 0, "word", ','},
		{"(word)", '(', "word", ')'},
		{"(a", '(', "a", 0},
		{"(a)", '(', "a", ')'},
		{"((", '(', "(", 0},
		{"a.", 0, "a", '.'},
		{"..", '.', ".", 0},
		{"...", '.', ".", '.'},
		{`"quote"`, '"', "quote", '"'},
		{"[>>1]", '[', ">>1", ']'},
		{"a!?", 0, "a!", '?'},
		{"*a*", 0, "*a*", 0},
		{">>1", 0, ">>1", 0},
	}
	for _, test := range tests {
		lead, core, trail := splitPunctuation(test.word)
		if lead != test.wantLead || core != test.wantCore || trail != test.wantTrail {
			t.Errorf("splitPunctuation(%q) = %q, %q, %q; want %q, %q, %q",
				test.word, lead, core, trail, test.wantLead, test.wantCore, test.wantTrail)
		}
	}
}

func TestSplitDelimited(t *testing.T) {
	tests := []struct {
		frag string
		sep  string
		want []string
	}{
		{"", "**", []string{""}},
		{"abc", "**", []string{"abc"}},
		{"a**b", "**", []string{"a", "|", "b"}},
		{"**", "**", []string{"", "|", ""}},
		{"***", "**", []string{"", "|", "*"}},
		{"a b  c", " ", []string{"a", "|", "b", "|", "", "|", "c"}},
	}
	for _, test := range tests {
		var got []string
		splitDelimited(test.frag, test.sep, func(s string) {
			got = append(got, s)
		}, func() {
			got = append(got, "|")
		})
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("splitDelimited(%q, %q) (-want +got):\n%s", test.frag, test.sep, diff)
		}
	}
}

func TestPostLinks(t *testing.T) {
	tests := []struct {
		body string
		want []uint64
	}{
		{"", nil},
		{"no links here", nil},
		{">>1", []uint64{1}},
		{"a >>3 b >>1 c >>3\n**>>2**", []uint64{3, 1, 2}},
		{">>>7, ``>>8``", []uint64{7}},
	}
	for _, test := range tests {
		got := PostLinks(RenderBody(test.body, true))
		if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("PostLinks(RenderBody(%q, true)) (-want +got):\n%s", test.body, diff)
		}
	}

	if got := PostLinks(RenderBody(">>1", false)); len(got) != 0 {
		t.Errorf("PostLinks on closed post = %v; want []", got)
	}
}
