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

// Package lang provides the user-facing labels used in rendered post bodies.
package lang

import "golang.org/x/text/language"

// Table maps label keys to translated strings.
type Table map[string]string

// Lookup returns the label for key,
// or key itself if the table has no such label.
// It is suitable for use as postbody.BodyRenderer.Label.
func (t Table) Lookup(key string) string {
	if s, ok := t[key]; ok {
		return s
	}
	return key
}

// supported lists the languages with a table.
// The first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.Russian,
	language.Spanish,
	language.BrazilianPortuguese,
	language.Ukrainian,
	language.Polish,
}

var tables = []Table{
	{"you": "(You)"},
	{"you": "(Вы)"},
	{"you": "(Tú)"},
	{"you": "(Você)"},
	{"you": "(Ви)"},
	{"you": "(Ty)"},
}

var matcher = language.NewMatcher(supported)

// Match returns the table best matching the given preferences.
// Each preference is a BCP 47 tag or an Accept-Language header value.
// English is used when nothing matches.
func Match(prefs ...string) Table {
	_, i := language.MatchStrings(matcher, prefs...)
	return tables[i]
}

// For returns the table for the given language tag.
func For(tag language.Tag) Table {
	_, i, _ := matcher.Match(tag)
	return tables[i]
}
