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

// Package corpus provides example post bodies and their expected HTML.
package corpus

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/tools/txtar"
)

// Example is a single post body with its expected rendering.
type Example struct {
	Name    string
	Body    string
	HTML    string
	Editing bool
}

// Mine lists the post IDs that examples treat as the reader's own.
var Mine = []uint64{1, 2}

//go:embed corpus.txt
var corpusData []byte

// Load returns the examples in the corpus.
func Load() ([]Example, error) {
	a := txtar.Parse(corpusData)
	if len(a.Files)%2 != 0 {
		return nil, fmt.Errorf("load corpus: odd number of files (%d)", len(a.Files))
	}
	examples := make([]Example, 0, len(a.Files)/2)
	for i := 0; i < len(a.Files); i += 2 {
		body, html := a.Files[i], a.Files[i+1]
		name := strings.TrimSuffix(body.Name, ".body")
		if name == body.Name || html.Name != name+".html" {
			return nil, fmt.Errorf("load corpus: mismatched file pair %s and %s", body.Name, html.Name)
		}
		examples = append(examples, Example{
			Name:    name,
			Body:    strings.TrimSuffix(string(body.Data), "\n"),
			HTML:    strings.TrimSuffix(string(html.Data), "\n"),
			Editing: strings.HasPrefix(name, "editing/"),
		})
	}
	return examples, nil
}
