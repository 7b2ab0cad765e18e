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

// Post2html converts forum post bodies to HTML.
//
// Usage:
//
//	post2html [-editing] [-mine=ID,...] [-lang=TAG] [-format] [file...]
//
// Post2html reads the named files, or else standard input, as post bodies
// and then prints the corresponding HTML to standard output.
// With -format, it prints the normalized markup instead.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"zombiezen.com/go/postbody"
	"zombiezen.com/go/postbody/format"
	"zombiezen.com/go/postbody/lang"
)

func main() {
	editing := flag.Bool("editing", false, "render posts as still open for editing")
	mine := flag.String("mine", "", "comma-separated `IDs` of the reader's own posts")
	langTag := flag.String("lang", "en", "language `tag` for labels")
	formatFlag := flag.Bool("format", false, "print normalized markup instead of HTML")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("post2html: ")

	ids, err := parseIDs(*mine)
	if err != nil {
		log.Fatal(err)
	}
	r := &postbody.BodyRenderer{
		Editing: *editing,
		IsMine:  ids.Contains,
		Label:   lang.Match(*langTag).Lookup,
	}

	args := flag.Args()
	if len(args) == 0 {
		renderFile(r, os.Stdin, *formatFlag)
	} else {
		for _, arg := range args {
			f, err := os.Open(arg)
			if err != nil {
				log.Fatal(err)
			}
			renderFile(r, f, *formatFlag)
			f.Close()
		}
	}
}

func renderFile(r *postbody.BodyRenderer, f *os.File, formatOutput bool) {
	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatal(err)
	}
	root := r.Render(strings.TrimSuffix(string(data), "\n"))
	if formatOutput {
		err = format.Format(os.Stdout, root)
	} else {
		err = postbody.RenderHTML(os.Stdout, root)
	}
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.WriteString("\n")
}

func parseIDs(s string) (postbody.IDSet, error) {
	ids := make(postbody.IDSet)
	if s == "" {
		return ids, nil
	}
	for _, field := range strings.Split(s, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, err
		}
		ids.Add(id)
	}
	return ids, nil
}
