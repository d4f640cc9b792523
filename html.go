// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cedict

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DefaultHTMLDir is the default directory HTML pages are written to.
const DefaultHTMLDir = "docs"

// HTMLIndexName is the file name of the HTML index page.
const HTMLIndexName = "index.html"

var pageTemplate = template.Must(template.New("page").Parse(
	"<h1>{{.Simplified}}</h1>\r\n" +
		"<p>Simplified: {{.Simplified}}</p>\r\n" +
		"<p>Traditional: {{.Traditional}}</p>" +
		"<p>Pinyin: {{.Pinyin}}</p>\r\n" +
		"<p>Definition: {{.Definitions}}</p>\r\n",
))

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<style>
		.grid-container {
			display: flex;
			flex-wrap: wrap;
		}
		.grid-item {
			width: 100px;
			height: 100px;
			display: flex;
			align-items: center;
			justify-content: center;
			border: 1px solid black;
			flex-grow: 1;
			text-align: center;
		}
		@media (max-width: 600px) {
			.grid-item {
				width: 50px;
				height: 50px;
			}
		}
	</style>
</head>
<body>
	<div class="grid-container">
{{range .}}<a class="grid-item" href="{{.Href}}">{{.Simplified}}</a>
{{end}}	</div>
</body>
</html>
`))

// pageNameReplacer escapes the characters that cannot appear in a file name.
var pageNameReplacer = strings.NewReplacer("%", "%25", "/", "%2F", "\\", "%5C")

// page is a single simplified headword page.
type page struct {
	Simplified  string
	Traditional string
	Pinyin      string
	Definitions string
}

// link is a link to a page from the index.
type link struct {
	Simplified string
	Href       string
}

// PageName returns the file name of the HTML page for the simplified
// headword.
func PageName(simplified string) string {
	return pageNameReplacer.Replace(simplified) + ".html"
}

// WriteHTML writes one HTML page per simplified headword and an index page
// linking to every page to dir. The directory is created if needed and HTML
// files already in it are removed first.
func (d *Dictionary) WriteHTML(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}

	old, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return fmt.Errorf("listing %q: %w", dir, err)
	}
	for _, path := range old {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing %q: %w", path, err)
		}
	}

	links := make([]link, 0, len(d.simplifiedKeys))
	for _, s := range d.simplifiedKeys {
		e := d.entries[d.simplified[s]]
		name := PageName(s)

		err := writeFile(filepath.Join(dir, name), func(w io.Writer) error {
			return executeTemplate(w, pageTemplate, page{
				Simplified:  s,
				Traditional: e.Traditional,
				Pinyin:      strings.Join(e.Pinyin, " "),
				Definitions: strings.Join(e.Definitions, "; "),
			})
		})
		if err != nil {
			return err
		}

		links = append(links, link{
			Simplified: s,
			// NOTE: the "./" prefix keeps a ':' in the name from being read
			// as a URL scheme.
			Href: "./" + url.PathEscape(name),
		})
	}

	return writeFile(filepath.Join(dir, HTMLIndexName), func(w io.Writer) error {
		return executeTemplate(w, indexTemplate, links)
	})
}

func executeTemplate(w io.Writer, t *template.Template, data any) error {
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("rendering %s: %w", t.Name(), err)
	}
	return nil
}
