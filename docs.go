package eslintconfig

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

//go:embed docs/*/README.md
var docsFS embed.FS

// CategoryDoc holds metadata extracted from a category README's front matter.
type CategoryDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Content     string `yaml:"-"`
}

// ListCategoryDocs returns all embedded category docs sorted by ID.
func ListCategoryDocs() ([]CategoryDoc, error) {
	return listCategoryDocsFromFS(docsFS)
}

// LookupCategoryDoc finds a category doc by ID (e.g. "react-hooks") or
// display name (e.g. "React Hooks") and returns its full README content.
func LookupCategoryDoc(query string) (string, error) {
	docs, err := ListCategoryDocs()
	if err != nil {
		return "", err
	}

	for _, d := range docs {
		if strings.EqualFold(d.ID, query) || strings.EqualFold(d.Name, query) {
			return d.Content, nil
		}
	}

	return "", fmt.Errorf("unknown category %q", query)
}

func listCategoryDocsFromFS(fsys fs.FS) ([]CategoryDoc, error) {
	entries, err := fs.ReadDir(fsys, "docs")
	if err != nil {
		return nil, fmt.Errorf("reading docs directory: %w", err)
	}

	var docs []CategoryDoc
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := "docs/" + entry.Name() + "/README.md"
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			continue
		}
		doc, err := parseCategoryDoc(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})

	return docs, nil
}

// parseCategoryDoc decodes the YAML front matter of a README into a
// CategoryDoc and keeps the raw markdown as Content.
func parseCategoryDoc(data []byte) (CategoryDoc, error) {
	md := goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))
	ctx := parser.NewContext()
	md.Parser().Parse(text.NewReader(data), parser.WithContext(ctx))

	fm := frontmatter.Get(ctx)
	if fm == nil {
		return CategoryDoc{}, fmt.Errorf("missing front matter")
	}

	var doc CategoryDoc
	if err := fm.Decode(&doc); err != nil {
		return CategoryDoc{}, fmt.Errorf("decoding front matter: %w", err)
	}
	if doc.ID == "" {
		return CategoryDoc{}, fmt.Errorf("front matter missing id")
	}

	doc.Content = string(data)
	return doc, nil
}
