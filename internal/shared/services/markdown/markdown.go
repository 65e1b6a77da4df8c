// Package markdown renders plan descriptions to sanitized HTML and strips
// markup from free text such as cancellation reasons.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const defaultCacheSize = 256

type Renderer interface {
	// Render converts markdown to sanitized HTML.
	Render(markdown string) (string, error)
	// StripHTML removes every tag, leaving plain text.
	StripHTML(text string) string
}

type renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
	cache  *lru.Cache[string, string]
}

// NewRenderer builds a Renderer keeping up to cacheSize rendered documents.
func NewRenderer(cacheSize int) (Renderer, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)

	return &renderer{
		md:     md,
		policy: policy,
		strict: bluemonday.StrictPolicy(),
		cache:  cache,
	}, nil
}

func (r *renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	if out, ok := r.cache.Get(markdown); ok {
		return out, nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	out := r.policy.Sanitize(buf.String())
	r.cache.Add(markdown, out)
	return out, nil
}

func (r *renderer) StripHTML(text string) string {
	return strings.TrimSpace(r.strict.Sanitize(text))
}
