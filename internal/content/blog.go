// Package content provides the embedded guide articles.
package content

import (
	_ "embed"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed posts.yaml
var postsYAML []byte

// DefaultPageSize is the number of posts per blog page.
const DefaultPageSize = 5

// Post is a guide article. Body is markdown.
type Post struct {
	Slug    string    `yaml:"slug"`
	Title   string    `yaml:"title"`
	Date    time.Time `yaml:"date"`
	Summary string    `yaml:"summary"`
	Body    string    `yaml:"body"`
}

// Blog is the ordered article list, newest first.
type Blog struct {
	posts []Post
}

// Load parses the embedded articles.
func Load() (*Blog, error) {
	return Parse(postsYAML)
}

// Parse parses articles from YAML and orders them newest first.
func Parse(data []byte) (*Blog, error) {
	var f struct {
		Posts []Post `yaml:"posts"`
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("content: parsing posts: %w", err)
	}

	posts := f.Posts
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return &Blog{posts: posts}, nil
}

// Len returns the number of posts.
func (b *Blog) Len() int {
	return len(b.posts)
}

// Posts returns every post, newest first.
func (b *Blog) Posts() []Post {
	return b.posts
}

// Pages returns the number of pages at the given size. An empty blog
// still has one (empty) page.
func (b *Blog) Pages(size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if len(b.posts) == 0 {
		return 1
	}
	return (len(b.posts) + size - 1) / size
}

// Page returns the posts on page n (1-based). Out-of-range pages are empty.
func (b *Blog) Page(n, size int) []Post {
	if size <= 0 {
		size = DefaultPageSize
	}
	if n < 1 {
		return nil
	}
	start := (n - 1) * size
	if start >= len(b.posts) {
		return nil
	}
	end := min(start+size, len(b.posts))
	return b.posts[start:end]
}

// Find returns the post with the given slug.
func (b *Blog) Find(slug string) (Post, bool) {
	for _, p := range b.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}
