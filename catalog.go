package clinic

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a requested post or message does not exist.
var ErrNotFound = errors.New("clinic: not found")

// Catalog is the immutable, ordered set of articles loaded at start.
type Catalog struct {
	posts []Post
	byID  map[string]int
}

// NewCatalog builds a Catalog from posts in display order. Empty and
// duplicate ids are rejected.
func NewCatalog(posts []Post) (*Catalog, error) {
	c := &Catalog{
		posts: make([]Post, 0, len(posts)),
		byID:  make(map[string]int, len(posts)),
	}
	for _, p := range posts {
		if p.ID == "" {
			return nil, fmt.Errorf("clinic: post %q has no id", p.Title)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("clinic: duplicate post id %q", p.ID)
		}
		if err := p.Body.Validate(); err != nil {
			return nil, fmt.Errorf("clinic: post %s: %w", p.ID, err)
		}
		if p.ReadTime == "" {
			p.ReadTime = p.Body.ReadTime()
		}
		c.byID[p.ID] = len(c.posts)
		c.posts = append(c.posts, p)
	}
	return c, nil
}

// LoadCatalog decodes a YAML list of posts from name in fsys.
func LoadCatalog(fsys fs.FS, name string) (*Catalog, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("clinic: read catalog: %w", err)
	}
	var posts []Post
	if err := yaml.Unmarshal(b, &posts); err != nil {
		return nil, fmt.Errorf("clinic: decode catalog: %w", err)
	}
	return NewCatalog(posts)
}

// Posts returns a copy of every post in display order.
func (c *Catalog) Posts() []Post {
	return append([]Post(nil), c.posts...)
}

// Lookup returns the post with id, or ErrNotFound.
func (c *Catalog) Lookup(id string) (Post, error) {
	i, ok := c.byID[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	return c.posts[i], nil
}

// IDs returns every post id in display order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.posts))
	for i, p := range c.posts {
		ids[i] = p.ID
	}
	return ids
}

// Others returns up to n posts other than id, in display order.
func (c *Catalog) Others(id string, n int) []Post {
	var out []Post
	for _, p := range c.posts {
		if len(out) == n {
			break
		}
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
