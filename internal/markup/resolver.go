package markup

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"

	"github.com/dshills/emtoggle/internal/emphasis"
	"github.com/dshills/emtoggle/internal/engine/buffer"
)

// Resolver is the tree-backed emphasis.Structure.
type Resolver struct {
	md     goldmark.Markdown
	ttl    time.Duration
	cache  *gocache.Cache
	logger zerolog.Logger
}

var _ emphasis.Structure = (*Resolver)(nil)

type entry struct {
	size int
	tree *Tree
}

// NewResolver creates a resolver with a CommonMark parser.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		ttl:    DefaultTTL,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.md == nil {
		r.md = goldmark.New()
	}
	r.cache = gocache.New(r.ttl, 2*r.ttl)
	return r
}

// Tree returns the parse tree for src, from cache when possible.
func (r *Resolver) Tree(src string) *Tree {
	key := strconv.FormatUint(xxhash.Sum64String(src), 16)
	if v, ok := r.cache.Get(key); ok {
		if e := v.(entry); e.size == len(src) {
			return e.tree
		}
	}
	tree := Parse(r.md, []byte(src))
	r.cache.Set(key, entry{size: len(src), tree: tree}, gocache.DefaultExpiration)
	r.logger.Debug().
		Str("key", key).
		Int("bytes", len(src)).
		Int("spans", len(tree.spans)).
		Msg("parsed document")
	return tree
}

// EnclosingEmphasis reports the inner range of the smallest italic run
// around pos.
func (r *Resolver) EnclosingEmphasis(doc emphasis.Document, pos buffer.ByteOffset) (buffer.Range, bool) {
	sp, ok := r.Tree(doc.Slice(0, doc.Len())).Enclosing(pos)
	if !ok {
		return buffer.Range{}, false
	}
	return sp.Inner, true
}

// Cached returns the number of trees currently cached.
func (r *Resolver) Cached() int {
	return r.cache.ItemCount()
}

// Flush drops every cached tree.
func (r *Resolver) Flush() {
	r.cache.Flush()
}
