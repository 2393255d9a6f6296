// Package identity produces identifiers for content items.
//
// Interactive additions get millisecond timestamps so newer entries sort
// after older ones even inside the same batch. Items derived from files get
// deterministic UUIDs so repeated loads agree on identity.
package identity

import (
	"strconv"
	"sync"
	"time"

	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"

	"github.com/deltahub/go-hub/content"
)

// Generator hands out strictly increasing millisecond identifiers.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewGenerator builds a Generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock builds a Generator with a caller supplied clock.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Next returns the next identifier. Calls landing on the same clock tick
// still receive distinct, increasing values.
func (g *Generator) Next() content.ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return content.ID(strconv.FormatInt(ms, 10))
}

// SeedUUID derives a stable identifier for a file-backed item. The same kind
// and key always map to the same value.
func SeedUUID(kind, key string) content.ID {
	seed := "go-hub:" + kind + ":" + key
	id, err := hashid.NewUUID(seed,
		hashid.WithHashAlgorithm(hashid.SHA256),
		hashid.WithNormalization(true),
	)
	if err != nil || id == uuid.Nil {
		return content.ID(uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String())
	}
	return content.ID(id.String())
}
