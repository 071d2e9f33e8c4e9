package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

// MemoryCatalog holds whiskeys in memory with the same contract as the Mongo
// implementation. It backs handler tests and local runs without a database.
type MemoryCatalog struct {
	mu       sync.RWMutex
	whiskeys map[string]models.Whiskey
}

func NewMemoryCatalog(seed ...models.Whiskey) *MemoryCatalog {
	c := &MemoryCatalog{whiskeys: make(map[string]models.Whiskey)}
	for _, w := range seed {
		c.whiskeys[w.ID] = w
	}
	return c
}

func (c *MemoryCatalog) List(ctx context.Context) []models.Whiskey {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Whiskey, 0, len(c.whiskeys))
	for _, w := range c.whiskeys {
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

func (c *MemoryCatalog) GetByID(ctx context.Context, id string) *models.Whiskey {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if w, ok := c.whiskeys[id]; ok {
		return &w
	}
	return nil
}

func (c *MemoryCatalog) Create(ctx context.Context, req models.WhiskeyRequest) *models.Whiskey {
	w := models.Whiskey{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Distillery:  req.Distillery,
		Type:        req.Type,
		Region:      req.Region,
		Age:         req.Age,
		Abv:         req.Abv,
		Description: req.Description,
		Attributes:  req.Attributes,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if w.Attributes == nil {
		w.Attributes = []string{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.whiskeys[w.ID] = w
	return &w
}

func (c *MemoryCatalog) Update(ctx context.Context, id string, req models.WhiskeyRequest) *models.Whiskey {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, ok := c.whiskeys[id]
	if !ok {
		return nil
	}
	w.Name = req.Name
	w.Distillery = req.Distillery
	w.Type = req.Type
	w.Region = req.Region
	w.Age = req.Age
	w.Abv = req.Abv
	w.Description = req.Description
	w.Attributes = req.Attributes
	w.ImageURL = req.ImageURL
	c.whiskeys[id] = w
	return &w
}

func (c *MemoryCatalog) Delete(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.whiskeys[id]; !ok {
		return false
	}
	delete(c.whiskeys, id)
	return true
}
