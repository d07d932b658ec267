// Package cache provides a bounded in-memory LRU cache with per-entry TTL.
// It holds reference data and per-client rate limit buckets; provider
// responses are never stored here.
package cache

import (
	"container/list"
	"sync"
	"time"
)

type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Delete(key string)
	Clear()
}

type Item struct {
	Key        string
	Value      interface{}
	Expiration time.Time
}

type LRUCache struct {
	capacity  int
	items     map[string]*list.Element
	evictList *list.List
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
}

func New(capacity int, ttl time.Duration) *LRUCache {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUCache{
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (c *LRUCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		item := elem.Value.(*Item)
		if c.expired(item) {
			c.removeElement(elem)
			return nil, false
		}
		c.evictList.MoveToFront(elem)
		return item.Value, true
	}

	return nil, false
}

func (c *LRUCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value)
}

// GetOrCreate returns the live value for key, storing create() first when
// the key is absent or expired. The lookup and insert happen under one lock.
func (c *LRUCache) GetOrCreate(key string, create func() interface{}) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		item := elem.Value.(*Item)
		if !c.expired(item) {
			c.evictList.MoveToFront(elem)
			return item.Value
		}
	}

	value := create()
	c.set(key, value)
	return value
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
}

func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.evictList.Init()
}

// Len reports the number of entries, expired ones included.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.evictList.Len()
}

// CleanExpired drops every expired entry and returns how many were removed.
func (c *LRUCache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var toRemove []*list.Element
	for elem := c.evictList.Back(); elem != nil; elem = elem.Prev() {
		if c.expired(elem.Value.(*Item)) {
			toRemove = append(toRemove, elem)
		}
	}

	for _, elem := range toRemove {
		c.removeElement(elem)
	}
	return len(toRemove)
}

func (c *LRUCache) set(key string, value interface{}) {
	expiration := c.now().Add(c.ttl)

	if elem, ok := c.items[key]; ok {
		item := elem.Value.(*Item)
		item.Value = value
		item.Expiration = expiration
		c.evictList.MoveToFront(elem)
		return
	}

	elem := c.evictList.PushFront(&Item{
		Key:        key,
		Value:      value,
		Expiration: expiration,
	})
	c.items[key] = elem

	if c.evictList.Len() > c.capacity {
		c.removeOldest()
	}
}

// expired treats a zero TTL as "never expires".
func (c *LRUCache) expired(item *Item) bool {
	return c.ttl > 0 && c.now().After(item.Expiration)
}

func (c *LRUCache) removeOldest() {
	elem := c.evictList.Back()
	if elem != nil {
		c.removeElement(elem)
	}
}

func (c *LRUCache) removeElement(elem *list.Element) {
	c.evictList.Remove(elem)
	item := elem.Value.(*Item)
	delete(c.items, item.Key)
}
