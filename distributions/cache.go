package distributions

// cache memoizes derived values of a distribution instance. A missing key is
// the dirty state; invalidate clears every key at once.
type cache struct {
	entries map[string]float64
}

func (c *cache) get(key string, compute func() float64) float64 {
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := compute()
	if c.entries == nil {
		c.entries = make(map[string]float64)
	}
	c.entries[key] = v
	return v
}

func (c *cache) invalidate() {
	clear(c.entries)
}

func (c *cache) len() int {
	return len(c.entries)
}
