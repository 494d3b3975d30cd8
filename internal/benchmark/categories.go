package benchmark

// DefaultAlgoOrder is the legend order of the compared aligners.
var DefaultAlgoOrder = []string{"graphaligner", "dijkstra", "astar-prefix", "astar-seeds", "pasgal"}

// Categories is an ordered, closed vocabulary.
type Categories struct {
	values []string
	codes  map[string]int
}

// NewCategories builds a vocabulary ordered as given. Repeated values keep
// their first position.
func NewCategories(values ...string) *Categories {
	c := &Categories{codes: make(map[string]int, len(values))}
	for _, v := range values {
		if _, ok := c.codes[v]; ok {
			continue
		}
		c.codes[v] = len(c.values)
		c.values = append(c.values, v)
	}
	return c
}

// DefaultCategories returns the stock algorithm vocabulary.
func DefaultCategories() *Categories {
	return NewCategories(DefaultAlgoOrder...)
}

// Code returns the position of v, or -1 if v is not a category.
func (c *Categories) Code(v string) int {
	if code, ok := c.codes[v]; ok {
		return code
	}
	return -1
}

// Contains reports whether v is a category.
func (c *Categories) Contains(v string) bool {
	return c.Code(v) >= 0
}

// Values returns the categories in order.
func (c *Categories) Values() []string {
	return append([]string(nil), c.values...)
}

// Len returns the number of categories.
func (c *Categories) Len() int {
	return len(c.values)
}
