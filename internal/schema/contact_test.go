package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testContactSchema() *ContactSchema {
	return NewContactSchema().WithClock(func() int64 { return 1000 })
}

func TestContactFetchDefaults(t *testing.T) {
	s := testContactSchema()
	c := s.Fetch(map[string]any{"phone": float64(51987654321)})

	assert.Equal(t, "51987654321", c.Phone)
	assert.Equal(t, "phone", c.Sales)
	assert.Equal(t, int64(0), c.Visits)
	assert.Equal(t, int64(1000), c.CreatedAt)
	assert.Equal(t, int64(1000), c.CreatedAtPast)
}

func TestContactCreateFirstTouch(t *testing.T) {
	s := testContactSchema()
	doc := s.Create(map[string]any{"phone": "51987654321", "name": "Ana"})

	assert.Equal(t, int64(1), doc["visits"])
	assert.Equal(t, int64(0), doc["visitsPast"])
	assert.Equal(t, "phone", doc["sales"])
	assert.Equal(t, "", doc["pastInfo"])
	assert.Equal(t, int64(1000), doc["createdAt"])
	assert.Equal(t, "Ana", doc["name"])
}

func TestContactUpdateSparse(t *testing.T) {
	s := testContactSchema()
	patch := s.Update(map[string]any{"name": "Ana", "visits": float64(4)})
	assert.Equal(t, map[string]any{"name": "Ana", "visits": int64(4)}, patch)
}
