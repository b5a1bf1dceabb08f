package services

import (
	"testing"

	"home-catering/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	couscous = models.MenuItem{ID: "a", Name: "Couscous", Price: 65, Category: models.CategoryMainCourse, IsAvailable: true}
	salad    = models.MenuItem{ID: "b", Name: "Salad", Price: 35, Category: models.CategorySalad, IsAvailable: true}
)

func TestCart_AddSameItemTwiceMergesLines(t *testing.T) {
	var c Cart
	c.Add(couscous)
	c.Add(couscous)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Qty)
}

func TestCart_KeepsFirstAddOrder(t *testing.T) {
	var c Cart
	c.Add(salad)
	c.Add(couscous)
	c.Add(salad)

	require.Len(t, c.Items, 2)
	assert.Equal(t, "b", c.Items[0].ID)
	assert.Equal(t, "a", c.Items[1].ID)
}

func TestCart_Total(t *testing.T) {
	tests := []struct {
		name string
		adds []models.MenuItem
		want int64
	}{
		{"empty", nil, 0},
		{"one line", []models.MenuItem{couscous}, 65},
		{"two lines", []models.MenuItem{couscous, couscous, salad}, 165},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			for _, it := range tt.adds {
				c.Add(it)
			}
			assert.Equal(t, tt.want, c.Total())

			var sum int64
			for _, line := range c.Items {
				sum += line.Price * int64(line.Qty)
			}
			assert.Equal(t, sum, c.Total())
		})
	}
}

func TestCart_SetQuantityDelta(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"decrement at one stays one", 1, -1, 1},
		{"large negative clamps", 3, -10, 1},
		{"increment", 1, 1, 2},
		{"decrement", 3, -1, 2},
		{"zero", 2, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			for i := 0; i < tt.start; i++ {
				c.Add(couscous)
			}
			c.SetQuantityDelta(couscous.ID, tt.delta)
			require.Len(t, c.Items, 1, "line must never be removed by a delta")
			assert.Equal(t, tt.want, c.Items[0].Qty)
		})
	}
}

func TestCart_SetQuantityDeltaUnknownID(t *testing.T) {
	var c Cart
	c.Add(couscous)
	c.SetQuantityDelta("missing", 5)
	assert.Equal(t, 1, c.Items[0].Qty)
}

func TestCart_Remove(t *testing.T) {
	var c Cart
	c.Add(couscous)
	c.Add(salad)

	c.Remove("missing")
	assert.Len(t, c.Items, 2)

	c.Remove(couscous.ID)
	require.Len(t, c.Items, 1)
	assert.Equal(t, salad.ID, c.Items[0].ID)
}

func TestCart_ItemCount(t *testing.T) {
	var c Cart
	assert.Equal(t, 0, c.ItemCount())
	c.Add(couscous)
	c.Add(couscous)
	c.Add(salad)
	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, int64(165), c.Total())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Total())
}

func TestCart_LinesAreSnapshots(t *testing.T) {
	cat := NewCatalog([]models.MenuItem{couscous})
	item, _ := cat.Get(couscous.ID)

	var c Cart
	c.Add(item)

	edited := item
	edited.Price = 99
	edited.Name = "Renamed"
	require.True(t, cat.UpdateItem(edited))

	assert.Equal(t, int64(65), c.Items[0].Price)
	assert.Equal(t, "Couscous", c.Items[0].Name)
	assert.Equal(t, int64(65), c.Total())

	// A later add of the edited item joins the existing line at its original price.
	fresh, _ := cat.Get(couscous.ID)
	c.Add(fresh)
	assert.Equal(t, int64(130), c.Total())
}
