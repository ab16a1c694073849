package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuBody(t *testing.T) {
	items := []MenuItem{
		{Name: "Wild Mushroom Risotto", Description: "Arborio rice, parmesan crisp, truffle shavings.", Category: "Main", PriceMinor: 3800},
		{Name: "Wagyu Beef Tenderloin", Description: "Potato pavé, bordelaise sauce, bone marrow butter.", Category: "Main", PriceMinor: 8500},
		{Name: "Lemon Basil Tart", Description: "Meringue kisses, basil gel, candied zest.", Category: "Dessert", PriceMinor: 1650},
	}

	body := menuBody("Ada Obi", items)

	assert.Contains(t, body, "Dear Ada Obi,")
	assert.Contains(t, body, "Main Courses")
	assert.Contains(t, body, "Desserts")
	assert.Contains(t, body, "Wild Mushroom Risotto")
	assert.Contains(t, body, "Arborio rice, parmesan crisp, truffle shavings.")
	assert.Contains(t, body, "$38")
	assert.Contains(t, body, "$85")
	assert.Contains(t, body, "$16.50")

	// Sections render in the order the items arrive.
	assert.Less(t, strings.Index(body, "Main Courses"), strings.Index(body, "Desserts"))
}

func TestMenuBody_EmptyMenu(t *testing.T) {
	body := menuBody("Ada Obi", nil)

	assert.Contains(t, body, "Dear Ada Obi,")
	assert.Contains(t, body, "We look forward to welcoming you.")
	assert.NotContains(t, body, "<h2")
}

func TestMenuBody_UnknownCategoryFallsBackToItsName(t *testing.T) {
	items := []MenuItem{
		{Name: "Oyster Flight", Category: "Raw Bar", PriceMinor: 2400},
	}

	body := menuBody("Ada Obi", items)

	assert.Contains(t, body, "Raw Bar")
	assert.Contains(t, body, "$24")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$45", formatPrice(4500))
	assert.Equal(t, "$45.05", formatPrice(4505))
	assert.Equal(t, "$0.99", formatPrice(99))
}
