package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotCatalog(t *testing.T) {
	catalog := SlotCatalog()

	assert.Len(t, catalog, 15)
	assert.Equal(t, "08:00", catalog[0])
	assert.Equal(t, "23:00", catalog[len(catalog)-1])
	assert.NotContains(t, catalog, "12:00")

	// Каталог строго по возрастанию
	for i := 1; i < len(catalog); i++ {
		assert.Less(t, catalog[i-1], catalog[i])
	}
}

func TestSlotCatalog_ReturnsCopy(t *testing.T) {
	first := SlotCatalog()
	first[0] = "00:00"

	assert.Equal(t, "08:00", SlotCatalog()[0])
}

func TestIsCatalogSlot(t *testing.T) {
	assert.True(t, IsCatalogSlot("08:00"))
	assert.True(t, IsCatalogSlot("23:00"))
	assert.False(t, IsCatalogSlot("12:00"))
	assert.False(t, IsCatalogSlot("08:30"))
	assert.False(t, IsCatalogSlot(""))
}
