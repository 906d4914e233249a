package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billing-backend/apperr"
	"billing-backend/models"
)

func TestItemCreate_MapsAndSaves(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo)

	item, err := svc.Create(ItemInput{
		Name:          "Pen",
		Description:   "Ballpoint",
		Price:         50.0,
		StockQuantity: 10,
	})

	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Pen", item.Name)
	assert.InDelta(t, 50.0, item.Price, 1e-6)
	assert.Equal(t, 10, item.StockQuantity)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestItemGet_NotFound(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	_, err := svc.Get(999)

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestItemUpdate_AppliesChanges(t *testing.T) {
	repo := newFakeItemRepo(&models.Item{ID: 1, Name: "Pen", Price: 50.0, StockQuantity: 10})
	svc := NewItemService(repo)

	updated, err := svc.Update(1, ItemInput{
		Name:          "Gel Pen",
		Description:   "Blue ink",
		Price:         65.0,
		StockQuantity: 25,
	})

	require.NoError(t, err)
	assert.Equal(t, "Gel Pen", updated.Name)
	assert.InDelta(t, 65.0, updated.Price, 1e-6)
	assert.Equal(t, 25, updated.StockQuantity)
}

func TestItemDelete(t *testing.T) {
	repo := newFakeItemRepo(&models.Item{ID: 1, Name: "Pen"})
	svc := NewItemService(repo)

	require.NoError(t, svc.Delete(1))

	err := svc.Delete(1)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestItemList(t *testing.T) {
	repo := newFakeItemRepo(
		&models.Item{ID: 1, Name: "Pen"},
		&models.Item{ID: 2, Name: "Book"},
	)
	svc := NewItemService(repo)

	out, err := svc.List()

	require.NoError(t, err)
	assert.Len(t, out, 2)
}
