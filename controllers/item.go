// controllers/item.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billing-backend/services"
	"billing-backend/utils"
)

type ItemController struct {
	Items services.ItemService
}

func NewItemController(items services.ItemService) *ItemController {
	return &ItemController{Items: items}
}

// CreateItem adds a new item to the catalog
func (ctl *ItemController) CreateItem(c *gin.Context) {
	var input services.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := ctl.Items.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetItems retrieves all catalog items
func (ctl *ItemController) GetItems(c *gin.Context) {
	items, err := ctl.Items.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItem retrieves a specific item by ID
func (ctl *ItemController) GetItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := ctl.Items.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem updates an existing item
func (ctl *ItemController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := ctl.Items.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes an item from the catalog
func (ctl *ItemController) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.Items.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
