package httpapi

import (
	"net/http"
	"strings"

	"github.com/avolkovs/menuboard/internal/menu"
	"github.com/avolkovs/menuboard/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type itemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Available   *bool    `json:"available"`
	Ingredients []string `json:"ingredients"`
}

func (r itemRequest) form() validation.ItemForm {
	return validation.ItemForm{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Category:    r.Category,
		Available:   r.Available,
		Ingredients: r.Ingredients,
	}
}

func (r itemRequest) item(id string) menu.Item {
	available := false
	if r.Available != nil {
		available = *r.Available
	}
	return menu.Item{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Category:    r.Category,
		Available:   available,
		Ingredients: r.Ingredients,
	}
}

func (s *Server) getMenu(c *gin.Context) {
	items := s.menu.Filter(c.Query("q"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"categories": s.menu.Categories(),
	})
}

func (s *Server) createItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validation.ValidateItem(req.form(), s.menu.Categories()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// Fresh identifier for the new item; the store trusts the caller here.
	item := req.item(uuid.NewString())
	s.menu.AddItem(c.Request.Context(), item)
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (s *Server) updateItem(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.menu.Item(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validation.ValidateItem(req.form(), s.menu.Categories()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	item := req.item(id)
	s.menu.EditItem(c.Request.Context(), item)
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (s *Server) deleteItem(c *gin.Context) {
	s.menu.DeleteItem(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.menu.Categories()})
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validation.ValidateCategoryName(req.Name, s.menu.Categories()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	name := strings.TrimSpace(req.Name)
	s.menu.AddCategory(c.Request.Context(), name)
	c.JSON(http.StatusCreated, gin.H{"category": name})
}

func (s *Server) deleteCategory(c *gin.Context) {
	s.menu.DeleteCategory(c.Request.Context(), c.Param("name"))
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

func (s *Server) dashboard(c *gin.Context) {
	sess := s.auth.Session()

	var username any
	if sess.CurrentUser != nil {
		username = sess.CurrentUser.Username
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":    s.menu.Stats(),
		"username": username,
	})
}
