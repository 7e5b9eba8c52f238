package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/avolkovs/menuboard/internal/menu"
	"github.com/avolkovs/menuboard/internal/validation"
	"github.com/google/uuid"
)

// ListItems prints the catalog, optionally narrowed by a search query.
func (a *App) ListItems(ctx context.Context, query string) error {
	items := a.menu.Filter(query, "")
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No menu items found")
		return nil
	}

	for _, it := range items {
		availability := "available"
		if !it.Available {
			availability = "unavailable"
		}
		category := it.Category
		if category == "" {
			category = "(no category)"
		}
		fmt.Fprintf(a.out, "%s  %-24s %8.2f  %-16s %s\n", it.ID, it.Name, it.Price, category, availability)
	}
	return nil
}

// AddItem prompts for all item fields, validates, and appends to the catalog
// with a freshly generated identifier.
func (a *App) AddItem(ctx context.Context) error {
	form, err := a.promptItemForm()
	if err != nil {
		return err
	}

	if errs := validation.ValidateItem(form, a.menu.Categories()); len(errs) > 0 {
		a.printFieldErrors(errs)
		return nil
	}

	a.menu.AddItem(ctx, itemFromForm(uuid.NewString(), form))
	fmt.Fprintln(a.out, "Menu item added!")
	return nil
}

// EditItem prompts for an id and the replacement fields. The store treats an
// unknown id as a silent no-op, so the id is checked here to give feedback.
func (a *App) EditItem(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter item id", a.out)
	if err != nil {
		return err
	}
	if _, ok := a.menu.Item(id); !ok {
		fmt.Fprintln(a.out, "Menu item not found")
		return nil
	}

	form, err := a.promptItemForm()
	if err != nil {
		return err
	}

	if errs := validation.ValidateItem(form, a.menu.Categories()); len(errs) > 0 {
		a.printFieldErrors(errs)
		return nil
	}

	a.menu.EditItem(ctx, itemFromForm(id, form))
	fmt.Fprintln(a.out, "Menu item updated!")
	return nil
}

func (a *App) DeleteItem(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter item id", a.out)
	if err != nil {
		return err
	}

	a.menu.DeleteItem(ctx, id)
	fmt.Fprintln(a.out, "Menu item deleted!")
	return nil
}

// Stats prints the dashboard numbers.
func (a *App) Stats(ctx context.Context) error {
	stats := a.menu.Stats()
	fmt.Fprintf(a.out, "Total menu items: %d\n", stats.TotalItems)
	fmt.Fprintf(a.out, "Total categories: %d\n", stats.TotalCategories)
	return nil
}

func (a *App) promptItemForm() (validation.ItemForm, error) {
	var form validation.ItemForm

	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return form, err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return form, err
	}
	priceText, err := GetSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return form, err
	}
	// A non-numeric price stays zero and is caught by the validator.
	price, _ := strconv.ParseFloat(priceText, 64)

	if categories := a.menu.Categories(); len(categories) > 0 {
		fmt.Fprintln(a.out, "Existing categories:", strings.Join(categories, ", "))
	}
	category, err := GetSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return form, err
	}
	image, err := GetSimpleText(a.reader, "Image (data URI)", a.out)
	if err != nil {
		return form, err
	}
	ingredients, err := GetList(a.reader, "Ingredients (comma-separated)", a.out)
	if err != nil {
		return form, err
	}
	availableText, err := GetSimpleText(a.reader, "Available? (y/n)", a.out)
	if err != nil {
		return form, err
	}

	var available *bool
	switch strings.ToLower(availableText) {
	case "y", "yes":
		v := true
		available = &v
	case "n", "no":
		v := false
		available = &v
	}

	form = validation.ItemForm{
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
		Category:    category,
		Available:   available,
		Ingredients: ingredients,
	}
	return form, nil
}

func itemFromForm(id string, form validation.ItemForm) menu.Item {
	available := false
	if form.Available != nil {
		available = *form.Available
	}
	return menu.Item{
		ID:          id,
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Image:       form.Image,
		Category:    form.Category,
		Available:   available,
		Ingredients: form.Ingredients,
	}
}
