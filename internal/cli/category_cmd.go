package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avolkovs/menuboard/internal/validation"
)

func (a *App) ListCategories(ctx context.Context) error {
	categories := a.menu.Categories()
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories yet")
		return nil
	}
	fmt.Fprintln(a.out, strings.Join(categories, "\n"))
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Category name", a.out)
	if err != nil {
		return err
	}

	if errs := validation.ValidateCategoryName(name, a.menu.Categories()); len(errs) > 0 {
		a.printFieldErrors(errs)
		return nil
	}

	a.menu.AddCategory(ctx, strings.TrimSpace(name))
	fmt.Fprintln(a.out, "Category added!")
	return nil
}

func (a *App) DeleteCategory(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Category name", a.out)
	if err != nil {
		return err
	}

	a.menu.DeleteCategory(ctx, name)
	fmt.Fprintln(a.out, "Category deleted!")
	return nil
}
