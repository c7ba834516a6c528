package model

import "fmt"

type Book struct {
	ID            int    `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	Author        string `json:"author" db:"author"`
	NumberOfPages int    `json:"numberOfPages" db:"number_of_pages"`
	InInventory   bool   `json:"inInventory" db:"in_inventory"`
}

type BookSummary struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type BookDetail struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	InInventory   bool   `json:"inInventory"`
	NumberOfPages int    `json:"numberOfPages"`
}

type BookList struct {
	Books                       []BookSummary `json:"books"`
	BooksNotInInventory         []BookSummary `json:"booksNotInInventory"`
	NumberOfBooksInInventory    int           `json:"numberOfBooksInInventory"`
	NumberOfBooksNotInInventory int           `json:"numberOfBooksNotInInventory"`
}

type BookCreateForm struct {
	Title         string `json:"title" form:"title" validate:"required,max=255"`
	Author        string `json:"author" form:"author" validate:"required,max=255"`
	NumberOfPages int    `json:"numberOfPages" form:"numberOfPages" validate:"gt=0"`
}

type BookEditForm struct {
	ID            int    `json:"id" form:"id"`
	Title         string `json:"title" form:"title" validate:"required,max=255"`
	Author        string `json:"author" form:"author" validate:"required,max=255"`
	NumberOfPages int    `json:"numberOfPages" form:"numberOfPages" validate:"gt=0"`
}

type ToggleResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	InInventory bool   `json:"inInventory"`
}

func (r ToggleResult) Message() string {
	if r.InInventory {
		return fmt.Sprintf("Restored %s to inventory.", r.Title)
	}
	return fmt.Sprintf("Removed %s from inventory.", r.Title)
}

func (b Book) Summary() BookSummary {
	return BookSummary{ID: b.ID, Title: b.Title, Author: b.Author}
}

func (b Book) Detail() BookDetail {
	return BookDetail{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		InInventory:   b.InInventory,
		NumberOfPages: b.NumberOfPages,
	}
}

func (b Book) EditForm() BookEditForm {
	return BookEditForm{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		NumberOfPages: b.NumberOfPages,
	}
}
