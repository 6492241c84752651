package catalog

import "errors"

// ErrEmptyField is returned by a form submission with a blank title, author or year.
var ErrEmptyField = errors.New("all fields are required")

// ErrNoSelection is returned when an action needs a selected row and there is none.
var ErrNoSelection = errors.New("no row selected")

// ErrInvalidRow is returned when a table row cannot be read back as a book.
var ErrInvalidRow = errors.New("row does not hold a complete book")
