package entities

import "strconv"

// BookTableName is the table holding the catalog. The column names are kept
// in Indonesian so existing buku.db files open unchanged.
const BookTableName = "buku"

// Book is a single catalog entry. Year is free text and is never parsed.
type Book struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title  string `gorm:"column:judul;not null" json:"title"`
	Author string `gorm:"column:pengarang;not null" json:"author"`
	Year   string `gorm:"column:tahun;not null" json:"year"`
}

func (Book) TableName() string {
	return BookTableName
}

// Cells renders the book as the four table columns: id, title, author, year.
func (b Book) Cells() [4]string {
	return [4]string{strconv.FormatUint(uint64(b.ID), 10), b.Title, b.Author, b.Year}
}
