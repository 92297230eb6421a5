package model

import (
	"time"
)

type BookStatus string

const (
	StatusAvailable BookStatus = "available"
	StatusBorrowed  BookStatus = "borrowed"
)

type Author struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"nameOfAuthor" db:"name"`
	Writtings BookIDs `json:"writtings" db:"writtings"`
}

type Book struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	ISBN          string     `json:"ISBN" db:"isbn"`
	Description   string     `json:"description" db:"description"`
	Status        BookStatus `json:"status" db:"status"`
	Publisher     *string    `json:"publisher" db:"publisher"`
	PublishedDate time.Time  `json:"publishedDate" db:"published_date"`
	AuthorID      *string    `json:"authorID" db:"author_id"`
	BorrowerID    *string    `json:"borrowerID" db:"borrower_id"`
	BorrowDate    *time.Time `json:"borrowDate" db:"borrow_date"`
	ReturnDate    *time.Time `json:"returnDate" db:"return_date"`
}

type User struct {
	ID            string  `json:"id" db:"id"`
	FirstName     string  `json:"firstName" db:"first_name"`
	LastName      string  `json:"lastName" db:"last_name"`
	Email         string  `json:"email" db:"email"`
	Password      string  `json:"-" db:"password"`
	IsAdmin       bool    `json:"isAdmin" db:"is_admin"`
	BookingEvents BookIDs `json:"bookingEvents" db:"booking_events"`
}
