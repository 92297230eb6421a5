package model

import (
	"time"
)

type CreateAuthorRequest struct {
	Name string `json:"nameOfAuthor" validate:"required"`
}

type UpdateAuthorRequest struct {
	Name *string `json:"nameOfAuthor"`
}

type CreateBookRequest struct {
	Title       string  `json:"title" validate:"required"`
	ISBN        string  `json:"ISBN" validate:"required"`
	Description string  `json:"description" validate:"required"`
	AuthorID    *string `json:"authorID"`
	Publisher   *string `json:"publisher"`
}

// UpdateBookRequest is a raw partial update. It bypasses the booking state
// machine; booking and cancellation must go through their dedicated
// endpoints so the back-reference lists stay consistent.
type UpdateBookRequest struct {
	Title       *string `json:"title"`
	ISBN        *string `json:"ISBN"`
	Description *string `json:"description"`
	AuthorID    *string `json:"authorID"`
	Publisher   *string `json:"publisher"`
}

type BookingRequest struct {
	BorrowerID string     `json:"borrowerID" validate:"required"`
	BorrowDate *time.Time `json:"borrowDate"`
	ReturnDate *time.Time `json:"returnDate"`
}

type CancelBookingRequest struct {
	BorrowerID string     `json:"borrowerID" validate:"required"`
	ReturnDate *time.Time `json:"returnDate"`
}

type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	User        User   `json:"userInfo"`
}
