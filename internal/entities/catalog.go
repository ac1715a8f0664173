package entities

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Date layouts used by the derived display fields.
const (
	DateLayoutISO    = "2006-01-02"
	DateLayoutMedium = "Jan 2, 2006"
)

type BookStatus string

const (
	BookStatusAvailable   BookStatus = "Available"
	BookStatusMaintenance BookStatus = "Maintenance"
	BookStatusLoaned      BookStatus = "Loaned"
	BookStatusReserved    BookStatus = "Reserved"
)

// BookStatuses lists every valid BookInstance status in display order.
var BookStatuses = []BookStatus{
	BookStatusAvailable,
	BookStatusMaintenance,
	BookStatusLoaned,
	BookStatusReserved,
}

// IsValid reports whether s is one of the enumerated statuses.
func (s BookStatus) IsValid() bool {
	for _, status := range BookStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Author struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	FirstName   string     `gorm:"size:100;not null" json:"first_name"`
	FamilyName  string     `gorm:"index;size:100;not null" json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

type Genre struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"index;size:100;not null" json:"name"`
}

type Book struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Title    string `gorm:"index;size:512;not null" json:"title"`
	AuthorID string `gorm:"index;size:36;not null" json:"author"`
	Summary  string `gorm:"type:text;not null" json:"summary"`
	ISBN     string `gorm:"size:64;not null" json:"isbn"`

	// Populated only by the repository's populated reads.
	Author *Author `gorm:"foreignKey:AuthorID" json:"-"`
	// On bare reads each genre carries its ID only.
	Genres []Genre `gorm:"many2many:book_genres;" json:"genre"`
}

type BookInstance struct {
	ID      string     `gorm:"primaryKey;size:36" json:"id"`
	BookID  string     `gorm:"index;size:36;not null" json:"book"`
	Imprint string     `gorm:"size:512;not null" json:"imprint"`
	Status  BookStatus `gorm:"index;size:20;not null;default:'Maintenance'" json:"status"`
	DueBack time.Time  `json:"due_back"`

	// Populated only by the repository's populated reads.
	Book *Book `gorm:"foreignKey:BookID" json:"-"`
}

func (Author) TableName() string {
	return "authors"
}

func (Genre) TableName() string {
	return "genres"
}

func (Book) TableName() string {
	return "books"
}

func (BookInstance) TableName() string {
	return "book_instances"
}

// BookGenresTable is the join table behind Book.Genres.
const BookGenresTable = "book_genres"

// BookGenre is one row of the book/genre join table. Position keeps the
// genres of a book in the order they were submitted.
type BookGenre struct {
	BookID   string `gorm:"primaryKey;size:36"`
	GenreID  string `gorm:"primaryKey;size:36;index"`
	Position int    `gorm:"not null;default:0"`
}

func (BookGenre) TableName() string {
	return BookGenresTable
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (bi *BookInstance) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == "" {
		bi.ID = uuid.NewString()
	}
	if bi.Status == "" {
		bi.Status = BookStatusMaintenance
	}
	if bi.DueBack.IsZero() {
		bi.DueBack = time.Now().UTC()
	}
	return nil
}

// --- Derived fields ---

// Name is the display name, "family, first".
func (a Author) Name() string {
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan subtracts calendar years, so it can be off by one relative to true age.
// With a single date present it returns that date unformatted.
func (a Author) Lifespan() string {
	switch {
	case a.DateOfBirth != nil && a.DateOfDeath != nil:
		return strconv.Itoa(a.DateOfDeath.Year() - a.DateOfBirth.Year())
	case a.DateOfBirth != nil:
		return a.DateOfBirth.UTC().Format(DateLayoutISO)
	case a.DateOfDeath != nil:
		return a.DateOfDeath.UTC().Format(DateLayoutISO)
	default:
		return ""
	}
}

func (a Author) DateOfBirthFormatted() string {
	return formatOptional(a.DateOfBirth, DateLayoutMedium)
}

func (a Author) DateOfDeathFormatted() string {
	return formatOptional(a.DateOfDeath, DateLayoutMedium)
}

// DateOfBirthInput is the value used to pre-fill a date input.
func (a Author) DateOfBirthInput() string {
	return formatOptional(a.DateOfBirth, DateLayoutISO)
}

func (a Author) DateOfDeathInput() string {
	return formatOptional(a.DateOfDeath, DateLayoutISO)
}

func (a Author) URL() string {
	return "/catalog/author/" + a.ID
}

func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID
}

func (b Book) URL() string {
	return "/catalog/book/" + b.ID
}

// GenreIDs returns the referenced genre ids in stored order.
func (b Book) GenreIDs() []string {
	ids := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// HasGenre reports whether the book references the given genre.
func (b Book) HasGenre(id string) bool {
	for _, g := range b.Genres {
		if g.ID == id {
			return true
		}
	}
	return false
}

func (bi BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID
}

// DueBackFormatted renders the due date for humans, e.g. "Mar 15, 2024".
func (bi BookInstance) DueBackFormatted() string {
	return bi.DueBack.UTC().Format(DateLayoutMedium)
}

// DueDateInput renders the due date for a date input, e.g. "2024-03-15".
func (bi BookInstance) DueDateInput() string {
	return bi.DueBack.UTC().Format(DateLayoutISO)
}

func formatOptional(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(layout)
}
