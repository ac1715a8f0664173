package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/prabinsunar/library-app/internal/catalog"
	"github.com/prabinsunar/library-app/internal/config"
	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/database/authors"
	"github.com/prabinsunar/library-app/internal/database/books"
	"github.com/prabinsunar/library-app/internal/database/genres"
	"github.com/prabinsunar/library-app/internal/database/instances"
	"github.com/prabinsunar/library-app/internal/entities"
	"github.com/prabinsunar/library-app/internal/forms"
)

// ErrCatalogNotEmpty is returned when seeding a catalog that already has books.
var ErrCatalogNotEmpty = errors.New("catalog already has books (use --force to seed anyway)")

type SeedCommand struct {
	Database DatabaseFlags
	Force    bool

	out io.Writer
}

// SeedResult counts the records a seed run created.
type SeedResult struct {
	Authors   int
	Genres    int
	Books     int
	Instances int
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{out: os.Stdout}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	cmd.Database.register(fs, config.NewConfig())
	fs.BoolVarP(&cmd.Force, "force", "f", false, "Seed even when the catalog already has books")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate the catalog with sample authors, genres, books and copies.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := cmd.Database.open()
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := Seed(context.Background(), NewCatalog(db), cmd.Force)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Seeded %d authors, %d genres, %d books and %d copies\n",
		result.Authors, result.Genres, result.Books, result.Instances)
	return nil
}

// NewCatalog wires the catalog service to the repositories of db.
func NewCatalog(db *database.Database) *catalog.Catalog {
	return catalog.New(
		authors.NewRepository(db.DB),
		genres.NewRepository(db.DB),
		books.NewRepository(db.DB),
		instances.NewRepository(db.DB),
	)
}

type seedAuthor struct {
	first, family, born, died string
}

type seedBook struct {
	title, summary, isbn string
	author               int
	genres               []int
}

type seedInstance struct {
	book    int
	imprint string
	status  entities.BookStatus
	dueBack string
}

var (
	seedAuthors = []seedAuthor{
		{"Patrick", "Rothfuss", "1973-06-06", ""},
		{"Ben", "Bova", "1932-11-08", ""},
		{"Isaac", "Asimov", "1920-01-02", "1992-04-06"},
		{"Bob", "Billings", "", ""},
		{"Jim", "Jones", "1971-12-16", ""},
	}
	seedGenres = []string{"Fantasy", "Science Fiction", "French Poetry"}
	seedBooks  = []seedBook{
		{"The Name of the Wind (The Kingkiller Chronicle, #1)",
			"I have stolen princesses back from sleeping barrow kings. I burned down the town of Trebon. I have spent the night with Felurian and left with both my sanity and my life.",
			"9781473211896", 0, []int{0}},
		{"The Wise Man's Fear (The Kingkiller Chronicle, #2)",
			"Picking up the tale of Kvothe Kingkiller once again, we follow him into exile, into political intrigue, courtship, adventure, love and magic.",
			"9788401352836", 0, []int{0}},
		{"The Slow Regard of Silent Things (Kingkiller Chronicle)",
			"Deep below the University, there is a dark place. Few people know of it: a broken web of ancient passageways and abandoned rooms.",
			"9780756411336", 0, []int{0}},
		{"Apes and Angels",
			"Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity. Humans went to the stars in a desperate crusade to save intelligent life wherever they found it.",
			"9780765379528", 1, []int{1}},
		{"Death Wave",
			"In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system.",
			"9780765379504", 1, []int{1}},
		{"Test Book 1", "Summary of test book 1", "ISBN111111", 4, []int{0, 1}},
		{"Test Book 2", "Summary of test book 2", "ISBN222222", 4, nil},
	}
	seedInstances = []seedInstance{
		{0, "London Gollancz, 2014.", entities.BookStatusAvailable, ""},
		{1, " Gollancz, 2011.", entities.BookStatusLoaned, ""},
		{2, " Gollancz, 2015.", "", ""},
		{3, "New York Tom Doherty Associates, 2016.", entities.BookStatusAvailable, ""},
		{3, "New York Tom Doherty Associates, 2016.", entities.BookStatusAvailable, ""},
		{3, "New York Tom Doherty Associates, 2016.", entities.BookStatusAvailable, ""},
		{4, "New York, NY Tom Doherty Associates, LLC, 2015.", entities.BookStatusAvailable, ""},
		{4, "New York, NY Tom Doherty Associates, LLC, 2015.", entities.BookStatusMaintenance, ""},
		{4, "New York, NY Tom Doherty Associates, LLC, 2015.", entities.BookStatusLoaned, ""},
		{0, "Imprint XXX2", "", ""},
		{1, "Imprint XXX3", "", ""},
	}
)

// Seed creates the sample catalog. Every record goes through the same form
// validation as a submitted page, so seeded text is stored escaped.
func Seed(ctx context.Context, c *catalog.Catalog, force bool) (*SeedResult, error) {
	if !force {
		count, err := c.Books.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrCatalogNotEmpty
		}
	}

	result := &SeedResult{}

	authorIDs := make([]string, len(seedAuthors))
	for i, a := range seedAuthors {
		form := forms.NewAuthorForm(url.Values{
			"first_name":    {a.first},
			"family_name":   {a.family},
			"date_of_birth": {a.born},
			"date_of_death": {a.died},
		})
		if errs := form.Validate(); len(errs) > 0 {
			return result, fmt.Errorf("seed author %s %s: %w", a.first, a.family, errs)
		}
		author := form.Author()
		if err := c.Authors.Create(ctx, author); err != nil {
			return result, err
		}
		authorIDs[i] = author.ID
		result.Authors++
	}

	genreIDs := make([]string, len(seedGenres))
	for i, name := range seedGenres {
		form := forms.NewGenreForm(url.Values{"name": {name}})
		if errs := form.Validate(); len(errs) > 0 {
			return result, fmt.Errorf("seed genre %s: %w", name, errs)
		}
		genre, created, err := c.CreateGenre(ctx, form.Genre())
		if err != nil {
			return result, err
		}
		genreIDs[i] = genre.ID
		if created {
			result.Genres++
		}
	}

	bookIDs := make([]string, len(seedBooks))
	for i, b := range seedBooks {
		values := url.Values{
			"title":   {b.title},
			"author":  {authorIDs[b.author]},
			"summary": {b.summary},
			"isbn":    {b.isbn},
		}
		for _, g := range b.genres {
			values.Add("genre", genreIDs[g])
		}
		form := forms.NewBookForm(values)
		if errs := form.Validate(); len(errs) > 0 {
			return result, fmt.Errorf("seed book %s: %w", b.title, errs)
		}
		book := form.Book()
		if err := c.Books.Create(ctx, book); err != nil {
			return result, err
		}
		bookIDs[i] = book.ID
		result.Books++
	}

	for _, bi := range seedInstances {
		form := forms.NewBookInstanceForm(url.Values{
			"book":     {bookIDs[bi.book]},
			"imprint":  {bi.imprint},
			"status":   {string(bi.status)},
			"due_back": {bi.dueBack},
		})
		if errs := form.Validate(); len(errs) > 0 {
			return result, fmt.Errorf("seed copy %s: %w", bi.imprint, errs)
		}
		if err := c.Instances.Create(ctx, form.BookInstance()); err != nil {
			return result, err
		}
		result.Instances++
	}

	return result, nil
}
