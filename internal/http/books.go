package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/scripture/internal/books"
	"github.com/mrlokans/scripture/internal/database/verses"
)

type BooksController struct {
	catalog  *books.Catalog
	verses   *verses.Repository
	resolver *TranslationResolver
}

func NewBooksController(catalog *books.Catalog, verseRepo *verses.Repository, resolver *TranslationResolver) *BooksController {
	return &BooksController{
		catalog:  catalog,
		verses:   verseRepo,
		resolver: resolver,
	}
}

// BookPayload is the wire shape of one catalog book.
type BookPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Number    int    `json:"number"`
	Testament string `json:"testament"`
	Chapters  int    `json:"chapters"`
}

func newBookPayload(book books.BookInfo, language string) BookPayload {
	return BookPayload{
		ID:        book.ID,
		Name:      book.Name(language),
		Number:    book.Number,
		Testament: string(book.Testament),
		Chapters:  book.ChapterCount,
	}
}

// GetAllBooks lists the 66 books of the canon in canonical order.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	language := controller.resolver.Language(c)

	all := controller.catalog.All()
	payloads := make([]BookPayload, 0, len(all))
	for _, book := range all {
		payloads = append(payloads, newBookPayload(book, language))
	}

	c.JSON(http.StatusOK, gin.H{
		"books":    payloads,
		"count":    len(payloads),
		"language": language,
	})
}

// GetBook resolves a single book by id or alias.
func (controller *BooksController) GetBook(c *gin.Context) {
	language := controller.resolver.Language(c)

	book, ok := controller.catalog.Lookup(c.Param("id"))
	if !ok {
		respondNotFound(c, CodeBookNotFound, "Book not found: "+c.Param("id"))
		return
	}

	payload := newBookPayload(book, language)
	c.JSON(http.StatusOK, gin.H{
		"id":        payload.ID,
		"name":      payload.Name,
		"number":    payload.Number,
		"testament": payload.Testament,
		"chapters":  payload.Chapters,
		"language":  language,
	})
}

// GetChapters lists a book's chapters with their verse counts in the
// resolved translation.
func (controller *BooksController) GetChapters(c *gin.Context) {
	book, ok := controller.catalog.Lookup(c.Param("id"))
	if !ok {
		respondNotFound(c, CodeBookNotFound, "Book not found: "+c.Param("id"))
		return
	}

	translation, language, ok := controller.resolver.Resolve(c)
	if !ok {
		return
	}

	summaries, err := controller.verses.GetChapterSummaries(translation.ID, book.Number)
	if err != nil {
		respondInternalError(c, err, "chapter summaries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"book":        newBookPayload(book, language),
		"translation": translation.ID,
		"language":    language,
		"chapters":    summaries,
		"count":       len(summaries),
	})
}

// GetChapter returns every verse of one chapter.
func (controller *BooksController) GetChapter(c *gin.Context) {
	book, ok := controller.catalog.Lookup(c.Param("id"))
	if !ok {
		respondNotFound(c, CodeBookNotFound, "Book not found: "+c.Param("id"))
		return
	}

	chapter, err := strconv.Atoi(c.Param("chapter"))
	if err != nil || chapter < 1 {
		respondBadRequest(c, CodeMissingParameter, "Chapter must be a positive integer")
		return
	}
	if chapter > book.ChapterCount {
		respondNotFound(c, CodeChapterNotFound, "Chapter not found: "+book.ID+" has no chapter "+strconv.Itoa(chapter))
		return
	}

	translation, language, ok := controller.resolver.Resolve(c)
	if !ok {
		return
	}

	rows, err := controller.verses.GetChapterVerses(translation.ID, book.Number, chapter)
	if err != nil {
		respondInternalError(c, err, "chapter verses")
		return
	}
	if len(rows) == 0 {
		respondNotFound(c, CodeChapterNotFound, "Chapter not found in translation "+translation.ID)
		return
	}

	verseList := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		verseList = append(verseList, gin.H{"verse": row.Verse, "text": row.Text})
	}

	c.JSON(http.StatusOK, gin.H{
		"book":        newBookPayload(book, language),
		"translation": translation.ID,
		"language":    language,
		"chapter":     chapter,
		"verses":      verseList,
		"count":       len(verseList),
	})
}
