package testutil

import (
	"fmt"
	"testing"

	"github.com/lshigami/juristudy/internal/model"
	"gorm.io/gorm"
)

// Chain is one Subject → Law → Title → Chapter path seeded for a test.
type Chain struct {
	Subject *model.Subject
	Law     *model.Law
	Title   *model.Title
	Chapter *model.Chapter
}

func create(tb testing.TB, db *gorm.DB, what string, v interface{}) {
	tb.Helper()
	if err := db.Create(v).Error; err != nil {
		tb.Fatalf("seed %s: %v", what, err)
	}
}

func SeedUser(tb testing.TB, db *gorm.DB, email string) *model.User {
	tb.Helper()
	u := &model.User{Name: "Learner " + email, Email: email, PasswordHash: "x", Active: true}
	create(tb, db, "user", u)
	return u
}

func SeedSubject(tb testing.TB, db *gorm.DB, name string) *model.Subject {
	tb.Helper()
	s := &model.Subject{Name: name, Active: true}
	create(tb, db, "subject", s)
	return s
}

// SeedChain creates an active subject, law, title and chapter.
func SeedChain(tb testing.TB, db *gorm.DB, lawName string) Chain {
	tb.Helper()
	subject := SeedSubject(tb, db, "Subject of "+lawName)
	law := SeedLaw(tb, db, subject.ID, lawName)
	title := SeedTitle(tb, db, law.ID, "Title I")
	chapter := SeedChapter(tb, db, title.ID, "Chapter I")
	return Chain{Subject: subject, Law: law, Title: title, Chapter: chapter}
}

func SeedLaw(tb testing.TB, db *gorm.DB, subjectID uint, name string) *model.Law {
	tb.Helper()
	l := &model.Law{SubjectID: subjectID, Name: name, Active: true}
	create(tb, db, "law", l)
	return l
}

func SeedTitle(tb testing.TB, db *gorm.DB, lawID uint, name string) *model.Title {
	tb.Helper()
	t := &model.Title{LawID: lawID, Name: name, Active: true}
	create(tb, db, "title", t)
	return t
}

func SeedChapter(tb testing.TB, db *gorm.DB, titleID uint, name string) *model.Chapter {
	tb.Helper()
	c := &model.Chapter{TitleID: titleID, Name: name, Active: true}
	create(tb, db, "chapter", c)
	return c
}

// SeedQuestions adds n active questions to a chapter. Odd positions are true.
func SeedQuestions(tb testing.TB, db *gorm.DB, chapterID uint, n int) []model.Question {
	tb.Helper()
	out := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		q := model.Question{
			ChapterID:      chapterID,
			Prompt:         fmt.Sprintf("Statement %d of chapter %d", i+1, chapterID),
			Rationale:      "Because the article says so.",
			RationaleBasis: fmt.Sprintf("Art. %d", i+1),
			Correct:        i%2 == 0,
			Active:         true,
		}
		create(tb, db, "question", &q)
		out = append(out, q)
	}
	return out
}

// Deactivate flips the active flag of any content row off.
func Deactivate(tb testing.TB, db *gorm.DB, v interface{}) {
	tb.Helper()
	if err := db.Model(v).Update("active", false).Error; err != nil {
		tb.Fatalf("deactivate: %v", err)
	}
}
