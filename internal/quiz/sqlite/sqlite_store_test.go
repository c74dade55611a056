package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ltr-quiz/internal/quiz"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
		_ = os.Remove(path)
		_ = os.Remove(path + "-journal")
	})
	return store
}

func sampleQuiz() quiz.Quiz {
	return quiz.Quiz{
		Title: "Phrasal verbs",
		Date:  "2025-03-01",
		Questions: []quiz.Question{
			{
				Text:         "Give ... smoking",
				Choices:      []string{"in", "up", "over", "out"},
				CorrectIndex: 1,
			},
			{
				Text:         "Look ... the children",
				Choices:      []string{"after", "up", "into", "on"},
				CorrectIndex: 0,
			},
			{
				Text:         "Run ... of milk",
				Choices:      []string{"away", "into", "over", "out"},
				CorrectIndex: 3,
			},
		},
	}
}

func saveSampleQuiz(t *testing.T, store *SQLiteStore) string {
	t.Helper()

	id, err := store.SaveNewQuiz(context.Background(), sampleQuiz())
	if err != nil {
		t.Fatalf("SaveNewQuiz failed: %v", err)
	}
	return id
}

func answersFor(q quiz.Quiz, given []int, elapsed []uint64) []quiz.Answer {
	answers := make([]quiz.Answer, 0, len(given))
	for idx, choice := range given {
		question := q.Questions[idx]
		answers = append(answers, quiz.Answer{
			QuestionText:   question.Text,
			Choices:        append([]string(nil), question.Choices...),
			CorrectIndex:   question.CorrectIndex,
			Given:          choice,
			IsCorrect:      question.IsCorrect(choice),
			ElapsedSeconds: elapsed[idx],
		})
	}
	return answers
}

func TestSQLiteStoreCreateSchemaIsIdempotent(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	if err := store.CreateSchema(ctx); err != nil {
		t.Fatalf("second CreateSchema failed: %v", err)
	}
	if err := store.CreateSchema(ctx); err != nil {
		t.Fatalf("third CreateSchema failed: %v", err)
	}

	if _, err := store.SaveNewQuiz(ctx, sampleQuiz()); err != nil {
		t.Fatalf("store unusable after repeated CreateSchema: %v", err)
	}
}

func TestSQLiteStoreAppliesConnectionPragmas(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	var foreignKeys, busyTimeout int
	if err := store.db.QueryRowContext(ctx, `PRAGMA foreign_keys;`).Scan(&foreignKeys); err != nil {
		t.Fatalf("read foreign_keys failed: %v", err)
	}
	if err := store.db.QueryRowContext(ctx, `PRAGMA busy_timeout;`).Scan(&busyTimeout); err != nil {
		t.Fatalf("read busy_timeout failed: %v", err)
	}
	if foreignKeys != 1 || busyTimeout != 5000 {
		t.Fatalf("unexpected pragmas: foreign_keys=%d busy_timeout=%d", foreignKeys, busyTimeout)
	}

	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO result (run_id, exam_id, question_ordinal, given_choice, is_correct, elapsed_seconds, created_at_unix)
		 VALUES ('orphan', 999, 0, 0, 0, 0, 0)`); err == nil {
		t.Fatalf("expected orphan result row to be rejected")
	}
}

func TestSQLiteStoreReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	id, err := store.SaveNewQuiz(context.Background(), sampleQuiz())
	if err != nil {
		t.Fatalf("SaveNewQuiz failed: %v", err)
	}
	_ = store.Close()

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if _, ok, err := reopened.GetQuiz(context.Background(), id); err != nil || !ok {
		t.Fatalf("expected quiz %s after reopen, ok=%v err=%v", id, ok, err)
	}
}

func TestSQLiteStoreSaveAndGetQuizRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	want := sampleQuiz()
	id := saveSampleQuiz(t, store)

	got, ok, err := store.GetQuiz(ctx, id)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected quiz %s to exist", id)
	}
	if got.ID != id || got.Title != want.Title || got.Date != want.Date {
		t.Fatalf("unexpected quiz header: %+v", got)
	}
	if len(got.Questions) != len(want.Questions) {
		t.Fatalf("expected %d questions, got %d", len(want.Questions), len(got.Questions))
	}
	for idx := range want.Questions {
		wantQ, gotQ := want.Questions[idx], got.Questions[idx]
		if gotQ.Text != wantQ.Text || gotQ.CorrectIndex != wantQ.CorrectIndex {
			t.Fatalf("question %d mismatch: got %+v want %+v", idx, gotQ, wantQ)
		}
		for c := range wantQ.Choices {
			if gotQ.Choices[c] != wantQ.Choices[c] {
				t.Fatalf("question %d choice %d mismatch: got %q want %q", idx, c, gotQ.Choices[c], wantQ.Choices[c])
			}
		}
	}
}

func TestSQLiteStoreSaveNewQuizDefaultsDate(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	q := sampleQuiz()
	q.Date = ""
	id, err := store.SaveNewQuiz(ctx, q)
	if err != nil {
		t.Fatalf("SaveNewQuiz failed: %v", err)
	}

	got, _, err := store.GetQuiz(ctx, id)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	if got.Date != quiz.Today(time.Now()) {
		t.Fatalf("expected today's date, got %q", got.Date)
	}
}

func TestSQLiteStoreGetQuizMissing(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	for _, id := range []string{"999", "not-a-number", ""} {
		_, ok, err := store.GetQuiz(ctx, id)
		if err != nil {
			t.Fatalf("GetQuiz(%q) returned error: %v", id, err)
		}
		if ok {
			t.Fatalf("expected GetQuiz(%q) to report missing", id)
		}
	}

	_, ok, err := store.GetLatestResult(ctx, "999")
	if err != nil || ok {
		t.Fatalf("expected no result for missing quiz, ok=%v err=%v", ok, err)
	}
}

func TestSQLiteStoreSaveNewQuizIsAtomic(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	bad := sampleQuiz()
	bad.Questions[2].Choices = []string{"only", "three", "choices"}

	_, err := store.SaveNewQuiz(ctx, bad)
	if !errors.Is(err, quiz.ErrInvalidQuiz) {
		t.Fatalf("expected ErrInvalidQuiz, got %v", err)
	}

	var exams, questions int
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exam`).Scan(&exams); err != nil {
		t.Fatalf("count exams failed: %v", err)
	}
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM question`).Scan(&questions); err != nil {
		t.Fatalf("count questions failed: %v", err)
	}
	if exams != 0 || questions != 0 {
		t.Fatalf("expected no rows after failed save, got exams=%d questions=%d", exams, questions)
	}
}

func TestSQLiteStoreListByStatusFollowsSavedResult(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	id := saveSampleQuiz(t, store)
	other, err := store.SaveNewQuiz(ctx, quiz.Quiz{
		Title:     "Older quiz",
		Date:      "2024-12-01",
		Questions: sampleQuiz().Questions,
	})
	if err != nil {
		t.Fatalf("SaveNewQuiz failed: %v", err)
	}

	todo, err := store.ListByStatus(ctx, quiz.StatusNotStarted)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(todo) != 2 || todo[0].ID != id || todo[1].ID != other {
		t.Fatalf("expected newest first, got %+v", todo)
	}
	if todo[0].Title != "[2025-03-01] Phrasal verbs" {
		t.Fatalf("unexpected display title %q", todo[0].Title)
	}

	q, _, _ := store.GetQuiz(ctx, id)
	if err := store.SaveResult(ctx, quiz.Result{
		RunID:       "run-1",
		QuizID:      id,
		Answers:     answersFor(q, []int{1, 0, 0}, []uint64{3, 4, 5}),
		CompletedAt: time.Unix(1700000000, 0),
	}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if err := store.SetStatus(ctx, id, quiz.StatusFinished); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if err := store.SetStatus(ctx, id, quiz.StatusFinished); err != nil {
		t.Fatalf("repeated SetStatus failed: %v", err)
	}

	todo, err = store.ListByStatus(ctx, quiz.StatusNotStarted)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(todo) != 1 || todo[0].ID != other {
		t.Fatalf("expected finished quiz to leave to-do list, got %+v", todo)
	}

	finished, err := store.ListByStatus(ctx, quiz.StatusFinished)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(finished) != 1 || finished[0].ID != id {
		t.Fatalf("expected finished list to contain %s, got %+v", id, finished)
	}

	latest, ok, err := store.GetLatestResult(ctx, id)
	if err != nil || !ok {
		t.Fatalf("GetLatestResult failed: ok=%v err=%v", ok, err)
	}
	if len(latest.Answers) != 3 || !latest.Answers[0].IsCorrect || !latest.Answers[1].IsCorrect || latest.Answers[2].IsCorrect {
		t.Fatalf("unexpected latest answers: %+v", latest.Answers)
	}
}

func TestSQLiteStoreLatestResultIsNewestRun(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	id := saveSampleQuiz(t, store)
	q, _, _ := store.GetQuiz(ctx, id)

	first := quiz.Result{
		RunID:       "run-old",
		QuizID:      id,
		Answers:     answersFor(q, []int{0, 0, 0}, []uint64{1, 1, 1}),
		CompletedAt: time.Unix(1700000000, 0),
	}
	second := quiz.Result{
		RunID:       "run-new",
		QuizID:      id,
		Answers:     answersFor(q, []int{1, 0, 3}, []uint64{2, 7, 4}),
		CompletedAt: time.Unix(1700000600, 0),
	}
	if err := store.SaveResult(ctx, first); err != nil {
		t.Fatalf("SaveResult first failed: %v", err)
	}
	if err := store.SaveResult(ctx, second); err != nil {
		t.Fatalf("SaveResult second failed: %v", err)
	}

	latest, ok, err := store.GetLatestResult(ctx, id)
	if err != nil || !ok {
		t.Fatalf("GetLatestResult failed: ok=%v err=%v", ok, err)
	}
	if latest.RunID != "run-new" {
		t.Fatalf("expected newest run, got %q", latest.RunID)
	}
	if latest.CorrectCount() != 3 {
		t.Fatalf("expected 3 correct answers, got %d", latest.CorrectCount())
	}
	if latest.TotalElapsedSeconds != 13 {
		t.Fatalf("expected total recomputed as 13s, got %d", latest.TotalElapsedSeconds)
	}
	if latest.QuizTitle != "[2025-03-01] Phrasal verbs" {
		t.Fatalf("unexpected quiz title %q", latest.QuizTitle)
	}
	if !latest.CompletedAt.Equal(second.CompletedAt) {
		t.Fatalf("unexpected completion time %v", latest.CompletedAt)
	}

	var rows int
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM result WHERE exam_id = ?`, id).Scan(&rows); err != nil {
		t.Fatalf("count results failed: %v", err)
	}
	if rows != 6 {
		t.Fatalf("expected append-only rows for both runs, got %d", rows)
	}
}

func TestSQLiteStoreSaveResultEncodesUnansweredWithSentinel(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	id := saveSampleQuiz(t, store)
	q, _, _ := store.GetQuiz(ctx, id)

	answers := answersFor(q, []int{1, 0, 0}, []uint64{0, 0, 0})
	answers[2].Given = -1
	answers[2].IsCorrect = false
	if err := store.SaveResult(ctx, quiz.Result{QuizID: id, Answers: answers}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	var given int
	if err := store.db.QueryRowContext(
		ctx,
		`SELECT given_choice FROM result WHERE exam_id = ? AND question_ordinal = 2`,
		id,
	).Scan(&given); err != nil {
		t.Fatalf("read given_choice failed: %v", err)
	}
	if given != quiz.NoChoice {
		t.Fatalf("expected sentinel %d, got %d", quiz.NoChoice, given)
	}

	latest, ok, err := store.GetLatestResult(ctx, id)
	if err != nil || !ok {
		t.Fatalf("GetLatestResult failed: ok=%v err=%v", ok, err)
	}
	if latest.Answers[2].Answered() {
		t.Fatalf("expected third answer to read back as unanswered: %+v", latest.Answers[2])
	}
	if latest.RunID == "" {
		t.Fatalf("expected a generated run id")
	}
}

func TestSQLiteStoreSaveResultMarksExamFinished(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	id := saveSampleQuiz(t, store)
	q, _, _ := store.GetQuiz(ctx, id)
	if err := store.SaveResult(ctx, quiz.Result{QuizID: id, Answers: answersFor(q, []int{1, 1, 1}, []uint64{1, 1, 1})}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	todo, err := store.ListByStatus(ctx, quiz.StatusNotStarted)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(todo) != 0 {
		t.Fatalf("expected empty to-do list after a saved result, got %+v", todo)
	}
	finished, err := store.ListByStatus(ctx, quiz.StatusFinished)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(finished) != 1 || finished[0].ID != id {
		t.Fatalf("expected %s finished, got %+v", id, finished)
	}
}

func TestSQLiteStoreSaveResultFailureKeepsExamUnfinished(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	id := saveSampleQuiz(t, store)
	q, _, _ := store.GetQuiz(ctx, id)

	if _, err := store.db.ExecContext(ctx, `CREATE TRIGGER reject_result BEFORE INSERT ON result
		BEGIN SELECT RAISE(ABORT, 'disk full'); END;`); err != nil {
		t.Fatalf("create trigger failed: %v", err)
	}

	if err := store.SaveResult(ctx, quiz.Result{QuizID: id, Answers: answersFor(q, []int{1, 0, 3}, []uint64{1, 1, 1})}); err == nil {
		t.Fatalf("expected SaveResult to fail")
	}

	todo, err := store.ListByStatus(ctx, quiz.StatusNotStarted)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(todo) != 1 || todo[0].ID != id {
		t.Fatalf("expected status rolled back with the rows, got to-do %+v", todo)
	}
	if _, ok, err := store.GetLatestResult(ctx, id); err != nil || ok {
		t.Fatalf("expected no stored result, ok=%v err=%v", ok, err)
	}
}

func TestSQLiteStoreSaveResultForMissingExam(t *testing.T) {
	store := newTestSQLiteStore(t)

	err := store.SaveResult(context.Background(), quiz.Result{QuizID: "42"})
	if !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestSQLiteStoreSetStatusRejectsUnknownInput(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	id := saveSampleQuiz(t, store)
	if err := store.SetStatus(ctx, id, quiz.Status("ARCHIVED")); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if err := store.SetStatus(ctx, "abc", quiz.StatusFinished); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound for malformed id, got %v", err)
	}
}

func TestSQLiteStoreSeedOnlyFillsEmptyDatabase(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	added, err := store.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if added != len(seedQuizzes) {
		t.Fatalf("expected %d seeded quizzes, got %d", len(seedQuizzes), added)
	}

	again, err := store.Seed(ctx)
	if err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected second Seed to add nothing, got %d", again)
	}

	todo, err := store.ListByStatus(ctx, quiz.StatusNotStarted)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(todo) != len(seedQuizzes) {
		t.Fatalf("expected %d to-do quizzes, got %d", len(seedQuizzes), len(todo))
	}
}
