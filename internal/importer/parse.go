package importer

import (
	"strings"

	"ltr-quiz/internal/quiz"
)

const (
	questionDelimiter = "===="
	answerDelimiter   = "----"
	correctMarker     = "+"
)

// Parse turns the raw file text into a candidate quiz. It never fails; a
// malformed file simply produces a quiz that Validate rejects.
//
// Layout:
//
//	Title====Question one----answer
//	+correct answer
//	answer
//	answer====Question two----...
func Parse(raw string) quiz.Quiz {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	segments := strings.Split(raw, questionDelimiter)

	q := quiz.Quiz{
		Title:     strings.TrimSpace(segments[0]),
		Questions: make([]quiz.Question, 0, len(segments)-1),
	}
	for _, block := range segments[1:] {
		q.Questions = append(q.Questions, parseQuestion(block))
	}
	return q
}

func parseQuestion(block string) quiz.Question {
	text, answers, _ := strings.Cut(block, answerDelimiter)

	question := quiz.Question{
		Text:         strings.TrimSpace(text),
		Choices:      make([]string, 0, quiz.ChoiceCount),
		CorrectIndex: quiz.NoChoice,
	}

	marked := 0
	for _, line := range strings.Split(answers, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, correctMarker) {
			line = strings.TrimSpace(strings.TrimPrefix(line, correctMarker))
			question.CorrectIndex = len(question.Choices)
			marked++
		}
		question.Choices = append(question.Choices, line)
	}

	if marked != 1 {
		question.CorrectIndex = quiz.NoChoice
	}
	return question
}
