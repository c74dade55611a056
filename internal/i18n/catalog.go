package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

var english = map[Key]string{
	NavBack:     "b back",
	NavQuit:     "q quit",
	NavHome:     "m menu",
	NavSelect:   "enter select",
	NavDetails:  "d details",
	NavStart:    "s start",
	NavLanguage: "c language",
	NavImport:   "i import",
	NavRerun:    "enter redo",
	NavAnswer:   "enter answer",
	NavForce:    "P force quit",

	HomeTitle:   "Language Test Runner",
	HomeTests:   "Tests to do",
	HomeResults: "Results",
	HomeRerun:   "Redo a test",
	HomeHelp:    "Help and settings",
	HomeExit:    "Exit",

	TestsTitle:   "Tests to do",
	ResultsTitle: "Finished tests",
	RerunTitle:   "Redo a test",
	ListEmpty:    "Nothing here yet.",

	DetailTitle:      "Result: %s",
	DetailScore:      "Score: %d/%d",
	DetailTime:       "Total time: %ds",
	DetailQuestion:   "%d. %s (%ds)",
	DetailGiven:      "Your answer: %s",
	DetailCorrect:    "Correct answer: %s",
	DetailUnanswered: "(no answer)",
	DetailMissing:    "No result to show.",

	RunnerIdle:     "Press s to start %s",
	RunnerCount:    "%d questions",
	RunnerProgress: "Question %d of %d",
	RunnerTimer:    "Question: %ds  Total: %ds",
	RunnerSummary:  "Finished! %d of %d correct in %ds.",
	RunnerHint:     "Press d to see the details.",

	HelpTitle:    "Help",
	HelpIntro:    "Pick a test from the list and answer every question.",
	HelpKeys:     "Use the arrow keys to move and enter to confirm.",
	HelpImport:   "Put quiz files into %s and press i to import them.",
	HelpLanguage: "Language: %s",

	ImportTitle:      "Import log",
	ImportParsing:    "Parsing %s",
	ImportReadFailed: "%s: could not read file: %v",
	ImportValid:      "%s: %q is valid",
	ImportInvalid:    "%s: invalid quiz, %s",
	ImportSaved:      "%s: saved as test #%s",
	ImportSaveFailed: "%s: could not save: %v",
	ImportMoveFailed: "%s: could not move to processed: %v",
	ImportSummary:    "Imported %d of %d files.",
	ImportInboxError: "Cannot open inbox %s: %v",
	ImportSkipped:    "%s: already imported, skipping",

	ReasonTitle:     "title is too short",
	ReasonQuestions: "at least 2 questions are needed",
	ReasonText:      "question %d text is too short",
	ReasonChoices:   "question %d needs exactly 4 answers",
	ReasonCorrect:   "question %d has no single correct answer marked",
	ReasonUnknown:   "malformed content",
}

var polish = map[Key]string{
	NavBack:     "b wstecz",
	NavQuit:     "q wyjście",
	NavHome:     "m menu",
	NavSelect:   "enter wybierz",
	NavDetails:  "d szczegóły",
	NavStart:    "s start",
	NavLanguage: "c język",
	NavImport:   "i import",
	NavRerun:    "enter powtórz",
	NavAnswer:   "enter odpowiedz",
	NavForce:    "P wymuś wyjście",

	HomeTitle:   "Testy językowe",
	HomeTests:   "Testy do zrobienia",
	HomeResults: "Wyniki",
	HomeRerun:   "Powtórz test",
	HomeHelp:    "Pomoc i ustawienia",
	HomeExit:    "Wyjście",

	TestsTitle:   "Testy do zrobienia",
	ResultsTitle: "Ukończone testy",
	RerunTitle:   "Powtórz test",
	ListEmpty:    "Na razie nic tu nie ma.",

	DetailTitle:      "Wynik: %s",
	DetailScore:      "Punkty: %d/%d",
	DetailTime:       "Łączny czas: %ds",
	DetailQuestion:   "%d. %s (%ds)",
	DetailGiven:      "Twoja odpowiedź: %s",
	DetailCorrect:    "Poprawna odpowiedź: %s",
	DetailUnanswered: "(brak odpowiedzi)",
	DetailMissing:    "Brak wyniku do pokazania.",

	RunnerIdle:     "Naciśnij s, aby rozpocząć %s",
	RunnerCount:    "Liczba pytań: %d",
	RunnerProgress: "Pytanie %d z %d",
	RunnerTimer:    "Pytanie: %ds  Razem: %ds",
	RunnerSummary:  "Koniec! Poprawne: %d z %d w %ds.",
	RunnerHint:     "Naciśnij d, aby zobaczyć szczegóły.",

	HelpTitle:    "Pomoc",
	HelpIntro:    "Wybierz test z listy i odpowiedz na każde pytanie.",
	HelpKeys:     "Strzałki zmieniają wybór, enter zatwierdza.",
	HelpImport:   "Umieść pliki z testami w %s i naciśnij i, aby je zaimportować.",
	HelpLanguage: "Język: %s",

	ImportTitle:      "Dziennik importu",
	ImportParsing:    "Przetwarzanie %s",
	ImportReadFailed: "%s: nie można odczytać pliku: %v",
	ImportValid:      "%s: %q jest poprawny",
	ImportInvalid:    "%s: niepoprawny test, %s",
	ImportSaved:      "%s: zapisano jako test #%s",
	ImportSaveFailed: "%s: nie można zapisać: %v",
	ImportMoveFailed: "%s: nie można przenieść do przetworzonych: %v",
	ImportSummary:    "Zaimportowano %d z %d plików.",
	ImportInboxError: "Nie można otworzyć katalogu %s: %v",
	ImportSkipped:    "%s: już zaimportowany, pomijam",

	ReasonTitle:     "tytuł jest za krótki",
	ReasonQuestions: "potrzebne są co najmniej 2 pytania",
	ReasonText:      "treść pytania %d jest za krótka",
	ReasonChoices:   "pytanie %d musi mieć dokładnie 4 odpowiedzi",
	ReasonCorrect:   "pytanie %d nie ma jednej oznaczonej poprawnej odpowiedzi",
	ReasonUnknown:   "zniekształcona treść",
}

func buildCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	tables := map[language.Tag]map[Key]string{
		language.English: english,
		language.Polish:  polish,
	}
	for tag, table := range tables {
		for key, msg := range table {
			if err := b.SetString(tag, string(key), msg); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
