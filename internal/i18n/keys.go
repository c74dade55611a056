package i18n

// Key names one localized string. Format verbs follow fmt.
type Key string

const (
	NavBack     Key = "nav.back"
	NavQuit     Key = "nav.quit"
	NavHome     Key = "nav.home"
	NavSelect   Key = "nav.select"
	NavDetails  Key = "nav.details"
	NavStart    Key = "nav.start"
	NavLanguage Key = "nav.language"
	NavImport   Key = "nav.import"
	NavRerun    Key = "nav.rerun"
	NavAnswer   Key = "nav.answer"
	NavForce    Key = "nav.force_quit"

	HomeTitle   Key = "home.title"
	HomeTests   Key = "home.tests"
	HomeResults Key = "home.results"
	HomeRerun   Key = "home.rerun"
	HomeHelp    Key = "home.help"
	HomeExit    Key = "home.exit"

	TestsTitle   Key = "list.tests.title"
	ResultsTitle Key = "list.results.title"
	RerunTitle   Key = "list.rerun.title"
	ListEmpty    Key = "list.empty"

	DetailTitle      Key = "detail.title"
	DetailScore      Key = "detail.score"
	DetailTime       Key = "detail.time"
	DetailQuestion   Key = "detail.question"
	DetailGiven      Key = "detail.given"
	DetailCorrect    Key = "detail.correct"
	DetailUnanswered Key = "detail.unanswered"
	DetailMissing    Key = "detail.missing"

	RunnerIdle     Key = "runner.idle"
	RunnerCount    Key = "runner.count"
	RunnerProgress Key = "runner.progress"
	RunnerTimer    Key = "runner.timer"
	RunnerSummary  Key = "runner.summary"
	RunnerHint     Key = "runner.hint"

	HelpTitle    Key = "help.title"
	HelpIntro    Key = "help.intro"
	HelpKeys     Key = "help.keys"
	HelpImport   Key = "help.import"
	HelpLanguage Key = "help.language"

	ImportTitle      Key = "import.title"
	ImportParsing    Key = "import.parsing"
	ImportReadFailed Key = "import.read_failed"
	ImportValid      Key = "import.valid"
	ImportInvalid    Key = "import.invalid"
	ImportSaved      Key = "import.saved"
	ImportSaveFailed Key = "import.save_failed"
	ImportMoveFailed Key = "import.move_failed"
	ImportSummary    Key = "import.summary"
	ImportInboxError Key = "import.inbox_error"
	ImportSkipped    Key = "import.skipped"

	ReasonTitle     Key = "reason.title"
	ReasonQuestions Key = "reason.questions"
	ReasonText      Key = "reason.text"
	ReasonChoices   Key = "reason.choices"
	ReasonCorrect   Key = "reason.correct"
	ReasonUnknown   Key = "reason.unknown"
)
