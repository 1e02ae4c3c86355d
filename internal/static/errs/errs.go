package errs

import "errors"

var (
	UnsupportedLanguage      = errors.New("unsupported language")
	BackendUnavailable       = errors.New("execution backend unavailable")
	MalformedBackendResponse = errors.New("malformed backend response")
	GradingInconclusive      = errors.New("grading inconclusive")
)

var (
	AttemptNotFound    = errors.New("attempt not found")
	AttemptTerminal    = errors.New("attempt already terminal")
	SubmitInFlight     = errors.New("a submission is already in flight for this attempt")
	AssessmentNotFound = errors.New("assessment not found")
	NoQuestions        = errors.New("assessment has no questions")
)
