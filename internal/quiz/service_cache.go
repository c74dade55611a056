package quiz

// Cache helpers are isolated here so service.go can focus on orchestration.
// Lists are never cached: screens must see status changes right after a run.

func (s *Service) getCachedQuiz(quizID string) (Quiz, bool) {
	q, ok := s.quizCache[quizID]
	return q, ok
}

// Quizzes are immutable once stored, so a cached copy never goes stale.
func (s *Service) setCachedQuiz(q Quiz) {
	s.quizCache[q.ID] = q
}

func (s *Service) getCachedResult(quizID string) (Result, bool) {
	result, ok := s.resultCache[quizID]
	return result, ok
}

func (s *Service) setCachedResult(quizID string, result Result) {
	s.resultCache[quizID] = result
}

// dropCachedResult must run before a new result is written; the next read
// rebuilds the latest view from the store.
func (s *Service) dropCachedResult(quizID string) {
	delete(s.resultCache, quizID)
}
