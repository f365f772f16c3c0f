package session

import "github.com/abhisek/persona/internal/bank"

// Answered is the number of questions answered across all dimensions.
func (s *Session) Answered() int { return len(s.responses) }

// Total is the number of answers a full run takes.
func (s *Session) Total() int {
	return QuestionsPerDimension * len(bank.AllDimensions())
}

// OverallProgress is the completed fraction of the run, 0.0 to 1.0.
func (s *Session) OverallProgress() float64 {
	return float64(s.dimIndex*QuestionsPerDimension+s.progress) / float64(s.Total())
}

// QuestionNumber is the 1-based position of the active question within
// its dimension, as shown in the progress label.
func (s *Session) QuestionNumber() int {
	if s.phase == PhaseComplete {
		return QuestionsPerDimension
	}
	return s.progress + 1
}
