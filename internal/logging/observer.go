package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/bank"
	"github.com/abhisek/persona/internal/session"
)

// SessionObserver logs quiz lifecycle events. Each Start opens a new run
// with its own ID so interleaved runs can be told apart in the log.
type SessionObserver struct {
	logger *zap.Logger
	runID  string
}

// NewSessionObserver wraps logger. A nil logger is treated as no-op.
func NewSessionObserver(logger *zap.Logger) *SessionObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionObserver{logger: logger}
}

// RunID is the ID of the current run, empty before the first Start.
func (o *SessionObserver) RunID() string { return o.runID }

func (o *SessionObserver) OnStart(s *session.Session) {
	o.runID = uuid.NewString()
	q, _ := s.Active()
	o.logger.Info("session started",
		zap.String("run_id", o.runID),
		zap.String("question_id", q.ID),
	)
}

func (o *SessionObserver) OnRefresh(s *session.Session, replaced bank.Question) {
	q, _ := s.Active()
	o.logger.Debug("question refreshed",
		zap.String("run_id", o.runID),
		zap.String("replaced_id", replaced.ID),
		zap.String("question_id", q.ID),
		zap.Int("used", len(s.Used())),
	)
}

func (o *SessionObserver) OnAnswer(s *session.Session, answered bank.Question, trait bank.Trait) {
	o.logger.Debug("question answered",
		zap.String("run_id", o.runID),
		zap.String("question_id", answered.ID),
		zap.String("dimension", string(answered.Dimension)),
		zap.String("trait", string(trait)),
		zap.Int("answered", s.Answered()),
	)
}

func (o *SessionObserver) OnComplete(s *session.Session, code session.Code) {
	fields := []zap.Field{
		zap.String("run_id", o.runID),
		zap.String("code", string(code)),
		zap.Int("shown", len(s.Used())),
	}
	for _, axis := range s.Breakdown() {
		fields = append(fields, zap.Int(string(axis.First), axis.FirstScore), zap.Int(string(axis.Second), axis.SecondScore))
	}
	o.logger.Info("session complete", fields...)
}
