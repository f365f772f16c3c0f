package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/persona/internal/bank"
	"github.com/abhisek/persona/internal/i18n"
)

func newSession(t *testing.T, seed uint64) *Session {
	t.Helper()
	s, err := New(Options{Rand: NewRand(seed)})
	require.NoError(t, err)
	return s
}

// fakeBank serves n synthetic questions per dimension.
type fakeBank int

func (n fakeBank) Questions(dim bank.Dimension) []bank.Question {
	first, second := dim.Letters()
	out := make([]bank.Question, 0, int(n))
	for i := range int(n) {
		out = append(out, bank.Question{
			ID:        fmt.Sprintf("%s-%d", dim, i),
			Dimension: dim,
			Text:      i18n.Text{EN: "q"},
			A:         bank.Option{Value: first},
			B:         bank.Option{Value: second},
		})
	}
	return out
}

// answerFirst answers the active question with option A.
func answerFirst(t *testing.T, s *Session) {
	t.Helper()
	q, ok := s.Active()
	require.True(t, ok)
	require.NoError(t, s.Answer(q.A.Value))
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, PhaseNotStarted, s.Phase())
	_, ok := s.Active()
	assert.False(t, ok)
}

func TestNew_EmptyPool(t *testing.T) {
	_, err := New(Options{Bank: fakeBank(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EI")
}

func TestStart(t *testing.T) {
	s := newSession(t, 1)
	s.Start()

	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, 0, s.DimensionIndex())
	assert.Equal(t, bank.EI, s.Dimension())
	assert.Equal(t, 0, s.Progress())

	q, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, bank.EI, q.Dimension)
	assert.Equal(t, []string{q.ID}, s.Used())
	for _, tr := range bank.AllTraits() {
		assert.Zero(t, s.Score(tr))
	}
}

func TestFullRun_TwentyDistinctQuestions(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		s := newSession(t, seed)
		s.Start()
		for s.Phase() == PhaseInProgress {
			answerFirst(t, s)
		}

		responses := s.Responses()
		require.Len(t, responses, 20)

		seen := make(map[string]bool)
		for i, r := range responses {
			assert.False(t, seen[r.QuestionID], "seed %d: %s repeated", seed, r.QuestionID)
			seen[r.QuestionID] = true
			assert.Equal(t, bank.AllDimensions()[i/QuestionsPerDimension], r.Dimension)
		}

		code, err := s.Result()
		require.NoError(t, err)
		assert.Equal(t, Code("ESTJ"), code)
	}
}

func TestAnswer_AllFirstOnEnergy(t *testing.T) {
	s := newSession(t, 7)
	s.Start()
	for range QuestionsPerDimension {
		require.NoError(t, s.Answer(bank.E))
	}

	assert.Equal(t, 5, s.Score(bank.E))
	assert.Equal(t, 0, s.Score(bank.I))
	assert.Equal(t, bank.SN, s.Dimension())
	assert.Equal(t, 1, s.DimensionIndex())
	assert.Equal(t, 0, s.Progress())

	q, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, bank.SN, q.Dimension)
}

func TestAnswer_UnknownTraitIsNoop(t *testing.T) {
	s := newSession(t, 3)
	s.Start()
	before, _ := s.Active()

	err := s.Answer(bank.N)
	require.ErrorIs(t, err, ErrUnknownTrait)

	after, _ := s.Active()
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, 0, s.Progress())
	assert.Zero(t, s.Score(bank.N))
	assert.Empty(t, s.Responses())
}

func TestAnswerAndRefresh_OutsideRun(t *testing.T) {
	s := newSession(t, 3)
	assert.ErrorIs(t, s.Answer(bank.E), ErrNotStarted)
	assert.ErrorIs(t, s.Refresh(), ErrNotStarted)

	s.Start()
	for s.Phase() == PhaseInProgress {
		answerFirst(t, s)
	}
	scores := s.Scores()

	assert.ErrorIs(t, s.Answer(bank.J), ErrComplete)
	assert.ErrorIs(t, s.Refresh(), ErrComplete)
	assert.Equal(t, scores, s.Scores())
	_, ok := s.Active()
	assert.False(t, ok)
}

func TestResult_BeforeComplete(t *testing.T) {
	s := newSession(t, 3)
	_, err := s.Result()
	assert.ErrorIs(t, err, ErrNotComplete)

	s.Start()
	answerFirst(t, s)
	_, err = s.Result()
	assert.ErrorIs(t, err, ErrNotComplete)
}

func TestResult_LettersComeFromEachAxis(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		s := newSession(t, seed)
		pick := NewRand(seed + 1000)
		s.Start()
		for s.Phase() == PhaseInProgress {
			q, _ := s.Active()
			opt := q.A
			if pick.IntN(2) == 1 {
				opt = q.B
			}
			require.NoError(t, s.Answer(opt.Value))
		}

		code, err := s.Result()
		require.NoError(t, err)
		require.Len(t, string(code), 4)
		for i, tr := range code.Traits() {
			first, second := bank.AllDimensions()[i].Letters()
			assert.Contains(t, []bank.Trait{first, second}, tr)
		}
	}
}

func TestComputeCode_TiesGoToFirstLetter(t *testing.T) {
	assert.Equal(t, Code("ESTJ"), computeCode(map[bank.Trait]int{}))

	tied := map[bank.Trait]int{
		bank.E: 2, bank.I: 2,
		bank.S: 1, bank.N: 4,
		bank.T: 3, bank.F: 3,
		bank.J: 0, bank.P: 5,
	}
	assert.Equal(t, Code("ENTP"), computeCode(tied))
}

func TestRefresh_PicksUnusedQuestion(t *testing.T) {
	s := newSession(t, 11)
	s.Start()

	for range 20 {
		before, _ := s.Active()
		require.NoError(t, s.Refresh())
		after, _ := s.Active()
		assert.NotEqual(t, before.ID, after.ID)
		assert.Equal(t, bank.EI, after.Dimension)
	}
	assert.Len(t, s.Used(), 21)
	assert.Equal(t, 0, s.Progress())
	assert.Zero(t, s.Score(bank.E)+s.Score(bank.I))
}

func TestRefresh_FallsBackWhenExhausted(t *testing.T) {
	s, err := New(Options{Bank: fakeBank(2), Rand: NewRand(5)})
	require.NoError(t, err)
	s.Start()

	require.NoError(t, s.Refresh())
	assert.Len(t, s.Used(), 2)

	// Both questions are used now; refresh still succeeds.
	for range 10 {
		require.NoError(t, s.Refresh())
		q, ok := s.Active()
		require.True(t, ok)
		assert.Contains(t, []string{"EI-0", "EI-1"}, q.ID)
	}
	assert.Len(t, s.Used(), 2)
}

func TestAnswer_FallsBackWhenExhausted(t *testing.T) {
	s, err := New(Options{Bank: fakeBank(2), Rand: NewRand(5)})
	require.NoError(t, err)
	s.Start()
	for s.Phase() == PhaseInProgress {
		answerFirst(t, s)
	}
	assert.Len(t, s.Responses(), 20)
}

func TestStart_ResetsEverything(t *testing.T) {
	s := newSession(t, 9)
	s.Start()
	for range 7 {
		answerFirst(t, s)
	}
	require.NoError(t, s.Refresh())

	s.Start()
	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, 0, s.DimensionIndex())
	assert.Equal(t, 0, s.Progress())
	assert.Len(t, s.Used(), 1)
	assert.Empty(t, s.Responses())
	for _, tr := range bank.AllTraits() {
		assert.Zero(t, s.Score(tr))
	}
}

func TestStart_RepeatedAndAfterComplete(t *testing.T) {
	s := newSession(t, 13)
	for range 3 {
		s.Start()
		assert.Equal(t, PhaseInProgress, s.Phase())
		assert.Len(t, s.Used(), 1)
	}

	for s.Phase() == PhaseInProgress {
		answerFirst(t, s)
	}
	require.Equal(t, PhaseComplete, s.Phase())

	s.Start()
	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, bank.EI, s.Dimension())
}

func TestSameSeed_SameQuestions(t *testing.T) {
	run := func() []string {
		s := newSession(t, 42)
		s.Start()
		require.NoError(t, s.Refresh())
		for s.Phase() == PhaseInProgress {
			answerFirst(t, s)
		}
		return s.Used()
	}
	assert.Equal(t, run(), run())
}

func TestOverallProgress(t *testing.T) {
	s := newSession(t, 2)
	s.Start()
	assert.InDelta(t, 0.0, s.OverallProgress(), 1e-9)
	assert.Equal(t, 1, s.QuestionNumber())

	for range 7 {
		answerFirst(t, s)
	}
	assert.InDelta(t, 7.0/20.0, s.OverallProgress(), 1e-9)
	assert.Equal(t, 3, s.QuestionNumber())

	for s.Phase() == PhaseInProgress {
		answerFirst(t, s)
	}
	assert.InDelta(t, 1.0, s.OverallProgress(), 1e-9)
	assert.Equal(t, 20, s.Answered())
	assert.Equal(t, 20, s.Total())
}

func TestBreakdown(t *testing.T) {
	s := newSession(t, 4)
	s.Start()

	for _, axis := range s.Breakdown() {
		assert.Zero(t, axis.FirstShare())
		assert.Equal(t, axis.Dimension.Default(), axis.Winner())
	}

	for i := range QuestionsPerDimension {
		q, _ := s.Active()
		tr := q.A.Value
		if i < 2 {
			tr = q.B.Value
		}
		require.NoError(t, s.Answer(tr))
	}

	ei := s.Breakdown()[0]
	assert.Equal(t, bank.EI, ei.Dimension)
	assert.Equal(t, 3, ei.FirstScore)
	assert.Equal(t, 2, ei.SecondScore)
	assert.InDelta(t, 0.6, ei.FirstShare(), 1e-9)
	assert.InDelta(t, 0.4, ei.SecondShare(), 1e-9)
	assert.Equal(t, bank.E, ei.Winner())
}

type recorder struct {
	events []string
	code   Code
}

func (r *recorder) OnStart(s *Session) { r.events = append(r.events, "start") }

func (r *recorder) OnRefresh(s *Session, replaced bank.Question) {
	r.events = append(r.events, "refresh:"+replaced.ID)
}

func (r *recorder) OnAnswer(s *Session, answered bank.Question, trait bank.Trait) {
	r.events = append(r.events, "answer:"+string(trait))
}

func (r *recorder) OnComplete(s *Session, code Code) {
	r.events = append(r.events, "complete")
	r.code = code
}

func TestObserver(t *testing.T) {
	rec := &recorder{}
	other := &recorder{}
	s, err := New(Options{Rand: NewRand(8), Observer: Observers{rec, other}})
	require.NoError(t, err)

	s.Start()
	first, _ := s.Active()
	require.NoError(t, s.Refresh())
	require.ErrorIs(t, s.Answer("X"), ErrUnknownTrait)
	for s.Phase() == PhaseInProgress {
		q, _ := s.Active()
		require.NoError(t, s.Answer(q.B.Value))
	}

	require.Len(t, rec.events, 1+1+20+1)
	assert.Equal(t, "start", rec.events[0])
	assert.Equal(t, "refresh:"+first.ID, rec.events[1])
	assert.Equal(t, "answer:I", rec.events[2])
	assert.Equal(t, "complete", rec.events[len(rec.events)-1])
	assert.Equal(t, Code("INFP"), rec.code)
	assert.Equal(t, rec.events, other.events)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "not-started", PhaseNotStarted.String())
	assert.Equal(t, "in-progress", PhaseInProgress.String())
	assert.Equal(t, "complete", PhaseComplete.String())
}
