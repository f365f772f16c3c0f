package session

import "github.com/abhisek/persona/internal/bank"

// Observer receives lifecycle callbacks after the session has been updated.
// Implementations must not call mutating Session methods.
type Observer interface {
	OnStart(s *Session)
	OnRefresh(s *Session, replaced bank.Question)
	OnAnswer(s *Session, answered bank.Question, trait bank.Trait)
	OnComplete(s *Session, code Code)
}

// Observers fans callbacks out to several observers in order.
type Observers []Observer

func (o Observers) OnStart(s *Session) {
	for _, obs := range o {
		obs.OnStart(s)
	}
}

func (o Observers) OnRefresh(s *Session, replaced bank.Question) {
	for _, obs := range o {
		obs.OnRefresh(s, replaced)
	}
}

func (o Observers) OnAnswer(s *Session, answered bank.Question, trait bank.Trait) {
	for _, obs := range o {
		obs.OnAnswer(s, answered, trait)
	}
}

func (o Observers) OnComplete(s *Session, code Code) {
	for _, obs := range o {
		obs.OnComplete(s, code)
	}
}
