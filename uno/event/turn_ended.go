package event

type TurnEndedPayload struct {
	PlayerName string
	NextPlayer string
}

type TurnEndedListener interface {
	OnTurnEnded(TurnEndedPayload)
}

type turnEndedEmitter struct {
	listeners []TurnEndedListener
}

func (e *turnEndedEmitter) AddListener(listener TurnEndedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnEndedEmitter) Emit(payload TurnEndedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnEnded(payload)
	}
}
