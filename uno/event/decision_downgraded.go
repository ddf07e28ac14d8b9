package event

type DecisionDowngradedPayload struct {
	PlayerName string
	Reason     string
}

type DecisionDowngradedListener interface {
	OnDecisionDowngraded(DecisionDowngradedPayload)
}

type decisionDowngradedEmitter struct {
	listeners []DecisionDowngradedListener
}

func (e *decisionDowngradedEmitter) AddListener(listener DecisionDowngradedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *decisionDowngradedEmitter) Emit(payload DecisionDowngradedPayload) {
	for _, listener := range e.listeners {
		listener.OnDecisionDowngraded(payload)
	}
}
