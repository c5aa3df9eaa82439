package attempt

type State string

const (
	NOT_STARTED    State = "NOT_STARTED"
	IN_PROGRESS    State = "IN_PROGRESS"
	SUBMITTING     State = "SUBMITTING"
	SUBMITTED      State = "SUBMITTED"
	AUTO_SUBMITTED State = "AUTO_SUBMITTED"
)

var AllStates = []State{
	NOT_STARTED,
	IN_PROGRESS,
	SUBMITTING,
	SUBMITTED,
	AUTO_SUBMITTED,
}

func (s State) IsValid() bool {
	for _, v := range AllStates {
		if s == v {
			return true
		}
	}
	return false
}

func (s State) IsTerminal() bool {
	return s == SUBMITTED || s == AUTO_SUBMITTED
}

type Reason string

const (
	ReasonManual      Reason = "manual"
	ReasonTimeExpired Reason = "time expired"
	ReasonFocusLost   Reason = "window/tab change detected"
)

func (r Reason) IsAutomatic() bool {
	return r == ReasonTimeExpired || r == ReasonFocusLost
}
