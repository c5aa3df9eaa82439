package aiquiz

type DraftQuestion struct {
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

type DraftRequest struct {
	Topic      string `json:"topic" validate:"notblank,max=200"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Count      int    `json:"count" validate:"gte=0,lte=10"`
	Context    string `json:"context" validate:"max=2000"`
}

type DraftResponse struct {
	Questions []DraftQuestion `json:"questions"`
	Discarded int             `json:"discarded"`
}

// usable reports whether the draft can be added to a series as is.
func (q DraftQuestion) usable() bool {
	if q.Text == "" || len(q.Options) != 4 {
		return false
	}
	for _, o := range q.Options {
		if o == q.Answer {
			return true
		}
	}
	return false
}
