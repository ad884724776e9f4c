package lexv2

// Input modes reported by Lex on each turn.
const (
	InputModeText   = "Text"
	InputModeSpeech = "Speech"
	InputModeDTMF   = "DTMF"
)

// Message content types.
const (
	ContentTypePlainText = "PlainText"
	ContentTypeSSML      = "SSML"
)

// Intent states.
const (
	IntentStateFailed     = "Failed"
	IntentStateFulfilled  = "Fulfilled"
	IntentStateInProgress = "InProgress"
	IntentStateReady      = "ReadyForFulfillment"
)

// Dialog action types.
const (
	DialogActionClose      = "Close"
	DialogActionDelegate   = "Delegate"
	DialogActionElicitSlot = "ElicitSlot"
)

// Event mirrors the Lex V2 code hook input.
type Event struct {
	MessageVersion      string            `json:"messageVersion"`
	InvocationSource    string            `json:"invocationSource"`
	InputMode           string            `json:"inputMode"`
	ResponseContentType string            `json:"responseContentType"`
	SessionID           string            `json:"sessionId"`
	InputTranscript     string            `json:"inputTranscript"`
	Bot                 Bot               `json:"bot"`
	RequestAttributes   map[string]string `json:"requestAttributes,omitempty"`
	SessionState        SessionState      `json:"sessionState"`
}

// Bot identifies the bot, alias and locale that raised the event.
type Bot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AliasID   string `json:"aliasId"`
	AliasName string `json:"aliasName"`
	LocaleID  string `json:"localeId"`
	Version   string `json:"version"`
}

// SessionState is the caller-owned state echoed back on every response.
type SessionState struct {
	ActiveContexts       []ActiveContext   `json:"activeContexts,omitempty"`
	SessionAttributes    map[string]string `json:"sessionAttributes,omitempty"`
	DialogAction         *DialogAction     `json:"dialogAction,omitempty"`
	Intent               Intent            `json:"intent"`
	OriginatingRequestID string            `json:"originatingRequestId,omitempty"`
}

type DialogAction struct {
	Type         string `json:"type"`
	SlotToElicit string `json:"slotToElicit,omitempty"`
}

// Intent carries slots as pointers: Lex sends unfilled slots as null.
type Intent struct {
	Name              string           `json:"name"`
	Slots             map[string]*Slot `json:"slots,omitempty"`
	State             string           `json:"state,omitempty"`
	ConfirmationState string           `json:"confirmationState,omitempty"`
}

type Slot struct {
	Shape  string     `json:"shape,omitempty"`
	Value  *SlotValue `json:"value,omitempty"`
	Values []*Slot    `json:"values,omitempty"`
}

type SlotValue struct {
	OriginalValue    string   `json:"originalValue"`
	InterpretedValue string   `json:"interpretedValue"`
	ResolvedValues   []string `json:"resolvedValues,omitempty"`
}

type ActiveContext struct {
	Name              string            `json:"name"`
	TimeToLive        TimeToLive        `json:"timeToLive"`
	ContextAttributes map[string]string `json:"contextAttributes"`
}

type TimeToLive struct {
	TimeToLiveInSeconds int `json:"timeToLiveInSeconds"`
	TurnsToLive         int `json:"turnsToLive"`
}

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Response is what the code hook hands back to Lex.
type Response struct {
	SessionState      SessionState      `json:"sessionState"`
	Messages          []Message         `json:"messages,omitempty"`
	RequestAttributes map[string]string `json:"requestAttributes,omitempty"`
}

// SlotValue returns the interpreted value of a filled slot, or "".
func (i Intent) SlotValue(name string) string {
	s, ok := i.Slots[name]
	if !ok || s == nil || s.Value == nil {
		return ""
	}
	return s.Value.InterpretedValue
}

// IsVoice reports whether the turn came from a voice channel.
func (e Event) IsVoice() bool {
	return e.InputMode != InputModeText
}
