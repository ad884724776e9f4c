package slots

import (
	"regexp"
	"strings"

	"hotelbot/internal/lexv2"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Confirmer elicits missing required slots. Prompts maps a slot name to the
// text spoken when it is elicited; slots without one fall back to the bot's
// own prompt.
type Confirmer struct {
	Prompts map[string]string
}

// ConfirmRequiredSlots uses a Confirmer with no prompt overrides.
func ConfirmRequiredSlots(ev lexv2.Event, required []string) *lexv2.Response {
	return Confirmer{}.ConfirmRequiredSlots(ev, required)
}

// ConfirmRequiredSlots returns nil when every required slot is filled,
// otherwise an ElicitSlot response for the first missing one.
func (c Confirmer) ConfirmRequiredSlots(ev lexv2.Event, required []string) *lexv2.Response {
	st := ev.SessionState
	for _, name := range required {
		if strings.TrimSpace(st.Intent.SlotValue(name)) != "" {
			continue
		}

		var msgs []lexv2.Message
		if prompt := RemoveWhitespace(c.Prompts[name]); prompt != "" {
			if ev.IsVoice() {
				prompt = "<speak>" + prompt + "</speak>"
			}
			msgs = lexv2.FormatMessageArray(prompt, lexv2.ContentTypePlainText)
		}

		resp := lexv2.ElicitSlot(st.Intent, st.ActiveContexts, st.SessionAttributes, name, msgs, ev.RequestAttributes)
		return &resp
	}
	return nil
}

// RemoveWhitespace trims a template and collapses runs of whitespace.
func RemoveWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// BuildResponse fills {name} placeholders from data. Unknown placeholders
// are kept verbatim.
func BuildResponse(template string, data map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		key := m[1 : len(m)-1]
		if v, ok := data[key]; ok {
			return v
		}
		return m
	})
}
