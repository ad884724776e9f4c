package lexv2

// FormatMessageArray wraps content in a one-element message block.
func FormatMessageArray(content, contentType string) []Message {
	if content == "" {
		return nil
	}
	return []Message{{ContentType: contentType, Content: content}}
}

// Close ends the conversation turn. The intent state is left as the caller set it.
func Close(intent Intent, activeContexts []ActiveContext, sessionAttributes map[string]string, messages []Message, requestAttributes map[string]string) Response {
	return Response{
		SessionState: SessionState{
			ActiveContexts:    normalizeContexts(activeContexts),
			SessionAttributes: sessionAttributes,
			DialogAction:      &DialogAction{Type: DialogActionClose},
			Intent:            intent,
		},
		Messages:          messages,
		RequestAttributes: requestAttributes,
	}
}

// ElicitSlot asks Lex to prompt for slot. With no messages Lex plays the
// slot prompt configured on the bot.
func ElicitSlot(intent Intent, activeContexts []ActiveContext, sessionAttributes map[string]string, slot string, messages []Message, requestAttributes map[string]string) Response {
	intent.State = IntentStateInProgress
	return Response{
		SessionState: SessionState{
			ActiveContexts:    normalizeContexts(activeContexts),
			SessionAttributes: sessionAttributes,
			DialogAction: &DialogAction{
				Type:         DialogActionElicitSlot,
				SlotToElicit: slot,
			},
			Intent: intent,
		},
		Messages:          messages,
		RequestAttributes: requestAttributes,
	}
}

// Delegate hands the next step back to Lex's own dialog management.
func Delegate(intent Intent, activeContexts []ActiveContext, sessionAttributes map[string]string, requestAttributes map[string]string) Response {
	return Response{
		SessionState: SessionState{
			ActiveContexts:    normalizeContexts(activeContexts),
			SessionAttributes: sessionAttributes,
			DialogAction:      &DialogAction{Type: DialogActionDelegate},
			Intent:            intent,
		},
		RequestAttributes: requestAttributes,
	}
}

// normalizeContexts gives every context a non-nil attribute map; Lex rejects
// a null contextAttributes.
func normalizeContexts(in []ActiveContext) []ActiveContext {
	if in == nil {
		return nil
	}
	out := make([]ActiveContext, len(in))
	for i, c := range in {
		if c.ContextAttributes == nil {
			c.ContextAttributes = map[string]string{}
		}
		out[i] = c
	}
	return out
}
