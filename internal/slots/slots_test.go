package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbot/internal/lexv2"
)

func filled(v string) *lexv2.Slot {
	return &lexv2.Slot{Shape: "Scalar", Value: &lexv2.SlotValue{OriginalValue: v, InterpretedValue: v}}
}

func TestRemoveWhitespace(t *testing.T) {
	in := `
        Switched to the {knowledgeBase}   knowledge base.
        `
	assert.Equal(t, "Switched to the {knowledgeBase} knowledge base.", RemoveWhitespace(in))
	assert.Equal(t, "", RemoveWhitespace(" \n\t "))
}

func TestBuildResponse(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{"single", "Switched to the {knowledgeBase} knowledge base.", map[string]string{"knowledgeBase": "Spa"}, "Switched to the Spa knowledge base."},
		{"repeat", "{a} and {a}", map[string]string{"a": "x"}, "x and x"},
		{"missing key kept", "{first_name}, hello", map[string]string{}, "{first_name}, hello"},
		{"empty value", "[{a}]", map[string]string{"a": ""}, "[]"},
		{"no placeholders", "plain", nil, "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildResponse(tt.template, tt.data))
		})
	}
}

func TestConfirmRequiredSlots_AllFilled(t *testing.T) {
	ev := lexv2.Event{
		InputMode: lexv2.InputModeText,
		SessionState: lexv2.SessionState{
			Intent: lexv2.Intent{
				Name:  "SelectKnowledgeBase",
				Slots: map[string]*lexv2.Slot{"knowledgeBase": filled("Spa")},
			},
		},
	}
	assert.Nil(t, ConfirmRequiredSlots(ev, []string{"knowledgeBase"}))
}

func TestConfirmRequiredSlots_ElicitsFirstMissing(t *testing.T) {
	ev := lexv2.Event{
		InputMode:         lexv2.InputModeText,
		RequestAttributes: map[string]string{"r": "1"},
		SessionState: lexv2.SessionState{
			SessionAttributes: map[string]string{"first_name": "Ana"},
			ActiveContexts:    []lexv2.ActiveContext{{Name: "hotel", ContextAttributes: map[string]string{"room": "101"}}},
			Intent: lexv2.Intent{
				Name: "SelectKnowledgeBase",
				Slots: map[string]*lexv2.Slot{
					"a": filled("x"),
					"b": nil,
					"c": nil,
				},
			},
		},
	}

	resp := ConfirmRequiredSlots(ev, []string{"a", "b", "c"})
	require.NotNil(t, resp)
	assert.Equal(t, lexv2.DialogActionElicitSlot, resp.SessionState.DialogAction.Type)
	assert.Equal(t, "b", resp.SessionState.DialogAction.SlotToElicit)
	assert.Equal(t, ev.SessionState.SessionAttributes, resp.SessionState.SessionAttributes)
	assert.Equal(t, ev.SessionState.ActiveContexts, resp.SessionState.ActiveContexts)
	assert.Equal(t, ev.RequestAttributes, resp.RequestAttributes)
	assert.Empty(t, resp.Messages)
}

func TestConfirmer_Prompt(t *testing.T) {
	c := Confirmer{Prompts: map[string]string{"knowledgeBase": "  Which knowledge base?  "}}
	ev := lexv2.Event{
		InputMode: lexv2.InputModeSpeech,
		SessionState: lexv2.SessionState{
			Intent: lexv2.Intent{Name: "SelectKnowledgeBase"},
		},
	}

	resp := c.ConfirmRequiredSlots(ev, []string{"knowledgeBase"})
	require.NotNil(t, resp)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "<speak>Which knowledge base?</speak>", resp.Messages[0].Content)

	ev.InputMode = lexv2.InputModeText
	resp = c.ConfirmRequiredSlots(ev, []string{"knowledgeBase"})
	require.NotNil(t, resp)
	assert.Equal(t, "Which knowledge base?", resp.Messages[0].Content)
}

func TestConfirmRequiredSlots_BlankValueCountsAsMissing(t *testing.T) {
	ev := lexv2.Event{
		SessionState: lexv2.SessionState{
			Intent: lexv2.Intent{
				Name:  "SelectKnowledgeBase",
				Slots: map[string]*lexv2.Slot{"knowledgeBase": filled("  ")},
			},
		},
	}
	assert.NotNil(t, ConfirmRequiredSlots(ev, []string{"knowledgeBase"}))
}
