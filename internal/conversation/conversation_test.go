package conversation

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameliastxne/druzhok/internal/emotion"
	"github.com/ameliastxne/druzhok/internal/reveal"
	"github.com/ameliastxne/druzhok/internal/speech"
)

type fixedChooser int

func (c fixedChooser) IntN(int) int { return int(c) }

type recordingSpeaker struct {
	said []speech.Utterance
}

func (s *recordingSpeaker) Speak(_ context.Context, u speech.Utterance) error {
	s.said = append(s.said, u)
	return nil
}

func finishTyping(t *testing.T, r *Response) {
	t.Helper()
	for i := 0; r.Typing(); i++ {
		require.Less(t, i, 10000)
		r.Update(r.scope.Fire(reveal.Kind, 0))
	}
}

func TestDefaultScriptsCoverEveryEmotion(t *testing.T) {
	for _, e := range emotion.All {
		assert.NotEmpty(t, DefaultScripts.Reply(e), e.String())
	}
	assert.Len(t, DefaultScripts.FollowUps, 3)
}

func TestLoadScriptsRejectsMissingReply(t *testing.T) {
	_, err := LoadScripts([]byte("replies:\n  joy: hi\nfollowups: [a]\n"))
	assert.Error(t, err)
}

func TestReflectionSeedsAngerOnly(t *testing.T) {
	anger := NewReflection(emotion.Anger, speech.Nop{}, "")
	assert.Equal(t, emotion.Anger.DefaultReflection(), anger.Value())

	joy := NewReflection(emotion.Joy, speech.Nop{}, "")
	assert.Empty(t, joy.Value())
	assert.Equal(t, emotion.Joy.Question(), joy.Question())
}

func TestReflectionSubmitRejectsBlank(t *testing.T) {
	r := NewReflection(emotion.Fear, speech.Nop{}, "")
	for _, s := range []string{"", "   ", "\t"} {
		r.SetValue(s)
		_, ok := r.Submit()
		assert.False(t, ok, "%q", s)
	}

	r.SetValue("боюся грому")
	text, ok := r.Submit()
	assert.True(t, ok)
	assert.Equal(t, "боюся грому", text)
}

func TestReflectionToggleRecording(t *testing.T) {
	r := NewReflection(emotion.Joy, speech.Nop{}, "")
	assert.True(t, r.ToggleRecording())
	assert.True(t, r.Recording())
	assert.False(t, r.ToggleRecording())
	assert.False(t, r.Recording())
}

func TestReflectionSpeaksQuestion(t *testing.T) {
	rec := &recordingSpeaker{}
	r := NewReflection(emotion.Sadness, rec, "uk-UA")
	cmd := r.SpeakQuestion()
	require.NotNil(t, cmd)
	cmd()
	require.Len(t, rec.said, 1)
	assert.Equal(t, emotion.Sadness.Question(), rec.said[0].Text)
}

func TestResponseRevealGrowsMonotonically(t *testing.T) {
	r := NewResponse(emotion.Joy, DefaultScripts, fixedChooser(0), speech.Nop{}, "")
	require.NotNil(t, r.Start())
	assert.True(t, r.Typing())
	assert.Empty(t, r.Displayed())

	prev := 0
	for r.Typing() {
		r.Update(r.scope.Fire(reveal.Kind, 0))
		n := utf8.RuneCountInString(r.Displayed())
		assert.Equal(t, prev+1, n)
		prev = n
	}
	assert.Equal(t, r.Reply(), r.Displayed())
}

func TestResponseIgnoresStaleTicks(t *testing.T) {
	r := NewResponse(emotion.Fear, DefaultScripts, fixedChooser(0), speech.Nop{}, "")
	r.Start()
	stale := r.scope.Fire(reveal.Kind, 0)
	r.Dispose()
	assert.Nil(t, r.Update(stale))
	assert.Empty(t, r.Displayed())
}

func TestContinueChatWaitsForReveal(t *testing.T) {
	r := NewResponse(emotion.Anger, DefaultScripts, fixedChooser(0), speech.Nop{}, "")
	r.Start()
	r.ContinueChat()
	assert.False(t, r.Chatting())

	finishTyping(t, r)
	r.ContinueChat()
	require.True(t, r.Chatting())
	assert.Equal(t, []Message{{Sender: Assistant, Text: r.Reply()}}, r.Transcript())
}

func TestSendAppendsChildThenFollowUp(t *testing.T) {
	r := NewResponse(emotion.Sadness, DefaultScripts, fixedChooser(1), speech.Nop{}, "")
	r.Start()
	finishTyping(t, r)

	assert.Nil(t, r.Send("привіт"), "not chatting yet")
	r.ContinueChat()

	assert.Nil(t, r.Send("   "))
	require.NotNil(t, r.Send("  я сумую  "))
	assert.True(t, r.Typing())
	assert.Nil(t, r.Send("ще"), "ignored while typing")

	tr := r.Transcript()
	require.Len(t, tr, 2)
	assert.Equal(t, Message{Sender: Child, Text: "я сумую"}, tr[1])

	finishTyping(t, r)
	tr = r.Transcript()
	require.Len(t, tr, 3)
	assert.Equal(t, Message{Sender: Assistant, Text: DefaultScripts.FollowUps[1]}, tr[2])
}

func TestSpeakTranscriptMessage(t *testing.T) {
	rec := &recordingSpeaker{}
	r := NewResponse(emotion.Joy, DefaultScripts, fixedChooser(0), rec, "uk-UA")

	require.NotNil(t, r.Speak(0))
	r.Speak(0)()
	assert.Nil(t, r.Speak(1))

	finishTyping(t, r)
	r.ContinueChat()
	r.Send("ура")
	finishTyping(t, r)
	r.SpeakLast()()

	require.Len(t, rec.said, 2)
	assert.Equal(t, r.Reply(), rec.said[0].Text)
	assert.Equal(t, DefaultScripts.FollowUps[0], rec.said[1].Text)
}
