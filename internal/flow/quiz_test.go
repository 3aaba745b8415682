package flow

import (
	"testing"

	"github.com/benuhq/benubot/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeModule(t *testing.T, e *Engine, chatID int64, mod catalog.Module) QuizOutcome {
	t.Helper()
	_, err := e.StartQuiz(chatID, mod)
	require.NoError(t, err)

	var out QuizOutcome
	for _, q := range mod.Quiz {
		out, err = e.AnswerQuiz(chatID, q.Answer)
		require.NoError(t, err)
	}
	require.True(t, out.Done)
	return out
}

func TestQuizPrerequisiteGate(t *testing.T) {
	e := NewEngine()
	cat := catalog.Default()

	mod2, ok := cat.Module(2)
	require.True(t, ok)

	_, err := e.StartQuiz(1, mod2)
	assert.ErrorIs(t, err, ErrPrerequisites)
	assert.False(t, e.InFlow(1))

	mod1, ok := cat.Module(1)
	require.True(t, ok)
	completeModule(t, e, 1, mod1)

	_, err = e.StartQuiz(1, mod2)
	assert.NoError(t, err)
}

func TestQuizScoring(t *testing.T) {
	e := NewEngine()
	cat := catalog.Default()
	mod, ok := cat.Module(1)
	require.True(t, ok)

	first, err := e.StartQuiz(2, mod)
	require.NoError(t, err)
	assert.Equal(t, mod.Quiz[0].Prompt, first.Prompt)

	// Case-insensitive match counts as correct.
	out, err := e.AnswerQuiz(2, "sugar")
	require.NoError(t, err)
	assert.True(t, out.Correct)
	require.NotNil(t, out.Next)
	assert.Equal(t, 2, out.NextNum)

	out, err = e.AnswerQuiz(2, "Oven")
	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.Equal(t, "Mixer", out.Answer)
	assert.NotEmpty(t, out.Explain)

	out, err = e.AnswerQuiz(2, "Quality Control")
	require.NoError(t, err)
	assert.True(t, out.Done)
	assert.Equal(t, 2, out.Score)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.ModuleID)
	assert.Equal(t, 1, out.CompletedCount)

	assert.False(t, e.InFlow(2))
	assert.True(t, e.CompletedModules(2)[1])
}

func TestQuizCompletionUnlocksChain(t *testing.T) {
	e := NewEngine()
	cat := catalog.Default()

	mod3, ok := cat.Module(3)
	require.True(t, ok)

	mod1, _ := cat.Module(1)
	completeModule(t, e, 4, mod1)
	_, err := e.StartQuiz(4, mod3)
	assert.ErrorIs(t, err, ErrPrerequisites)

	mod2, _ := cat.Module(2)
	out := completeModule(t, e, 4, mod2)
	assert.Equal(t, 2, out.CompletedCount)

	_, err = e.StartQuiz(4, mod3)
	assert.NoError(t, err)
}

func TestAnswerQuizWithoutActiveQuiz(t *testing.T) {
	e := NewEngine()
	_, err := e.AnswerQuiz(5, "Sugar")
	assert.ErrorIs(t, err, ErrNoActiveQuiz)

	// A running form flow is not a quiz either.
	_, startErr := e.Start(5, KindAsk, nil)
	require.NoError(t, startErr)
	_, err = e.AnswerQuiz(5, "Sugar")
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestStartQuizSurvivesCatalogSwap(t *testing.T) {
	e := NewEngine()
	cat := catalog.Default()
	mod, _ := cat.Module(1)

	_, err := e.StartQuiz(6, mod)
	require.NoError(t, err)

	// A new catalog version mid-quiz must not shift the pinned module.
	_ = cat.WithCategory("Logistics")

	out, err := e.AnswerQuiz(6, mod.Quiz[0].Answer)
	require.NoError(t, err)
	assert.True(t, out.Correct)
}
