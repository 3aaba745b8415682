package flow

import (
	"context"
	"log/slog"
	"strings"

	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/internal/catalog"
)

// quizState pins the module snapshot at start time, so a catalog swap
// mid-quiz cannot shift questions under the user.
type quizState struct {
	module catalog.Module
	qIdx   int
	score  int
}

// QuizOutcome describes one answered question.
type QuizOutcome struct {
	Correct bool
	Answer  string
	Explain string

	Next    *catalog.Question
	NextNum int

	Done           bool
	Score          int
	Total          int
	ModuleID       int
	CompletedCount int
}

// StartQuiz begins the quiz for a module. It refuses with
// ErrPrerequisites, leaving state untouched, unless every prerequisite
// module id is already completed.
func (e *Engine) StartQuiz(chatID int64, mod catalog.Module) (catalog.Question, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.conv(chatID)
	for _, prereq := range mod.Prereq {
		if !c.completed[prereq] {
			logger.SVCFlow.LogAttrs(context.Background(), slog.LevelInfo, "quiz.blocked",
				slog.Int64("chat_id", chatID),
				slog.Int("module_id", mod.ID),
				slog.Int("missing_prereq", prereq),
			)
			return catalog.Question{}, ErrPrerequisites
		}
	}
	if len(mod.Quiz) == 0 {
		return catalog.Question{}, ErrUnknownModule
	}

	c.clearFlow()
	c.kind = KindQuiz
	c.quiz = &quizState{module: mod}

	logger.SVCFlow.LogAttrs(context.Background(), slog.LevelInfo, "quiz.started",
		slog.Int64("chat_id", chatID),
		slog.Int("module_id", mod.ID),
	)
	return mod.Quiz[0], nil
}

// AnswerQuiz grades one answer. A callback arriving without an active
// quiz (restart, stale button) returns ErrNoActiveQuiz instead of
// panicking on missing state.
func (e *Engine) AnswerQuiz(chatID int64, answer string) (QuizOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.convs[chatID]
	if !ok || c.kind != KindQuiz || c.quiz == nil {
		return QuizOutcome{}, ErrNoActiveQuiz
	}

	q := c.quiz.module.Quiz[c.quiz.qIdx]
	out := QuizOutcome{
		Correct: strings.EqualFold(strings.TrimSpace(answer), q.Answer),
		Answer:  q.Answer,
		Explain: q.Explain,
	}
	if out.Correct {
		c.quiz.score++
	}

	c.quiz.qIdx++
	if c.quiz.qIdx < len(c.quiz.module.Quiz) {
		next := c.quiz.module.Quiz[c.quiz.qIdx]
		out.Next = &next
		out.NextNum = c.quiz.qIdx + 1
		return out, nil
	}

	out.Done = true
	out.Score = c.quiz.score
	out.Total = len(c.quiz.module.Quiz)
	out.ModuleID = c.quiz.module.ID
	c.completed[out.ModuleID] = true
	out.CompletedCount = len(c.completed)

	logger.SVCFlow.LogAttrs(context.Background(), slog.LevelInfo, "quiz.finished",
		slog.Int64("chat_id", chatID),
		slog.Int("module_id", out.ModuleID),
		slog.Int("score", out.Score),
		slog.Int("total", out.Total),
	)
	c.clearFlow()
	return out, nil
}
