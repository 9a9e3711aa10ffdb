package ai

import (
	"fmt"
)

type TaskKind string

const (
	TaskSummarize         TaskKind = "summarize"
	TaskSolveCode         TaskKind = "solve_code"
	TaskGenerateQuestions TaskKind = "generate_questions"
	TaskAnswerDoubt       TaskKind = "answer_doubt"
)

// ErrBadTask marks a task whose payload is missing or whose kind is unknown.
var ErrBadTask = fmt.Errorf("invalid task")

// Task is one AI request. Which payload fields matter depends on Kind;
// a Task lives for a single call and is never persisted.
type Task struct {
	Kind     TaskKind
	Text     string // summarize
	Language string // solve_code
	Code     string // solve_code
	Document string // generate_questions, answer_doubt
	Question string // answer_doubt
}

// Prompt renders the single natural-language instruction for the task,
// embedding the payload verbatim. Every kind shares the same downstream
// mechanics; only the template differs.
func (t Task) Prompt() (string, error) {
	switch t.Kind {
	case TaskSummarize:
		if t.Text == "" {
			return "", fmt.Errorf("%w: summarize needs text", ErrBadTask)
		}
		return fmt.Sprintf("summarize this paragraph in short: %s", t.Text), nil
	case TaskSolveCode:
		if t.Language == "" || t.Code == "" {
			return "", fmt.Errorf("%w: solve_code needs language and code", ErrBadTask)
		}
		return fmt.Sprintf("solve this %s code and explain the solution briefly: %s", t.Language, t.Code), nil
	case TaskGenerateQuestions:
		if t.Document == "" {
			return "", fmt.Errorf("%w: generate_questions needs a document", ErrBadTask)
		}
		return fmt.Sprintf("generate a list of important questions from this document: %s", t.Document), nil
	case TaskAnswerDoubt:
		if t.Document == "" || t.Question == "" {
			return "", fmt.Errorf("%w: answer_doubt needs a document and a question", ErrBadTask)
		}
		return fmt.Sprintf("answer this doubt: %s given context: %s", t.Question, t.Document), nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrBadTask, t.Kind)
	}
}
