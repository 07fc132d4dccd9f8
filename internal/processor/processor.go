// Package processor operates with a search task received by minigrepd and returns the result to transport-layer
package processor

import (
	"context"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Output: []string{},
	}

	// клиент мог уже отвалиться - не тратим время на поиск
	select {
	case <-ctx.Done():
	default:
		result.Output = matcher.Find(task.Query, task.Contents, task.CaseSensitive)
	}

	// хеш всегда соответствует Output, даже если контекст отменили после поиска
	result.HashSumm = Hasher(result.Output)

	return &result
}

// Hasher - xxhash64 по строкам результата, каждая с '\n' в конце, как при печати
func Hasher(input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
