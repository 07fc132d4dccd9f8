// Package appmode provides 2 methods to work in mode 'search' (one-shot CLI run) and 'server' (minigrepd)
package appmode

import (
	"bufio"
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
)

// RunSearch читает файл целиком, ищет совпадения и печатает их в out по одной строке.
// При ошибке чтения в out ничего не пишется.
func RunSearch(cfg *model.SearchConfig, out io.Writer) error {
	contents, err := reader.ReadFile(cfg.FilePath)
	if err != nil {
		return err
	}

	result := matcher.Find(cfg.Query, contents, cfg.CaseSensitive)

	// печатаем результат
	w := bufio.NewWriter(out)
	for _, line := range result {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
