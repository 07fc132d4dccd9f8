// Package reader loads the whole input file into memory before any matching starts
package reader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var ErrFileRead = errors.New("failed to read file")

func ReadFile(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrFileRead, fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("%w: specified filename %q is a directory", ErrFileRead, fileName)
	}

	// читаем целиком - поиск начинается только после успешного чтения
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrFileRead, fileName, err)
	}
	// ищем только по тексту: бинарный файл - ошибка чтения, а не пустой результат
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w %q: invalid UTF-8", ErrFileRead, fileName)
	}
	return string(raw), nil
}
