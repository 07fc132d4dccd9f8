// Package model contains data structures for the resolved launch configuration and the daemon DTOs
package model

// DefaultServerAddress - адрес, на котором minigrepd слушает по умолчанию
const DefaultServerAddress = ":8080"

// SearchConfig - результат разбора аргументов командной строки, после создания не меняется
type SearchConfig struct {
	Query         string // подстрока для поиска
	FilePath      string // путь к файлу
	CaseSensitive bool   // false - строки и запрос приводятся к нижнему регистру перед сравнением
}

// SearchTask - задание на поиск, которое принимает minigrepd
type SearchTask struct {
	TaskID        string `json:"tid"`
	Query         string `json:"query"`
	CaseSensitive bool   `json:"case_sensitive"`
	Contents      string `json:"contents"`
}

// SearchResult - ответ minigrepd на задание
type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
