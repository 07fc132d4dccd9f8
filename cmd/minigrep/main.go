package main

import (
	"io"
	"log"
	"os"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
)

func main() {
	os.Exit(run(os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}

// run возвращает код выхода: 0 - поиск выполнен, 1 - ошибка аргументов или чтения файла
func run(args []string, lookup parser.LookupFunc, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	// query, файл и режим регистра из аргументов и CASE_INSENSITIVE
	cfg, err := parser.Resolve(args, lookup)
	if err != nil {
		logger.Printf("Problem parsing arguments: %v", err)
		return 1
	}

	if err := appmode.RunSearch(cfg, stdout); err != nil {
		logger.Printf("Application error: %v", err)
		return 1
	}
	return 0
}
