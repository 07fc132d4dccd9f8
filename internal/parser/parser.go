// Package parser puts os.Args and the CASE_INSENSITIVE env variable into SearchConfig structure
package parser

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

// EnvCaseInsensitive - само наличие переменной (даже пустой) включает поиск без учета регистра
const EnvCaseInsensitive = "CASE_INSENSITIVE"

var (
	ErrInsufficientArguments = errors.New("not enough arguments\nUsage: minigrep <query> <file_path> [-i|--ignore-case]")
	ErrInvalidQuery          = errors.New("query is not valid UTF-8")
)

// LookupFunc - источник переменных окружения, сигнатура как у os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Extraction - способ, которым из аргументов достаются query и путь к файлу
type Extraction int

const (
	// ExtractShift - удаляем найденный флаг по индексу и берем аргументы 1 и 2 из укороченного списка.
	// Если флаг стоял на месте query или файла, остальные аргументы сдвигаются влево.
	ExtractShift Extraction = iota
	// ExtractSplit - за один проход раскладываем аргументы на флаги и позиционные,
	// query и файл - первые два позиционных, где бы ни стоял флаг.
	ExtractSplit
)

type Option func(*resolver)

// WithExtraction переключает способ извлечения позиционных аргументов
func WithExtraction(e Extraction) Option {
	return func(r *resolver) {
		r.extraction = e
	}
}

type resolver struct {
	lookup     LookupFunc
	extraction Extraction
}

// Resolve собирает SearchConfig из args (args[0] - имя программы) и переменных окружения из lookup
func Resolve(args []string, lookup LookupFunc, opts ...Option) (*model.SearchConfig, error) {
	if len(args) < 3 {
		return nil, ErrInsufficientArguments
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	r := resolver{lookup: lookup}
	for _, opt := range opts {
		opt(&r)
	}

	// регистр по умолчанию определяется только наличием переменной
	_, insensitive := r.lookup(EnvCaseInsensitive)

	var cfg *model.SearchConfig
	var err error
	switch r.extraction {
	case ExtractSplit:
		cfg, err = r.split(args, !insensitive)
	default:
		cfg, err = r.shift(args, !insensitive)
	}
	if err != nil {
		return nil, err
	}

	// кусок руны в запросе совпал бы с учетом регистра и не совпал бы без него
	if !utf8.ValidString(cfg.Query) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuery, cfg.Query)
	}
	return cfg, nil
}

func (r resolver) shift(args []string, caseSensitive bool) (*model.SearchConfig, error) {
	// копия, чтобы не портить слайс вызывающего
	tokens := append([]string(nil), args...)

	// флаг ищем только если регистр еще учитывается, иначе токен остается на месте
	if caseSensitive {
		for i, arg := range tokens {
			if isIgnoreCaseFlag(arg) {
				caseSensitive = false
				tokens = append(tokens[:i], tokens[i+1:]...)
				break
			}
		}
	}

	// ["prog", "-i", "query"] после удаления флага остается без пути к файлу
	if len(tokens) < 3 {
		return nil, ErrInsufficientArguments
	}

	return &model.SearchConfig{
		Query:         tokens[1],
		FilePath:      tokens[2],
		CaseSensitive: caseSensitive,
	}, nil
}

func (r resolver) split(args []string, caseSensitive bool) (*model.SearchConfig, error) {
	positional := make([]string, 0, len(args))
	flagFound := false
	for _, arg := range args[1:] {
		if isIgnoreCaseFlag(arg) {
			flagFound = true
			continue
		}
		positional = append(positional, arg)
	}

	if len(positional) < 2 {
		return nil, ErrInsufficientArguments
	}

	return &model.SearchConfig{
		Query:         positional[0],
		FilePath:      positional[1],
		CaseSensitive: caseSensitive && !flagFound,
	}, nil
}

func isIgnoreCaseFlag(arg string) bool {
	return arg == "-i" || arg == "--ignore-case"
}
