// Package matcher filters the lines of a text blob by substring, with or without case folding
package matcher

import "strings"

// Lines делит текст на строки: разделитель '\n', завершающий '\r' отрезается,
// перевод строки в конце файла не дает пустой последней строки
func Lines(contents string) []string {
	if contents == "" {
		return []string{}
	}

	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Search возвращает строки, содержащие query как точную подстроку
func Search(query, contents string) []string {
	result := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive сравнивает в нижнем регистре, но возвращает строки в исходном виде
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)

	result := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			result = append(result, line)
		}
	}
	return result
}

func Find(query, contents string, caseSensitive bool) []string {
	if caseSensitive {
		return Search(query, contents)
	}
	return SearchCaseInsensitive(query, contents)
}
