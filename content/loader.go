// Package content provides the static reply banks (maxims, quotes, quiz
// questions, who-is prompts) behind a narrow interface. The data lives in
// embedded files so deployments can swap it without touching engine code.
package content

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io/fs"
	"strings"

	"ares-gme/errors"
)

// loadLines reads a line-oriented text file from the embedded FS, trimming
// whitespace and skipping blanks. Scanner handles \n and \r\n endings alike.
func loadLines(f fs.FS, path string) ([]string, error) {
	data, err := fs.ReadFile(f, path)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.ErrEmptyContent
	}
	return lines, nil
}

func loadQuiz(f fs.FS, path string) ([]QuizQuestion, error) {
	data, err := fs.ReadFile(f, path)
	if err != nil {
		return nil, err
	}
	var questions []QuizQuestion
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errors.ErrEmptyContent
	}
	return questions, nil
}
