package ignore

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Load reads patterns from an ignore file. A missing file is not an error:
// found is false and patterns is nil. Any other read failure is returned as
// a *ConfigError.
func Load(path string) (patterns []string, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &ConfigError{Path: path, Err: err}
	}
	return Parse(data), true, nil
}

// Parse extracts patterns from ignore file content.
func Parse(data []byte) []string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var patterns []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// LoadGitignore reads a .gitignore file for use with Matcher.WithGitignore.
// A missing file yields no lines and no error.
func LoadGitignore(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &ConfigError{Path: path, Err: err}
	}
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), nil
}
