package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// EditorConfigTabSize looks for .editorconfig files from the directory of
// file upward and returns the tab width that applies to it. tab_width wins
// over indent_size; the closest file wins over farther ones. The walk stops
// at a file declaring root = true.
func EditorConfigTabSize(file string) (int, bool) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return 0, false
	}
	name := filepath.Base(abs)

	for dir := filepath.Dir(abs); ; {
		props, root := readEditorConfig(filepath.Join(dir, ".editorconfig"), name)
		if n, ok := tabSizeFrom(props); ok {
			return n, true
		}
		parent := filepath.Dir(dir)
		if root || parent == dir {
			return 0, false
		}
		dir = parent
	}
}

func tabSizeFrom(props map[string]string) (int, bool) {
	for _, key := range []string{"tab_width", "indent_size"} {
		if n, err := strconv.Atoi(props[key]); err == nil && n > 0 {
			return n, true
		}
	}
	return 0, false
}

// readEditorConfig returns the properties of every section matching name,
// later sections overriding earlier ones.
func readEditorConfig(path, name string) (map[string]string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	props := map[string]string{}
	root := false
	preamble := true
	matching := false

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		if line[0] == '[' && line[len(line)-1] == ']' {
			preamble = false
			matching = globMatch(line[1:len(line)-1], name)
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.ToLower(strings.TrimSpace(value))
		switch {
		case preamble && key == "root":
			root = value == "true"
		case matching:
			props[key] = value
		}
	}
	return props, root
}

// globMatch matches name against an editorconfig section glob, expanding
// {a,b} alternatives.
func globMatch(pattern, name string) bool {
	for _, p := range expandBraces(pattern) {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func expandBraces(pattern string) []string {
	open := strings.IndexByte(pattern, '{')
	if open < 0 {
		return []string{pattern}
	}
	depth, end := 0, -1
	var alts []string
	start := open + 1
	for i := open; i < len(pattern) && end < 0; i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i
				alts = append(alts, pattern[start:i])
			}
		case ',':
			if depth == 1 {
				alts = append(alts, pattern[start:i])
				start = i + 1
			}
		}
	}
	if end < 0 {
		return []string{pattern}
	}

	var out []string
	for _, alt := range alts {
		out = append(out, expandBraces(pattern[:open]+alt+pattern[end+1:])...)
	}
	return out
}
