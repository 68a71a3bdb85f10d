// Package langlist manages the append-only registry of recognized language
// display names. The list is a collaborator to the UI only: detection is
// hard-coded per handler and never consults it.
package langlist

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
)

// defaults are the names seeded into a fresh langlist file, one per line.
var defaults = []string{
	"Python",
	"Node.js",
	"Java",
	"Ruby",
	"PHP",
	"Go",
	"C# (.NET)",
	"C++",
	"Rust",
}

// List is the language-name registry backed by a flat text file.
type List struct {
	path string
}

// New returns a List backed by the given file path.
func New(path string) *List {
	return &List{path: path}
}

// Path returns the backing file path.
func (l *List) Path() string {
	return l.path
}

// Init creates the backing file with the default language names if it does
// not exist yet. An existing file is left untouched.
func (l *List) Init() error {
	if _, err := os.Stat(l.path); err == nil {
		return nil
	}
	content := strings.Join(defaults, "\n") + "\n"
	if err := os.WriteFile(l.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("creating %s: %w", l.path, err)
	}
	log.Printf("[langlist] created %s with %d default languages", l.path, len(defaults))
	return nil
}

// Add appends a language name to the file.
func (l *List) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("language name is empty")
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", l.path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(name + "\n"); err != nil {
		return fmt.Errorf("appending to %s: %w", l.path, err)
	}
	return nil
}

// Names returns the registered language names in file order.
func (l *List) Names() ([]string, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", l.path, err)
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			names = append(names, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.path, err)
	}
	return names, nil
}
