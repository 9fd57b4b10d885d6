package match

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestRegexCacheMatch(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		pattern    string
		ignoreCase bool
		want       bool
		wantErr    bool
	}{
		{name: "full match", file: "test.txt", pattern: `.*\.txt`, want: true},
		{name: "no match", file: "test.py", pattern: `.*\.txt`, want: false},
		{name: "anchored at start", file: "my_test.txt", pattern: `test.*`, want: false},
		{name: "anchored at end", file: "test.txt.bak", pattern: `.*\.txt`, want: false},
		{name: "alternation is anchored", file: "xa", pattern: `a|b`, want: false},
		{name: "alternation", file: "b", pattern: `a|b`, want: true},
		{name: "case sensitive", file: "TEST.TXT", pattern: `.*\.txt`, want: false},
		{name: "case insensitive", file: "TEST.TXT", pattern: `.*\.txt`, ignoreCase: true, want: true},
		{name: "character class", file: "file7.log", pattern: `file[0-9]\.log`, want: true},
		{name: "invalid pattern", file: "anything", pattern: `[`, want: false, wantErr: true},
		{name: "invalid pattern case insensitive", file: "anything", pattern: `(`, ignoreCase: true, want: false, wantErr: true},
		{name: "unbalanced groups", file: "ab", pattern: `a)(b`, want: false, wantErr: true},
		{name: "group escaping the anchors", file: "anything.txt", pattern: `x)|(.*`, want: false, wantErr: true},
		{name: "group escaping the anchors case insensitive", file: "anything.txt", pattern: `x)|(.*`, ignoreCase: true, want: false, wantErr: true},
	}

	cache := NewRegexCache()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cache.Match(tt.file, tt.pattern, tt.ignoreCase)
			if (err != nil) != tt.wantErr {
				t.Errorf("Match(%q, %q) error = %v, wantErr %v", tt.file, tt.pattern, err, tt.wantErr)
				return
			}
			if err != nil && !errors.Is(err, ErrInvalidRegex) {
				t.Errorf("Match(%q, %q) error = %v, want ErrInvalidRegex", tt.file, tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.file, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestRegexCacheErrorQuotesPattern(t *testing.T) {
	_, err := NewRegexCache().GetOrCompile(`[`, false)
	if err == nil {
		t.Fatal("GetOrCompile(`[`) expected error, got nil")
	}
	if strings.Contains(err.Error(), ")$") {
		t.Errorf("GetOrCompile(`[`) error = %q, leaks the anchored expression", err)
	}
}

func TestRegexCacheReuse(t *testing.T) {
	cache := NewRegexCache()

	first, err := cache.GetOrCompile(`.*\.go`, false)
	if err != nil {
		t.Fatalf("GetOrCompile() unexpected error: %v", err)
	}
	second, err := cache.GetOrCompile(`.*\.go`, false)
	if err != nil {
		t.Fatalf("GetOrCompile() unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("GetOrCompile() returned a new regexp for a cached pattern")
	}

	folded, err := cache.GetOrCompile(`.*\.go`, true)
	if err != nil {
		t.Fatalf("GetOrCompile() unexpected error: %v", err)
	}
	if folded == first {
		t.Errorf("GetOrCompile() shared a regexp across case sensitivity")
	}

	if _, err := cache.GetOrCompile(`[`, false); err == nil {
		t.Fatalf("GetOrCompile(%q) expected error, got nil", `[`)
	}
	if _, err := cache.GetOrCompile(`[`, false); err == nil {
		t.Fatalf("GetOrCompile(%q) expected cached error, got nil", `[`)
	}

	if got := cache.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestRegexCacheConcurrency(t *testing.T) {
	cache := NewRegexCache()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pattern := fmt.Sprintf(`file%d\..*`, i%5)
			name := fmt.Sprintf("file%d.txt", i%5)
			ok, err := cache.Match(name, pattern, i%2 == 0)
			if err != nil || !ok {
				t.Errorf("Match(%q, %q) = %v, %v", name, pattern, ok, err)
			}
		}(i)
	}
	wg.Wait()

	if got := cache.Len(); got != 10 {
		t.Errorf("Len() = %d, want 10", got)
	}
}
