package index

import (
	"bufio"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gnolang/wordtrie"
	"github.com/gnolang/wordtrie/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"
)

const maxLineSize = 1024 * 1024

var wordExtensions = map[string]bool{
	".txt":  true,
	".dic":  true,
	".list": true,
	".md":   true,
}

// Loader parses word lists into tries. Each line is split on white space,
// surrounding punctuation is trimmed and every remaining word is recorded
// with its file and line.
type Loader struct {
	tokenizer wordtrie.Tokenizer
	lowercase bool
	minLength int
	latin1    bool
	workers   int

	// OnFile is called after each file is parsed. It may be called from
	// several goroutines at once.
	OnFile func(path string, words int)

	logger *zap.Logger
}

func NewLoader(cfg *config.Config, logger *zap.Logger) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tok, err := wordtrie.TokenizerByName(cfg.Tokenizer)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{
		tokenizer: tok,
		lowercase: cfg.Lowercase,
		minLength: cfg.MinLength,
		latin1:    cfg.IsLatin1(),
		workers:   cfg.Workers,
		logger:    logger,
	}, nil
}

// NewIndex returns an empty index that tokenizes words like l.
func (l *Loader) NewIndex() *Index {
	return New(l.logger, wordtrie.WithTokenizer(l.tokenizer))
}

// Expand resolves paths into the word list files they name. Directories are
// walked recursively; only files with a known word list extension are kept
// from them. Files named directly are always kept.
func Expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, filepath.Clean(path))
			continue
		}

		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && wordExtensions[filepath.Ext(p)] {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// LoadFile parses a single file.
func (l *Loader) LoadFile(ctx context.Context, path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer f.Close()

	// The digest covers exactly the bytes that were parsed.
	hash := sha256.New()
	t, err := l.Parse(ctx, path, io.TeeReader(f, hash))
	if err != nil {
		return File{}, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return File{Path: path, Trie: t, Digest: fmt.Sprintf("%x", hash.Sum(nil))}, nil
}

// Parse reads words from r and records them under name.
func (l *Loader) Parse(ctx context.Context, name string, r io.Reader) (*wordtrie.DataTrie[Location], error) {
	if l.latin1 {
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	}

	t := wordtrie.NewData[Location](wordtrie.WithTokenizer(l.tokenizer))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for _, field := range strings.Fields(scanner.Text()) {
			word, ok := l.normalize(field)
			if !ok {
				continue
			}
			t.Insert(word, Location{File: name, Line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if l.OnFile != nil {
		l.OnFile(name, t.Len())
	}
	return t, nil
}

func (l *Loader) normalize(field string) (string, bool) {
	word := strings.TrimFunc(field, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	if word == "" {
		return "", false
	}
	if l.lowercase {
		word = strings.ToLower(word)
	}
	if utf8.RuneCountInString(word) < l.minLength {
		return "", false
	}
	return word, true
}

// LoadFiles parses paths concurrently, at most l.workers at a time. The
// result keeps the order of paths. The first error cancels the rest.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) ([]File, error) {
	files := make([]File, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for i, path := range paths {
		g.Go(func() error {
			f, err := l.LoadFile(ctx, path)
			if err != nil {
				l.logger.Error("Error loading file", zap.String("file", path), zap.Error(err))
				return err
			}
			files[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// Load parses paths and merges them into one trie.
func (l *Loader) Load(ctx context.Context, paths []string) (*wordtrie.DataTrie[Location], error) {
	files, err := l.LoadFiles(ctx, paths)
	if err != nil {
		return nil, err
	}

	merged := wordtrie.NewData[Location](wordtrie.WithTokenizer(l.tokenizer))
	for _, f := range files {
		merged = wordtrie.MergeData(merged, f.Trie)
	}
	return merged, nil
}

// LoadInto parses paths and adds every file to idx.
func (l *Loader) LoadInto(ctx context.Context, idx *Index, paths []string) error {
	files, err := l.LoadFiles(ctx, paths)
	if err != nil {
		return err
	}
	for _, f := range files {
		idx.AddFile(f)
	}
	l.logger.Info("Loaded word lists",
		zap.Int("files", len(files)),
		zap.Int("words", idx.Len()))
	return nil
}
