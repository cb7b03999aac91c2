// Package index keeps a word index of text files in a wordtrie.DataTrie.
//
// A trie is not safe for concurrent mutation, so Index guards it with a
// read-write lock: queries share the read lock, loading and removal take
// the write lock. Every word maps to the locations it was read from.
package index

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gnolang/wordtrie"
	"go.uber.org/zap"
)

// Location is one occurrence of a word.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// File is the parsed content of one word list.
type File struct {
	Path string
	Trie *wordtrie.DataTrie[Location]
	// Digest is the sha256 of the bytes Trie was parsed from.
	Digest string
}

// Stats summarizes an index.
type Stats struct {
	Words    int      `json:"words"`
	Files    int      `json:"files"`
	Longest  []string `json:"longest"`
	Shortest []string `json:"shortest"`
}

var nextID atomic.Uint64

type Index struct {
	// id orders locking when two indexes are compared.
	id uint64

	mu      sync.RWMutex
	trie    *wordtrie.DataTrie[Location]
	files   map[string][]string
	digests map[string]string

	logger *zap.Logger
}

// New returns an empty index. opts must match the options the files were
// parsed with.
func New(logger *zap.Logger, opts ...wordtrie.Option) *Index {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Index{
		id:      nextID.Add(1),
		trie:    wordtrie.NewData[Location](opts...),
		files:   make(map[string][]string),
		digests: make(map[string]string),
		logger:  logger,
	}
}

// AddFile merges a parsed file into the index. f.Trie is consumed.
func (idx *Index) AddFile(f File) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.addFileLocked(f)
}

// ReplaceFile drops every location previously read from f.Path and merges
// the new content in a single critical section.
func (idx *Index) ReplaceFile(f File) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	removed := idx.removeFileLocked(f.Path)
	idx.addFileLocked(f)
	idx.logger.Info("Reloaded file",
		zap.String("file", f.Path),
		zap.Int("removed", removed),
		zap.Int("words", idx.trie.Len()))
}

// RemoveFile drops every location read from path and returns how many
// words disappeared from the index because of it.
func (idx *Index) RemoveFile(path string) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.removeFileLocked(path)
}

func (idx *Index) addFileLocked(f File) {
	idx.files[f.Path] = append(idx.files[f.Path], f.Trie.All()...)
	if f.Digest != "" {
		idx.digests[f.Path] = f.Digest
	}
	idx.trie.MergeInto(f.Trie)
}

func (idx *Index) removeFileLocked(path string) int {
	delete(idx.digests, path)
	words, ok := idx.files[path]
	if !ok {
		return 0
	}
	delete(idx.files, path)

	gone := 0
	for _, word := range words {
		locs, ok := idx.trie.Remove(word)
		if !ok {
			continue
		}

		kept := 0
		for _, loc := range locs {
			if loc.File == path {
				continue
			}
			idx.trie.Insert(word, loc)
			kept++
		}
		if kept == 0 {
			gone++
		}
	}
	return gone
}

// dropEmptyFilesLocked forgets the files among locs that no longer have any
// location in the trie.
func (idx *Index) dropEmptyFilesLocked(locs []Location) {
	seen := make(map[string]bool)
	for _, loc := range locs {
		if seen[loc.File] {
			continue
		}
		seen[loc.File] = true
		if !idx.hasLocationsLocked(loc.File) {
			delete(idx.files, loc.File)
		}
	}
}

func (idx *Index) hasLocationsLocked(path string) bool {
	for _, word := range idx.files[path] {
		refs, ok := idx.trie.Data(word, false)
		if !ok {
			continue
		}
		for _, ref := range refs {
			if ref.File == path {
				return true
			}
		}
	}
	return false
}

// Digest returns the content digest path was last loaded with.
func (idx *Index) Digest(path string) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	d, ok := idx.digests[path]
	return d, ok
}

// Add records a single occurrence of word.
func (idx *Index) Add(word string, loc Location) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.trie.Insert(word, loc)
	idx.files[loc.File] = append(idx.files[loc.File], word)
}

// Remove deletes word and returns its locations. Files left without any
// location stop counting in Stats.
func (idx *Index) Remove(word string) ([]Location, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	locs, ok := idx.trie.Remove(word)
	if ok {
		idx.dropEmptyFilesLocked(locs)
	}
	return locs, ok
}

// RemovePrefix deletes every word extending prefix and returns their locations.
func (idx *Index) RemovePrefix(prefix string) ([]Location, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	locs, ok := idx.trie.RemovePrefix(prefix)
	if ok {
		idx.dropEmptyFilesLocked(locs)
		idx.logger.Debug("Removed prefix",
			zap.String("prefix", prefix),
			zap.Int("locations", len(locs)))
	}
	return locs, ok
}

// Find returns the words beginning with prefix.
func (idx *Index) Find(prefix string) ([]string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.trie.Find(prefix)
}

// Lookup returns copies of the locations of word, or of every word beginning
// with word when soft is set.
func (idx *Index) Lookup(word string, soft bool) ([]Location, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	refs, ok := idx.trie.Data(word, soft)
	if !ok {
		return nil, false
	}
	locs := make([]Location, 0, len(refs))
	for _, ref := range refs {
		locs = append(locs, *ref)
	}
	return locs, true
}

// Contains reports whether word is indexed.
func (idx *Index) Contains(word string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.trie.Contains(word)
}

// Len returns the number of distinct words.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.trie.Len()
}

// Stats returns the word count, file count and extreme words.
func (idx *Index) Stats() Stats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return Stats{
		Words:    idx.trie.Len(),
		Files:    len(idx.files),
		Longest:  idx.trie.Longest(),
		Shortest: idx.trie.Shortest(),
	}
}

// Equal reports whether both indexes hold the same words and locations.
// Locks are taken in creation order, so concurrent a.Equal(b) and b.Equal(a)
// cannot deadlock.
func (idx *Index) Equal(other *Index) bool {
	if idx == other {
		return true
	}

	first, second := idx, other
	if other.id < idx.id {
		first, second = other, idx
	}
	first.mu.RLock()
	defer first.mu.RUnlock()
	second.mu.RLock()
	defer second.mu.RUnlock()
	return wordtrie.Equal(idx.trie, other.trie)
}
