package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/gnolang/wordtrie/formatter"
	"github.com/gnolang/wordtrie/internal/config"
	"github.com/gnolang/wordtrie/internal/index"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// session is what every query command works on.
type session struct {
	cfg    *config.Config
	loader *index.Loader
	idx    *index.Index
	files  []string
}

func (s *session) json() bool {
	return jsonOutput || s.cfg.Output == "json"
}

// openSession loads the configuration and indexes every word list under paths.
func openSession(ctx context.Context, paths []string) (*session, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if !cfg.Color {
		formatter.SetColor(false)
	}

	loader, err := index.NewLoader(cfg, logger)
	if err != nil {
		return nil, err
	}

	files, err := index.Expand(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no word lists found in %v", paths)
	}

	if bar := newProgressBar(len(files)); bar != nil {
		loader.OnFile = func(string, int) { _ = bar.Add(1) }
		defer bar.Finish()
	}

	idx := loader.NewIndex()
	if err := loader.LoadInto(ctx, idx, files); err != nil {
		return nil, err
	}
	logger.Debug("Index ready",
		zap.Int("files", len(files)),
		zap.Int("words", idx.Len()),
		zap.String("tokenizer", cfg.Tokenizer))

	return &session{cfg: cfg, loader: loader, idx: idx, files: files}, nil
}

// newProgressBar returns nil when stderr is not a terminal or there is
// only one file to load.
func newProgressBar(total int) *progressbar.ProgressBar {
	if total < 2 || !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("loading"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func withTimeout() (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}
