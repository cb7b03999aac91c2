package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gnolang/wordtrie/formatter"
	"github.com/gnolang/wordtrie/internal/index"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchFor time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <paths...>",
	Short: "Keep an index in sync with word lists as they change",
	Long: `Indexes the given word lists and reloads each file when it is written,
created or removed. Runs until interrupted, or for --for if set, then prints
the final statistics.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loadCtx, cancel := withTimeout()
		s, err := openSession(loadCtx, args)
		cancel()
		if err != nil {
			return err
		}

		w, err := index.NewWatcher(s.idx, s.loader, logger)
		if err != nil {
			return err
		}
		defer w.Close()

		w.OnReload = func(path string, err error) {
			if err != nil {
				return
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "reloaded %s (%d words)\n", path, s.idx.Len())
		}
		if err := w.Add(s.files...); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if watchFor > 0 {
			var cancelFor context.CancelFunc
			ctx, cancelFor = context.WithTimeout(ctx, watchFor)
			defer cancelFor()
		}

		logger.Info("Watching word lists", zap.Strings("files", s.files))
		err = w.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		out := cmd.OutOrStdout()
		if s.json() {
			return formatter.WriteJSON(out, s.idx.Stats())
		}
		fmt.Fprint(out, formatter.FormatStats(s.idx.Stats()))
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchFor, "for", 0, "Stop watching after this long (0 runs until interrupted)")
}
