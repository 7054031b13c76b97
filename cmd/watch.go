package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/josephgoksu/todowing/internal/tasklist"
	"github.com/josephgoksu/todowing/internal/watch"
	"github.com/josephgoksu/todowing/models"
	"github.com/josephgoksu/todowing/store"
	"github.com/josephgoksu/todowing/types"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprint the list whenever the stored tasks change",
	Long: `Watch the tasks slot and print the list again each time another process
(another todowing, or the interactive view) saves it. Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringP("filter", "f", string(models.FilterAll), "filter: all, active, completed")
}

func runWatch(cmd *cobra.Command, args []string) error {
	filterFlag, _ := cmd.Flags().GetString("filter")
	filter, err := models.ParseFilter(filterFlag)
	if err != nil {
		return newUserError(fmt.Sprintf("Error: invalid filter '%s'. Use all, active or completed.", filterFlag), err)
	}

	slots, err := openSlots()
	if err != nil {
		return err
	}
	defer func() { _ = slots.Close() }()

	locator, ok := slots.(store.Locator)
	if !ok {
		return newUserError("Error: this storage backend cannot be watched.", nil)
	}

	out := cmd.OutOrStdout()
	var mu sync.Mutex
	render := func() {
		mu.Lock()
		defer mu.Unlock()

		st, err := tasklist.Open(slots)
		if err != nil {
			PrintError("Error: could not reload tasks.", err)
			return
		}
		fmt.Fprintln(out)
		renderPlainList(out, st.List(filter), filter)
	}

	w, err := watch.New(watchTargets(GetConfig().Storage.Backend, locator), watch.DefaultDelay, render)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := w.Start(ctx); err != nil {
		return newUserError("Error: could not watch the storage directory.", err)
	}
	defer w.Stop()

	render()
	if !isQuiet() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", locator.Path(tasklist.TasksSlot))
	}
	<-ctx.Done()
	if ctx.Err() == context.Canceled {
		return nil
	}
	return ctx.Err()
}

// watchTargets lists the files whose changes mean the tasks slot changed.
func watchTargets(backend string, locator store.Locator) []string {
	path := locator.Path(tasklist.TasksSlot)
	if backend == types.BackendSQLite {
		return []string{path, path + "-wal", path + "-journal"}
	}
	return []string{path}
}
