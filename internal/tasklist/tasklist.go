// Package tasklist owns the in-memory to-do list and mirrors it to a
// persistent slot after every change.
package tasklist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/josephgoksu/todowing/models"
	"github.com/josephgoksu/todowing/store"
)

// Slot keys shared with other readers of the backing store.
const (
	TasksSlot    = "tasks"
	DarkModeSlot = "darkMode"
)

// ErrEmptyText is returned by Add when the text is blank after trimming.
var ErrEmptyText = errors.New("task text cannot be empty")

// Stats summarizes the list for counters.
type Stats struct {
	Total     int `json:"total" yaml:"total" toml:"total"`
	Completed int `json:"completed" yaml:"completed" toml:"completed"`
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of new ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.log = logger }
}

// Store is the task list. Tasks are kept newest first and every mutation
// rewrites the whole list to the tasks slot. A Store is not safe for
// concurrent use.
type Store struct {
	slots  store.Slots
	tasks  []models.Task
	lastID int64
	now    func() time.Time
	log    *slog.Logger
}

// Open loads the list from slots. Missing or unreadable data yields an empty
// list; only backend I/O failures are returned.
func Open(slots store.Slots, opts ...Option) (*Store, error) {
	s := &Store{
		slots: slots,
		tasks: []models.Task{},
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := slots.Get(TasksSlot)
	switch {
	case errors.Is(err, store.ErrSlotNotFound):
		return s, nil
	case errors.Is(err, store.ErrCorruptSlot):
		s.log.Warn("discarding corrupt task data", "slot", TasksSlot, "error", err)
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read %s slot: %w", TasksSlot, err)
	}

	tasks, err := decodeTasks(data)
	if err != nil {
		s.log.Warn("discarding unreadable task data", "slot", TasksSlot, "error", err)
		return s, nil
	}
	s.tasks = tasks
	for _, t := range tasks {
		s.lastID = max(s.lastID, t.ID)
	}
	s.log.Debug("loaded tasks", "count", len(tasks))
	return s, nil
}

func decodeTasks(data []byte) ([]models.Task, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []models.Task{}, nil
	}
	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	seen := make(map[int64]struct{}, len(tasks))
	for i, t := range tasks {
		if err := models.ValidateStruct(t); err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// nextID derives an id from the clock in milliseconds, bumping past the last
// issued id so ids stay unique and increasing even within one millisecond.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Add prepends a new task. An empty priority means medium. dueDate and dueTime
// are optional; formattedDate is computed once here and never refreshed.
func (s *Store) Add(text string, priority models.Priority, dueDate, dueTime string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, ErrEmptyText
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", models.ErrInvalidPriority, priority)
	}
	dueDate, dueTime = strings.TrimSpace(dueDate), strings.TrimSpace(dueTime)
	formatted, err := models.FormatDue(dueDate, dueTime)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:            s.nextID(),
		Text:          text,
		Priority:      priority,
		DueDate:       dueDate,
		DueTime:       dueTime,
		FormattedDate: formatted,
	}
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	next := make([]models.Task, 0, len(s.tasks)+1)
	next = append(next, task)
	next = append(next, s.tasks...)
	if err := s.commit(next); err != nil {
		return models.Task{}, fmt.Errorf("failed to save new task: %w", err)
	}
	return task, nil
}

// ToggleComplete flips the completed flag of the task with id. It reports
// false without error when no such task exists.
func (s *Store) ToggleComplete(id int64) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	next := slices.Clone(s.tasks)
	next[i].Completed = !next[i].Completed
	if err := s.commit(next); err != nil {
		return false, fmt.Errorf("failed to save task %d: %w", id, err)
	}
	return true, nil
}

// Delete removes the task with id. It reports false without error when no
// such task exists, leaving the store untouched.
func (s *Store) Delete(id int64) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	next := slices.Delete(slices.Clone(s.tasks), i, i+1)
	if err := s.commit(next); err != nil {
		return false, fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return true, nil
}

// ClearCompleted removes every completed task and returns how many went.
func (s *Store) ClearCompleted() (int, error) {
	next := slices.DeleteFunc(slices.Clone(s.tasks), func(t models.Task) bool { return t.Completed })
	removed := len(s.tasks) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := s.commit(next); err != nil {
		return 0, fmt.Errorf("failed to clear completed tasks: %w", err)
	}
	return removed, nil
}

// List returns a copy of the tasks matching filter, newest first.
func (s *Store) List(filter models.Filter) []models.Task {
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the task with id.
func (s *Store) Get(id int64) (models.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// Stats counts all tasks and the completed ones.
func (s *Store) Stats() Stats {
	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	return st
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

// commit persists next and only then makes it the current list, so a failed
// write leaves memory matching the slot.
func (s *Store) commit(next []models.Task) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := s.slots.Set(TasksSlot, data); err != nil {
		return err
	}
	s.tasks = next
	return nil
}
