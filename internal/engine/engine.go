// Package engine runs command lines against the address book one at a time,
// persisting every change before the next command starts.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"clientbook/internal/apperr"
	"clientbook/internal/commands"
	"clientbook/internal/jsonpatch"
	"clientbook/internal/lib/sl"
	"clientbook/internal/metrics"
	"clientbook/internal/model"
	"clientbook/internal/parser"
	"clientbook/internal/storage"
)

// Engine serialises access to the model. A nil store keeps changes in memory.
type Engine struct {
	mu      sync.Mutex
	model   *model.Manager
	store   storage.Store
	log     *slog.Logger
	metrics *metrics.Recorder
}

func New(m *model.Manager, store storage.Store, log *slog.Logger, rec *metrics.Recorder) *Engine {
	if log == nil {
		log = sl.Discard()
	}
	e := &Engine{model: m, store: store, log: log, metrics: rec}
	rec.SetClients(m.Book().Len())
	return e
}

// Load reads the book from store and returns an engine over it.
func Load(ctx context.Context, store storage.Store, log *slog.Logger, rec *metrics.Recorder) (*Engine, error) {
	book, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load address book: %w", err)
	}
	return New(model.NewManager(book), store, log, rec), nil
}

// Execute parses and runs one command line.
func (e *Engine) Execute(ctx context.Context, line string) (commands.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	res, _, err := e.execute(ctx, line)
	return res, err
}

// execute must be called with e.mu held. It returns the command word when
// the line parsed.
func (e *Engine) execute(ctx context.Context, line string) (commands.Result, string, error) {
	start := time.Now()
	log := e.log.With(slog.String("input", line))

	if err := ctx.Err(); err != nil {
		return commands.Result{}, "", err
	}

	cmd, err := parser.Parse(line)
	if err != nil {
		e.observe("", start, err)
		log.Warn("command rejected", slog.String("code", apperr.CodeOf(err)), sl.Err(err))
		return commands.Result{}, "", err
	}
	word := cmd.Word()
	log = log.With(slog.String("command", word))

	before := e.model.Book().Clone()
	res, err := cmd.Execute(e.model)
	if err != nil {
		e.observe(word, start, err)
		log.Warn("command failed", slog.String("code", apperr.CodeOf(err)), sl.Err(err))
		return commands.Result{}, word, err
	}

	if e.store != nil && !before.Equal(e.model.Book()) {
		if err := e.store.Save(ctx, e.model.Book()); err != nil {
			e.model.RestoreBook(before)
			err = fmt.Errorf("save address book: %w", err)
			e.observe(word, start, err)
			log.Error("command rolled back", sl.Err(err))
			return commands.Result{}, word, err
		}
	}

	e.observe(word, start, nil)
	e.metrics.SetClients(e.model.Book().Len())
	log.Info("command executed", slog.Duration("elapsed", time.Since(start)))
	return res, word, nil
}

func (e *Engine) observe(word string, start time.Time, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case apperr.IsFormat(err):
		outcome = metrics.OutcomeFormatError
	case apperr.IsState(err):
		outcome = metrics.OutcomeStateError
	default:
		outcome = metrics.OutcomeError
	}
	e.metrics.ObserveCommand(word, outcome, time.Since(start))
}

// Run executes a batch. It stops at the first failing command unless
// ContinueOnError is set, and reports a patch from the starting book to the
// final one.
func (e *Engine) Run(ctx context.Context, req *model.Request) *model.Response {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	runID := uuid.New().String()
	log := e.log.With(slog.String("run_id", runID))

	var allMessages []model.Message
	var processed []model.ProcessedCommand
	outcome := model.OutcomeSuccess

	initial, initErr := storage.Marshal(e.model.Book())

	for _, line := range req.Commands {
		res, word, err := e.execute(ctx, line)
		msg := model.Message{ID: len(allMessages), Level: model.LevelInfo, Code: model.CodeOK, Text: res.Feedback}
		if err != nil {
			msg.Level = model.LevelCritical
			msg.Code = apperr.CodeOf(err)
			msg.Text = err.Error()
		}
		allMessages = append(allMessages, msg)
		processed = append(processed, model.ProcessedCommand{
			Input:          line,
			Command:        word,
			MessageIndexes: []int{msg.ID},
		})

		if err != nil {
			outcome = model.OutcomeFailure
			if !req.ContinueOnError {
				break
			}
		}
	}

	patch := e.patchFrom(initial, initErr, log)

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.Message{}
	}
	if processed == nil {
		processed = []model.ProcessedCommand{}
	}

	log.Info("run finished",
		slog.String("outcome", outcome),
		slog.Int("commands", len(processed)),
		slog.Int64("elapsed_ms", elapsed.Milliseconds()))

	return &model.Response{
		Metadata: model.Metadata{
			RunID:       runID,
			StartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CompletedAt: now.Format(time.RFC3339),
			DurationMs:  elapsed.Milliseconds(),
			Outcome:     outcome,
		},
		Result: model.Result{
			Messages:    allMessages,
			Commands:    processed,
			Patch:       patch,
			ClientCount: e.model.Book().Len(),
		},
	}
}

func (e *Engine) patchFrom(initial []byte, initErr error, log *slog.Logger) []jsonpatch.Operation {
	empty := []jsonpatch.Operation{}
	if initErr != nil {
		log.Error("encode initial book", sl.Err(initErr))
		return empty
	}
	final, err := storage.Marshal(e.model.Book())
	if err != nil {
		log.Error("encode final book", sl.Err(err))
		return empty
	}
	patch, err := jsonpatch.DiffDocuments(initial, final)
	if err != nil {
		log.Error("diff books", sl.Err(err))
		return empty
	}
	if patch == nil {
		return empty
	}
	return patch
}

// ClientLines renders the displayed clients as "1. <client>" lines.
func (e *Engine) ClientLines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	clients := e.model.FilteredClients()
	lines := make([]string, len(clients))
	for i, c := range clients {
		lines[i] = strconv.Itoa(i+1) + ". " + c.String()
	}
	return lines
}

// ClientCount is the number of clients in the book, ignoring the filter.
func (e *Engine) ClientCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.model.Book().Len()
}
