package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/diary/internal/client/apiclient"
	"github.com/dmitrijs2005/diary/internal/client/config"
	"github.com/dmitrijs2005/diary/internal/client/models"
	"github.com/dmitrijs2005/diary/internal/client/pagination"
	"github.com/dmitrijs2005/diary/internal/client/state"
	"github.com/dmitrijs2005/diary/internal/client/ui"
	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/logging"
	"github.com/dmitrijs2005/diary/internal/validation"
)

// entryGetter fetches a single entry that is not in the local list.
type entryGetter interface {
	Get(ctx context.Context, id string) (*models.Entry, error)
}

type App struct {
	config *config.Config
	logger logging.Logger
	api    entryGetter
	store  *state.Store
	pager  pagination.Pager
	prompt Prompter
	out    io.Writer
	width  func() int
}

func NewApp(c *config.Config, logger logging.Logger, out io.Writer, prompt Prompter) *App {
	api := apiclient.New(c.APIBaseURL, c.RequestTimeout)
	return &App{
		config: c,
		logger: logger,
		api:    api,
		store:  state.NewStore(api),
		pager:  pagination.New(0, c.PageSize),
		prompt: prompt,
		out:    out,
		width:  ui.Width,
	}
}

// Reload fetches the full entry list.
func (a *App) Reload(ctx context.Context) error {
	err := a.store.Load(ctx)
	snap := a.sync()
	if err != nil {
		ui.Status(a.out, snap)
		return err
	}
	a.logger.Debug(ctx, "entries loaded", "count", len(snap.Entries))
	return nil
}

// List prints page n of the local list, or the current page when n is 0.
// Pages out of range are ignored.
func (a *App) List(ctx context.Context, n int) error {
	snap := a.sync()
	if n != 0 {
		a.pager.SetPage(n)
	}
	ui.Status(a.out, snap)
	ui.List(a.out, snap.Entries, a.pager)
	return nil
}

// Turn moves delta pages forward or back and prints the page.
func (a *App) Turn(ctx context.Context, delta int) error {
	a.sync()
	a.pager.SetPage(a.pager.Current + delta)
	return a.List(ctx, 0)
}

func (a *App) Show(ctx context.Context, ref string) error {
	e, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}
	ui.Card(a.out, e, a.width())
	return nil
}

// New opens the form for a new entry.
func (a *App) New(ctx context.Context) error {
	return a.form(ctx, state.Draft{})
}

// Edit opens the form for the entry ref.
func (a *App) Edit(ctx context.Context, ref string) error {
	e, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}
	return a.form(ctx, state.Edit(e))
}

// CreateWith saves d without prompting.
func (a *App) CreateWith(ctx context.Context, d state.Draft) error {
	return a.submit(ctx, d)
}

// EditWith changes the supplied fields of entry ref without prompting.
func (a *App) EditWith(ctx context.Context, ref string, topic, body *string) error {
	e, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}
	if topic != nil {
		e.Topic = *topic
	}
	if body != nil {
		e.Body = *body
	}
	return a.submit(ctx, state.Edit(e))
}

// Delete removes entry ref, asking first unless confirmed is set.
func (a *App) Delete(ctx context.Context, ref string, confirmed bool) error {
	e, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}

	if !confirmed {
		answer, err := a.prompt.Ask(ui.Confirm(e), "")
		if err != nil {
			return a.cancelled(err)
		}
		if ans := strings.ToLower(strings.TrimSpace(answer)); ans != "y" && ans != "yes" {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
	}

	if err := a.store.Delete(ctx, e.ID); err != nil {
		ui.Status(a.out, a.store.Snapshot())
		return err
	}
	a.sync()
	fmt.Fprintf(a.out, "Deleted %q.\n", e.Topic)
	return nil
}

// form asks for topic and body until the input passes validation or the
// user aborts.
func (a *App) form(ctx context.Context, f state.Form) error {
	for {
		ui.FormHeader(a.out, f)
		d := draftOf(f)

		topic, err := a.prompt.Ask(ui.FieldPrompt(validation.TopicRule, d.Topic)+": ", d.Topic)
		if err != nil {
			return a.cancelled(err)
		}
		body, err := a.prompt.Ask(ui.FieldPrompt(validation.BodyRule, d.Body)+": ", d.Body)
		if err != nil {
			return a.cancelled(err)
		}

		f = withDraft(f, state.Draft{Topic: topic, Body: body})
		if err := a.submit(ctx, f); !errors.Is(err, common.ErrorValidation) {
			return err
		}
	}
}

func (a *App) submit(ctx context.Context, f state.Form) error {
	e, err := a.store.Submit(ctx, f)

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		fmt.Fprintln(a.out, "Please fix the following:")
		ui.FieldErrors(a.out, verr)
		return err
	case err != nil:
		ui.Status(a.out, a.store.Snapshot())
		return err
	}

	a.sync()
	fmt.Fprintln(a.out, "Saved.")
	ui.Card(a.out, *e, a.width())
	return nil
}

// resolve finds an entry by its number in the list, by id in the local
// list, or asks the API for it.
func (a *App) resolve(ctx context.Context, ref string) (models.Entry, error) {
	snap := a.store.Snapshot()
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(snap.Entries) {
		return snap.Entries[n-1], nil
	}
	for _, e := range snap.Entries {
		if e.ID == ref {
			return e, nil
		}
	}

	e, err := a.api.Get(ctx, ref)
	if err != nil {
		fmt.Fprintf(a.out, "! %s\n", apiclient.Message(err))
		return models.Entry{}, err
	}
	return *e, nil
}

// sync keeps the pager in step with the store.
func (a *App) sync() state.Snapshot {
	snap := a.store.Snapshot()
	a.pager.TotalItems = len(snap.Entries)
	a.pager.Clamp()
	return snap
}

func (a *App) cancelled(err error) error {
	if isAbort(err) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	return err
}

func draftOf(f state.Form) state.Draft {
	switch f := f.(type) {
	case state.Saved:
		return f.Draft()
	case state.Draft:
		return f
	}
	return state.Draft{}
}

func withDraft(f state.Form, d state.Draft) state.Form {
	switch f := f.(type) {
	case state.Saved:
		f.Entry.Topic, f.Entry.Body = d.Topic, d.Body
		return f
	default:
		return d
	}
}
