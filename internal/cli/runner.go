package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Makepad-fr/datenight/internal/api"
	"github.com/Makepad-fr/datenight/internal/client"
	"github.com/Makepad-fr/datenight/internal/config"
	"github.com/Makepad-fr/datenight/internal/export/xlsx"
	"github.com/Makepad-fr/datenight/internal/model"
	"github.com/Makepad-fr/datenight/internal/server"
	"github.com/Makepad-fr/datenight/internal/store/jsonstore"
	"github.com/Makepad-fr/datenight/internal/tui"
	"github.com/Makepad-fr/datenight/internal/ui"
	"github.com/Makepad-fr/datenight/internal/view"
)

// Options carry what the root command resolved.
type Options struct {
	Ctx    context.Context
	Config *config.Config
	Log    *slog.Logger

	In       io.Reader
	Out, Err io.Writer
}

func (o *Options) defaults() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Log == nil {
		o.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Err)
		return 2
	}
	cmd, a := args[0], args[1:]

	r := &runner{opt: opt}
	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0
	case "ls":
		return r.list(a)
	case "random":
		return r.random(a)
	case "add":
		return r.add(a)
	case "update":
		return r.update(a)
	case "rm":
		return r.remove(a)
	case "reset":
		return r.reset(a)
	case "tui":
		return r.tui(a)
	case "serve":
		return r.serve(a)
	case "export":
		return r.export(a)
	case "import":
		return r.importIdeas(a)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `datenight - date night ideas from the terminal

Usage:
  datenight [root flags] <subcommand> [args]

Subcommands:
  ls                          List every idea
  random [budget]             Suggest one idea (Free, Cheap, Moderate, Expensive)
  add [title...] [flags]      Add an idea (--title --description --budget --location)
  update <id> [flags]         Update an idea; only the given flags change
  rm <id> [--yes]             Delete an idea after confirmation
  reset                       Make every idea suggestible again
  tui                         Open the interactive screen
  serve [--addr :9090]        Run the in-memory backend
  export <file.json|.xlsx>    Write every idea to a file
  import <file.json>          Add every idea from a JSON file

Root flags:
  --config <file>     YAML config file (or DATENIGHT_CONFIG)
  --api-url <url>     Backend base URL
  --theme <name>      classic, neon or mono
  --log-level <lvl>   debug, info, warn or error
  --log-file <path>   Write diagnostic logs to a file

Examples:
  datenight ls
  datenight random cheap
  datenight add "Picnic" --budget Free --location Park
  datenight rm 3 --yes
`)
}

// runner holds one invocation's state.
type runner struct {
	opt Options
	ctl *client.Controller
	be  *api.Client
}

func (r *runner) backend() *api.Client {
	if r.be == nil {
		httpClient := &http.Client{Timeout: r.opt.Config.Timeout}
		r.be = api.New(r.opt.Config.APIURL, api.WithHTTPClient(httpClient), api.WithLogger(r.opt.Log))
	}
	return r.be
}

func (r *runner) controller() *client.Controller {
	if r.ctl == nil {
		r.ctl = client.New(r.backend(), r.opt.Log)
	}
	return r.ctl
}

func (r *runner) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(r.opt.Err)
	return fs
}

// parse parses a into fs. A non-negative code means the command is done.
func (r *runner) parse(fs *pflag.FlagSet, a []string) int {
	if err := fs.Parse(a); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		ui.Fail(r.opt.Err, fs.Name()+": "+err.Error())
		return 2
	}
	return -1
}

func (r *runner) usage(msg string) int {
	ui.Fail(r.opt.Err, "usage: datenight "+msg)
	return 2
}

// -------------- subcommand impls ----------------

func (r *runner) list(a []string) int {
	if len(a) != 0 {
		return r.usage("ls")
	}
	ctl := r.controller()
	if err := ctl.LoadAll(r.opt.Ctx); err != nil {
		ui.Fail(r.opt.Err, ctl.Message())
		return 1
	}
	r.printCards(fmt.Sprintf("Date Night Ideas (%d)", len(ctl.Ideas())), ctl.Cards())
	return 0
}

func (r *runner) random(a []string) int {
	if len(a) > 1 {
		return r.usage("random [budget]")
	}
	budget := r.opt.Config.Budget
	if len(a) == 1 {
		budget = model.NormalizeBudget(a[0])
	}
	ctl := r.controller()
	if err := ctl.LoadRandom(r.opt.Ctx, budget); err != nil {
		ui.Fail(r.opt.Err, ctl.Message())
		return 1
	}
	if len(ctl.Ideas()) == 0 {
		ui.Hint(r.opt.Out, ctl.Message())
		return 0
	}
	r.printCards("Random Idea ("+budget+")", ctl.Cards())
	return 0
}

// formFlags binds the four form fields to fs.
type formFlags struct {
	title, description, budget, location string
}

func (f *formFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.title, "title", "t", "", "idea title")
	fs.StringVarP(&f.description, "description", "d", "", "what you'll do")
	fs.StringVarP(&f.budget, "budget", "b", "", "Free, Cheap, Moderate or Expensive")
	fs.StringVarP(&f.location, "location", "l", "", "where")
}

// apply copies the flags the user set onto form.
func (f *formFlags) apply(fs *pflag.FlagSet, form client.Form) client.Form {
	if fs.Changed("title") {
		form.Title = f.title
	}
	if fs.Changed("description") {
		form.Description = f.description
	}
	if fs.Changed("budget") {
		form.Budget = model.NormalizeBudget(f.budget)
	}
	if fs.Changed("location") {
		form.Location = f.location
	}
	return form
}

func (r *runner) add(a []string) int {
	var ff formFlags
	fs := r.flagSet("add")
	ff.bind(fs)
	if code := r.parse(fs, a); code >= 0 {
		return code
	}
	form := ff.apply(fs, client.Form{})
	if rest := fs.Args(); len(rest) > 0 && !fs.Changed("title") {
		form.Title = strings.Join(rest, " ")
	}

	ctl := r.controller()
	ctl.OpenForCreate()
	ctl.SetForm(form)
	return r.submit(ctl, "add <title...> [--description d] [--budget b] [--location l]")
}

func (r *runner) update(a []string) int {
	var ff formFlags
	fs := r.flagSet("update")
	ff.bind(fs)
	if code := r.parse(fs, a); code >= 0 {
		return code
	}
	if fs.NArg() != 1 {
		return r.usage("update <id> [--title t] [--description d] [--budget b] [--location l]")
	}
	id, ok := r.parseID("update", fs.Arg(0))
	if !ok {
		return 2
	}

	ctl := r.controller()
	if err := ctl.LoadAll(r.opt.Ctx); err != nil {
		ui.Fail(r.opt.Err, ctl.Message())
		return 1
	}
	idea, found := findIdea(ctl.Ideas(), id)
	if !found {
		ui.Fail(r.opt.Err, fmt.Sprintf("no idea with id %d", id))
		ui.Hint(r.opt.Err, "Hint: run `datenight ls` to see valid ids")
		return 1
	}
	ctl.OpenForEdit(idea)
	ctl.SetForm(ff.apply(fs, ctl.Form()))
	return r.submit(ctl, "update <id> --title <title>")
}

func (r *runner) submit(ctl *client.Controller, usage string) int {
	err := ctl.Submit(r.opt.Ctx)
	switch {
	case errors.Is(err, client.ErrTitleRequired):
		ui.Fail(r.opt.Err, ctl.Message())
		return r.usage(usage)
	case err != nil:
		ui.Fail(r.opt.Err, view.MsgSaveFailed)
		return 1
	}
	return r.done(ctl)
}

// done reports a successful mutation. The reload that follows it can still
// fail, which replaces the status message.
func (r *runner) done(ctl *client.Controller) int {
	if msg := ctl.Message(); msg == view.MsgLoadFailed {
		ui.Fail(r.opt.Err, msg)
		return 1
	}
	ui.OK(r.opt.Out, ctl.Message())
	return 0
}

func (r *runner) remove(a []string) int {
	var yes bool
	fs := r.flagSet("rm")
	fs.BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	if code := r.parse(fs, a); code >= 0 {
		return code
	}
	if fs.NArg() != 1 {
		return r.usage("rm <id> [--yes]")
	}
	id, ok := r.parseID("rm", fs.Arg(0))
	if !ok {
		return 2
	}

	confirm := r.prompt
	if yes {
		confirm = func(string) bool { return true }
	}
	ctl := r.controller()
	err := ctl.Delete(r.opt.Ctx, id, confirm)
	switch {
	case errors.Is(err, client.ErrDeleteCancelled):
		ui.Hint(r.opt.Out, "cancelled")
		return 0
	case err != nil:
		ui.Fail(r.opt.Err, ctl.Message())
		return 1
	}
	return r.done(ctl)
}

// prompt asks question on Out and reads a y/N answer from In.
func (r *runner) prompt(question string) bool {
	fmt.Fprintf(r.opt.Out, "%s [y/N] ", question)
	answer, err := bufio.NewReader(r.opt.In).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(r.opt.Out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func (r *runner) reset(a []string) int {
	if len(a) != 0 {
		return r.usage("reset")
	}
	ctl := r.controller()
	if err := ctl.Reset(r.opt.Ctx); err != nil {
		ui.Fail(r.opt.Err, ctl.Message())
		return 1
	}
	return r.done(ctl)
}

func (r *runner) tui(a []string) int {
	if len(a) != 0 {
		return r.usage("tui")
	}
	if err := tui.Run(r.opt.Ctx, r.controller(), r.opt.Config.Budget); err != nil {
		ui.Fail(r.opt.Err, "tui: "+err.Error())
		return 1
	}
	return 0
}

func (r *runner) serve(a []string) int {
	addr := r.opt.Config.ServeAddr
	fs := r.flagSet("serve")
	fs.StringVar(&addr, "addr", addr, "listen address")
	if code := r.parse(fs, a); code >= 0 {
		return code
	}
	if fs.NArg() != 0 {
		return r.usage("serve [--addr :9090]")
	}

	srv := server.New(server.NewStore(server.DefaultSeed()), r.opt.Log)
	ui.OK(r.opt.Out, "serving on "+addr+server.BasePath)
	if err := srv.Run(r.opt.Ctx, addr); err != nil {
		ui.Fail(r.opt.Err, "serve: "+err.Error())
		return 1
	}
	return 0
}

func (r *runner) export(a []string) int {
	if len(a) != 1 {
		return r.usage("export <file.json|file.xlsx>")
	}
	path := a[0]
	ctl := r.controller()
	if err := ctl.LoadAll(r.opt.Ctx); err != nil {
		ui.Fail(r.opt.Err, ctl.Message())
		return 1
	}
	ideas := ctl.Ideas()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		err = xlsx.Write(path, ideas)
	case ".json":
		err = jsonstore.Save(path, ideas)
	default:
		ui.Fail(r.opt.Err, "export: unsupported file type "+filepath.Ext(path))
		return 2
	}
	if err != nil {
		ui.Fail(r.opt.Err, "export: "+err.Error())
		return 1
	}
	ui.OK(r.opt.Out, fmt.Sprintf("exported %d ideas to %s", len(ideas), path))
	return 0
}

func (r *runner) importIdeas(a []string) int {
	if len(a) != 1 {
		return r.usage("import <file.json>")
	}
	ideas, err := jsonstore.Load(a[0])
	if err != nil {
		ui.Fail(r.opt.Err, "import: "+err.Error())
		return 1
	}
	be := r.backend()
	added := 0
	for _, idea := range ideas {
		if idea.Title == "" {
			ui.Fail(r.opt.Err, fmt.Sprintf("import: idea #%d has no title", idea.ID))
			break
		}
		if err := be.AddIdea(r.opt.Ctx, idea.Input()); err != nil {
			r.opt.Log.Warn("import failed", "title", idea.Title, "err", err)
			ui.Fail(r.opt.Err, fmt.Sprintf("import: %s: %s", idea.Title, view.MsgSaveFailed))
			break
		}
		added++
	}
	if added < len(ideas) {
		ui.Hint(r.opt.Err, fmt.Sprintf("imported %d of %d ideas", added, len(ideas)))
		return 1
	}
	ui.OK(r.opt.Out, fmt.Sprintf("imported %d ideas", added))
	return 0
}

// -------------- helpers --------------

func (r *runner) parseID(cmd, s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		ui.Fail(r.opt.Err, cmd+": not an id: "+s)
		return 0, false
	}
	return id, true
}

func findIdea(ideas []model.Idea, id int64) (model.Idea, bool) {
	for _, idea := range ideas {
		if idea.ID == id {
			return idea, true
		}
	}
	return model.Idea{}, false
}

func (r *runner) printCards(header string, cards []view.Card) {
	t := ui.Current()
	lines := []string{t.Title.Render(header), ""}
	if len(cards) == 0 {
		lines = append(lines, t.Muted.Render("no ideas"))
	}
	for i, c := range cards {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, ui.CardLines(c, 76)...)
	}
	ui.Panel(r.opt.Out, lines)
}
