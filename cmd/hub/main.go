// Command hub is the admin front end for the content store: add and delete
// items, import/export bundles, and render page projections to stdout.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	hub "github.com/deltahub/go-hub"
	"github.com/deltahub/go-hub/commands"
	"github.com/deltahub/go-hub/content"
	"github.com/deltahub/go-hub/internal/logging"
	"github.com/deltahub/go-hub/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("hub %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: hub <command> [flags]

commands:
  add-news      add a news item
  add-workshop  schedule a workshop
  delete-news   delete a news item by id
  import        import a JSON bundle
  export        export every collection as JSON
  render        print a page projection`)
}

func run(command string, args []string) error {
	switch command {
	case "add-news":
		return runAddNews(args)
	case "add-workshop":
		return runAddWorkshop(args)
	case "delete-news":
		return runDeleteNews(args)
	case "import":
		return runImport(args)
	case "export":
		return runExport(args)
	case "render":
		return runRender(args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// commonFlags registers the wiring flags every subcommand shares.
func commonFlags(fs *flag.FlagSet) (baseURL, dsn, level *string) {
	baseURL = fs.String("base-url", "", "Remote root for seed JSON and markdown (empty: local storage only)")
	dsn = fs.String("dsn", "hub.db", "SQLite DSN for durable storage")
	level = fs.String("log-level", "warn", "Log level (trace..fatal, empty disables logging)")
	return baseURL, dsn, level
}

func loadHub(ctx context.Context, baseURL, dsn, level string, opts ...hub.Option) (*hub.Hub, error) {
	cfg := hub.DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Storage.DSN = dsn
	cfg.Logging.Level = level
	cfg.Logging.Format = "console"

	h, err := hub.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := h.Load(ctx); err != nil {
		h.Close()
		return nil, err
	}
	return h, nil
}

func runAddNews(args []string) error {
	fs := flag.NewFlagSet("add-news", flag.ExitOnError)
	baseURL, dsn, level := commonFlags(fs)
	title := fs.String("title", "", "News title (required)")
	body := fs.String("content", "", "News body text")
	file := fs.String("content-file", "", "Markdown file reference used instead of inline content")
	author := fs.String("author", "", "Author name")
	date := fs.String("date", "", "Publication date YYYY-MM-DD (default: today)")
	mediaType := fs.String("media-type", "", "Attached media type: image or video")
	mediaURL := fs.String("media-url", "", "Attached media URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	h, err := loadHub(ctx, *baseURL, *dsn, *level)
	if err != nil {
		return err
	}
	defer h.Close()

	handler := commands.NewAddNewsHandler(h.Store(), logging.NoOp())
	if err := handler.Execute(ctx, commands.AddNewsCommand{
		Title:       *title,
		Content:     *body,
		ContentFile: *file,
		Author:      *author,
		Date:        *date,
		MediaType:   *mediaType,
		MediaURL:    *mediaURL,
	}); err != nil {
		return err
	}

	fmt.Printf("added news item %q\n", *title)
	return nil
}

func runAddWorkshop(args []string) error {
	fs := flag.NewFlagSet("add-workshop", flag.ExitOnError)
	baseURL, dsn, level := commonFlags(fs)
	title := fs.String("title", "", "Workshop title (required)")
	date := fs.String("date", "", "Workshop date YYYY-MM-DD (required)")
	location := fs.String("location", "", "Workshop location")
	description := fs.String("description", "", "Workshop description")
	registration := fs.String("registration-link", "", "Registration URL")
	materials := fs.String("materials-link", "", "Materials URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	h, err := loadHub(ctx, *baseURL, *dsn, *level)
	if err != nil {
		return err
	}
	defer h.Close()

	handler := commands.NewAddWorkshopHandler(h.Store(), logging.NoOp())
	if err := handler.Execute(ctx, commands.AddWorkshopCommand{
		Title:            *title,
		Date:             *date,
		Location:         *location,
		Description:      *description,
		RegistrationLink: *registration,
		MaterialsLink:    *materials,
	}); err != nil {
		return err
	}

	fmt.Printf("added workshop %q on %s\n", *title, *date)
	return nil
}

func runDeleteNews(args []string) error {
	fs := flag.NewFlagSet("delete-news", flag.ExitOnError)
	baseURL, dsn, level := commonFlags(fs)
	id := fs.String("id", "", "News item id (required)")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	h, err := loadHub(ctx, *baseURL, *dsn, *level, hub.WithNotifier(printNotifier{}))
	if err != nil {
		return err
	}
	defer h.Close()

	if !*yes && !confirm(fmt.Sprintf("delete news item %s?", *id)) {
		fmt.Println("aborted")
		return nil
	}

	handler := commands.NewDeleteNewsHandler(h.Store(), logging.NoOp())
	if err := handler.Execute(ctx, commands.DeleteNewsCommand{ID: content.ID(*id)}); err != nil {
		return err
	}

	fmt.Printf("deleted news item %s\n", *id)
	return nil
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	baseURL, dsn, level := commonFlags(fs)
	file := fs.String("file", "", "Bundle file to import (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	payload, err := os.ReadFile(*file)
	if err != nil {
		return err
	}

	ctx := context.Background()
	h, err := loadHub(ctx, *baseURL, *dsn, *level)
	if err != nil {
		return err
	}
	defer h.Close()

	handler := commands.NewImportBundleHandler(h.Store(), logging.NoOp())
	if err := handler.Execute(ctx, commands.ImportBundleCommand{Payload: payload}); err != nil {
		return err
	}

	fmt.Printf("imported %s\n", *file)
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	baseURL, dsn, level := commonFlags(fs)
	out := fs.String("out", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	h, err := loadHub(ctx, *baseURL, *dsn, *level)
	if err != nil {
		return err
	}
	defer h.Close()

	data, err := h.Store().Export()
	if err != nil {
		return err
	}
	if *out == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(*out, data, 0o644)
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	baseURL, dsn, level := commonFlags(fs)
	page := fs.String("page", "news", "Page to render: news, latest, workshops, research, partners, dashboard, homepage")
	station := fs.String("station", "", "Station id for the dashboard page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	h, err := loadHub(ctx, *baseURL, *dsn, *level)
	if err != nil {
		return err
	}
	defer h.Close()

	switch *page {
	case "latest":
		for _, card := range h.LatestNews().Items {
			fmt.Printf("%s  %s\n    %s\n", card.Date, card.Title, card.Excerpt)
		}
	case "news":
		for _, card := range h.NewsPage().Items {
			fmt.Printf("%s  %s (%s)\n%s\n\n", card.Date, card.Title, card.Author, card.HTML)
		}
	case "workshops":
		view := h.WorkshopsPage()
		fmt.Println("upcoming:")
		for _, card := range view.Upcoming {
			fmt.Printf("  %s  %s\n", card.Date, card.Title)
		}
		fmt.Println("past:")
		for _, card := range view.Past {
			fmt.Printf("  %s  %s\n", card.Date, card.Title)
		}
	case "research":
		for _, card := range h.ResearchPage().Items {
			fmt.Printf("[%s] %s (%s)\n", card.Badge, card.Title, card.Date)
		}
	case "partners":
		for _, member := range h.PartnersPage().Members {
			fmt.Printf("%s  %s %s\n", member.Name, member.Role, member.Country)
		}
	case "dashboard":
		view := h.Dashboard(content.ID(*station))
		fmt.Printf("news=%d upcoming_workshops=%d research=%d team=%d\n",
			view.NewsCount, view.UpcomingWorkshopCount, view.ResearchCount, view.TeamCount)
		if view.Selected != nil {
			fmt.Printf("station %s (%s): %d samples\n",
				view.Selected.Name, view.Selected.Unit, len(view.Selected.Samples))
		}
	case "homepage":
		for _, article := range h.HomepageNews(ctx) {
			fmt.Printf("%s  %s\n", article.Date, article.Title)
		}
	default:
		return fmt.Errorf("unknown page %q", *page)
	}
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// printNotifier writes deletion events to stdout so an operator can forward
// them to the repository sync tooling.
type printNotifier struct{}

func (printNotifier) NotifyDeletion(_ context.Context, event store.DeletionEvent) {
	fmt.Printf("deletion event %s: id=%s title=%q content_file=%q\n",
		event.EventID, event.ID, event.Title, event.ContentFile)
}
