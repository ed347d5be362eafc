// Command phrasplit splits text into paragraphs, sentences, and clauses
// while preserving exact source offsets.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/phrasplit/phrasplit/core/markup"
	"github.com/phrasplit/phrasplit/core/splitter"
	"github.com/phrasplit/phrasplit/internal/logging"
	"github.com/phrasplit/phrasplit/internal/server"
	"github.com/phrasplit/phrasplit/internal/textio"
)

const version = "0.1.0"

// CLI defines the command-line interface for phrasplit.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"json" enum:"json,text" help:"Log output format"`

	Sentences  SentencesCmd  `cmd:"" help:"Split text into sentences, one per line"`
	Clauses    ClausesCmd    `cmd:"" help:"Split text into clauses, one per line"`
	Paragraphs ParagraphsCmd `cmd:"" help:"Split text into paragraphs, one per line"`
	Longlines  LonglinesCmd  `cmd:"" help:"Re-wrap lines longer than a limit at linguistic boundaries"`
	Segments   SegmentsCmd   `cmd:"" help:"Split text into offset-annotated segments as JSON"`
	Validate   ValidateCmd   `cmd:"" help:"Check that no placeholder is split across segments"`
	Suggest    SuggestCmd    `cmd:"" help:"Suggest the finest splitting mode that keeps placeholders intact"`
	Serve      ServeCmd      `cmd:"" help:"Start the REST API server"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

// inputArgs holds the input/output options shared by splitting commands.
type inputArgs struct {
	Path   string `arg:"" optional:"" help:"Input file (.xz decompressed automatically); reads stdin when omitted"`
	XML    bool   `help:"Treat input as XML and split only its text content"`
	Output string `short:"o" help:"Output file (default stdout)"`
}

func (a inputArgs) read() (string, error) {
	var text string
	var err error
	if a.Path == "" {
		text, err = textio.ReadAll(os.Stdin)
	} else {
		text, err = textio.ReadFile(a.Path)
	}
	if err != nil {
		return "", err
	}
	if a.XML {
		return textio.ExtractText(strings.NewReader(text))
	}
	return text, nil
}

func (a inputArgs) writeLines(lines []string) error {
	if len(lines) == 0 {
		return textio.WriteFile(a.Output, nil)
	}
	return textio.WriteFile(a.Output, []byte(strings.Join(lines, "\n")+"\n"))
}

// SentencesCmd splits input into sentences.
type SentencesCmd struct {
	inputArgs
	Backend string `default:"auto" enum:"auto,fast,accurate" help:"Boundary detection backend"`
}

func (c *SentencesCmd) Run() error {
	text, err := c.read()
	if err != nil {
		return err
	}
	lines, err := splitter.SplitSentences(text, splitter.Backend(c.Backend))
	if err != nil {
		return err
	}
	return c.writeLines(lines)
}

// ClausesCmd splits input into clauses.
type ClausesCmd struct {
	inputArgs
	Backend string `default:"auto" enum:"auto,fast,accurate" help:"Boundary detection backend"`
}

func (c *ClausesCmd) Run() error {
	text, err := c.read()
	if err != nil {
		return err
	}
	lines, err := splitter.SplitClauses(text, splitter.Backend(c.Backend))
	if err != nil {
		return err
	}
	return c.writeLines(lines)
}

// ParagraphsCmd splits input into paragraphs.
type ParagraphsCmd struct {
	inputArgs
}

func (c *ParagraphsCmd) Run() error {
	text, err := c.read()
	if err != nil {
		return err
	}
	lines, err := splitter.SplitParagraphs(text)
	if err != nil {
		return err
	}
	return c.writeLines(lines)
}

// LonglinesCmd re-wraps long lines at sentence and clause boundaries.
type LonglinesCmd struct {
	inputArgs
	MaxLength int    `default:"80" help:"Maximum line length in characters"`
	Backend   string `default:"auto" enum:"auto,fast,accurate" help:"Boundary detection backend"`
}

func (c *LonglinesCmd) Run() error {
	text, err := c.read()
	if err != nil {
		return err
	}
	lines, err := splitter.SplitLongLines(text, c.MaxLength, splitter.Backend(c.Backend))
	if err != nil {
		return err
	}
	return c.writeLines(lines)
}

// SegmentsCmd emits offset-annotated segments as JSON.
type SegmentsCmd struct {
	inputArgs
	Mode     string `default:"sentence" enum:"paragraph,sentence,clause" help:"Splitting mode"`
	Backend  string `default:"auto" enum:"auto,fast,accurate" help:"Boundary detection backend"`
	MaxChars int    `name:"max-chars" default:"0" help:"Maximum segment length in characters (0 = unbounded)"`
}

func (c *SegmentsCmd) Run() error {
	text, err := c.read()
	if err != nil {
		return err
	}
	segs, err := splitter.Split(text, splitter.Options{
		Mode:     splitter.Mode(c.Mode),
		Backend:  splitter.Backend(c.Backend),
		MaxChars: c.MaxChars,
	})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(segs, "", "  ")
	if err != nil {
		return err
	}
	return textio.WriteFile(c.Output, append(data, '\n'))
}

// ValidateCmd checks a segmentation against a placeholder pattern.
type ValidateCmd struct {
	inputArgs
	Pattern  string `required:"" help:"Placeholder pattern: a named dialect (mustache, ssmd, ...) or a regular expression"`
	Mode     string `default:"sentence" enum:"paragraph,sentence,clause" help:"Splitting mode"`
	Backend  string `default:"auto" enum:"auto,fast,accurate" help:"Boundary detection backend"`
	MaxChars int    `name:"max-chars" default:"0" help:"Maximum segment length in characters (0 = unbounded)"`
}

func (c *ValidateCmd) Run() error {
	text, err := c.read()
	if err != nil {
		return err
	}
	segs, err := splitter.Split(text, splitter.Options{
		Mode:     splitter.Mode(c.Mode),
		Backend:  splitter.Backend(c.Backend),
		MaxChars: c.MaxChars,
	})
	if err != nil {
		return err
	}

	warnings, err := markup.ValidateNoPlaceholderBreaks(text, segs, resolvePattern(c.Pattern))
	if err != nil {
		return err
	}
	if len(warnings) == 0 {
		fmt.Println("ok: no placeholders split across segments")
		return nil
	}
	for _, w := range warnings {
		fmt.Println(w)
	}
	return fmt.Errorf("%d placeholder(s) split across segments", len(warnings))
}

// SuggestCmd suggests the finest splitting mode that keeps placeholders intact.
type SuggestCmd struct {
	inputArgs
	Pattern string `required:"" help:"Placeholder pattern: a named dialect (mustache, ssmd, ...) or a regular expression"`
}

func (c *SuggestCmd) Run() error {
	text, err := c.read()
	if err != nil {
		return err
	}
	mode, err := markup.SuggestSplittingMode(text, resolvePattern(c.Pattern))
	if err != nil {
		return err
	}
	fmt.Println(mode)
	return nil
}

// ServeCmd starts the REST API server.
type ServeCmd struct {
	Port      int `default:"8080" help:"Port to listen on"`
	CacheSize int `name:"cache-size" default:"256" help:"Maximum cached split results (0 disables caching)"`
}

func (c *ServeCmd) Run() error {
	return server.Start(server.Config{
		Port:      c.Port,
		CacheSize: c.CacheSize,
	})
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("phrasplit version %s\n", version)
	return nil
}

// resolvePattern maps a named markup dialect to its pattern; anything else
// is treated as a raw regular expression.
func resolvePattern(pattern string) string {
	if p, ok := markup.Patterns[pattern]; ok {
		return p
	}
	return pattern
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("phrasplit"),
		kong.Description("phrasplit - offset-preserving text segmentation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
