package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fzft/go-resp/deps/linenoise"
	"github.com/fzft/go-resp/log"
	"github.com/fzft/go-resp/resp"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"go.uber.org/zap"
)

var (
	RespCliVersion = "1.0.0"

	RespCliHisFileEnv     = "RESPCLI_HISTFILE"
	RespCliHisFileDefault = ".respcli_history"
)

// ErrInvalidFrame is returned when the input holds something that does not
// decode as RESP.
var ErrInvalidFrame = errors.New("invalid frame")

type OutputMode uint8

const (
	OutputStandard OutputMode = iota
	OutputRaw
	OutputJson
)

type RespCliCfg struct {
	interactive bool
	output      OutputMode
	escapes     bool
	showPushes  bool
	historyFile string
	width       int // elide payloads beyond this many columns, 0 for no limit
	prompt      string
}

type RespCli struct {
	config *RespCliCfg

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	gitSHA1  string
	gitDirty string
}

func NewRespCli(in io.Reader, out, errOut io.Writer) *RespCli {
	return &RespCli{
		in:       in,
		out:      out,
		errOut:   errOut,
		gitSHA1:  "unknown",
		gitDirty: "unknown",
	}
}

// BuildInfo records the git revision the binary was built from.
func (cli *RespCli) BuildInfo(gitSHA1, gitDirty string) {
	cli.gitSHA1 = gitSHA1
	cli.gitDirty = gitDirty
}

func (cli *RespCli) Version() string {
	version := RespCliVersion
	// Add git commit and working tree status when available
	if sha1Int, err := strconv.ParseInt(cli.gitSHA1, 16, 64); err == nil && sha1Int != 0 {
		version = fmt.Sprintf("%s (git:%s", version, cli.gitSHA1)
		if dirtyInt, err := strconv.ParseInt(cli.gitDirty, 10, 64); err == nil && dirtyInt != 0 {
			version = fmt.Sprintf("%s-dirty", version)
		}
		version = fmt.Sprintf("%s)", version)
	}

	return version
}

func (cli *RespCli) Usage(err bool) {
	var out io.Writer
	if err {
		out = cli.errOut
	} else {
		out = cli.out
	}

	fmt.Fprintf(out, `resp-inspect %s

Usage: resp-inspect [OPTIONS] [--] [frame ...]
  Decodes RESP2/RESP3 frames and prints the decoded values.
  Frames are taken from the arguments (joined with spaces), from stdin when
  it is not a terminal, or typed at an interactive prompt.

  --raw              Use raw formatting for values (default when STDOUT is
                     not a tty).
  --no-raw           Force formatted output even when STDOUT is not a tty.
  --json             Output in JSON format.
  --escapes          Expand \r \n \t \\ \" and \xHH in the input (default for
                     arguments and the prompt).
  --no-escapes       Take the input verbatim (default for piped stdin).
  --show-pushes <yn> Whether to print RESP3 PUSH messages (default: yes).
  --help             Output this help and exit.
  --version          Output version and exit.

  A frame starting with '-' must follow "--".
  History is kept in $%s or ~/%s.
`, cli.Version(), RespCliHisFileEnv, RespCliHisFileDefault)
}

// Run parses args and then decodes the frames found in the arguments,
// in piped stdin, or interactively.
func (cli *RespCli) Run(args []string) error {
	config := &RespCliCfg{}
	config.showPushes = true
	config.prompt = "resp> "
	cli.config = config

	var (
		raw, noRaw, json   bool
		escapes, noEscapes bool
		showPushes         string
		help, version      bool
	)
	stdinTTY, stdoutTTY := isTerminal(cli.in), isTerminal(cli.out)

	fs := flag.NewFlagSet("resp-inspect", flag.ContinueOnError)
	fs.SetOutput(cli.errOut)
	fs.Usage = func() { cli.Usage(true) }
	fs.BoolVar(&raw, "raw", false, "")
	fs.BoolVar(&noRaw, "no-raw", false, "")
	fs.BoolVar(&json, "json", false, "")
	fs.BoolVar(&escapes, "escapes", false, "")
	fs.BoolVar(&noEscapes, "no-escapes", false, "")
	fs.StringVar(&showPushes, "show-pushes", "yes", "")
	fs.BoolVar(&help, "help", false, "")
	fs.BoolVar(&version, "version", false, "")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	isSet := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { isSet[f.Name] = true })

	if help {
		cli.Usage(false)
		return nil
	}
	if version {
		fmt.Fprintf(cli.out, "resp-inspect %s\n", cli.Version())
		return nil
	}

	switch strings.ToLower(showPushes) {
	case "yes", "y":
		config.showPushes = true
	case "no", "n":
		config.showPushes = false
	default:
		return fmt.Errorf("invalid --show-pushes value %q, expected yes or no", showPushes)
	}

	switch {
	case json:
		config.output = OutputJson
	case raw:
		config.output = OutputRaw
	case noRaw || stdoutTTY:
		config.output = OutputStandard
	default:
		config.output = OutputRaw
	}

	if config.output == OutputStandard && stdoutTTY {
		if f, ok := cli.out.(*os.File); ok {
			config.width = terminalWidth(int(f.Fd()))
		}
	}

	piped := fs.NArg() == 0 && !stdinTTY
	config.escapes = !piped
	if isSet["escapes"] || isSet["no-escapes"] {
		config.escapes = escapes && !noEscapes
	}

	if fs.NArg() > 0 {
		return cli.runFrame(strings.Join(fs.Args(), " "))
	}
	if piped {
		input, err := io.ReadAll(cli.in)
		if err != nil {
			log.Logger.Error("read stdin", zap.Error(err))
			return fmt.Errorf("read stdin: %w", err)
		}
		return cli.runFrame(string(input))
	}

	config.interactive = true
	config.historyFile = getDotfilePath(RespCliHisFileEnv, RespCliHisFileDefault)
	return cli.repl()
}

func (cli *RespCli) runFrame(input string) error {
	if cli.config.escapes {
		unescaped, err := unescape(input)
		if err != nil {
			fmt.Fprintf(cli.errOut, "Invalid argument(s): %s\n", err)
			return err
		}
		input = unescaped
	}
	return cli.process(input)
}

// process decodes and prints every frame in input, stopping at the first
// one that does not decode.
func (cli *RespCli) process(input string) error {
	if strings.TrimSpace(input) == "" {
		fmt.Fprintf(cli.errOut, "(error) invalid frame at offset 0\n")
		return fmt.Errorf("offset 0: %w", ErrInvalidFrame)
	}

	offset := 0
	for offset < len(input) && strings.TrimSpace(input[offset:]) != "" {
		v, n, ok := resp.ParsePrefix(input[offset:])
		if !ok {
			log.Logger.Debug("frame rejected", zap.Int("offset", offset), zap.Int("remaining", len(input)-offset))
			fmt.Fprintf(cli.errOut, "(error) invalid frame at offset %d\n", offset)
			return fmt.Errorf("offset %d: %w", offset, ErrInvalidFrame)
		}
		log.Logger.Debug("frame decoded", zap.Int("offset", offset), zap.Int("size", n), zap.Stringer("type", v.Type()))
		if err := cli.printValue(v); err != nil {
			log.Logger.Error("write output", zap.Error(err))
			return err
		}
		offset += n
	}
	return nil
}

func (cli *RespCli) printValue(v resp.Value) error {
	if _, ok := v.(resp.Push); ok && !cli.config.showPushes {
		return nil
	}

	switch cli.config.output {
	case OutputRaw:
		return resp.FprintRaw(cli.out, v)
	case OutputJson:
		return resp.FprintJSON(cli.out, v)
	default:
		return resp.Printer{MaxWidth: cli.config.width}.Fprint(cli.out, v)
	}
}

func (cli *RespCli) repl() error {
	var (
		history     bool
		historyFile = cli.config.historyFile
	)

	line := linenoise.New()
	defer line.Close()

	// keep in-memory history always regardless if history file can be determined
	history = true
	if historyFile != "" {
		if err := line.HistoryLoad(historyFile); err != nil && !os.IsNotExist(err) {
			log.Logger.Warn("load history", zap.String("file", historyFile), zap.Error(err))
		}
	}

	for {
		input, err := line.Prompt(cli.config.prompt)
		if err != nil {
			if err != io.EOF && err != liner.ErrPromptAborted {
				log.Logger.Error("read prompt", zap.Error(err))
				return err
			}
			return nil
		}

		argv := strings.Fields(input)
		if len(argv) == 0 {
			continue
		}

		if history {
			line.AppendHistory(input)
		}
		if historyFile != "" {
			if err := line.HistorySave(historyFile); err != nil {
				log.Logger.Warn("save history", zap.String("file", historyFile), zap.Error(err))
			}
		}

		if len(argv) == 1 && (strings.EqualFold(argv[0], "quit") || strings.EqualFold(argv[0], "exit")) {
			return nil
		} else if len(argv) == 1 && strings.EqualFold(argv[0], "clear") {
			line.ClearScreen()
			continue
		}

		// The error has been reported; the session goes on.
		_ = cli.runFrame(input)
	}
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func getDotfilePath(envOverride, dotFilename string) string {
	var dotPath string

	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		dotPath = path
	} else {
		home := os.Getenv("HOME")
		if home != "" {
			dotPath = fmt.Sprintf("%s/%s", home, dotFilename)
		}
	}
	return dotPath
}
