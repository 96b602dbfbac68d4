package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/jcgregorio/slog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xiam/infix/ast"
	"github.com/xiam/infix/internal/config"
	"github.com/xiam/infix/internal/diag"
	"github.com/xiam/infix/lexer"
	"github.com/xiam/infix/parser"
)

// reportedError is an error that was already shown to the user.
type reportedError struct {
	err error
}

func (r reportedError) Error() string {
	return r.err.Error()
}

func (r reportedError) Unwrap() error {
	return r.err
}

// rootEnv provides the environment for the root command.
type rootEnv struct {
	flagConfig  string
	flagEcho    bool
	flagTokens  bool
	flagTrace   bool
	flagOutput  string
	flagNoColor bool
	flagQuiet   bool
}

// NewRootCmd returns the definition of the infix command.
func NewRootCmd() *cobra.Command {
	env := &rootEnv{}

	ret := &cobra.Command{
		Use:   "infix <file>",
		Short: "Tokenize and parse an infix source file",
		Long: `
infix reads the source file named by its only argument, splits it into tokens
and parses every top-level expression into a declaration. Declarations are
printed to stdout. The first syntax error stops the run and exits with a
non-zero status.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          env.runRootCmd,
	}

	flags := ret.Flags()
	flags.StringVarP(&env.flagConfig, "config", "c", "", "Config file (.yaml, .yml or .toml)")
	flags.BoolVar(&env.flagEcho, "echo", false, "Print the source text to stdout before parsing")
	flags.BoolVarP(&env.flagTokens, "tokens", "t", false, "Dump every token to stderr")
	flags.BoolVar(&env.flagTrace, "trace", false, "Log every consumed token and produced node")
	flags.StringVarP(&env.flagOutput, "output", "o", config.OutputEncode, "Output format: encode, tree, source or dump")
	flags.BoolVar(&env.flagNoColor, "no-color", false, "Disable colored diagnostics")
	flags.BoolVarP(&env.flagQuiet, "quiet", "q", false, "Disable logging")

	ret.AddCommand(getVersionCmd())

	return ret
}

// Execute runs the infix command with the process arguments.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.As(err, &reportedError{}) {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// loadConfig merges the config file, if any, with the flags that were set
// explicitly.
func (r *rootEnv) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	conf := config.Default()
	if r.flagConfig != "" {
		var err error
		if conf, err = config.Load(r.flagConfig); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("echo") {
		conf.Echo = r.flagEcho
	}
	if flags.Changed("tokens") {
		conf.Tokens = r.flagTokens
	}
	if flags.Changed("trace") {
		conf.Trace = r.flagTrace
	}
	if flags.Changed("output") {
		conf.Output = r.flagOutput
	}
	if flags.Changed("no-color") {
		conf.Color = !r.flagNoColor
	}
	if flags.Changed("quiet") {
		conf.Quiet = r.flagQuiet
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// runRootCmd implements the lex, parse and report pipeline.
func (r *rootEnv) runRootCmd(cmd *cobra.Command, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	conf, err := r.loadConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	log := newLogger(stderr, conf.Quiet)
	printer := diag.NewPrinter(stderr, conf.Color)

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "reading source %q", path)
		printer.Report(path, "", err)
		return reportedError{err: err}
	}
	src := string(content)

	if conf.Echo {
		fmt.Fprint(stdout, src)
	}

	log.Infof("Lexing %s (%d bytes)", path, len(content))
	tokens := lexer.Tokenize(src)
	if conf.Tokens {
		for _, tok := range tokens {
			fmt.Fprintln(stderr, tok)
		}
	}

	log.Infof("Parsing %d tokens", len(tokens))
	p := parser.New(tokens)
	if conf.Trace {
		p.SetOptions(parser.Options{
			Observer: &traceObserver{log: log},
		})
	}

	decls, err := p.Parse()
	if err != nil {
		printer.Report(path, src, err)
		return reportedError{err: errors.Wrapf(err, "parsing %s", path)}
	}
	log.Infof("Parsed %d declarations", len(decls))

	return writeDeclarations(stdout, log, decls, conf.Output)
}

func writeDeclarations(w io.Writer, log slog.Logger, decls []*ast.FunctionDeclaration, output string) error {
	switch output {
	case config.OutputEncode:
		for _, decl := range decls {
			fmt.Fprintln(w, ast.Encode(decl))
		}

	case config.OutputTree:
		for _, decl := range decls {
			ast.Fprint(w, decl)
		}

	case config.OutputSource:
		for _, decl := range decls {
			fmt.Fprintf(w, "%s;\n", ast.Source(decl.Body))
		}

	case config.OutputDump:
		dumper := spew.ConfigState{
			Indent:                  "  ",
			DisableMethods:          true,
			DisablePointerAddresses: true,
		}
		dumper.Fdump(w, decls)

	default:
		log.Errorf("unknown output %q", output)
		return errors.Errorf("unknown output %q", output)
	}
	return nil
}
