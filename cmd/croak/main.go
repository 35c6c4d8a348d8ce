// Command line crash test tool for the croak panic reporter.
//
// Deliberately panics (or reports directly with --no-panic) so you can
// verify what your crash reporting setup will produce on the day it
// matters.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/croak-go/croak/internal/util"
	"github.com/croak-go/croak/pkg/croak"
)

var versionString = ""

// Which environment variable should we get our config from?
func croakEnvVarName() string {
	return "CROAK"
}

// Return complete version when built with build.sh or fallback to module version (i.e. "go install")
func getVersion() string {
	if versionString != "" {
		return versionString
	}
	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "Should be set when building, please use build.sh to build"
}

// printEnvironmentHeader prints reporting environment facts to stderr, so
// crash test output can be compared across machines.
func printEnvironmentHeader() {
	fmt.Fprintln(os.Stderr, "croak crash test, version:", getVersion())
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "GOOS    :", runtime.GOOS)
	fmt.Fprintln(os.Stderr, "GOARCH  :", runtime.GOARCH)
	fmt.Fprintln(os.Stderr, "Compiler:", runtime.Compiler)
	fmt.Fprintln(os.Stderr, "NumCPU  :", runtime.NumCPU())
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Stderr is a terminal:", term.IsTerminal(int(os.Stderr.Fd())))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, croakEnvVarName()+":", os.Getenv(croakEnvVarName()))
	fmt.Fprintf(os.Stderr, "Commandline: %#v\n", os.Args)
}

type settings struct {
	message       string
	payload       croak.Payload
	crashFile     string
	sourceContext bool
	noPanic       bool
	verbose       bool

	printVersion  bool
	logsRequested bool
}

// Can return a nil settings on --help.
func settingsFromArgs(args []string, stderrIsTerminal bool) (*settings, error) {
	flagSet := flag.NewFlagSet("croak",
		flag.ContinueOnError, // We want to do our own error handling
	)
	flagSet.SetOutput(io.Discard) // We want to do our own printing

	printVersion := flagSet.Bool("version", false, "Prints the croak version number")
	debugLog := flagSet.Bool("debug", false, "Print debug logs after exiting")
	traceLog := flagSet.Bool("trace", false, "Print trace logs after exiting")

	message := flagSet.String("message", "deliberate crash test", "Panic `message` to report")
	payload := flagSet.String("payload", "", "Optional payload `data` attached to the panic")
	noPanic := flagSet.Bool("no-panic", false, "Report directly instead of panicking for real")
	verbose := flagSet.Bool("verbose", false, "Print an environment header before the report")
	crashFile := flagSet.String("crash-file", "",
		"Also write the report to this `file`. \"auto\" picks a timestamped file under your state directory. .gz and .xz names are compressed.")
	sourceContext := flagSetFunc(flagSet, "source-context", sourceContextAuto,
		"Show source around the panic location: auto, always or never", parseSourceContextOption)

	// Combine flags from environment and from command line
	flags := args[1:]
	croakEnv := strings.TrimSpace(os.Getenv(croakEnvVarName()))
	if len(croakEnv) > 0 {
		flags = append(strings.Fields(croakEnv), flags...)
	}

	err := flagSet.Parse(flags)
	if err != nil {
		if err == flag.ErrHelp {
			printUsage(flagSet)
			return nil, nil
		}
		return nil, err
	}

	if len(flagSet.Args()) > 0 {
		return nil, fmt.Errorf("Unexpected argument: %s", flagSet.Args()[0])
	}

	parsed := settings{
		message:       *message,
		payload:       croak.PayloadString(*payload),
		noPanic:       *noPanic,
		verbose:       *verbose,
		printVersion:  *printVersion,
		logsRequested: *debugLog || *traceLog,
	}

	if *crashFile == "auto" {
		parsed.crashFile = croak.DefaultCrashFile()
	} else {
		parsed.crashFile = *crashFile
	}

	switch *sourceContext {
	case sourceContextAlways:
		parsed.sourceContext = true
	case sourceContextNever:
		parsed.sourceContext = false
	case sourceContextAuto:
		parsed.sourceContext = stderrIsTerminal
	}

	log.SetLevel(log.InfoLevel)
	if *traceLog {
		log.SetLevel(log.TraceLevel)
	} else if *debugLog {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMicro,
	})

	return &parsed, nil
}

func printUsage(flagSet *flag.FlagSet) {
	fmt.Println("Usage:")
	fmt.Println("  croak [options]")
	fmt.Println()
	fmt.Println("Panics on purpose and reports the panic, so you can see what")
	fmt.Println("your crash reports will look like.")
	fmt.Println()
	fmt.Println("Options:")
	flagSet.SetOutput(os.Stdout)
	flagSet.PrintDefaults()
}

func main() {
	var logLines util.LogWriter
	log.SetOutput(&logLines)
	croak.SetLogger(&util.CroakLogger{})

	stderrIsTerminal := term.IsTerminal(int(os.Stderr.Fd()))
	parsed, err := settingsFromArgs(os.Args, stderrIsTerminal)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "For help, run: croak --help")
		os.Exit(1)
	}
	if parsed == nil {
		// --help, we're done
		return
	}

	if parsed.printVersion {
		fmt.Println(getVersion())
		return
	}

	croak.Configure(croak.Options{
		CrashFile:     parsed.crashFile,
		SourceContext: parsed.sourceContext,
	})

	if parsed.verbose {
		printEnvironmentHeader()
	}

	if parsed.noPanic {
		croak.Report(parsed.message, parsed.payload, croak.Here())
	} else {
		crash(parsed.message, parsed.payload)
	}

	if parsed.logsRequested && !logLines.Empty() {
		fmt.Fprintln(os.Stderr)
		fmt.Fprint(os.Stderr, logLines.String())
	}
}

// crash panics for real and reports from the recovery path, the way an
// application's outermost panic handler would.
func crash(message string, payload croak.Payload) {
	defer func() {
		result := recover()
		if result == nil {
			return
		}

		croak.Report(fmt.Sprint(result), payload, croak.Here())
	}()

	panic(message)
}

// Define a generic flag with specified name, default value, and usage string.
// The return value is the address of a variable that stores the parsed value of
// the flag.
func flagSetFunc[T any](flagSet *flag.FlagSet, name string, defaultValue T, usage string, parser func(valueString string) (T, error)) *T {
	parsed := defaultValue

	flagSet.Func(name, usage, func(valueString string) error {
		parseResult, err := parser(valueString)
		if err != nil {
			return err
		}
		parsed = parseResult
		return nil
	})

	return &parsed
}
