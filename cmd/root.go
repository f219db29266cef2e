// Package cmd provides the root command and CLI setup for ancora.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/ancora/internal/adapter"
	"github.com/mouse-blink/ancora/internal/controller"
	"github.com/mouse-blink/ancora/internal/domain"
	m "github.com/mouse-blink/ancora/internal/model"
)

const sessionEnvVar = "ANCORA_SESSION"

var sessionFlag string
var testCaseFlag string

var ui controller.UI
var bus *domain.Bus

// workflowFactory builds the engine for the resolved session. Tests swap it
// for a mock-backed factory.
var workflowFactory = defaultWorkflowFactory

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	bus = domain.NewBus()
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ancora",
		Short: "Semantic anchor and linkage engine",
		Long: `Ancora maintains semantic anchors over the two buffers of a Gherkin test
box - the natural-language statement and its generated automation code -
and a persisted graph of links (Binomi) between them, with LLM-assisted
link suggestions built from accumulated project knowledge.`,
	}

	cmd.PersistentFlags().StringVarP(&sessionFlag, "session", "s", "", "session directory (defaults to $ANCORA_SESSION or .ancora-session)")
	cmd.PersistentFlags().StringVarP(&testCaseFlag, "testcase", "t", "tc-1", "test case id the command operates on")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func sessionDir() string {
	if sessionFlag != "" {
		return sessionFlag
	}

	if env := os.Getenv(sessionEnvVar); env != "" {
		return env
	}

	return ".ancora-session"
}

// defaultWorkflowFactory loads the session state. The Anthropic client is
// built lazily on the first collaborator call, so plain CRUD and suggestion
// runs with nothing unlinked work without an API key.
func defaultWorkflowFactory() (domain.Workflow, error) {
	dir := sessionDir()
	store := adapter.NewSessionStore(dir)
	llm := adapter.NewLazyClient(func() (adapter.LLMClient, error) {
		return adapter.NewAnthropicClient()
	})

	return domain.NewWorkflow(filepath.Base(dir), testCaseFlag, store, llm, bus)
}

// parseBox turns the --box and --num flags into a box reference.
func parseBox(boxType string, number int) (m.BoxRef, error) {
	switch m.BoxType(boxType) {
	case m.BoxGiven, m.BoxWhen, m.BoxThen:
		return m.BoxRef{Type: m.BoxType(boxType), Number: number}, nil
	default:
		return m.BoxRef{}, &m.ValidationError{Field: "box", Reason: "must be given, when or then"}
	}
}

// parseLocation validates the --loc flag.
func parseLocation(loc string) (m.Location, error) {
	switch m.Location(loc) {
	case m.LocationHeader, m.LocationContent:
		return m.Location(loc), nil
	default:
		return "", &m.ValidationError{Field: "loc", Reason: "must be header or content"}
	}
}
