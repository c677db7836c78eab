package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/subject"
)

var (
	flagScenario       string
	flagReplayTerminal bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a YAML scenario against a string subject",
	RunE:  runScenarioCmd,
}

func init() {
	runCmd.Flags().StringVar(&flagScenario, "scenario", "",
		"path to the scenario file")
	runCmd.Flags().BoolVar(&flagReplayTerminal, "replay-terminal", false,
		"replay the stop event to observers subscribing after it")

	_ = runCmd.MarkFlagRequired("scenario")
}

func runScenarioCmd(cmd *cobra.Command, _ []string) error {
	scenario, err := LoadScenario(flagScenario)
	if err != nil {
		return err
	}
	keys, err := keyGenerator(flagKeys)
	if err != nil {
		return err
	}

	opts := []subject.Option{
		subject.WithLogger(logger),
		subject.WithKeyGenerator(keys),
	}
	if scenario.ReplayTerminal || flagReplayTerminal {
		opts = append(opts, subject.WithTerminalReplay())
	}
	return RunScenario(scenario, cmd.OutOrStdout(), logger, opts...)
}

// RunScenario plays every step of scenario against a fresh subject, writing
// what each named observer receives to out.
func RunScenario(scenario *Scenario, out io.Writer, log zerolog.Logger, opts ...subject.Option) error {
	if scenario == nil {
		return errors.New("nil scenario")
	}
	log = log.With().Str("scenario", scenario.Name).Logger()

	s := subject.NewPublishSubject[string](opts...)
	subscriptions := disposable.NewCompositeDisposable()
	defer subscriptions.Dispose()
	named := make(map[string]disposable.Disposable)

	for i, step := range scenario.Steps {
		log.Debug().Int("step", i+1).Stringer("op", step).Msg("running step")
		switch {
		case step.Subscribe != "":
			d := s.Subscribe(newPrinter[string](out, step.Subscribe))
			named[step.Subscribe] = d
			subscriptions.Add(d)
		case step.Dispose != "":
			d, ok := named[step.Dispose]
			if !ok {
				return errors.Errorf("step %d: observer %q is not subscribed", i+1, step.Dispose)
			}
			d.Dispose()
		case step.Next != nil:
			s.OnNext(*step.Next)
		case step.Error != "":
			s.OnError(errors.New(step.Error))
		case step.Complete:
			s.OnCompleted()
		default:
			return errors.Errorf("step %d: no operation", i+1)
		}
	}

	log.Info().Int("steps", len(scenario.Steps)).Int("observers", s.Len()).Msg("scenario finished")
	return nil
}
