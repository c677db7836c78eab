package main

import (
	"github.com/spf13/cobra"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/subject"
)

var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Subscribe, emit true, dispose, emit false",
	RunE:  runPlayground,
}

func runPlayground(cmd *cobra.Command, _ []string) error {
	keys, err := keyGenerator(flagKeys)
	if err != nil {
		return err
	}

	isFine := subject.NewPublishSubject[bool](
		subject.WithLogger(logger),
		subject.WithKeyGenerator(keys),
	)
	subscription := isFine.Subscribe(newPrinter[bool](cmd.OutOrStdout(), ""))
	isFine.OnNext(true)
	subscription.Dispose()
	isFine.OnNext(false) // not printed
	return nil
}
