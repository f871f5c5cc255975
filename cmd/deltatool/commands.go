package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Teqnological-Asia/quill-markdown/pkg/delta"
	"github.com/Teqnological-Asia/quill-markdown/pkg/document"
)

func newComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose <base.json> <other.json>",
		Short: "Compose two Deltas",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			base, err := readDelta(args[0])
			if err != nil {
				return err
			}
			other, err := readDelta(args[1])
			if err != nil {
				return err
			}
			result, err := base.Compose(other)
			if err != nil {
				return err
			}
			return writeDelta(result)
		},
	}
}

func newTransformCmd() *cobra.Command {
	var priority bool

	cmd := &cobra.Command{
		Use:   "transform <a.json> <b.json>",
		Short: "Transform b against a",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := readDelta(args[0])
			if err != nil {
				return err
			}
			b, err := readDelta(args[1])
			if err != nil {
				return err
			}
			result, err := a.Transform(b, priority)
			if err != nil {
				return err
			}
			return writeDelta(result)
		},
	}
	cmd.Flags().BoolVar(&priority, "priority", false, "treat a as having priority over b")
	return cmd
}

func newInvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invert <change.json> <base.json>",
		Short: "Invert change against the document it was applied to",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			change, err := readDelta(args[0])
			if err != nil {
				return err
			}
			base, err := readDelta(args[1])
			if err != nil {
				return err
			}
			result, err := change.Invert(base)
			if err != nil {
				return err
			}
			return writeDelta(result)
		},
	}
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old.txt> <new.txt>",
		Short: "Compute the Delta that transforms old text into new text",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			oldData, err := readFile(args[0])
			if err != nil {
				return err
			}
			newData, err := readFile(args[1])
			if err != nil {
				return err
			}
			return writeDelta(delta.Diff(string(oldData), string(newData)))
		},
	}
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <document.txt> <change.json>",
		Short: "Apply a Delta to a plain-text document",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			content, err := readFile(args[0])
			if err != nil {
				return err
			}
			change, err := readDelta(args[1])
			if err != nil {
				return err
			}
			result, err := document.Apply(document.New(string(content)), change)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, result)
			return nil
		},
	}
}
