package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/i18n"
)

func newLexiconCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lexicon",
		Aliases: []string{"textbook"},
		Short:   "Browse and extend the collected vocabulary",
	}
	cmd.AddCommand(newLexiconListCmd(flags), newLexiconAddCmd(flags))
	return cmd
}

func newLexiconListCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collected words, newest first",
		Args:  cobra.NoArgs,
		RunE: withApp(flags, func(ctx context.Context, cmd *cobra.Command, args []string, a *app) error {
			items := a.store.Textbook()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}
			if len(items) == 0 {
				fmt.Fprintln(out, i18n.T(a.store.Language(), i18n.EmptyTextbook))
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(out, "%s (%s)\t%s\t%s\n", item.Word, item.PartOfSpeech, item.Translation, item.Definition)
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newLexiconAddCmd(flags *globalFlags) *cobra.Command {
	var v domain.VocabItem
	cmd := &cobra.Command{
		Use:   "add <word>",
		Short: "Add a word to the lexicon by hand",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(flags, func(ctx context.Context, cmd *cobra.Command, args []string, a *app) error {
			item := v
			item.ID = uuid.NewString()
			item.Word = args[0]
			added, err := a.store.AddToTextbook(ctx, domain.NewTextbookItem(item, time.Now()))
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is already in the lexicon\n", item.Word)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T(a.store.Language(), i18n.AddedToLexicon))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&v.Translation, "translation", "t", "", "Translation")
	cmd.Flags().StringVarP(&v.Definition, "definition", "d", "", "Definition")
	cmd.Flags().StringVarP(&v.PartOfSpeech, "pos", "p", "", "Part of speech")
	return cmd
}
