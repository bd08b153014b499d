package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/i18n"
	"github.com/Evrosil/The-Aetherial-Quill/internal/scriptorium"
)

func newGenerateCmd(flags *globalFlags) *cobra.Command {
	var (
		langCode string
		learn    bool
		save     bool
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "generate <prompt...>",
		Short: "Inscribe a short story from a prompt and the archive",
		Example: `  quill generate "The widow opens the locked workshop at midnight"
  quill generate --lang de --learn "Ein Brief aus Baker Street"`,
		Args: cobra.MinimumNArgs(1),
		RunE: withApp(flags, func(ctx context.Context, cmd *cobra.Command, args []string, a *app) error {
			lang := a.store.Language()
			if langCode != "" {
				var err error
				if lang, err = domain.ParseLanguage(langCode); err != nil {
					return err
				}
			}
			prompt := strings.Join(args, " ")
			if strings.TrimSpace(prompt) == "" {
				return errors.New("a prompt is required")
			}

			ws := scriptorium.New(a.muse, a.store, a.exports, lang, scriptorium.WithLogger(a.logger))
			if err := ws.SetLearningMode(learn); err != nil {
				return err
			}
			if err := ws.SetPrompt(prompt); err != nil {
				return err
			}
			fiction, err := ws.Generate(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(fiction); err != nil {
					return err
				}
			} else {
				printFiction(cmd, a.store.Language(), fiction)
			}

			if save {
				name, err := ws.SaveExport(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", i18n.T(a.store.Language(), i18n.SaveSuccess), filepath.Join(a.exports.BaseDir(), name))
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&langCode, "lang", "l", "", "Story language: en, zh, de or es (default: the UI language)")
	cmd.Flags().BoolVar(&learn, "learn", false, "Learning mode: analyze vocabulary and grammar")
	cmd.Flags().BoolVar(&save, "save", false, "Save the manuscript to the export directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func printFiction(cmd *cobra.Command, ui domain.AppLanguage, f *domain.GeneratedFiction) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n%s\n\n%s\n\n%s\n", f.Title, f.Date, f.Content, i18n.T(ui, i18n.Finis))
	if f.Learning == nil || f.Learning.Empty() {
		return
	}

	fmt.Fprintf(out, "\n%s\n", i18n.T(ui, i18n.LegendVocabulary))
	for _, v := range f.Learning.Vocabulary {
		fmt.Fprintf(out, "  %s (%s)\n    %s: %s\n    %s: %s\n",
			v.Word, v.PartOfSpeech,
			i18n.T(ui, i18n.Translation), v.Translation,
			i18n.T(ui, i18n.Meaning), v.Definition)
	}
	fmt.Fprintf(out, "\n%s\n", i18n.T(ui, i18n.LegendGrammar))
	for _, g := range f.Learning.Grammar {
		fmt.Fprintf(out, "  %q\n    %s: %s\n", g.Sentence, g.Rule, g.Explanation)
	}
}
