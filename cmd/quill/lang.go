package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/i18n"
)

// localeEnv lists the variables consulted by --detect, first non-empty wins.
var localeEnv = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

func newLangCmd(flags *globalFlags) *cobra.Command {
	var detect bool
	cmd := &cobra.Command{
		Use:   "lang [en|zh|de|es]",
		Short: "Show or set the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(flags, func(ctx context.Context, cmd *cobra.Command, args []string, a *app) error {
			out := cmd.OutOrStdout()
			var next domain.AppLanguage
			switch {
			case len(args) == 1:
				lang, err := domain.ParseLanguage(args[0])
				if err != nil {
					return err
				}
				next = lang
			case detect:
				next = i18n.Match(systemLocale())
			default:
				lang := a.store.Language()
				fmt.Fprintf(out, "%s\t%s\n", lang, i18n.NativeName(lang))
				return nil
			}

			if err := a.store.SetLanguage(ctx, next); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\t%s\n", next, i18n.NativeName(next))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&detect, "detect", false, "Pick the language from the system locale")
	return cmd
}

func systemLocale() string {
	for _, k := range localeEnv {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
