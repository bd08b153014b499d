package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/i18n"
	"github.com/Evrosil/The-Aetherial-Quill/internal/muse"
)

type entryFlags struct {
	category    string
	name        string
	description string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.category, "category", "c", "character", "character, setting, plot or style")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Entry name")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Entry details")
}

func (f *entryFlags) draft() (muse.EntryDraft, error) {
	cat, err := domain.ParseCategory(f.category)
	if err != nil {
		return muse.EntryDraft{}, err
	}
	return muse.EntryDraft{Category: cat, Name: f.name, Description: f.description}, nil
}

func newMemoryCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "memory",
		Aliases: []string{"archive"},
		Short:   "Manage the memory archive",
	}
	cmd.AddCommand(
		newMemoryAddCmd(flags),
		newMemoryListCmd(flags),
		newMemoryDeleteCmd(flags),
		newMemoryEnhanceCmd(flags),
	)
	return cmd
}

func newMemoryAddCmd(flags *globalFlags) *cobra.Command {
	var (
		entry   entryFlags
		enhance bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Archive a character, setting, storyline or style",
		Example: `  quill memory add -c character -n "Mrs. Ashbourne" -d "A widow who keeps a clockwork heart"
  quill memory add -c setting -n Whitechapel -d "Fog and gaslight" --enhance`,
		Args: cobra.NoArgs,
		RunE: withApp(flags, func(ctx context.Context, cmd *cobra.Command, args []string, a *app) error {
			draft, err := entry.draft()
			if err != nil {
				return err
			}
			if enhance {
				if draft, err = a.muse.EnhanceEntry(ctx, draft, a.store.Language()); err != nil {
					return err
				}
			}
			item, err := a.store.AddMemory(ctx, domain.MemoryItem{
				Category:    draft.Category,
				Name:        draft.Name,
				Description: draft.Description,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%s] %s\n", item.ID, item.Category, item.Name)
			return nil
		}),
	}
	entry.register(cmd)
	cmd.Flags().BoolVar(&enhance, "enhance", false, "Consult the muse before archiving")
	return cmd
}

func newMemoryListCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archive entries, newest first",
		Args:  cobra.NoArgs,
		RunE: withApp(flags, func(ctx context.Context, cmd *cobra.Command, args []string, a *app) error {
			items := a.store.Memories()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}
			lang := a.store.Language()
			if len(items) == 0 {
				fmt.Fprintln(out, i18n.T(lang, i18n.EmptyArchives))
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(out, "%s\t[%s] %s\n\t%s\n", item.ID, i18n.CategoryName(lang, item.Category), item.Name, item.Description)
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newMemoryDeleteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Burn an archive entry",
		Args:    cobra.ExactArgs(1),
		RunE: withApp(flags, func(ctx context.Context, cmd *cobra.Command, args []string, a *app) error {
			removed, err := a.store.DeleteMemory(ctx, args[0])
			if err != nil {
				return err
			}
			if !removed {
				return errors.New("no archive entry with id " + args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Burned.")
			return nil
		}),
	}
}

func newMemoryEnhanceCmd(flags *globalFlags) *cobra.Command {
	var entry entryFlags
	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Ask the muse to polish a draft entry without archiving it",
		Args:  cobra.NoArgs,
		RunE: withApp(flags, func(ctx context.Context, cmd *cobra.Command, args []string, a *app) error {
			draft, err := entry.draft()
			if err != nil {
				return err
			}
			out, err := a.muse.EnhanceEntry(ctx, draft, a.store.Language())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", out.Name, out.Description)
			return nil
		}),
	}
	entry.register(cmd)
	return cmd
}
