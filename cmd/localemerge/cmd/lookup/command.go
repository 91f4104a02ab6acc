// Package lookup implements the lookup command, which resolves a dotted key
// the way the rendering layer does.
package lookup

import (
	"context"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/menuboard/localemerge/internal/appcontext"
	"github.com/menuboard/localemerge/internal/cmd/output"
	"github.com/menuboard/localemerge/pkg/constants"
	"github.com/menuboard/localemerge/pkg/errors"
	pkglookup "github.com/menuboard/localemerge/pkg/lookup"
)

// Flags holds the lookup command flags.
type Flags struct {
	Files    map[string]string
	Lang     string
	Fallback string
	Vars     map[string]string
	List     bool
}

// View is the printed result of a lookup.
type View struct {
	Key      string   `json:"key" yaml:"key"`
	Language string   `json:"language" yaml:"language"`
	Fallback bool     `json:"fallback" yaml:"fallback"`
	Text     string   `json:"text,omitempty" yaml:"text,omitempty"`
	List     []string `json:"list,omitempty" yaml:"list,omitempty"`
}

// NewCommand creates the lookup command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "lookup <key>",
		GroupID: "core",
		Short:   "Resolve a dotted key with language fallback",
		Args:    cobra.ExactArgs(1),
		Long: `Lookup loads one translation tree per language and resolves a dotted key
in the requested language, falling back to the fallback language when the
key is missing or empty. {name} tokens are filled from --var values.`,
		Example: `  localemerge lookup menu.title --file ar=locales/merged.json --file en=locales/en.json
  localemerge lookup greeting --file ar=ar.json --file en=en.json --var name=Sam
  localemerge lookup menu.items --list --file en=en.json --lang en`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("fallback") {
				flags.Fallback = app.Settings().FallbackLocale
			}
			return ExecuteLookup(cmd.Context(), app, args[0], flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringToStringVar(&flags.Files, "file", nil, "language=path of a translation tree (repeatable)")
	cmd.Flags().StringVar(&flags.Lang, "lang", constants.DefaultTargetLocale, "requested language")
	cmd.Flags().StringVar(&flags.Fallback, "fallback", app.Settings().FallbackLocale, "fallback language")
	cmd.Flags().StringToStringVar(&flags.Vars, "var", nil, "name=value for {name} tokens (repeatable)")
	cmd.Flags().BoolVar(&flags.List, "list", false, "resolve a string list instead of a string")

	return cmd
}

// ExecuteLookup loads the files, resolves key and prints the result to w.
func ExecuteLookup(ctx context.Context, app appcontext.Interface, key string, flags *Flags, w io.Writer) error {
	if len(flags.Files) == 0 {
		return errors.NewValidationError("file", nil, "at least one --file language=path is required")
	}

	catalog, err := pkglookup.New(flags.Fallback)
	if err != nil {
		return err
	}

	langs := make([]string, 0, len(flags.Files))
	for lang := range flags.Files {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	logger := app.Logger()
	for _, lang := range langs {
		if err := ctx.Err(); err != nil {
			return errors.Join(errors.ErrCanceled, err)
		}
		if err := catalog.AddFile(lang, flags.Files[lang]); err != nil {
			return err
		}
		logger.Debug().Str("lang", lang).Str("file", flags.Files[lang]).Msg("Translation tree loaded")
	}

	var res pkglookup.Result
	if flags.List {
		res, err = catalog.List(flags.Lang, key)
	} else {
		res, err = catalog.Text(flags.Lang, key, flags.Vars)
	}
	if err != nil {
		return err
	}

	view := View{
		Key:      key,
		Language: res.Language.String(),
		Fallback: res.Fallback,
		Text:     res.Text,
		List:     res.List,
	}
	return output.NewFormatter(output.DetectFormat(app.OutputFormat())).Format(w, view)
}
