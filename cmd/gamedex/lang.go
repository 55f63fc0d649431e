// ABOUTME: Lang command for viewing and switching the interface language
// ABOUTME: Persists the selected locale so it survives across runs

package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/gamedex/internal/i18n"
)

var langCmd = &cobra.Command{
	Use:   "lang [locale]",
	Short: "Show or set the interface language",
	Long:  "Show the current interface language, or switch to another supported locale (en, zh)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint).SprintFunc()

		if len(args) == 0 {
			locales := make([]string, 0, len(i18n.Locales))
			for locale := range i18n.Locales {
				locales = append(locales, locale)
			}
			sort.Strings(locales)

			for _, locale := range locales {
				marker := "  "
				if locale == translator.Locale() {
					marker = "* "
				}
				fmt.Printf("%s%s %s\n", marker, locale, faint(i18n.Locales[locale]))
			}
			return nil
		}

		locale := args[0]
		if _, ok := i18n.Locales[locale]; !ok {
			return fmt.Errorf("unsupported locale: %s (supported: en, zh)", locale)
		}

		translator.SetLocale(locale)
		fmt.Printf("Language set to %s (%s)\n", locale, i18n.Locales[locale])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(langCmd)
}
