package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lanternui/lantern/pkg/components"
)

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print a static showcase of every component",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup(flags)
			if err != nil {
				return err
			}

			width := components.StandardWidth
			if w, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && w > 0 {
				width = w
			}
			log.WithFields(map[string]any{"width": width, "class": components.ClassifyWidth(width)}).
				Debug("rendering gallery")

			fmt.Fprintln(cmd.OutOrStdout(), renderGallery(width))
			return nil
		},
	}

	return cmd
}

func renderGallery(width int) string {
	cardWidth := components.ClampWidth(64, width, 2)

	buttons := components.NewButtonGroup(
		components.SimpleButton("Primary"),
		components.NewButton("Secondary", components.ButtonOptions{Variant: components.ButtonVariantSecondary}),
		components.NewButton("Danger", components.ButtonOptions{Variant: components.ButtonVariantError}),
		components.NewButton("Disabled", components.ButtonOptions{Disabled: true}),
	)

	badges := components.HStack(
		components.SuccessBadge("passing"),
		components.WarningBadge("flaky"),
		components.ErrorBadge("failing"),
		components.InfoBadge("draft"),
	).WithGap(1)

	list := components.NewSelectList([]components.SelectItem{
		{ID: "btn", Label: "Buttons"},
		{ID: "card", Label: "Cards"},
		{ID: "badge", Label: "Badges"},
		{ID: "alert", Label: "Alerts"},
		{ID: "dialog", Label: "Dialogs"},
	}).WithMaxVisible(4)

	sections := components.VStack(
		components.EmphasisText("lantern component gallery"),
		components.HorizontalDivider().WithWidth(cardWidth),
		components.NewCard(buttons).WithTitle("Buttons").WithWidth(cardWidth),
		components.NewCard(badges).WithTitle("Badges").WithWidth(cardWidth),
		components.NewCard(
			components.SuccessAlert("All checks passed.").WithWidth(cardWidth-6),
			components.WarningAlert("Two dependencies are outdated.").WithWidth(cardWidth-6),
		).WithTitle("Alerts").WithWidth(cardWidth),
		components.NewCard(list).WithTitle("Select list").WithWidth(cardWidth),
	).WithGap(1)

	return sections.View()
}
