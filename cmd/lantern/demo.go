package main

import (
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lanternui/lantern/internal/config"
	"github.com/lanternui/lantern/internal/logger"
	"github.com/lanternui/lantern/pkg/components"
	"github.com/lanternui/lantern/pkg/overlay"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive dialog demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(flags)
			if err != nil {
				return err
			}

			model := newDemoModel(cfg, log)
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			defer model.dialog.Teardown()

			_, err = program.Run()
			return err
		},
	}

	return cmd
}

type demoModel struct {
	dialog       *overlay.Dialog
	spinner      *components.Spinner
	pendingClose bool
	width        int
	height       int
	log          *logger.Logger
}

func newDemoModel(cfg *config.Config, log *logger.Logger) *demoModel {
	m := &demoModel{
		spinner: components.NewSpinner(components.SpinnerVariantDot).WithLabel("background work keeps running"),
		width:   components.MinWidth,
		height:  components.MinHeight,
		log:     log.WithComponent("demo"),
	}

	policy := overlay.DefaultDismissPolicy()
	size := overlay.SizeMedium
	if cfg != nil {
		policy = cfg.DismissPolicy()
		size = cfg.DialogSize()
	}

	m.dialog = overlay.New(overlay.Options{
		Title:   "Delete workspace?",
		Size:    size,
		Dismiss: &policy,
		Content: components.VStack(
			components.NewText("This removes the workspace and its history."),
			components.MutedText("Click outside the box or press esc to dismiss."),
		),
		Footer: components.NewButtonGroup(
			components.NewButton("Delete", components.ButtonOptions{Variant: components.ButtonVariantError}),
			components.NewButton("Cancel", components.ButtonOptions{Variant: components.ButtonVariantMuted}),
		),
		OnCloseRequested: func() { m.pendingClose = true },
		Logger:           m.log,
	})

	return m
}

func (m *demoModel) Init() tea.Cmd {
	return m.spinner.Tick()
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.dialog.Teardown()
			return m, tea.Quit
		case "enter", "o":
			if !m.dialog.Open() {
				m.dialog.SetOpen(true)
			}
		}

	default:
		if cmd := m.spinner.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// Global escape handling, then per-dialog viewport and mouse routing.
	overlay.Dispatch(msg)
	m.dialog.Update(msg)

	// The dialog only requests closure; the open flag is ours to flip.
	if m.pendingClose {
		m.pendingClose = false
		m.dialog.SetOpen(false)
	}

	return m, tea.Batch(cmds...)
}

func (m *demoModel) View() string {
	base := components.VStack(
		components.EmphasisText("lantern dialog demo"),
		components.NewCard(
			components.NewText("Press enter to open the dialog, q to quit."),
			m.spinner,
		).WithTitle("Status").WithWidth(components.ClampWidth(64, m.width, 2)),
	).WithGap(1).View()

	return overlay.Compose(base, m.width, m.height)
}
