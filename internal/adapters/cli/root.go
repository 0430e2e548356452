package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"drugcheck/internal/domain/entities"
	"drugcheck/internal/ports/input"
)

// ErrLookupFailed is returned by "check" when the payload is an error, so the
// process exits non-zero after the message has been printed.
var ErrLookupFailed = errors.New("lookup failed")

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ED4245"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#57F287"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498DB"))
)

// New crée la commande racine.
func New(useCase input.InteractionUseCase, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "drugcheck",
		Short:         "Vérificateur d'interactions médicamenteuses",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newVersionCmd(version))
	root.AddCommand(newCheckCmd(useCase))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Afficher la version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version)
		},
	}
}

func newCheckCmd(useCase input.InteractionUseCase) *cobra.Command {
	var showOriginal bool
	cmd := &cobra.Command{
		Use:   "check <médicament>...",
		Short: "Trouver les interactions entre médicaments",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := useCase.FindInteractions(cmd.Context(), args)
			render(cmd.OutOrStdout(), payload, showOriginal)
			if payload.Status == entities.StatusError {
				return fmt.Errorf("%w (%s)", ErrLookupFailed, payload.Kind)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showOriginal, "original", false, "afficher aussi la description anglaise")
	return cmd
}

func styleFor(s entities.Status) lipgloss.Style {
	switch s {
	case entities.StatusWarning:
		return warningStyle
	case entities.StatusSuccess:
		return successStyle
	default:
		return errorStyle
	}
}

func render(w io.Writer, payload entities.ResultPayload, showOriginal bool) {
	style := styleFor(payload.Status)
	if !showOriginal || len(payload.Lines) == 0 {
		fmt.Fprintln(w, style.Render(payload.Text))
		return
	}
	for _, l := range payload.Lines {
		fmt.Fprintln(w, style.Render(l.Text))
		fmt.Fprintln(w, "  "+l.Original)
	}
}
