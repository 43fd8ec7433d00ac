package handlers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"preshub/internal/brief"
	"preshub/internal/core"
	"preshub/internal/llm"
	"preshub/internal/logger"
	"preshub/internal/render"
	"preshub/internal/tui"
)

// NewGenerateCmd creates the generate command for producing a brief from the CLI
func NewGenerateCmd() *cobra.Command {
	var (
		industry     string
		meetingType  string
		clientRole   string
		meetingCtx   string
		providerName string
		model        string
		markdown     bool
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an executive brief",
		Long: `Generate an executive brief for an upcoming presales meeting.

When --industry, --meeting-type, and --client-role are all provided the brief
is generated directly. Otherwise an interactive picker collects the missing
selections.

If the configured AI provider is unreachable or returns an unusable response,
the brief falls back to curated static content and the command still succeeds.

Examples:
  # Interactive selection
  preshub generate

  # Fully specified
  preshub generate --industry Healthcare --meeting-type "Discovery Session" \
    --client-role Director --context "EHR migration planned for Q3"

  # Use Gemini and save the result
  preshub generate --provider gemini --industry Retail \
    --meeting-type "Intro Call" --client-role "VP Level" --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := core.BriefRequest{
				Industry:    industry,
				MeetingType: meetingType,
				ClientRole:  clientRole,
				Context:     meetingCtx,
			}
			return runGenerate(cmd.Context(), req, providerName, model, markdown, save)
		},
	}

	cmd.Flags().StringVar(&industry, "industry", "", "Client industry (e.g. Healthcare)")
	cmd.Flags().StringVar(&meetingType, "meeting-type", "", "Meeting type (e.g. Discovery Session)")
	cmd.Flags().StringVar(&clientRole, "client-role", "", "Client role (e.g. VP Level)")
	cmd.Flags().StringVar(&meetingCtx, "context", "", "Additional meeting context")
	cmd.Flags().StringVar(&providerName, "provider", "", "AI provider: openai or gemini (default from config)")
	cmd.Flags().StringVar(&model, "model", "", "Model override for the selected provider")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Emit markdown instead of styled terminal output")
	cmd.Flags().BoolVar(&save, "save", false, "Save the generated brief to the database")

	return cmd
}

func runGenerate(ctx context.Context, req core.BriefRequest, providerName, model string, markdown, save bool) error {
	if req.Industry == "" || req.MeetingType == "" || req.ClientRole == "" {
		picked, err := tui.PickBriefRequest()
		if err != nil {
			return err
		}
		if req.Industry == "" {
			req.Industry = picked.Industry
		}
		if req.MeetingType == "" {
			req.MeetingType = picked.MeetingType
		}
		if req.ClientRole == "" {
			req.ClientRole = picked.ClientRole
		}
	}

	agent := brief.NewAgent(llm.NewTracedClient(nil))
	generated := agent.GenerateExecutiveBrief(ctx, req, &brief.Options{
		Provider: llm.Provider(providerName),
		Model:    model,
	})

	if markdown {
		fmt.Print(render.Markdown(generated))
	} else {
		fmt.Print(render.Terminal(generated))
	}

	// Persistence is best effort: a failed save never discards the brief
	// that was already printed.
	if save {
		if err := saveBrief(ctx, req, generated); err != nil {
			logger.Error("Failed to save brief", err)
			fmt.Println("\nBrief generated but could not be saved.")
			return nil
		}
		fmt.Println("\nBrief saved.")
	}

	return nil
}

func saveBrief(ctx context.Context, req core.BriefRequest, generated core.GeneratedBrief) error {
	db, err := getDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	record := &core.BriefRecord{
		Input: &req,
		Brief: generated,
	}
	return db.Briefs().Create(ctx, record)
}
