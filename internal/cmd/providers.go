package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptlint/promptlint/internal/config"
	"github.com/promptlint/promptlint/internal/llm"

	_ "github.com/promptlint/promptlint/internal/llm/providers"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List configured AI providers",
	Long: `List the providers known to promptlint alongside their configured
state: whether they are enabled, their fallback priority, and the model
they will use.`,
	RunE:         runProviders,
	SilenceUsage: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check configured provider API keys",
	Long: `Contact each enabled provider with its configured key and report
whether the key is accepted.`,
	RunE:         runValidate,
	SilenceUsage: true,
}

func init() {
	providersCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	u := GetUI()
	s := u.Styles

	cfg, err := config.LoadDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	configured := make(map[string]llm.ProviderConfig, len(cfg.Providers))
	for _, pc := range cfg.Providers {
		configured[pc.Vendor] = pc
	}

	names := llm.ListProviders()
	sort.Strings(names)

	fmt.Fprintln(u.Writer, s.Header.Render("Providers"))
	for _, name := range names {
		pc, ok := configured[name]
		switch {
		case !ok:
			fmt.Fprintf(u.Writer, "  %s %-12s %s\n",
				s.Subheader.Render("·"), name, s.Subheader.Render("not configured"))
		case !pc.Enabled:
			fmt.Fprintf(u.Writer, "  %s %-12s %s\n",
				s.Subheader.Render("·"), name, s.Subheader.Render("disabled"))
		default:
			detail := fmt.Sprintf("priority %d", pc.Priority)
			if pc.Model != "" {
				detail += ", model " + pc.Model
			}
			if strings.TrimSpace(pc.APIKey) == "" {
				detail += ", no API key"
			}
			fmt.Fprintf(u.Writer, "  %s %-12s %s\n",
				s.Success.Render(s.IconSuccess), name, s.Subheader.Render(detail))
		}
	}

	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	u := GetUI()
	s := u.Styles

	cfg, err := config.LoadDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	eligible := llm.EligibleConfigs(cfg.Providers)
	if len(eligible) == 0 {
		fmt.Fprintln(u.Writer, s.Medium.Render("No enabled providers with API keys configured"))
		return nil
	}

	failed := 0
	for _, pc := range eligible {
		provider := llm.GetProvider(pc.Vendor)
		if provider == nil {
			fmt.Fprintf(u.Writer, "  %s %-12s unknown vendor\n", s.High.Render(s.IconHigh), pc.Vendor)
			failed++
			continue
		}

		spin := u.StartSimpleSpinner(u.ErrWriter, fmt.Sprintf("Checking %s...", pc.Vendor))
		ok := provider.ValidateKey(cmd.Context(), pc.APIKey)
		spin.Stop()

		if ok {
			fmt.Fprintf(u.Writer, "  %s %-12s key accepted\n", s.Success.Render(s.IconSuccess), pc.Vendor)
		} else {
			fmt.Fprintf(u.Writer, "  %s %-12s key rejected\n", s.High.Render(s.IconHigh), pc.Vendor)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d provider(s) failed validation", failed)
	}
	return nil
}
