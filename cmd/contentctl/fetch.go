package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ignatzorin/portfolio-site/internal/models"
	"github.com/ignatzorin/portfolio-site/internal/view"
)

func fetchCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Получить агрегированный документ портфолио",
		Long: `Выполняет тот же единственный агрегированный запрос, что и сервер при запуске,
и печатает документ.

Примеры:
  contentctl fetch --project abc123
  contentctl fetch --fixture internal/content/testdata/portfolio.json --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.fetch(cmd.Context())
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), doc, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "формат вывода: json или yaml")
	return cmd
}

// writeDocument печатает документ, сохраняя имена полей CMS и в YAML.
func writeDocument(w io.Writer, doc *models.Portfolio, format string) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	switch format {
	case "json":
		_, err = fmt.Fprintln(w, string(raw))
		return err
	case "yaml":
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("contentctl: неизвестный формат %q", format)
	}
}

func featuredCmd(opts *options) *cobra.Command {
	policy := view.DefaultProjectPolicy()

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Показать избранные и остальные проекты так, как их выводит страница",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.fetch(cmd.Context())
			if err != nil {
				return err
			}
			writeProjects(cmd.OutOrStdout(), doc, policy)
			return nil
		},
	}
	cmd.Flags().IntVar(&policy.FeaturedLimit, "limit", policy.FeaturedLimit, "сколько избранных проектов показывать (0 = все)")
	cmd.Flags().BoolVar(&policy.ExcludeFeaturedFromOthers, "dedup", policy.ExcludeFeaturedFromOthers, "не повторять показанные избранные проекты в списке остальных")
	return cmd
}

func writeProjects(w io.Writer, doc *models.Portfolio, policy view.ProjectPolicy) {
	fmt.Fprintln(w, "Featured:")
	for _, p := range view.FeaturedProjects(doc.Projects, policy) {
		fmt.Fprintf(w, "  * %s\n", p.Title)
	}
	fmt.Fprintln(w, "Other:")
	for _, p := range view.OtherProjects(doc.Projects, policy) {
		fmt.Fprintf(w, "  - %s\n", p.Title)
	}
}
