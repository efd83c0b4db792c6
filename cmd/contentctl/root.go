package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ignatzorin/portfolio-site/internal/content"
	"github.com/ignatzorin/portfolio-site/internal/logger"
	"github.com/ignatzorin/portfolio-site/internal/models"
)

type options struct {
	fixture    string
	projectID  string
	dataset    string
	apiVersion string
	token      string
	useCDN     bool
	timeout    time.Duration
	verbose    bool
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "contentctl",
		Short:         "Просмотр контента портфолио, хранящегося в CMS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load(".env")
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logger.Init(level, true)
			opts.fillFromEnv()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.fixture, "fixture", "", "читать документ из JSON-файла вместо Sanity (CONTENT_FIXTURE_PATH)")
	flags.StringVar(&opts.projectID, "project", "", "идентификатор проекта Sanity (SANITY_PROJECT_ID)")
	flags.StringVar(&opts.dataset, "dataset", "", "датасет Sanity (SANITY_DATASET, по умолчанию production)")
	flags.StringVar(&opts.apiVersion, "api-version", "2025-01-01", "версия API Sanity")
	flags.BoolVar(&opts.useCDN, "cdn", true, "запрашивать apicdn.sanity.io")
	flags.DurationVar(&opts.timeout, "timeout", 15*time.Second, "таймаут запроса")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "подробное логирование")

	cmd.AddCommand(
		fetchCmd(opts),
		featuredCmd(opts),
		imageURLCmd(opts),
		hashPasswordCmd(),
		versionCmd(),
	)
	return cmd
}

func (o *options) fillFromEnv() {
	if o.fixture == "" {
		o.fixture = os.Getenv("CONTENT_FIXTURE_PATH")
	}
	if o.projectID == "" {
		o.projectID = os.Getenv("SANITY_PROJECT_ID")
	}
	if o.dataset == "" {
		o.dataset = os.Getenv("SANITY_DATASET")
	}
	if o.dataset == "" {
		o.dataset = "production"
	}
	if o.token == "" {
		o.token = os.Getenv("SANITY_TOKEN")
	}
}

func (o *options) store() (content.Store, error) {
	if o.fixture != "" {
		return content.NewStaticStore(o.fixture), nil
	}
	if o.projectID == "" {
		return nil, fmt.Errorf("contentctl: нужен --project или --fixture")
	}
	return content.NewSanityStore(content.SanityConfig{
		ProjectID:  o.projectID,
		Dataset:    o.dataset,
		APIVersion: o.apiVersion,
		UseCDN:     o.useCDN,
		Token:      o.token,
		Timeout:    o.timeout,
	})
}

// fetch выполняет единственный запрос документа.
func (o *options) fetch(ctx context.Context) (*models.Portfolio, error) {
	store, err := o.store()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return store.Fetch(ctx)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "contentctl %s\n", Version)
		},
	}
}
