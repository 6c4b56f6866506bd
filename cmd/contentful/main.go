// Command contentful manages the landing page content model: it creates the
// content types in a space, exports them, and helps debug credentials.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/landingpro/landing/backend/go-services/internal/cms"
	"github.com/landingpro/landing/backend/go-services/internal/config"
	"github.com/landingpro/landing/backend/go-services/internal/provision"
	"github.com/landingpro/landing/backend/go-services/internal/runlog"
	"github.com/landingpro/landing/backend/go-services/internal/storage"
	"github.com/landingpro/landing/backend/go-services/internal/tokens"
	"github.com/landingpro/landing/backend/go-services/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		logger.Errorf("%v", err)
		logger.Sync()
		os.Exit(1)
	}
}

type options struct {
	logLevel string
	apiHost  string

	cfg *config.Config
}

func rootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "contentful",
		Short:         "Manage the landing page content model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(opts.logLevel)
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", os.Getenv("LOG_LEVEL"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.apiHost, "api-host", cms.ManagementHost, "Management API base URL")

	cmd.AddCommand(setupCmd(opts), exportCmd(opts), debugEnvCmd(), previewTokenCmd(opts), revokeTokenCmd(opts), runsCmd(opts))
	return cmd
}

// managementClient builds the management client; unlike the web server the
// scripts refuse to run without credentials.
func (o *options) managementClient() (*cms.ManagementClient, error) {
	if err := config.RequireEnv("CONTENTFUL_MANAGEMENT_TOKEN", "CONTENTFUL_SPACE_ID"); err != nil {
		return nil, err
	}
	return cms.NewManagementClient(cms.ManagementConfig{
		SpaceID:     o.cfg.Contentful.SpaceID,
		Token:       o.cfg.Contentful.ManagementToken,
		Environment: o.cfg.Contentful.Environment,
		Host:        o.apiHost,
	})
}

func (o *options) runStore() runlog.Store {
	return runlog.Store{URI: o.cfg.MongoDB.URI, Database: o.cfg.MongoDB.Database, Timeout: o.cfg.MongoDB.Timeout}
}

// record saves run when a run store is configured. Failing to record never
// fails the command.
func (o *options) record(ctx context.Context, run *runlog.Run, err error) {
	run.Finish(err)
	if saveErr := o.runStore().Save(ctx, run); saveErr != nil {
		logger.Warnf("failed to record %s run %s: %v", run.Command, run.RunID, saveErr)
	}
}

func setupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create and publish every missing content type",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mgr, err := opts.managementClient()
			if err != nil {
				return err
			}
			logger.Infof("Setting up Contentful content models...")

			run := runlog.NewRun("setup", opts.cfg.Contentful.SpaceID)
			sum, err := provision.New(mgr).Run(ctx)
			run.Created, run.Skipped = sum.Created, sum.Skipped
			opts.record(ctx, run, err)
			if err != nil {
				return fmt.Errorf("error setting up content models: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "All content models set up successfully (%s)\n", sum)
			return nil
		},
	}
}

func exportCmd(opts *options) *cobra.Command {
	var (
		output  string
		format  string
		upload  bool
		expires time.Duration
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the space's content types to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mgr, err := opts.managementClient()
			if err != nil {
				return err
			}

			run := runlog.NewRun("export", opts.cfg.Contentful.SpaceID)
			res, err := export(ctx, mgr, output, format, upload, expires, opts.cfg.Contentful.SpaceID)
			if res != nil {
				run.OutputPath, run.ObjectKey = res.Path, res.ObjectKey
			}
			opts.record(ctx, run, err)
			if err != nil {
				return fmt.Errorf("error exporting models: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Content models exported to %s\n", res.Path)
			fmt.Fprintf(w, "Exported %d content models\n", res.Count)
			if res.PresignedURL != "" {
				fmt.Fprintf(w, "Snapshot: %s\n", res.PresignedURL)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", provision.DefaultExportPath, "Output file")
	cmd.Flags().StringVar(&format, "format", "", "json or yaml (default: from the file extension)")
	cmd.Flags().BoolVar(&upload, "upload", false, "Also upload the export to MinIO (MINIO_* settings)")
	cmd.Flags().DurationVar(&expires, "url-expiry", time.Hour, "Validity of the presigned snapshot URL")
	return cmd
}

func export(ctx context.Context, mgr cms.Manager, output, format string, upload bool, expires time.Duration, spaceID string) (*provision.ExportResult, error) {
	res, err := provision.Export(ctx, mgr, output, format)
	if err != nil || !upload {
		return res, err
	}
	mcfg := storage.LoadMinIOConfig()
	if !mcfg.Enabled() {
		logger.Warnf("--upload given but MINIO_ENDPOINT is not set, skipping upload")
		return res, nil
	}
	store, err := storage.NewMinIOStorage(ctx, mcfg)
	if err != nil {
		return res, err
	}
	return res, provision.Upload(ctx, store, spaceID, res, expires)
}

func debugEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug-env",
		Short: "Show which Contentful credentials are configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			provision.DebugEnv(cmd.OutOrStdout(), config.Lookup)
			return nil
		},
	}
}

func previewTokenCmd(opts *options) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "preview-token",
		Short: "Mint a token for ?preview=true requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				ttl = opts.cfg.Preview.TokenTTL
			}
			tok, err := tokens.GeneratePreviewToken(opts.cfg.Preview.Secret, subject, ttl)
			if err != nil {
				return fmt.Errorf("%w (set PREVIEW_SECRET)", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "editor", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default: PREVIEW_TOKEN_TTL minutes)")
	return cmd
}

func revokeTokenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke-token <token>",
		Short: "Revoke a preview token before it expires (needs REDIS_HOST)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := opts.cfg.Redis
			if rc.Host == "" {
				return fmt.Errorf("Missing environment variable: REDIS_HOST")
			}
			client := redis.NewClient(&redis.Options{Addr: rc.Host + ":" + rc.Port, Password: rc.Password, DB: rc.DB})
			defer client.Close()

			claims, err := tokens.NewRevocations(client).RevokeToken(cmd.Context(), opts.cfg.Preview.Secret, args[0])
			if err != nil {
				return fmt.Errorf("revoke preview token: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Revoked token %s (subject %s) until %s\n", claims.ID, claims.Subject, claims.ExpiresAt.Time.Format(time.RFC3339))
			return nil
		},
	}
}

func runsCmd(opts *options) *cobra.Command {
	var limit int64
	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List recorded setup and export runs (needs MONGODB_URI)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.RequireEnv("MONGODB_URI"); err != nil {
				return err
			}
			ctx := cmd.Context()
			store := opts.runStore()

			var runs []runlog.Run
			if len(args) == 1 {
				run, err := store.Load(ctx, args[0])
				if err != nil {
					return fmt.Errorf("load run: %w", err)
				}
				if run == nil {
					return fmt.Errorf("run %s not found", args[0])
				}
				runs = []runlog.Run{*run}
			} else {
				var err error
				if runs, err = store.Recent(ctx, limit); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(w, "No runs recorded")
				return nil
			}
			fmt.Fprintln(w, runsTable(runs))
			return nil
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", 10, "Number of runs to list, newest first")
	return cmd
}

func runsTable(runs []runlog.Run) string {
	t := table.New().Headers("RUN", "COMMAND", "STATUS", "STARTED", "DURATION", "DETAIL")
	for _, r := range runs {
		dur := ""
		if !r.FinishedAt.IsZero() {
			dur = r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
		}
		t.Row(r.RunID, r.Command, r.Status, r.StartedAt.Format(time.RFC3339), dur, runDetail(r))
	}
	return t.String()
}

// runDetail summarises what a run did, or why it failed.
func runDetail(r runlog.Run) string {
	if r.Error != "" {
		return r.Error
	}
	var parts []string
	if r.Command == "setup" {
		parts = append(parts, fmt.Sprintf("%d created, %d skipped", len(r.Created), len(r.Skipped)))
	}
	if r.OutputPath != "" {
		parts = append(parts, r.OutputPath)
	}
	if r.ObjectKey != "" {
		parts = append(parts, "s3:"+r.ObjectKey)
	}
	return strings.Join(parts, " ")
}
