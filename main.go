// Package main renders the corte de caja (cash-register closing) report of
// the school billing system as a paginated PDF.
//
// The closing JSON comes from the billing API. It is rendered either once
// from the command line, optionally e-mailed, or on demand by the HTTP API,
// which hands the PDF out as a short-lived download.
//
// Usage:
//
//	cortecaja render -i corte.json [-o out.pdf] [--email]
//	cortecaja serve [--addr :8080]
//	cortecaja version
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cortecaja/internal/api"
	"cortecaja/internal/config"
	"cortecaja/internal/delivery"
	"cortecaja/internal/logging"
	"cortecaja/internal/report"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	// Version
	version = "1.0.0"

	defaultConfigFile = "config.yaml"
)

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "cortecaja",
		Short:         "Render the corte de caja report as PDF",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultConfigFile, "Path to the YAML config file")

	root.AddCommand(
		newRenderCmd(&cfgPath),
		newServeCmd(&cfgPath),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cortecaja v%s\n", version)
		},
	}
}

type renderCmd struct {
	cfgPath     *string
	input       string
	output      string
	branchLabel string
	startDate   string
	endDate     string
	branchID    string
	email       bool
	now         func() time.Time
}

func newRenderCmd(cfgPath *string) *cobra.Command {
	rc := &renderCmd{cfgPath: cfgPath, now: time.Now}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a closing JSON file into a PDF",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVarP(&rc.input, "input", "i", "", "Closing JSON file, - for stdin")
	cmd.Flags().StringVarP(&rc.output, "output", "o", "", "Output PDF path (default derived from the range)")
	cmd.Flags().StringVar(&rc.branchLabel, "plantel-label", "", "Display name of the branch")
	cmd.Flags().StringVar(&rc.startDate, "desde", "", "Override the start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.endDate, "hasta", "", "Override the end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.branchID, "plantel", "", "Override the branch id")
	cmd.Flags().BoolVar(&rc.email, "email", false, "E-mail the PDF to the configured recipient")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (rc *renderCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault(*rc.cfgPath)
	if err != nil {
		return err
	}
	logger := logging.SetupLogging(cfg.LogLevel)
	logger.SetOutput(cmd.ErrOrStderr())

	if rc.email && !cfg.MailEnabled() {
		return fmt.Errorf("--email needs smtp.host, email.from and email.to in %s", *rc.cfgPath)
	}

	data, err := rc.readInput(cmd.InOrStdin())
	if err != nil {
		return err
	}
	in, err := report.DecodeInput(data)
	if err != nil {
		return fmt.Errorf("failed to parse closing JSON: %w", err)
	}

	var filter *report.Filter
	if cmd.Flags().Changed("desde") || cmd.Flags().Changed("hasta") || cmd.Flags().Changed("plantel") {
		filter = &report.Filter{StartDate: rc.startDate, EndDate: rc.endDate, BranchID: report.FlexString(rc.branchID)}
	}

	logData := logging.NewLogData(logger)
	endRender := logData.AddTiming("render")
	pdf, doc, err := report.Build(in, report.Options{
		Filter:      filter,
		BranchLabel: rc.branchLabel,
		School:      cfg.Report.School,
		Author:      cfg.Report.Author,
		PageSize:    cfg.Report.PageSize,
		Margin:      cfg.Report.Margin,
		GeneratedAt: rc.now(),
	})
	endRender()
	if err != nil {
		return err
	}

	fileName := delivery.FileName(in, filter)
	output := rc.output
	if output == "" {
		output = fileName
	}
	if err := os.WriteFile(output, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	logData.AddData("output", output)
	logData.AddData("pages", doc.PageCount())
	logData.AddData("receipts", len(in.Receipts))

	if rc.email {
		if err := rc.sendEmail(cfg, in, filter, filepath.Base(output), pdf); err != nil {
			logData.Log().WithError(err).Error("Render.Email.Error")
			return err
		}
		logData.AddData("emailedTo", cfg.Email.To)
	}

	logData.Log().Info("Render.Complete")
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

func (rc *renderCmd) readInput(stdin io.Reader) ([]byte, error) {
	if rc.input == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(rc.input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

func (rc *renderCmd) sendEmail(cfg *config.Config, in report.Input, filter *report.Filter, fileName string, pdf []byte) error {
	start, end, _ := report.Selection(in, filter)
	subject := "Corte de caja"
	if period := report.FormatRange(start, end); period != "" {
		subject += " " + period
	}

	mailer := delivery.NewMailer(delivery.MailConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.Email.From,
		To:       cfg.Email.To,
	})
	return mailer.Send(subject, delivery.Download{FileName: fileName, Data: pdf, Created: rc.now()})
}

func newServeCmd(cfgPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the report HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrDefault(*cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			logger := logging.SetupLogging(cfg.LogLevel)

			registry := delivery.NewRegistry(cfg.Server.ReleaseAfter)
			defer registry.Close()

			logger.WithFields(logrus.Fields{
				"releaseAfter": cfg.Server.ReleaseAfter.String(),
				"pageSize":     cfg.Report.PageSize,
			}).Info("HttpServer.Config")

			return api.NewWebAPI(api.Config{
				Addr: cfg.Server.Addr,
				Dependencies: api.Dependencies{
					Logger:   logger,
					Registry: registry,
					Report:   cfg.Report,
				},
			}).Start()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}

// ---------------------------------------------------------------------------
// Main
// ---------------------------------------------------------------------------

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
