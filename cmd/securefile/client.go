package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
	"github.com/spf13/cobra"
)

type clientFlags struct {
	url      string
	username string
	password string
}

func (f *clientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.url, "url", "http://localhost:8080", "Server base URL")
	cmd.Flags().StringVarP(&f.username, "username", "u", "student", "Username for the simulated sign-in")
	cmd.Flags().StringVar(&f.password, "password", "password", "Password for the simulated sign-in (anything non-empty works)")
}

// withSession signs in, runs fn and logs out again.
func (f *clientFlags) withSession(ctx context.Context, fn func(*vaultsdk.Session) error) error {
	sess, err := vaultsdk.NewSDKClient(f.url).Login(ctx, f.username, f.password)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}
	defer func() { _ = sess.Logout(context.WithoutCancel(ctx)) }()

	return fn(sess)
}

func newFeedCmd() *cobra.Command {
	var (
		flags     clientFlags
		eventType string
	)
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the security activity feed of a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return flags.withSession(ctx, func(sess *vaultsdk.Session) error {
				events, err := sess.Events(ctx, eventType)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "WHEN\tTYPE\tSEVERITY\tDESCRIPTION\tIP\tUSER")
				for _, e := range events {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", e.RelativeTime, e.Type, e.Severity, e.Description, e.IP, e.User)
				}
				return tw.Flush()
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&eventType, "type", "t", "", "Only show one event type: login, file_access, encryption, threat, admin")
	return cmd
}

func newFilesCmd() *cobra.Command {
	var (
		flags     clientFlags
		query     string
		fileType  string
		encrypted string
	)
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List the seeded files of a fresh session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			filter := vaultsdk.FileFilter{Query: query, Type: fileType}
			if encrypted != "" {
				b, err := strconv.ParseBool(encrypted)
				if err != nil {
					return fmt.Errorf("--encrypted must be true or false: %w", err)
				}
				filter.Encrypted = &b
			}

			return flags.withSession(ctx, func(sess *vaultsdk.Session) error {
				files, err := sess.ListFiles(ctx, filter)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSIZE\tENCRYPTED\tSHARED\tMODIFIED")
				for _, f := range files {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%t\t%s\n", f.ID, f.Name, f.Type, f.Size, f.Encrypted, f.Shared, f.LastModified)
				}
				return tw.Flush()
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive name search")
	cmd.Flags().StringVarP(&fileType, "type", "t", "", "Document, Spreadsheet or Presentation")
	cmd.Flags().StringVar(&encrypted, "encrypted", "", "true or false")
	return cmd
}
