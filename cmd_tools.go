package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-backend/services"
)

// testEmailCmd sends one message through the configured backend to check
// mail settings.
func testEmailCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "test-email",
		Short: "Send a test email with the configured mail backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Testing email configuration...")
			fmt.Fprintf(out, "EMAIL_BACKEND: %s\n", cfg.Mail.Backend)
			fmt.Fprintf(out, "EMAIL_HOST: %s\n", cfg.Mail.Host)
			fmt.Fprintf(out, "EMAIL_PORT: %d\n", cfg.Mail.Port)
			fmt.Fprintf(out, "EMAIL_USE_TLS: %t\n", cfg.Mail.UseTLS)
			fmt.Fprintf(out, "EMAIL_HOST_USER: %s\n", cfg.Mail.Username)
			fmt.Fprintf(out, "DEFAULT_FROM_EMAIL: %s\n", cfg.Mail.From)
			fmt.Fprintf(out, "EMAIL_HOST_PASSWORD: %s (hidden)\n", strings.Repeat("*", len(cfg.Mail.Password)))

			if to == "" {
				to = cfg.Mail.NotifyAddress
			}
			if to == "" {
				return fmt.Errorf("no recipient: pass --to or set NOTIFY_EMAIL")
			}

			mailer, err := services.NewMailer(cfg.Mail)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "\nSending test email...")
			err = mailer.Send(cmd.Context(), services.Message{
				From:    cfg.Mail.From,
				To:      []string{to},
				Subject: "Portfolio Contact Form - Test Email",
				Body:    "This is a test email from your portfolio backend. If you receive this, your email configuration is working correctly!",
			})
			if err != nil {
				fmt.Fprintln(out, "✗ Email sending failed!")
				return err
			}
			fmt.Fprintf(out, "✓ Email sent successfully!\nCheck your inbox at %s\n", to)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient (defaults to NOTIFY_EMAIL)")
	return cmd
}

// hashPasswordCmd reads a password from stdin and prints the bcrypt hash to
// put in ADMIN_PASSWORD_HASH.
func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				return fmt.Errorf("password must not be empty")
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}
}
