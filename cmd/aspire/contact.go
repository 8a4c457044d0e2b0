package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aspireai/aspire-site/internal/config"
	"github.com/aspireai/aspire-site/internal/contact"
	"github.com/aspireai/aspire-site/internal/service"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func newContactCmd() *cobra.Command {
	contactCmd := &cobra.Command{
		Use:   "contact",
		Short: "Work with the Contact API",
	}

	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a contact enquiry",
		Long: `Submit a contact enquiry to {backend-url}/api/contact.

Name, email and message are required; phone is optional.

Example:
  aspire contact send --name "Jane Doe" --email jane@example.com --message "Need a quote"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagURL, _ := cmd.Flags().GetString("backend-url")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			backendURL, err := resolveBackendURL(flagURL)
			if err != nil {
				return err
			}

			api, err := service.NewContactAPIService(backendURL, timeout)
			if err != nil {
				return err
			}

			values := make(map[string]string, len(contact.Fields))
			for _, field := range contact.Fields {
				values[string(field)], _ = cmd.Flags().GetString(string(field))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return sendContact(ctx, api, values, cmd.OutOrStdout())
		},
	}

	sendCmd.Flags().String("backend-url", "", "Contact API base URL (default: BACKEND_URL from the environment, .env.<ENV> or .env)")
	sendCmd.Flags().Duration("timeout", 15*time.Second, "Contact API request timeout")
	sendCmd.Flags().String(string(contact.FieldName), "", "Your name")
	sendCmd.Flags().String(string(contact.FieldEmail), "", "Your email address")
	sendCmd.Flags().String(string(contact.FieldPhone), "", "Phone number (optional)")
	sendCmd.Flags().String(string(contact.FieldMessage), "", "Message")

	contactCmd.AddCommand(sendCmd)
	return contactCmd
}

// resolveBackendURL prefers the flag, then BACKEND_URL after applying the
// same .env.<ENV> / .env cascade as the site server.
func resolveBackendURL(flagURL string) (string, error) {
	if flagURL != "" {
		return flagURL, nil
	}
	if err := config.LoadEnvFiles(); err != nil {
		return "", err
	}
	if backendURL := os.Getenv("BACKEND_URL"); backendURL != "" {
		return backendURL, nil
	}
	return "", errors.New("no backend URL: pass --backend-url or set BACKEND_URL")
}

// sendContact fills a contact form from flag values and submits it once.
func sendContact(ctx context.Context, client contact.Client, values map[string]string, out io.Writer) error {
	form := contact.NewForm(client, contact.NotifierFunc(func(n contact.Notification) {
		fmt.Fprintf(out, "%s: %s\n", n.Title, n.Description)
	}), logger)

	for name, value := range values {
		field, err := contact.ParseField(name)
		if err != nil {
			return err
		}
		if err := form.UpdateField(field, value); err != nil {
			return err
		}
	}

	if err := form.Validate(); err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " Sending..."
	s.Start()
	err := form.Submit(ctx)
	s.Stop()

	return err
}
