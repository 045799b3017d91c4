// Command gcal-auth authorizes Google Calendar access for installed-app (desktop) credentials
// and writes the OAuth token the API server reads at startup.
//
//	go run ./scripts/gcal-auth --credentials google-credentials.json
//
// Service Account keys need no token and do not use this command.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"bbip/pkg/gcalendar"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	credentials string
	tokenOut    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "gcal-auth",
		Short:        "Create the Google Calendar OAuth token for bbip",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadOAuthConfig(opts.credentials)
			if err != nil {
				return err
			}
			return authorize(cmd.Context(), config, cmd.InOrStdin(), cmd.OutOrStdout(), opts.tokenOut)
		},
	}

	cmd.Flags().StringVar(&opts.credentials, "credentials", "google-credentials.json", "OAuth desktop-app credentials file")
	cmd.Flags().StringVar(&opts.tokenOut, "out", gcalendar.TokenFile, "where to write the token")
	return cmd
}

func loadOAuthConfig(path string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials %q: %w", path, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials %q (expected an OAuth desktop-app file): %w", path, err)
	}
	return config, nil
}

// authorize prints the consent URL, reads the pasted code and stores the exchanged token.
func authorize(ctx context.Context, config *oauth2.Config, in io.Reader, out io.Writer, tokenPath string) error {
	fmt.Fprintln(out, "1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, config.AuthCodeURL("bbip", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code and press Enter: ")

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no authorization code entered")
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	if err := writeToken(tokenPath, tok); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nToken saved to %s. Restart the API server to enable calendar sync.\n", tokenPath)
	return nil
}

func writeToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
