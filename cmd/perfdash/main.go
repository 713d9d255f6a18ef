package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/example/perfdash/client"
	"github.com/example/perfdash/internal/tui"
)

var serverURL string

func tokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".perfdash-token"
	}
	return filepath.Join(home, ".perfdash", "token")
}

func loadToken(c *client.Client) {
	raw, err := os.ReadFile(tokenPath())
	if err != nil {
		return
	}
	c.SetToken(strings.TrimSpace(string(raw)))
}

func saveToken(token string) error {
	path := tokenPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func newClient() (*client.Client, error) {
	c, err := client.New(serverURL)
	if err != nil {
		return nil, err
	}
	loadToken(c)
	return c, nil
}

func main() {
	root := &cobra.Command{
		Use:   "perfdash",
		Short: "Performance dashboard terminal client",
	}
	root.PersistentFlags().StringVar(&serverURL, "server", envOr("PERFDASH_SERVER", "http://localhost:8080"), "backend base URL")

	root.AddCommand(loginCmd(), logoutCmd(), dashboardCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loginCmd() *cobra.Command {
	var register bool
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			reader := bufio.NewReader(os.Stdin)
			fmt.Print("Email: ")
			email, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			fmt.Print("Password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return err
			}

			email = strings.TrimSpace(email)
			var user *client.User
			if register {
				user, err = c.Register(cmd.Context(), email, string(password))
			} else {
				user, err = c.Login(cmd.Context(), email, string(password))
			}
			if err != nil {
				return err
			}

			if err := saveToken(c.Token()); err != nil {
				return err
			}
			fmt.Printf("Signed in as %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().BoolVar(&register, "register", false, "create a new account instead of signing in")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			session := client.NewSession(c, printNotification)
			_ = session.SignOut(cmd.Context())
			return os.Remove(tokenPath())
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the objectives dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			session := client.NewSession(c, printNotification)
			if err := session.Start(cmd.Context()); err != nil {
				return err
			}
			if session.Snapshot().State != client.StateSignedIn {
				return fmt.Errorf("not signed in; run `perfdash login` first")
			}

			program := tea.NewProgram(tui.NewModel(c, session), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}

func printNotification(n client.Notification) {
	if n.Error != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", n.Title, n.Error)
		return
	}
	fmt.Fprintln(os.Stderr, n.Title)
}
