// schoolnotectl drives the schoolnote core from a terminal: translate notices,
// compose messages to teachers, and manage the profile and display language.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schoolnote/config"
	"schoolnote/internal/app"
	"schoolnote/internal/domain/entity"
	"schoolnote/internal/domain/lifecycle"
	"schoolnote/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// cli carries the process-wide flags and the controller built for one invocation.
type cli struct {
	jsonOutput   bool
	timeout      time.Duration
	authProvider entity.ProviderType
	authToken    string

	fxApp      *fx.App
	cfg        *config.Config
	controller *app.Controller
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &cli{}
	err := newRootCmd(c).ExecuteContext(ctx)
	if stopErr := c.stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "schoolnotectl",
		Short: "Translate school notices and talk to teachers from the terminal",
		Long: `schoolnotectl runs the schoolnote core against the configured backend.

Configuration is read from config/config.yaml; any key can be overridden with an
environment variable (API_BASEURL, LOCALE_DEVICEOVERRIDE, ...) or a .env file.

Sessions are not persisted. When --auth-token (or AUTH_TOKEN) is set, every
invocation signs in with it before running the command; otherwise a guest
session is started on demand and profile and history are unavailable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.start(cmd.Context()); err != nil {
				return err
			}

			return c.signIn(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Print results as JSON")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 2*time.Minute, "Upper bound for each backend operation")
	root.PersistentFlags().Var(newProviderValue(&c.authProvider), "auth-provider", "Identity provider of --auth-token (default: auth.provider)")
	root.PersistentFlags().StringVar(&c.authToken, "auth-token", "", "Provider token to sign in with before the command (default: auth.token)")

	root.AddCommand(
		newTranslateCmd(c),
		newComposeCmd(c),
		newLanguageCmd(c),
		newProfileCmd(c),
		newHistoryCmd(c),
		newSessionCmd(c),
	)

	return root
}

// start builds the same object graph as the companion server, without delivery.
func (c *cli) start(ctx context.Context) error {
	c.fxApp = fx.New(
		fx.NopLogger,
		fx.Provide(config.New),
		app.Module(),
		fx.Populate(&c.cfg, &c.controller),
	)
	if err := c.fxApp.Err(); err != nil {
		return errors.Wrap(err, "failed to assemble application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := c.fxApp.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	if _, err := c.controller.Bootstrap(startCtx); err != nil {
		return errors.Wrap(err, "failed to bootstrap")
	}

	return nil
}

// signIn logs in with the flag or configured provider token, if any.
func (c *cli) signIn(cmd *cobra.Command) error {
	input := &usecase.LoginInput{AuthToken: c.authToken, Provider: c.authProvider}
	if input.AuthToken == "" && c.cfg.Auth != nil {
		input.AuthToken = c.cfg.Auth.Token
	}
	if input.Provider == "" && c.cfg.Auth != nil {
		if err := newProviderValue(&input.Provider).Set(c.cfg.Auth.Provider); err != nil {
			return err
		}
	}
	if input.AuthToken == "" {
		return nil
	}

	ctx, cancel := c.opContext(cmd)
	defer cancel()

	if _, err := c.controller.Login(ctx, input); err != nil {
		return errors.Wrap(err, "failed to sign in")
	}

	return nil
}

func (c *cli) stop() error {
	if c.fxApp == nil || c.controller == nil {
		return nil
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(c.fxApp.Stop(stopCtx))
}

// opContext bounds one backend operation by the --timeout flag.
func (c *cli) opContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}

	return context.WithTimeout(cmd.Context(), c.timeout)
}
