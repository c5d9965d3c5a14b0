package main

import (
	"strings"

	"schoolnote/internal/app"
	"schoolnote/internal/domain/entity"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/usecase"

	"github.com/spf13/cobra"
)

func newTranslateCmd(c *cli) *cobra.Command {
	var (
		target string
		simple bool
		hint   string
	)

	cmd := &cobra.Command{
		Use:   "translate <location>",
		Short: "Translate a school notice (PDF or image)",
		Long: `Translate a PDF or image notice into the target language.

The location may be a local path, a file:// URL, or a bucket URL such as
s3://bucket/notice.pdf or gs://bucket/notice.jpg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.opContext(cmd)
			defer cancel()

			if target == "" {
				target = c.controller.CurrentLanguage()
			}
			input := &app.TranslateLocationInput{
				Location:           args[0],
				TargetLanguage:     target,
				SourceLanguageHint: hint,
			}
			if cmd.Flags().Changed("simple") {
				input.UseSimpleLanguage = &simple
			}

			result, err := c.controller.TranslateLocation(ctx, input)
			if err != nil {
				return err
			}

			return c.print(cmd.OutOrStdout(), result, func(p *printer) { p.translation(result) })
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "Target language code (default: display language)")
	cmd.Flags().BoolVar(&simple, "simple", false, "Ask for simplified wording")
	cmd.Flags().StringVar(&hint, "source", "", "Source language hint")

	return cmd
}

func newComposeCmd(c *cli) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "compose <message>",
		Short: "Translate a message for a teacher",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.opContext(cmd)
			defer cancel()

			result, err := c.controller.Compose(ctx, &usecase.ComposeMessageInput{
				Message:        strings.Join(args, " "),
				TargetLanguage: target,
			})
			if err != nil {
				return err
			}

			return c.print(cmd.OutOrStdout(), result, func(p *printer) { p.line(result.TranslatedMessage) })
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "Target language code (default: Korean)")

	return cmd
}

func newLanguageCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "language",
		Short: "Show or change the display language",
		RunE: func(cmd *cobra.Command, args []string) error {
			current := c.controller.CurrentLanguage()
			device := c.controller.DeviceLanguage()

			return c.print(cmd.OutOrStdout(), map[string]string{"current": current, "device": device}, func(p *printer) {
				p.keyVal("current", current)
				p.keyVal("device", device)
			})
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List supported languages",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				languages := c.controller.Languages()

				return c.print(cmd.OutOrStdout(), languages, func(p *printer) { p.languages(languages, c.controller.CurrentLanguage()) })
			},
		},
		&cobra.Command{
			Use:   "set <code>",
			Short: "Change and persist the display language",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.controller.ChangeLanguage(cmd.Context(), args[0]); err != nil {
					return err
				}
				current := c.controller.CurrentLanguage()

				return c.print(cmd.OutOrStdout(), map[string]string{"language": current}, func(p *printer) {
					p.keyVal(c.controller.Translate("language.current"), current)
				})
			},
		},
		&cobra.Command{
			Use:   "detect [tag...]",
			Short: "Resolve a supported language from BCP 47 tags (default: device locale)",
			RunE: func(cmd *cobra.Command, args []string) error {
				detected := c.controller.DeviceLanguage()
				if len(args) > 0 {
					detected = c.controller.DetectDeviceLanguage(args)
				}

				return c.print(cmd.OutOrStdout(), map[string]string{"language": detected}, func(p *printer) { p.line(detected) })
			},
		},
	)

	return cmd
}

func newProfileCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in user and their children",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.opContext(cmd)
			defer cancel()

			user, err := c.controller.FetchUser(ctx)
			if err != nil {
				return err
			}

			return c.print(cmd.OutOrStdout(), user, func(p *printer) { p.user(user) })
		},
	}

	var name, email string
	update := &cobra.Command{
		Use:   "update",
		Short: "Change the user's name or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.opContext(cmd)
			defer cancel()

			patch := &service.UserPatch{}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}

			user, err := c.controller.UpdateUser(ctx, patch)
			if err != nil {
				return err
			}

			return c.print(cmd.OutOrStdout(), user, func(p *printer) { p.user(user) })
		},
	}
	update.Flags().StringVar(&name, "name", "", "New display name")
	update.Flags().StringVar(&email, "email", "", "New email address")

	cmd.AddCommand(update, newChildCmd(c))

	return cmd
}

func newChildCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "child",
		Short: "Manage children records",
	}

	var input usecase.AddChildInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a child",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.opContext(cmd)
			defer cancel()

			user, err := c.controller.AddChild(ctx, &input)
			if err != nil {
				return err
			}

			return c.print(cmd.OutOrStdout(), user, func(p *printer) { p.user(user) })
		},
	}
	add.Flags().StringVar(&input.Name, "name", "", "Child's name")
	add.Flags().StringVar(&input.School, "school", "", "School name")
	add.Flags().IntVar(&input.Grade, "grade", 0, "Grade (1-12)")
	add.Flags().StringVar(&input.BirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	add.Flags().StringVar(&input.ClassName, "class", "", "Class name")

	var (
		name, school, birthDate, className string
		grade                              int
	)
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a child's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.opContext(cmd)
			defer cancel()

			patch := &service.ChildPatch{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("school") {
				patch.School = &school
			}
			if flags.Changed("grade") {
				patch.Grade = &grade
			}
			if flags.Changed("birth-date") {
				patch.BirthDate = &birthDate
			}
			if flags.Changed("class") {
				patch.ClassName = &className
			}

			user, err := c.controller.UpdateChild(ctx, args[0], patch)
			if err != nil {
				return err
			}

			return c.print(cmd.OutOrStdout(), user, func(p *printer) { p.user(user) })
		},
	}
	update.Flags().StringVar(&name, "name", "", "Child's name")
	update.Flags().StringVar(&school, "school", "", "School name")
	update.Flags().IntVar(&grade, "grade", 0, "Grade (1-12)")
	update.Flags().StringVar(&birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	update.Flags().StringVar(&className, "class", "", "Class name")

	remove := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a child",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.opContext(cmd)
			defer cancel()

			user, err := c.controller.RemoveChild(ctx, args[0])
			if err != nil {
				return err
			}

			return c.print(cmd.OutOrStdout(), user, func(p *printer) { p.user(user) })
		},
	}

	cmd.AddCommand(add, update, remove)

	return cmd
}

func newHistoryCmd(c *cli) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past translations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.opContext(cmd)
			defer cancel()

			results, err := c.controller.FetchHistory(ctx)
			if err != nil {
				return err
			}
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			return c.print(cmd.OutOrStdout(), results, func(p *printer) { p.history(results) })
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show (0 for all)")

	return cmd
}

func newSessionCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := c.controller.Session()

			return c.print(cmd.OutOrStdout(), session, func(p *printer) { p.session(session) })
		},
	}

	var loginInput usecase.LoginInput
	login := &cobra.Command{
		Use:   "login",
		Short: "Exchange a provider token for a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.opContext(cmd)
			defer cancel()

			user, err := c.controller.Login(ctx, &loginInput)
			if err != nil {
				return err
			}

			return c.print(cmd.OutOrStdout(), user, func(p *printer) {
				p.session(c.controller.Session())
				p.user(user)
			})
		},
	}
	login.Flags().StringVar(&loginInput.AuthToken, "token", "", "Token issued by the identity provider")
	login.Flags().Var(newProviderValue(&loginInput.Provider), "provider", "Identity provider (google, kakao, naver, apple)")

	guest := &cobra.Command{
		Use:   "guest",
		Short: "Start an anonymous guest session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.opContext(cmd)
			defer cancel()

			if _, err := c.controller.GuestToken(ctx, c.controller.CurrentLanguage()); err != nil {
				return err
			}
			session := c.controller.Session()

			return c.print(cmd.OutOrStdout(), session, func(p *printer) { p.session(session) })
		},
	}

	cmd.AddCommand(login, guest)

	return cmd
}

// providerValue adapts entity.ProviderType to pflag.Value.
type providerValue struct {
	target *entity.ProviderType
}

func newProviderValue(target *entity.ProviderType) *providerValue {
	return &providerValue{target: target}
}

func (v *providerValue) String() string {
	if v.target == nil {
		return ""
	}

	return string(*v.target)
}

func (v *providerValue) Set(s string) error {
	*v.target = entity.ProviderType(strings.ToLower(strings.TrimSpace(s)))

	return nil
}

func (v *providerValue) Type() string {
	return "provider"
}
