package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/financeassistant/authform/internal/core/domain"
	"github.com/financeassistant/authform/internal/core/ports"
	"github.com/financeassistant/authform/internal/core/service"
	"github.com/financeassistant/authform/internal/infrastructure/authapi"
	"github.com/financeassistant/authform/internal/infrastructure/config"
	redisstore "github.com/financeassistant/authform/internal/infrastructure/db/redis"
	"github.com/financeassistant/authform/internal/infrastructure/identity"
	"github.com/financeassistant/authform/internal/infrastructure/navigation"
	"github.com/financeassistant/authform/pkg/logger"
)

var errSubmissionFailed = errors.New("submission failed")

// formConfig holds the flags shared by login and register.
type formConfig struct {
	email         string
	password      string
	passwordStdin bool
	showPassword  bool
}

func newLoginCmd() *cobra.Command {
	return newFormCmd("login", "Sign in with an email and password", domain.ModeSignIn)
}

func newRegisterCmd() *cobra.Command {
	return newFormCmd("register", "Create an account with an email and password", domain.ModeSignUp)
}

func newFormCmd(use, short string, mode domain.FormMode) *cobra.Command {
	cfg := &formConfig{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.passwordStdin {
				pw, err := readPassword(cmd.InOrStdin())
				if err != nil {
					return err
				}
				cfg.password = pw
			}
			return runForm(cmd, mode, func(f *service.Form) error {
				if err := f.SetField(domain.FieldEmail, cfg.email); err != nil {
					return err
				}
				if cfg.showPassword {
					f.TogglePasswordVisibility()
				}
				return f.SetField(domain.FieldPassword, cfg.password)
			})
		},
	}

	cfg.register(cmd.Flags())

	return cmd
}

func (cfg *formConfig) register(fs *pflag.FlagSet) {
	fs.StringVar(&cfg.email, "email", "", "account email")
	fs.StringVar(&cfg.password, "password", "", "account password")
	fs.BoolVar(&cfg.passwordStdin, "password-stdin", false, "read the password from stdin")
	fs.BoolVar(&cfg.showPassword, "show-password", false, "echo the password in the summary")
}

func newDemoCmd() *cobra.Command {
	var register bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Submit the demo credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := domain.ModeSignIn
			if register {
				mode = domain.ModeSignUp
			}
			return runForm(cmd, mode, func(f *service.Form) error {
				f.FillDemoCredentials()
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&register, "register", false, "register the demo account instead of signing in")

	return cmd
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// runForm builds a form in mode, lets fill populate it, submits once and
// waits for the post-success navigation.
func runForm(cmd *cobra.Command, mode domain.FormMode, fill func(*service.Form) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	cfg, err := config.LoadClient(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:     cfg.LogLevel,
		Pretty:    cfg.IsDevelopment(),
		Component: "form",
	})

	store, closeStore, err := newIdentityStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	client := authapi.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, log)
	nav := navigation.NewRecorder(log)

	form := service.NewForm(client, store, nav, log, service.FormOptions{
		Destination:   cfg.Destination,
		NavigateDelay: cfg.NavigateDelay,
	})
	defer form.Close()

	if mode == domain.ModeSignUp {
		form.SwitchMode()
	}
	if err := fill(form); err != nil {
		return err
	}

	before := form.State()
	text := domain.CopyFor(before.Mode)
	fmt.Fprintf(out, "%s: %s\n", text.Title, text.Description)
	fmt.Fprintf(out, "  Email:    %s\n", before.Email)
	fmt.Fprintf(out, "  Password: %s\n", maskPassword(before))
	fmt.Fprintf(out, "%s\n", domain.SubmitLabel(before))

	st := form.Submit(ctx)
	printResult(out, st)

	if st.Outcome.Success == "" {
		return errSubmissionFailed
	}

	select {
	case dest := <-nav.Navigated():
		fmt.Fprintf(out, "Redirecting to %s\n", dest)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func maskPassword(st domain.FormState) string {
	if st.ShowPassword {
		return st.Password
	}
	return strings.Repeat("*", len([]rune(st.Password)))
}

func printResult(w io.Writer, st domain.FormState) {
	if st.EmailError != "" {
		fmt.Fprintf(w, "  email: %s\n", st.EmailError)
	}
	if st.PasswordError != "" {
		fmt.Fprintf(w, "  password: %s\n", st.PasswordError)
	}
	if st.Outcome.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", st.Outcome.Error)
	}
	if st.Outcome.Success != "" {
		fmt.Fprintln(w, st.Outcome.Success)
	}
}

// identityStore is what the CLI needs from a store: the form saves through
// ports.IdentityStore and whoami reads the record back.
type identityStore interface {
	ports.IdentityStore
	Load(ctx context.Context) (domain.IdentityRecord, bool, error)
}

// newIdentityStore returns the configured identity store and a close func.
// logger.Init must have been called.
func newIdentityStore(ctx context.Context, cfg *config.ClientConfig) (identityStore, func(), error) {
	log := logger.Get()
	if cfg.IdentityStore == config.StoreRedis {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("addr", cfg.Redis.Addr).Msg("identity store: redis")
		return redisstore.NewIdentityStore(rdb, ""), func() { _ = rdb.Close() }, nil
	}

	path := cfg.IdentityFile
	if path == "" {
		p, err := identity.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	log.Debug().Str("path", path).Msg("identity store: file")
	return identity.NewFileStore(path), func() {}, nil
}
