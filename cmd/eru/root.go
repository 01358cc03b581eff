package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/iw2rmb/eru"
	"github.com/iw2rmb/eru/editor"
	"github.com/iw2rmb/eru/internal/config"
	"github.com/iw2rmb/eru/internal/logging"
	"github.com/iw2rmb/eru/internal/store"
	"github.com/iw2rmb/eru/syntax"
)

var errNotTerminal = errors.New("eru needs a terminal on stdin and stdout")

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "eru [file]",
		Short:         "A small terminal text editor",
		Version:       eru.VersionTag(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}
			s, err := newSession(cmd.Context(), viper.New(), cfgFile, args)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			cmd.SetContext(s.ctx)
			return s.run()
		},
	}
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: $XDG_CONFIG_HOME/eru/config.yaml)")
	return cmd
}

// session holds everything one editor run owns.
type session struct {
	ctx     context.Context // carries the session logger
	cfg     config.Config
	store   *store.Store
	model   editor.Model
	closers []io.Closer
}

func newSession(ctx context.Context, v *viper.Viper, cfgFile string, args []string) (*session, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	s := &session{ctx: ctx, cfg: cfg}

	if cfg.LogFile != "" {
		logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, closer)
		logging.SetDefault(logger)
		s.ctx = logging.WithLogger(s.ctx, logger)
	}
	logger := logging.FromContext(s.ctx)
	logger.Info("starting", logging.FieldVersion, eru.VersionTag(),
		logging.FieldConfigFile, v.ConfigFileUsed(), logging.FieldLevel, cfg.LogLevel)

	reg := syntax.Default()
	if cfg.SyntaxFile != "" {
		profiles, err := syntax.LoadFile(cfg.SyntaxFile)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		if reg, err = reg.With(profiles...); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("syntax file %s: %w", cfg.SyntaxFile, err)
		}
	}

	if cfg.StorePath != "" {
		st, err := store.Open(cfg.StorePath)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.store = st
		s.closers = append(s.closers, st)
		logger.Debug("session store opened", logging.FieldStore, st.Path())
	}

	s.model = editor.New(editor.Config{
		TabStop:       cfg.TabStop,
		QuitTimes:     cfg.QuitTimes,
		HistoryLimit:  cfg.HistoryLimit,
		StatusTimeout: cfg.StatusTimeout,
		Registry:      reg,
		Store:         s.store,
		Logger:        logger,
		Style:         editor.DefaultStyle().WithColors(cfg.Colors),
	})
	if len(args) > 0 {
		if s.model, err = s.model.Open(args[0]); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close releases the store and log file in reverse order of opening.
func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}

func (s *session) run() error {
	p := tea.NewProgram(program{editor: s.model}, tea.WithAltScreen(), tea.WithContext(s.ctx))
	if _, err := p.Run(); err != nil {
		logging.FromContext(s.ctx).Error("program exited", logging.FieldError, err)
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

// program adapts editor.Model to tea.Model.
type program struct {
	editor editor.Model
}

func (p program) Init() tea.Cmd { return p.editor.Init() }

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	p.editor, cmd = p.editor.Update(msg)
	return p, cmd
}

func (p program) View() string { return p.editor.View() }
