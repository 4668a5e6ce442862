package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-fieldchrome/pkg/fields"
	"github.com/goliatone/go-fieldchrome/pkg/schema"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("fieldchrome: prompt aborted")

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
}

// PromptDriver abstracts the terminal so value collection can be tested
// without one.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

type surveyDriver struct{}

func newSurveyDriver() PromptDriver {
	return surveyDriver{}
}

func (surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return indexOf(cfg.Options, out), nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}

// promptValues asks for every field value, using the current values as
// defaults, and writes the answers back into values.
func promptValues(ctx context.Context, driver PromptDriver, resolver *fields.Resolver, specs []schema.FieldSpec, values map[string]any) error {
	if driver == nil {
		return errors.New("interactive mode needs a prompt driver")
	}
	for _, spec := range specs {
		current := values[spec.Name]
		switch resolver.Resolve(spec) {
		case fields.KindCheckbox:
			answer, err := driver.Confirm(ctx, ConfirmConfig{
				Message: spec.Label,
				Help:    spec.HelpText,
				Default: current == true,
			})
			if err != nil {
				return fmt.Errorf("prompt %s: %w", spec.Name, err)
			}
			values[spec.Name] = answer

		case fields.KindSelect:
			labels := make([]string, 0, len(spec.Options))
			selected := -1
			for idx, opt := range spec.Options {
				labels = append(labels, opt.Label)
				if fmt.Sprint(opt.Value) == fmt.Sprint(current) {
					selected = idx
				}
			}
			idx, err := driver.Select(ctx, SelectConfig{
				Message:      spec.Label,
				Help:         spec.HelpText,
				Options:      labels,
				DefaultIndex: selected,
			})
			if err != nil {
				return fmt.Errorf("prompt %s: %w", spec.Name, err)
			}
			if idx >= 0 && idx < len(spec.Options) {
				values[spec.Name] = spec.Options[idx].Value
			}

		default:
			def := ""
			if current != nil {
				def = fmt.Sprint(current)
			}
			answer, err := driver.Input(ctx, InputConfig{
				Message: spec.Label,
				Help:    spec.HelpText,
				Default: def,
			})
			if err != nil {
				return fmt.Errorf("prompt %s: %w", spec.Name, err)
			}
			values[spec.Name] = strings.TrimSpace(answer)
		}
	}
	return nil
}
